package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders download codes as scannable PNGs.
type QRService struct {
	baseURL string // redeem page prefix, e.g. "https://example.com/profile/redeem?code="
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateCode returns a PNG QR encoding the redeem URL for code.
func (s *QRService) GenerateCode(code string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", s.baseURL, code)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
