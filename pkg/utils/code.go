package utils

import (
	"crypto/rand"
	"fmt"
)

// Download codes are lowercase alphanumeric so they survive being read
// aloud, typed on a phone, or embedded in a QR code.
const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const DownloadCodeLength = 16

// GenerateDownloadCode returns a random code from the fixed alphabet,
// sourced from crypto/rand.
func GenerateDownloadCode() (string, error) {
	b := make([]byte, DownloadCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, v := range b {
		b[i] = codeAlphabet[int(v)%len(codeAlphabet)]
	}
	return string(b), nil
}
