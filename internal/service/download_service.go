package service

import (
	"errors"
	"time"

	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/pkg/utils"
)

type DownloadService struct {
	codeRepo     *repository.DownloadCodeRepository
	purchaseRepo *repository.PurchaseRepository
}

func NewDownloadService(
	codeRepo *repository.DownloadCodeRepository,
	purchaseRepo *repository.PurchaseRepository,
) *DownloadService {
	return &DownloadService{
		codeRepo:     codeRepo,
		purchaseRepo: purchaseRepo,
	}
}

// GetActiveCodes returns the user's unused, unexpired codes.
func (s *DownloadService) GetActiveCodes(userID uint) ([]models.DownloadCode, error) {
	codes, err := s.codeRepo.GetActiveByUserID(userID, time.Now())
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []models.DownloadCode{}
	}
	return codes, nil
}

// GenerateCode issues a new download code for a completed purchase. The
// code points at whichever of the purchase's photo/album is set and
// expires 7 days from now.
func (s *DownloadService) GenerateCode(userID uint, purchaseID uint) (*models.DownloadCode, error) {
	purchase, err := s.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, errors.New("purchase not found")
	}

	if purchase.UserID != userID {
		return nil, errors.New("unauthorized")
	}

	if purchase.Status != models.PurchaseStatusCompleted {
		return nil, errors.New("purchase is not completed")
	}

	code, err := utils.GenerateDownloadCode()
	if err != nil {
		return nil, err
	}

	dc := &models.DownloadCode{
		Code:      code,
		UserID:    userID,
		PhotoID:   purchase.PhotoID,
		AlbumID:   purchase.AlbumID,
		ExpiresAt: time.Now().Add(models.DownloadCodeValidity),
	}

	if err := s.codeRepo.Create(dc); err != nil {
		return nil, err
	}

	return dc, nil
}

// Redeem burns the code and resolves the asset URL. The mark-used update
// and the resolution happen in one transaction; once it commits the code
// is spent regardless of what the caller does with the URL.
func (s *DownloadService) Redeem(userID uint, code string) (*models.RedeemCodeResponse, error) {
	dc, err := s.codeRepo.Redeem(code, userID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotRedeemable) {
			return nil, errors.New("Code invalide ou expiré")
		}
		return nil, err
	}

	var url string
	switch {
	case dc.Photo != nil:
		url = dc.Photo.ImageURL
	case dc.Album != nil:
		url = dc.Album.CoverImage
	default:
		// The code burned but its target no longer exists; same terminal
		// outcome as a client that never opens the URL.
		return nil, errors.New("contenu introuvable")
	}

	return &models.RedeemCodeResponse{
		Code: dc.Code,
		URL:  url,
	}, nil
}

// GetCodeForUser looks a code up without redeeming it (QR rendering).
func (s *DownloadService) GetCodeForUser(code string, userID uint) (*models.DownloadCode, error) {
	return s.codeRepo.GetByCodeForUser(code, userID)
}
