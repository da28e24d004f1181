package repository

import (
	"errors"
	"time"

	"github.com/tamsou/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

// ErrCodeNotRedeemable covers every rejection: unknown code, already
// used, expired, or owned by another user. Callers get one answer.
var ErrCodeNotRedeemable = errors.New("code not redeemable")

type DownloadCodeRepository struct {
	db *gorm.DB
}

func NewDownloadCodeRepository(db *gorm.DB) *DownloadCodeRepository {
	return &DownloadCodeRepository{db: db}
}

func (r *DownloadCodeRepository) Create(code *models.DownloadCode) error {
	return r.db.Create(code).Error
}

// GetActiveByUserID returns the user's unused, unexpired codes.
func (r *DownloadCodeRepository) GetActiveByUserID(userID uint, now time.Time) ([]models.DownloadCode, error) {
	var codes []models.DownloadCode
	err := r.db.Preload("Photo").Preload("Album").
		Where("user_id = ? AND is_used = ? AND expires_at > ?", userID, false, now).
		Order("created_at DESC").
		Find(&codes).Error
	return codes, err
}

func (r *DownloadCodeRepository) GetByCodeForUser(code string, userID uint) (*models.DownloadCode, error) {
	var dc models.DownloadCode
	err := r.db.Where("code = ? AND user_id = ?", code, userID).First(&dc).Error
	if err != nil {
		return nil, err
	}
	return &dc, nil
}

// Redeem marks the code used and returns it with its target preloaded.
// The conditional UPDATE is what makes redemption single-use: only a row
// that is still unused and unexpired at this instant matches, and a
// concurrent second attempt sees zero rows affected.
func (r *DownloadCodeRepository) Redeem(code string, userID uint, now time.Time) (*models.DownloadCode, error) {
	var dc models.DownloadCode

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DownloadCode{}).
			Where("code = ? AND user_id = ? AND is_used = ? AND expires_at > ?", code, userID, false, now).
			Update("is_used", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCodeNotRedeemable
		}

		return tx.Preload("Photo").Preload("Album").
			Where("code = ?", code).
			First(&dc).Error
	})
	if err != nil {
		return nil, err
	}

	return &dc, nil
}
