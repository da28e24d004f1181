package repository

import (
	"github.com/tamsou/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Create(purchase *models.PurchaseHistory) error {
	return r.db.Create(purchase).Error
}

func (r *PurchaseRepository) GetByID(id uint) (*models.PurchaseHistory, error) {
	var purchase models.PurchaseHistory
	err := r.db.First(&purchase, id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *PurchaseRepository) GetBySessionID(sessionID string) (*models.PurchaseHistory, error) {
	var purchase models.PurchaseHistory
	err := r.db.Where("stripe_session_id = ?", sessionID).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *PurchaseRepository) Update(purchase *models.PurchaseHistory) error {
	return r.db.Save(purchase).Error
}

func (r *PurchaseRepository) GetUserPurchaseHistory(userID uint) ([]models.PurchaseHistory, error) {
	var purchases []models.PurchaseHistory
	err := r.db.Preload("Photo").Preload("Album").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepository) CountCompletedBySessionID(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PurchaseHistory{}).
		Where("stripe_session_id = ? AND status = ?", sessionID, models.PurchaseStatusCompleted).
		Count(&count).Error
	return count, err
}
