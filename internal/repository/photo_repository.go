package repository

import (
	"github.com/tamsou/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) GetByAlbumID(albumID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("album_id = ?", albumID).Order("created_at DESC").Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) CountByAlbumID(albumID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Photo{}).Where("album_id = ?", albumID).Count(&count).Error
	return count, err
}
