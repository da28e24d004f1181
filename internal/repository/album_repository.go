package repository

import (
	"github.com/tamsou/portfolio-backend/internal/models"
	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(album *models.Album) (*models.Album, error) {
	result := r.db.Create(album)
	if result.Error != nil {
		return nil, result.Error
	}
	return album, nil
}

// GetAllWithPhotos fetches every album with its photos in one request,
// the shape the gallery renders from.
func (r *AlbumRepository) GetAllWithPhotos() ([]models.Album, error) {
	var albums []models.Album
	err := r.db.Preload("Photos").Order("created_at").Find(&albums).Error
	return albums, err
}

func (r *AlbumRepository) GetByID(id uint) (*models.Album, error) {
	var album models.Album
	err := r.db.Preload("Photos").First(&album, id).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Album{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AlbumRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Album{}).Count(&count).Error
	return count, err
}
