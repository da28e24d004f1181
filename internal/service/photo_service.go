package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/pkg/storage"
)

const maxPhotoSize = 10 * 1024 * 1024 // 10MB

type PhotoService struct {
	photoRepo *repository.PhotoRepository
	albumRepo *repository.AlbumRepository
	storage   storage.StorageService
}

func NewPhotoService(
	photoRepo *repository.PhotoRepository,
	albumRepo *repository.AlbumRepository,
	storage storage.StorageService,
) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		albumRepo: albumRepo,
		storage:   storage,
	}
}

// UploadPhoto stores the file in the bucket under a randomized name that
// keeps the original extension, then registers the photo on the album.
// Upload and insert are two independent calls; if the insert fails the
// uploaded object is deleted so the bucket does not accumulate orphans.
func (s *PhotoService) UploadPhoto(albumID uint, file *multipart.FileHeader) (*models.Photo, error) {
	exists, err := s.albumRepo.Exists(albumID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("album not found")
	}

	if !isValidImageType(file.Header.Get("Content-Type")) {
		return nil, errors.New("invalid file type")
	}

	if file.Size > maxPhotoSize {
		return nil, errors.New("file size too large")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := fmt.Sprintf("photos/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	if err := s.storage.Upload(key, src); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		AlbumID:  albumID,
		Title:    file.Filename,
		ImageURL: s.storage.PublicURL(key),
	}

	if err := s.photoRepo.Create(photo); err != nil {
		_ = s.storage.Delete(key)
		return nil, err
	}

	return photo, nil
}

func (s *PhotoService) GetAlbumPhotos(albumID uint) ([]models.Photo, error) {
	exists, err := s.albumRepo.Exists(albumID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("album not found")
	}
	return s.photoRepo.GetByAlbumID(albumID)
}

func isValidImageType(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
