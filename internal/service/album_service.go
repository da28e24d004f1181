package service

import (
	"strconv"

	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
)

type AlbumService struct {
	albumRepo *repository.AlbumRepository
}

func NewAlbumService(albumRepo *repository.AlbumRepository) *AlbumService {
	return &AlbumService{albumRepo: albumRepo}
}

// GetAlbums returns all albums with their photos. Zero albums is a valid
// result (the gallery renders an empty state), never an error.
func (s *AlbumService) GetAlbums() ([]models.Album, error) {
	albums, err := s.albumRepo.GetAllWithPhotos()
	if err != nil {
		return nil, err
	}
	if albums == nil {
		albums = []models.Album{}
	}
	return albums, nil
}

func (s *AlbumService) GetAlbum(id uint) (*models.Album, error) {
	return s.albumRepo.GetByID(id)
}

// CreateAlbum stores a new album. The price field arrives as the raw
// form value; anything that does not parse is stored as 0.
func (s *AlbumService) CreateAlbum(req models.CreateAlbumRequest) (*models.Album, error) {
	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil {
		price = 0
	}

	album := &models.Album{
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
	}

	return s.albumRepo.Create(album)
}
