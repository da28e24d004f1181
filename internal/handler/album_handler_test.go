package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/internal/service"
	"gorm.io/gorm"
)

func newGalleryTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupHandlerDB(t)
	h := NewAlbumHandler(service.NewAlbumService(repository.NewAlbumRepository(db)))

	app := fiber.New()
	app.Get("/api/albums", h.GetAlbums)
	app.Get("/api/albums/:id", h.GetAlbum)
	return app, db
}

func getAlbums(t *testing.T, app *fiber.App) []models.Album {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/albums", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Success bool           `json:"success"`
		Data    []models.Album `json:"data"`
	}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.True(t, parsed.Success)

	return parsed.Data
}

func TestGetAlbumsEmptyState(t *testing.T) {
	app, _ := newGalleryTestApp(t)

	albums := getAlbums(t, app)
	assert.NotNil(t, albums)
	assert.Len(t, albums, 0)
}

func TestGetAlbumsRendersOneSectionPerAlbum(t *testing.T) {
	app, db := newGalleryTestApp(t)

	require.NoError(t, db.Create(&models.Album{Title: "Tournoi"}).Error)
	require.NoError(t, db.Create(&models.Album{Title: "Marathon"}).Error)
	require.NoError(t, db.Create(&models.Album{Title: "Portraits"}).Error)
	require.NoError(t, db.Create(&models.Photo{AlbumID: 2, Title: "depart.jpg", ImageURL: "https://cdn.example.com/depart.jpg"}).Error)

	albums := getAlbums(t, app)
	require.Len(t, albums, 3)

	var withPhotos int
	for _, a := range albums {
		if len(a.Photos) > 0 {
			withPhotos++
		}
	}
	assert.Equal(t, 1, withPhotos)
}

func TestGetAlbumNotFound(t *testing.T) {
	app, _ := newGalleryTestApp(t)

	req := httptest.NewRequest("GET", "/api/albums/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
