package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/service"
)

type AlbumHandler struct {
	albumService *service.AlbumService
}

func NewAlbumHandler(albumService *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// GetAlbums serves the gallery: every album with its photos nested, in
// one response.
func (h *AlbumHandler) GetAlbums(c *fiber.Ctx) error {
	albums, err := h.albumService.GetAlbums()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Impossible de charger les albums"))
	}

	return c.JSON(models.SuccessResponse(albums, ""))
}

func (h *AlbumHandler) GetAlbum(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	album, err := h.albumService.GetAlbum(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Album not found"))
	}

	return c.JSON(models.SuccessResponse(album, ""))
}
