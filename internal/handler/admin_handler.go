package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/service"
	"github.com/tamsou/portfolio-backend/pkg/utils"
)

type AdminHandler struct {
	authService  *service.AuthService
	albumService *service.AlbumService
	photoService *service.PhotoService
	validator    *utils.Validator
}

func NewAdminHandler(
	authService *service.AuthService,
	albumService *service.AlbumService,
	photoService *service.PhotoService,
	validator *utils.Validator,
) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		albumService: albumService,
		photoService: photoService,
		validator:    validator,
	}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	token, err := h.authService.AdminLogin(req)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"token": token,
	}, "Bienvenue dans l'espace administrateur"))
}

func (h *AdminHandler) CreateAlbum(c *fiber.Ctx) error {
	var req models.CreateAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	album, err := h.albumService.CreateAlbum(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Impossible de créer l'album"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(album, "Album créé avec succès"))
}

func (h *AdminHandler) UploadPhoto(c *fiber.Ctx) error {
	albumID, err := strconv.ParseUint(c.Params("albumId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid album ID"))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Aucun fichier sélectionné"))
	}

	photo, err := h.photoService.UploadPhoto(uint(albumID), file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(photo, "Photo ajoutée avec succès"))
}
