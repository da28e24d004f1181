package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/service"
	"github.com/tamsou/portfolio-backend/pkg/qrcode"
	"github.com/tamsou/portfolio-backend/pkg/utils"
)

type ProfileHandler struct {
	downloadService *service.DownloadService
	qrService       *qrcode.QRService
	validator       *utils.Validator
}

func NewProfileHandler(
	downloadService *service.DownloadService,
	qrService *qrcode.QRService,
	validator *utils.Validator,
) *ProfileHandler {
	return &ProfileHandler{
		downloadService: downloadService,
		qrService:       qrService,
		validator:       validator,
	}
}

func (h *ProfileHandler) GetDownloadCodes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	codes, err := h.downloadService.GetActiveCodes(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Impossible de charger les codes de téléchargement"))
	}

	return c.JSON(models.SuccessResponse(codes, ""))
}

func (h *ProfileHandler) GenerateDownloadCode(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.GenerateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	code, err := h.downloadService.GenerateCode(userID, req.PurchaseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Impossible de générer le code"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(code, "Code généré"))
}

func (h *ProfileHandler) RedeemDownloadCode(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.RedeemCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	resp, err := h.downloadService.Redeem(userID, req.Code)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Téléchargement démarré"))
}

// GetDownloadCodeQR renders the user's code as a PNG without redeeming it.
func (h *ProfileHandler) GetDownloadCodeQR(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	code := c.Params("code")
	if _, err := h.downloadService.GetCodeForUser(code, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Code introuvable"))
	}

	png, err := h.qrService.GenerateCode(code, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
