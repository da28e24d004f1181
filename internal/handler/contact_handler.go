package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/pkg/email"
	"github.com/tamsou/portfolio-backend/pkg/utils"
)

type ContactHandler struct {
	emailService *email.EmailService
	validator    *utils.Validator
}

func NewContactHandler(emailService *email.EmailService, validator *utils.Validator) *ContactHandler {
	return &ContactHandler{
		emailService: emailService,
		validator:    validator,
	}
}

func (h *ContactHandler) SendMessage(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.emailService.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Impossible d'envoyer le message"))
	}

	return c.JSON(models.SuccessResponse(nil, "Message envoyé"))
}
