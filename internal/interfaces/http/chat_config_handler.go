package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
)

// ChatConfigHandler maneja las peticiones HTTP para la configuración del asistente (protegido + suscripción).
type ChatConfigHandler struct {
	uc *usecase.ChatConfigUseCase
}

// NewChatConfigHandler construye el handler.
func NewChatConfigHandler(uc *usecase.ChatConfigUseCase) *ChatConfigHandler {
	return &ChatConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Get my chat configuration
// @Tags         chat-config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChatConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/chat-config [get]
func (h *ChatConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Chat configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create my chat configuration
// @Tags         chat-config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChatConfigRequest  true  "Chat configuration"
// @Success      201   {object}  dto.ChatConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/chat-config [post]
func (h *ChatConfigHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChatConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "Chat configuration already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update my chat configuration
// @Tags         chat-config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateChatConfigRequest  true  "Fields to update"
// @Success      200   {object}  dto.ChatConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/chat-config [put]
func (h *ChatConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChatConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Chat configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
