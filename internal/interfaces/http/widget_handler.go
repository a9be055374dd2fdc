package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
)

// WidgetHandler maneja las peticiones HTTP para la apariencia del widget y el
// script embebible (protegido + suscripción, salvo el asset estático).
type WidgetHandler struct {
	uc         *usecase.WidgetUseCase
	scriptPath string
}

// NewWidgetHandler construye el handler. scriptPath apunta al asset widget.js en disco.
func NewWidgetHandler(uc *usecase.WidgetUseCase, scriptPath string) *WidgetHandler {
	return &WidgetHandler{uc: uc, scriptPath: scriptPath}
}

// GetConfig godoc
// @Summary      Get my widget appearance configuration
// @Tags         widget
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WidgetConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/chat-config/widget-config [get]
func (h *WidgetHandler) GetConfig(c *fiber.Ctx) error {
	out, err := h.uc.GetConfig(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Widget configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateConfig godoc
// @Summary      Create my widget appearance configuration
// @Tags         widget
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WidgetConfigRequest  true  "Widget appearance"
// @Success      201   {object}  dto.WidgetConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/chat-config/widget-config [post]
func (h *WidgetHandler) CreateConfig(c *fiber.Ctx) error {
	var in dto.WidgetConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.CreateConfig(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "Widget configuration already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateConfig godoc
// @Summary      Update my widget appearance configuration
// @Tags         widget
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WidgetConfigRequest  true  "Widget appearance"
// @Success      200   {object}  dto.WidgetConfigResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/chat-config/widget-config [put]
func (h *WidgetHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.WidgetConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateConfig(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Widget configuration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetEmbed godoc
// @Summary      Get the embeddable widget script for my shop
// @Tags         widget
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "Response format: json or html"  default(json)
// @Success      200  {object}  dto.WidgetEmbedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/widget/embed [get]
func (h *WidgetHandler) GetEmbed(c *fiber.Ctx) error {
	script, err := h.uc.GenerateEmbed(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if c.Query("format", "json") == "html" {
		c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
		return c.SendString(script)
	}
	return c.JSON(dto.WidgetEmbedResponse{EmbedScript: script})
}

// ServeScript godoc
// @Summary      Serve the widget JavaScript asset
// @Tags         widget
// @Produce      application/javascript
// @Success      200  {string}  string  "widget.js"
// @Router       /api/v1/widget/widget.js [get]
func (h *WidgetHandler) ServeScript(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.SendFile(h.scriptPath)
}
