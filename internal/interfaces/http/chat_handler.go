package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
)

// ChatHandler maneja las peticiones de conversación: la prueba del dueño
// (protegida) y el endpoint público que consume el widget embebido.
type ChatHandler struct {
	uc *usecase.ChatUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Chat godoc
// @Summary      Chat with my shop assistant
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Conversation history"
// @Success      200   {object}  dto.ChatResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "messages must not be empty"})
	}
	out, err := h.uc.GenerateReplyForOwner(c.Context(), GetUserID(c), in)
	return h.respond(c, out, err)
}

// PublicChat godoc
// @Summary      Chat with a shop assistant (public widget endpoint)
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        shop_id  path  string  true  "Shop ID"
// @Param        body     body  dto.ChatRequest  true  "Conversation history"
// @Success      200  {object}  dto.ChatResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/chat/{shop_id}/public [post]
func (h *ChatHandler) PublicChat(c *fiber.Ctx) error {
	shopID := c.Params("shop_id")
	if shopID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "shop_id is required"})
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "messages must not be empty"})
	}
	out, err := h.uc.GenerateReplyForShop(c.Context(), shopID, in)
	return h.respond(c, out, err)
}

func (h *ChatHandler) respond(c *fiber.Ctx, out *dto.ChatResponse, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		if errors.Is(err, domain.ErrUpstream) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LLM_ERROR", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
