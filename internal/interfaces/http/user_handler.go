package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
)

// UserHandler maneja las peticiones de cuenta de usuario (protegido).
type UserHandler struct {
	uc *usecase.AccountUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.AccountUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// DeleteMe godoc
// @Summary      Delete my account and all associated data
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DetailResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/users/me [delete]
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	if err := h.uc.DeleteAccount(c.Context(), GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DetailResponse{Detail: "Account deleted successfully"})
}
