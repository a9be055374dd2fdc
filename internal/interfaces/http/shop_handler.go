package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
)

// ShopHandler maneja las peticiones HTTP para Shop (protegido).
type ShopHandler struct {
	uc *usecase.ShopUseCase
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// Create godoc
// @Summary      Create shop profile
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShopRequest  true  "Shop profile"
// @Success      201   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/shops [post]
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "business_name is required"})
	}
	out, err := h.uc.Create(userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "User already has a shop"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMine godoc
// @Summary      Get my shop profile
// @Tags         shops
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShopResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shops/me [get]
func (h *ShopHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateMine godoc
// @Summary      Update my shop profile
// @Tags         shops
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShopRequest  true  "Shop profile"
// @Success      200   {object}  dto.ShopResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/shops/me [put]
func (h *ShopHandler) UpdateMine(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "business_name is required"})
	}
	out, err := h.uc.UpdateMine(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteMine godoc
// @Summary      Delete my shop profile
// @Tags         shops
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shops/me [delete]
func (h *ShopHandler) DeleteMine(c *fiber.Ctx) error {
	if err := h.uc.DeleteMine(GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DetailResponse{Detail: "Shop deleted successfully"})
}
