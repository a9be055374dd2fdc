package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
)

// FAQHandler maneja las peticiones HTTP para FAQs (protegido).
type FAQHandler struct {
	uc *usecase.FAQUseCase
}

// NewFAQHandler construye el handler.
func NewFAQHandler(uc *usecase.FAQUseCase) *FAQHandler {
	return &FAQHandler{uc: uc}
}

// List godoc
// @Summary      List my FAQs
// @Tags         faqs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.FAQResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/faqs [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a FAQ by ID
// @Tags         faqs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "FAQ ID"
// @Success      200  {object}  dto.FAQResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/faqs/{id} [get]
func (h *FAQHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "FAQ not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a FAQ
// @Tags         faqs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFAQRequest  true  "FAQ data"
// @Success      201   {object}  dto.FAQResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/faqs [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Question == "" || in.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question and answer are required"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a FAQ
// @Tags         faqs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "FAQ ID"
// @Param        body  body  dto.CreateFAQRequest  true  "FAQ data"
// @Success      200   {object}  dto.FAQResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/faqs/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.CreateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Question == "" || in.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question and answer are required"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "FAQ not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a FAQ
// @Tags         faqs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "FAQ ID"
// @Success      200  {object}  dto.DetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/faqs/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "FAQ not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DetailResponse{Detail: "FAQ deleted successfully"})
}
