package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
)

// subscriptionChecker es el contrato mínimo que necesita el middleware para
// verificar la suscripción. Lo implementa *usecase.SubscriptionUseCase; el uso
// de interfaz evita el import circular.
type subscriptionChecker interface {
	HasActiveSubscription(ctx context.Context, ownerID string) (bool, error)
}

// RequireSubscription devuelve un middleware Fiber que verifica que el usuario
// autenticado tenga una suscripción activa. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 403 Forbidden → sin suscripción activa.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay user_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireSubscription(checker subscriptionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user not found in token",
			})
		}

		active, err := checker.HasActiveSubscription(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_CHECK_FAILED",
				Message: "could not verify subscription, try again later",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_REQUIRED",
				Message: "Active subscription required to access this feature",
			})
		}

		return c.Next()
	}
}
