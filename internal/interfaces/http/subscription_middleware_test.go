package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/detailchatbotai/chatbot-api/internal/interfaces/http"
)

// fakeChecker implementa el contrato mínimo del middleware de suscripción.
type fakeChecker struct {
	active bool
	err    error
}

func (f fakeChecker) HasActiveSubscription(context.Context, string) (bool, error) {
	return f.active, f.err
}

// buildGatedApp: auth + gate de suscripción delante de un handler dummy.
func buildGatedApp(checker fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/gated",
		apphttp.AuthMiddleware(fakeIdentityService{}),
		apphttp.RequireSubscription(checker),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func doGatedRequest(t *testing.T, app *fiber.App, withAuth bool) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSubscription
// ──────────────────────────────────────────────────────────────────────────────

// Suscripción activa → pasa (HTTP 200).
func TestRequireSubscription_Activa_Pasa(t *testing.T) {
	app := buildGatedApp(fakeChecker{active: true})
	resp := doGatedRequest(t, app, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Sin suscripción activa → 403 SUBSCRIPTION_REQUIRED.
func TestRequireSubscription_Inactiva_Retorna403(t *testing.T) {
	app := buildGatedApp(fakeChecker{active: false})
	resp := doGatedRequest(t, app, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SUBSCRIPTION_REQUIRED")
}

// Fallo de infraestructura al consultar → 503, no se bloquea con 403.
func TestRequireSubscription_ErrorDeInfra_Retorna503(t *testing.T) {
	app := buildGatedApp(fakeChecker{err: errors.New("db down")})
	resp := doGatedRequest(t, app, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SUBSCRIPTION_CHECK_FAILED")
}

// Sin pasar por auth primero no hay user_id → el auth responde 401 antes del gate.
func TestRequireSubscription_SinAuth_Retorna401(t *testing.T) {
	app := buildGatedApp(fakeChecker{active: true})
	resp := doGatedRequest(t, app, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
