package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
)

const testOwnerID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Tests ActivateFree
// ──────────────────────────────────────────────────────────────────────────────

func TestActivateFree_CreaSuscripcionActiva(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := usecase.NewSubscriptionUseCase(repo)

	out, err := uc.ActivateFree(testOwnerID)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.PlanFree, out.PlanName)
	assert.True(t, out.IsActive)
	assert.Nil(t, out.CanceledAt, "una suscripción recién activada no tiene canceled_at")
	assert.WithinDuration(t, time.Now(), out.StartedAt, time.Minute)
}

// Activar dos veces debe fallar con Conflict: el registro se conserva aunque
// esté cancelado.
func TestActivateFree_YaExiste_RetornaConflict(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := usecase.NewSubscriptionUseCase(repo)

	_, err := uc.ActivateFree(testOwnerID)
	require.NoError(t, err)

	_, err = uc.ActivateFree(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Cancelar y reactivar también es Conflict: la fila cancelada sigue existiendo.
func TestActivateFree_CanceladaSigueSiendoConflict(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := usecase.NewSubscriptionUseCase(repo)

	_, err := uc.ActivateFree(testOwnerID)
	require.NoError(t, err)
	_, err = uc.Cancel(testOwnerID)
	require.NoError(t, err)

	_, err = uc.ActivateFree(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_DesactivaYEstampaCanceledAt(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := usecase.NewSubscriptionUseCase(repo)

	_, err := uc.ActivateFree(testOwnerID)
	require.NoError(t, err)

	out, err := uc.Cancel(testOwnerID)
	require.NoError(t, err)

	assert.False(t, out.IsActive)
	require.NotNil(t, out.CanceledAt)
	assert.WithinDuration(t, time.Now(), *out.CanceledAt, time.Minute)
}

func TestCancel_SinSuscripcion_RetornaNotFound(t *testing.T) {
	uc := usecase.NewSubscriptionUseCase(newFakeSubscriptionRepo())

	_, err := uc.Cancel(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Re-cancelar es idempotente: responde OK y re-estampa canceled_at.
func TestCancel_Idempotente(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := usecase.NewSubscriptionUseCase(repo)

	_, err := uc.ActivateFree(testOwnerID)
	require.NoError(t, err)

	first, err := uc.Cancel(testOwnerID)
	require.NoError(t, err)
	second, err := uc.Cancel(testOwnerID)
	require.NoError(t, err)

	assert.False(t, second.IsActive)
	require.NotNil(t, first.CanceledAt)
	require.NotNil(t, second.CanceledAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests HasActiveSubscription (contrato del middleware de gating)
// ──────────────────────────────────────────────────────────────────────────────

func TestHasActiveSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	uc := usecase.NewSubscriptionUseCase(repo)
	ctx := context.Background()

	// Sin suscripción → false sin error
	active, err := uc.HasActiveSubscription(ctx, testOwnerID)
	require.NoError(t, err)
	assert.False(t, active)

	// Activa → true
	_, err = uc.ActivateFree(testOwnerID)
	require.NoError(t, err)
	active, err = uc.HasActiveSubscription(ctx, testOwnerID)
	require.NoError(t, err)
	assert.True(t, active)

	// Cancelada → false
	_, err = uc.Cancel(testOwnerID)
	require.NoError(t, err)
	active, err = uc.HasActiveSubscription(ctx, testOwnerID)
	require.NoError(t, err)
	assert.False(t, active)
}

// Fallo de infraestructura: el error se propaga para que el middleware responda 503.
func TestHasActiveSubscription_ErrorDeInfra(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.err = errors.New("db down")
	uc := usecase.NewSubscriptionUseCase(repo)

	_, err := uc.HasActiveSubscription(context.Background(), testOwnerID)
	assert.Error(t, err)
}
