package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
)

const otherOwnerID = "00000000-0000-0000-0000-000000000002"

// serviceFixture monta dos tiendas de owners distintos para probar aislamiento.
func serviceFixture(t *testing.T) *usecase.ServiceUseCase {
	t.Helper()
	shopRepo := newFakeShopRepo()
	require.NoError(t, shopRepo.Create(&entity.Shop{
		ID: "shop-1", OwnerID: testOwnerID, BusinessName: "Acme Auto Spa",
	}))
	require.NoError(t, shopRepo.Create(&entity.Shop{
		ID: "shop-2", OwnerID: otherOwnerID, BusinessName: "Rival Detailing",
	}))
	return usecase.NewServiceUseCase(shopRepo, newFakeServiceRepo())
}

func washRequest() dto.CreateServiceRequest {
	return dto.CreateServiceRequest{
		Name:            "Exterior Wash",
		Description:     "hand wash and dry",
		Price:           decimal.RequireFromString("25.00"),
		DurationMinutes: 30,
	}
}

func TestServiceCreateAndGet(t *testing.T) {
	uc := serviceFixture(t)

	created, err := uc.Create(testOwnerID, washRequest())
	require.NoError(t, err)
	assert.Equal(t, "shop-1", created.ShopID)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("25.00")))

	got, err := uc.GetByID(testOwnerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

// Aislamiento por tenant: el servicio de una tienda no es visible ni editable
// desde otra, siempre NotFound.
func TestService_AislamientoEntreTiendas(t *testing.T) {
	uc := serviceFixture(t)

	created, err := uc.Create(testOwnerID, washRequest())
	require.NoError(t, err)

	_, err = uc.GetByID(otherOwnerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(otherOwnerID, created.ID, washRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(otherOwnerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El dueño real sigue viéndolo intacto.
	got, err := uc.GetByID(testOwnerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Exterior Wash", got.Name)
}

func TestServiceList_SoloDeLaTiendaPropia(t *testing.T) {
	uc := serviceFixture(t)

	_, err := uc.Create(testOwnerID, washRequest())
	require.NoError(t, err)
	_, err = uc.Create(otherOwnerID, dto.CreateServiceRequest{
		Name: "Rival Wash", Price: decimal.NewFromInt(10), DurationMinutes: 15,
	})
	require.NoError(t, err)

	mine, err := uc.List(testOwnerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Exterior Wash", mine[0].Name)
}

// Update reemplaza todos los campos, incluidos los que vienen en cero.
func TestServiceUpdate_ReemplazoTotal(t *testing.T) {
	uc := serviceFixture(t)

	created, err := uc.Create(testOwnerID, washRequest())
	require.NoError(t, err)

	out, err := uc.Update(testOwnerID, created.ID, dto.CreateServiceRequest{
		Name:  "Quick Rinse",
		Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Quick Rinse", out.Name)
	assert.Empty(t, out.Description, "description omitida queda vacía")
	assert.Zero(t, out.DurationMinutes)
}

func TestService_SinTiendaRetornaNotFound(t *testing.T) {
	uc := usecase.NewServiceUseCase(newFakeShopRepo(), newFakeServiceRepo())

	_, err := uc.List("owner-without-shop")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create("owner-without-shop", washRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
