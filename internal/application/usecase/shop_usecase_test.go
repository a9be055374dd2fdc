package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
)

func shopRequest() dto.CreateShopRequest {
	return dto.CreateShopRequest{
		BusinessName: "Acme Auto Spa",
		Website:      "https://acme.example.com",
		Email:        "hello@acme.example.com",
		PhoneNumber:  "+1 555 0100",
		Description:  "Premium detailing",
	}
}

func TestShopCreate_UnaPorUsuario(t *testing.T) {
	uc := usecase.NewShopUseCase(newFakeShopRepo())

	out, err := uc.Create(testOwnerID, shopRequest())
	require.NoError(t, err)
	assert.Equal(t, "Acme Auto Spa", out.BusinessName)
	assert.NotEmpty(t, out.ID)

	// Segunda tienda del mismo owner → Duplicate.
	_, err = uc.Create(testOwnerID, shopRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestShopGetMine_SinTienda(t *testing.T) {
	uc := usecase.NewShopUseCase(newFakeShopRepo())

	_, err := uc.GetMine(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update es reemplazo total del perfil.
func TestShopUpdateMine_ReemplazoTotal(t *testing.T) {
	uc := usecase.NewShopUseCase(newFakeShopRepo())

	_, err := uc.Create(testOwnerID, shopRequest())
	require.NoError(t, err)

	out, err := uc.UpdateMine(testOwnerID, dto.CreateShopRequest{
		BusinessName: "Acme Auto Spa 2.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Auto Spa 2.0", out.BusinessName)
	assert.Empty(t, out.Website, "los campos omitidos quedan vacíos")
}

func TestShopDeleteMine(t *testing.T) {
	uc := usecase.NewShopUseCase(newFakeShopRepo())

	_, err := uc.Create(testOwnerID, shopRequest())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteMine(testOwnerID))

	_, err = uc.GetMine(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.DeleteMine(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
