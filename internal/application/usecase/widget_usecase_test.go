package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
)

const testBackendURL = "https://api.chatbot.example.com"

func widgetFixture(t *testing.T) (*usecase.WidgetUseCase, *fakeShopRepo, *fakeWidgetRepo) {
	t.Helper()
	shopRepo := newFakeShopRepo()
	widgetRepo := newFakeWidgetRepo()
	require.NoError(t, shopRepo.Create(&entity.Shop{
		ID:           "shop-1",
		OwnerID:      testOwnerID,
		BusinessName: "Acme Auto Spa",
	}))
	return usecase.NewWidgetUseCase(shopRepo, widgetRepo, testBackendURL), shopRepo, widgetRepo
}

func boolPtr(b bool) *bool { return &b }

// ──────────────────────────────────────────────────────────────────────────────
// Tests configuración del widget
// ──────────────────────────────────────────────────────────────────────────────

// Los campos vacíos de la request toman los defaults documentados.
func TestCreateConfig_RellenaDefaults(t *testing.T) {
	uc, _, _ := widgetFixture(t)

	out, err := uc.CreateConfig(testOwnerID, dto.WidgetConfigRequest{
		PrimaryColor: "#FF0000",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultWidgetPosition, out.Position)
	assert.Equal(t, entity.DefaultWidgetTheme, out.Theme)
	assert.Equal(t, "#FF0000", out.PrimaryColor)
	assert.Equal(t, entity.DefaultGreeting, out.Greeting)
	assert.Equal(t, entity.DefaultPlaceholder, out.Placeholder)
	assert.True(t, out.ShowBranding)
}

func TestCreateConfig_DuplicadaRetornaConflict(t *testing.T) {
	uc, _, _ := widgetFixture(t)

	_, err := uc.CreateConfig(testOwnerID, dto.WidgetConfigRequest{})
	require.NoError(t, err)

	_, err = uc.CreateConfig(testOwnerID, dto.WidgetConfigRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateConfig_SinTiendaRetornaNotFound(t *testing.T) {
	uc := usecase.NewWidgetUseCase(newFakeShopRepo(), newFakeWidgetRepo(), testBackendURL)

	_, err := uc.CreateConfig("owner-without-shop", dto.WidgetConfigRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// GetConfig no materializa defaults: sin fila previa responde NotFound.
func TestGetConfig_SinConfiguracionRetornaNotFound(t *testing.T) {
	uc, _, _ := widgetFixture(t)

	_, err := uc.GetConfig(testOwnerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update es reemplazo total: los campos omitidos vuelven a los defaults.
func TestUpdateConfig_ReemplazoTotal(t *testing.T) {
	uc, _, _ := widgetFixture(t)

	_, err := uc.CreateConfig(testOwnerID, dto.WidgetConfigRequest{
		Theme:        entity.ThemeDark,
		PrimaryColor: "#FF0000",
		ShowBranding: boolPtr(false),
	})
	require.NoError(t, err)

	out, err := uc.UpdateConfig(testOwnerID, dto.WidgetConfigRequest{
		Position: entity.PositionBottomLeft,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PositionBottomLeft, out.Position)
	assert.Equal(t, entity.DefaultWidgetTheme, out.Theme, "theme omitido vuelve al default")
	assert.Equal(t, entity.DefaultPrimaryColor, out.PrimaryColor, "color omitido vuelve al default")
	assert.True(t, out.ShowBranding, "show_branding omitido vuelve al default true")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerateEmbed
// ──────────────────────────────────────────────────────────────────────────────

// La primera generación del embed materializa y persiste la fila de defaults.
func TestGenerateEmbed_MaterializaDefaults(t *testing.T) {
	uc, _, widgetRepo := widgetFixture(t)

	script, err := uc.GenerateEmbed(testOwnerID)
	require.NoError(t, err)

	stored, err := widgetRepo.GetByShop("shop-1")
	require.NoError(t, err)
	require.NotNil(t, stored, "el embed debe persistir la configuración por defecto")
	assert.Equal(t, entity.DefaultWidgetPosition, stored.Position)

	assert.Contains(t, script, `shopId: "shop-1"`)
	assert.Contains(t, script, `position: "bottom-right"`)
	assert.Contains(t, script, `theme: "light"`)
	assert.Contains(t, script, `primaryColor: "#3B82F6"`)
	assert.Contains(t, script, "showBranding: true")
	assert.Contains(t, script, testBackendURL+"/api/v1/widget/widget.js")
	assert.Contains(t, script, "<!-- Chatbot.ai Widget -->")
	assert.Contains(t, script, "<!-- End Chatbot.ai Widget -->")
}

// Con configuración existente el embed la refleja tal cual.
func TestGenerateEmbed_UsaConfiguracionExistente(t *testing.T) {
	uc, _, _ := widgetFixture(t)

	_, err := uc.CreateConfig(testOwnerID, dto.WidgetConfigRequest{
		Position:     entity.PositionBottomLeft,
		Theme:        entity.ThemeDark,
		PrimaryColor: "#00FF00",
		Greeting:     "Welcome!",
		ShowBranding: boolPtr(false),
	})
	require.NoError(t, err)

	script, err := uc.GenerateEmbed(testOwnerID)
	require.NoError(t, err)

	assert.Contains(t, script, `position: "bottom-left"`)
	assert.Contains(t, script, `theme: "dark"`)
	assert.Contains(t, script, `primaryColor: "#00FF00"`)
	assert.Contains(t, script, `greeting: "Welcome!"`)
	assert.Contains(t, script, "showBranding: false")
}

func TestGenerateEmbed_SinTiendaRetornaNotFound(t *testing.T) {
	uc := usecase.NewWidgetUseCase(newFakeShopRepo(), newFakeWidgetRepo(), testBackendURL)

	_, err := uc.GenerateEmbed("owner-without-shop")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
