package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// embedTemplate snippet que el dueño pega en su sitio. Interpolación directa:
// los campos de texto del widget no deben traer comillas ni < > sin escapar.
const embedTemplate = `<!-- Chatbot.ai Widget -->
<script>
  window.ChatbotAiConfig = {
    shopId: "%s",
    position: "%s",
    theme: "%s",
    primaryColor: "%s",
    greeting: "%s",
    placeholder: "%s",
    showBranding: %t
  };
</script>
<script src="%s/api/v1/widget/widget.js" async></script>
<!-- End Chatbot.ai Widget -->`

// WidgetUseCase configuración del widget embebible y generación del snippet.
type WidgetUseCase struct {
	shopRepo   repository.ShopRepository
	repo       repository.WidgetConfigRepository
	backendURL string
}

// NewWidgetUseCase construye el caso de uso. backendURL se interpola en el snippet
// para apuntar al asset estático widget.js.
func NewWidgetUseCase(shopRepo repository.ShopRepository, repo repository.WidgetConfigRepository, backendURL string) *WidgetUseCase {
	return &WidgetUseCase{shopRepo: shopRepo, repo: repo, backendURL: backendURL}
}

func (uc *WidgetUseCase) resolveShop(ownerID string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return shop, nil
}

// GetConfig devuelve la configuración del widget. domain.ErrNotFound si nunca se
// creó (a diferencia del embed, la lectura directa no materializa defaults).
func (uc *WidgetUseCase) GetConfig(ownerID string) (*dto.WidgetConfigResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	config, err := uc.repo.GetByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNotFound
	}
	return toWidgetConfigResponse(config), nil
}

// CreateConfig crea la configuración del widget; los campos vacíos toman los
// defaults documentados. domain.ErrConflict si ya existe.
func (uc *WidgetUseCase) CreateConfig(ownerID string, in dto.WidgetConfigRequest) (*dto.WidgetConfigResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByShop(shop.ID)
	if existing != nil {
		return nil, domain.ErrConflict
	}
	config := entity.NewDefaultWidgetConfig(shop.ID)
	applyWidgetRequest(config, in)
	now := time.Now()
	config.ID = uuid.New().String()
	config.CreatedAt = now
	config.UpdatedAt = now
	if err := uc.repo.Create(config); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toWidgetConfigResponse(config), nil
}

// UpdateConfig reemplaza todos los campos del widget (sin PATCH). Los campos
// vacíos vuelven a los defaults, igual que en la creación.
func (uc *WidgetUseCase) UpdateConfig(ownerID string, in dto.WidgetConfigRequest) (*dto.WidgetConfigResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	config, err := uc.repo.GetByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNotFound
	}
	fresh := entity.NewDefaultWidgetConfig(shop.ID)
	applyWidgetRequest(fresh, in)
	config.Position = fresh.Position
	config.Theme = fresh.Theme
	config.PrimaryColor = fresh.PrimaryColor
	config.Greeting = fresh.Greeting
	config.Placeholder = fresh.Placeholder
	config.ShowBranding = fresh.ShowBranding
	config.UpdatedAt = time.Now()
	if err := uc.repo.Update(config); err != nil {
		return nil, err
	}
	return toWidgetConfigResponse(config), nil
}

// GenerateEmbed arma el snippet embebible de la tienda del owner. Si el widget no
// está configurado, materializa y persiste los defaults antes de renderizar: es la
// única lectura del sistema con efecto secundario documentado.
func (uc *WidgetUseCase) GenerateEmbed(ownerID string) (string, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return "", err
	}
	config, err := uc.getOrCreateConfig(shop.ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(embedTemplate,
		shop.ID, config.Position, config.Theme, config.PrimaryColor,
		config.Greeting, config.Placeholder, config.ShowBranding, uc.backendURL,
	), nil
}

func (uc *WidgetUseCase) getOrCreateConfig(shopID string) (*entity.ChatWidgetConfig, error) {
	config, err := uc.repo.GetByShop(shopID)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}
	config = entity.NewDefaultWidgetConfig(shopID)
	now := time.Now()
	config.ID = uuid.New().String()
	config.CreatedAt = now
	config.UpdatedAt = now
	if err := uc.repo.Create(config); err != nil {
		// Dos embeds concurrentes: el índice único deja una sola fila, releer.
		if err == domain.ErrDuplicate {
			return uc.repo.GetByShop(shopID)
		}
		return nil, err
	}
	return config, nil
}

func applyWidgetRequest(config *entity.ChatWidgetConfig, in dto.WidgetConfigRequest) {
	if in.Position != "" {
		config.Position = in.Position
	}
	if in.Theme != "" {
		config.Theme = in.Theme
	}
	if in.PrimaryColor != "" {
		config.PrimaryColor = in.PrimaryColor
	}
	if in.Greeting != "" {
		config.Greeting = in.Greeting
	}
	if in.Placeholder != "" {
		config.Placeholder = in.Placeholder
	}
	if in.ShowBranding != nil {
		config.ShowBranding = *in.ShowBranding
	}
}

func toWidgetConfigResponse(c *entity.ChatWidgetConfig) *dto.WidgetConfigResponse {
	if c == nil {
		return nil
	}
	return &dto.WidgetConfigResponse{
		ID:           c.ID,
		ShopID:       c.ShopID,
		Position:     c.Position,
		Theme:        c.Theme,
		PrimaryColor: c.PrimaryColor,
		Greeting:     c.Greeting,
		Placeholder:  c.Placeholder,
		ShowBranding: c.ShowBranding,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
