package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/prompt"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// ChatConfigUseCase configuración de chat de la tienda (singleton por tienda).
type ChatConfigUseCase struct {
	shopRepo repository.ShopRepository
	repo     repository.ChatConfigRepository
}

// NewChatConfigUseCase construye el caso de uso.
func NewChatConfigUseCase(shopRepo repository.ShopRepository, repo repository.ChatConfigRepository) *ChatConfigUseCase {
	return &ChatConfigUseCase{shopRepo: shopRepo, repo: repo}
}

func (uc *ChatConfigUseCase) resolveShop(ownerID string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return shop, nil
}

// Get devuelve la configuración de chat de la tienda del owner.
func (uc *ChatConfigUseCase) Get(ownerID string) (*dto.ChatConfigResponse, error) {
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
	return toChatConfigResponse(config), nil
}

// Create crea la configuración de chat. Sin system_prompt explícito se asigna
// prompt.DefaultSystemPrompt. domain.ErrConflict si ya existe una; la carrera
// concurrente la cierra el índice único de shop_id.
func (uc *ChatConfigUseCase) Create(ownerID string, in dto.CreateChatConfigRequest) (*dto.ChatConfigResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByShop(shop.ID)
	if existing != nil {
		return nil, domain.ErrConflict
	}
	systemPrompt := in.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = prompt.DefaultSystemPrompt
	}
	now := time.Now()
	config := &entity.ChatConfig{
		ID:           uuid.New().String(),
		ShopID:       shop.ID,
		SystemPrompt: systemPrompt,
		UserContext:  in.UserContext,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(config); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toChatConfigResponse(config), nil
}

// Update reemplaza el user_context (único campo editable tras la creación).
func (uc *ChatConfigUseCase) Update(ownerID string, in dto.UpdateChatConfigRequest) (*dto.ChatConfigResponse, error) {
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
	config.UserContext = in.UserContext
	config.UpdatedAt = time.Now()
	if err := uc.repo.Update(config); err != nil {
		return nil, err
	}
	return toChatConfigResponse(config), nil
}

func toChatConfigResponse(c *entity.ChatConfig) *dto.ChatConfigResponse {
	if c == nil {
		return nil
	}
	return &dto.ChatConfigResponse{
		ID:           c.ID,
		ShopID:       c.ShopID,
		SystemPrompt: c.SystemPrompt,
		UserContext:  c.UserContext,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
