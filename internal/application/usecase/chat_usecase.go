package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/ports"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/prompt"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
	"github.com/detailchatbotai/chatbot-api/internal/observability"
)

// llmTimeout tope explícito para la llamada al proveedor; el transporte del
// cliente no trae ninguno propio configurado desde aquí.
const llmTimeout = 30 * time.Second

// ChatUseCase puente de chat-completion: arma el contexto desde el estado actual
// de la tienda y reenvía el historial al proveedor LLM. Todas las lecturas de DB
// terminan antes de invocar al proveedor; la llamada de red no retiene conexiones
// ni transacciones.
type ChatUseCase struct {
	shopRepo       repository.ShopRepository
	chatConfigRepo repository.ChatConfigRepository
	serviceRepo    repository.ServiceRepository
	faqRepo        repository.FAQRepository
	llm            ports.LLMService
}

// NewChatUseCase construye el caso de uso.
func NewChatUseCase(
	shopRepo repository.ShopRepository,
	chatConfigRepo repository.ChatConfigRepository,
	serviceRepo repository.ServiceRepository,
	faqRepo repository.FAQRepository,
	llm ports.LLMService,
) *ChatUseCase {
	return &ChatUseCase{
		shopRepo:       shopRepo,
		chatConfigRepo: chatConfigRepo,
		serviceRepo:    serviceRepo,
		faqRepo:        faqRepo,
		llm:            llm,
	}
}

// BuildContext recalcula el system prompt completo de la tienda. Sin caché:
// cada request de chat ve el estado actual de servicios y FAQs.
func (uc *ChatUseCase) BuildContext(shopID string) (string, error) {
	config, err := uc.chatConfigRepo.GetByShop(shopID)
	if err != nil {
		return "", err
	}
	if config == nil {
		return "", nil
	}
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return "", err
	}
	if shop == nil {
		return "", nil
	}
	services, err := uc.serviceRepo.ListByShop(shopID)
	if err != nil {
		return "", err
	}
	faqs, err := uc.faqRepo.ListByShop(shopID)
	if err != nil {
		return "", err
	}
	return prompt.Build(shop, config, services, faqs), nil
}

// GenerateReplyForOwner resuelve la tienda del owner autenticado y genera la respuesta.
func (uc *ChatUseCase) GenerateReplyForOwner(ctx context.Context, ownerID string, in dto.ChatRequest) (*dto.ChatResponse, error) {
	shop, err := uc.shopRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generateReply(ctx, shop, in)
}

// GenerateReplyForShop genera la respuesta para el chat público del widget
// (anónimo, la tienda viene en la URL).
func (uc *ChatUseCase) GenerateReplyForShop(ctx context.Context, shopID string, in dto.ChatRequest) (*dto.ChatResponse, error) {
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generateReply(ctx, shop, in)
}

func (uc *ChatUseCase) generateReply(ctx context.Context, shop *entity.Shop, in dto.ChatRequest) (*dto.ChatResponse, error) {
	observability.ChatRequestsTotal.Inc()

	systemContext, err := uc.BuildContext(shop.ID)
	if err != nil {
		return nil, err
	}
	if systemContext == "" {
		return nil, fmt.Errorf("%w: no chat configuration found for shop", domain.ErrUpstream)
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	start := time.Now()
	reply, err := uc.llm.GenerateChatResponse(ctx, systemContext, in.Messages)
	observability.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.LLMErrorsTotal.Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
