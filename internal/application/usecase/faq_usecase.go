package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// FAQUseCase CRUD de preguntas frecuentes, mismo scoping por tienda que Service.
type FAQUseCase struct {
	shopRepo repository.ShopRepository
	repo     repository.FAQRepository
}

// NewFAQUseCase construye el caso de uso.
func NewFAQUseCase(shopRepo repository.ShopRepository, repo repository.FAQRepository) *FAQUseCase {
	return &FAQUseCase{shopRepo: shopRepo, repo: repo}
}

func (uc *FAQUseCase) resolveShop(ownerID string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return shop, nil
}

// List lista las FAQs de la tienda del owner.
func (uc *FAQUseCase) List(ownerID string) ([]dto.FAQResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FAQResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFAQResponse(f))
	}
	return items, nil
}

// GetByID obtiene una FAQ de la tienda del owner; ids ajenos → domain.ErrNotFound.
func (uc *FAQUseCase) GetByID(ownerID, id string) (*dto.FAQResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	faq, err := uc.repo.GetByShopAndID(shop.ID, id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, domain.ErrNotFound
	}
	return toFAQResponse(faq), nil
}

// Create crea una FAQ en la tienda del owner.
func (uc *FAQUseCase) Create(ownerID string, in dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	faq := &entity.FAQ{
		ID:        uuid.New().String(),
		ShopID:    shop.ID,
		Question:  in.Question,
		Answer:    in.Answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(faq); err != nil {
		return nil, err
	}
	return toFAQResponse(faq), nil
}

// Update reemplaza pregunta y respuesta (sin PATCH).
func (uc *FAQUseCase) Update(ownerID, id string, in dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	faq, err := uc.repo.GetByShopAndID(shop.ID, id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, domain.ErrNotFound
	}
	faq.Question = in.Question
	faq.Answer = in.Answer
	faq.UpdatedAt = time.Now()
	if err := uc.repo.Update(faq); err != nil {
		return nil, err
	}
	return toFAQResponse(faq), nil
}

// Delete elimina una FAQ de la tienda del owner.
func (uc *FAQUseCase) Delete(ownerID, id string) error {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return err
	}
	faq, err := uc.repo.GetByShopAndID(shop.ID, id)
	if err != nil {
		return err
	}
	if faq == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(shop.ID, faq.ID)
}

func toFAQResponse(f *entity.FAQ) *dto.FAQResponse {
	if f == nil {
		return nil
	}
	return &dto.FAQResponse{
		ID:        f.ID,
		ShopID:    f.ShopID,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
