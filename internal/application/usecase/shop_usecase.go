package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// ShopUseCase casos de uso de la tienda (singleton por owner).
type ShopUseCase struct {
	repo repository.ShopRepository
}

// NewShopUseCase construye el caso de uso con el puerto de persistencia.
func NewShopUseCase(repo repository.ShopRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo}
}

// Create crea la tienda del owner. Devuelve domain.ErrDuplicate si ya tiene una;
// la carrera entre dos creates concurrentes la resuelve el índice único de owner_id.
func (uc *ShopUseCase) Create(ownerID string, in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	existing, _ := uc.repo.GetByOwner(ownerID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	shop := &entity.Shop{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		BusinessName: in.BusinessName,
		Website:      in.Website,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// GetMine resuelve la tienda del owner. domain.ErrNotFound si no existe.
func (uc *ShopUseCase) GetMine(ownerID string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return toShopResponse(shop), nil
}

// UpdateMine reemplaza todos los campos editables de la tienda (sin PATCH).
func (uc *ShopUseCase) UpdateMine(ownerID string, in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	shop.BusinessName = in.BusinessName
	shop.Website = in.Website
	shop.Email = in.Email
	shop.PhoneNumber = in.PhoneNumber
	shop.Description = in.Description
	shop.UpdatedAt = time.Now()
	if err := uc.repo.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// DeleteMine borra la tienda del owner. Los hijos (services, faqs, configs) caen
// por el ON DELETE CASCADE de sus FKs.
func (uc *ShopUseCase) DeleteMine(ownerID string) error {
	shop, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(shop.ID)
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		BusinessName: s.BusinessName,
		Website:      s.Website,
		Email:        s.Email,
		PhoneNumber:  s.PhoneNumber,
		Description:  s.Description,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
