package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// ServiceUseCase CRUD del catálogo de servicios, siempre scoped a la tienda del
// owner: toda operación resuelve primero la tienda y filtra por shop_id.
type ServiceUseCase struct {
	shopRepo repository.ShopRepository
	repo     repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(shopRepo repository.ShopRepository, repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{shopRepo: shopRepo, repo: repo}
}

// resolveShop localiza la tienda del owner o falla con domain.ErrNotFound.
func (uc *ServiceUseCase) resolveShop(ownerID string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrNotFound
	}
	return shop, nil
}

// List lista los servicios de la tienda del owner.
func (uc *ServiceUseCase) List(ownerID string) ([]dto.ServiceResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByShop(shop.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return items, nil
}

// GetByID obtiene un servicio de la tienda del owner. Un id de otra tienda
// devuelve domain.ErrNotFound, nunca la fila ajena.
func (uc *ServiceUseCase) GetByID(ownerID, id string) (*dto.ServiceResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	svc, err := uc.repo.GetByShopAndID(shop.ID, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(svc), nil
}

// Create crea un servicio en la tienda del owner.
func (uc *ServiceUseCase) Create(ownerID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	svc := &entity.Service{
		ID:              uuid.New().String(),
		ShopID:          shop.ID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Update reemplaza todos los campos editables del servicio (sin PATCH).
func (uc *ServiceUseCase) Update(ownerID, id string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return nil, err
	}
	svc, err := uc.repo.GetByShopAndID(shop.ID, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.Price = in.Price
	svc.DurationMinutes = in.DurationMinutes
	svc.UpdatedAt = time.Now()
	if err := uc.repo.Update(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Delete elimina un servicio de la tienda del owner.
func (uc *ServiceUseCase) Delete(ownerID, id string) error {
	shop, err := uc.resolveShop(ownerID)
	if err != nil {
		return err
	}
	svc, err := uc.repo.GetByShopAndID(shop.ID, id)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(shop.ID, svc.ID)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:              s.ID,
		ShopID:          s.ShopID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
