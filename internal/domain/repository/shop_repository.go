package repository

import "github.com/detailchatbotai/chatbot-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop (DIP).
// La implementación vive en infrastructure. Convención: (nil, nil) cuando no existe.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	GetByOwner(ownerID string) (*entity.Shop, error)
	Update(shop *entity.Shop) error
	Delete(id string) error
}
