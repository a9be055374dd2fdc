package repository

import "github.com/detailchatbotai/chatbot-api/internal/domain/entity"

// ServiceRepository puerto de persistencia para Service.
// Las lecturas puntuales van siempre filtradas por shop_id (aislamiento de tenant):
// pedir un servicio de otra tienda devuelve (nil, nil), nunca la fila ajena.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByShopAndID(shopID, id string) (*entity.Service, error)
	ListByShop(shopID string) ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(shopID, id string) error
	DeleteByShop(shopID string) error
}
