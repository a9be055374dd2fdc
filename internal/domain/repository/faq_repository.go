package repository

import "github.com/detailchatbotai/chatbot-api/internal/domain/entity"

// FAQRepository puerto de persistencia para FAQ, scoping por shop_id igual que Service.
type FAQRepository interface {
	Create(faq *entity.FAQ) error
	GetByShopAndID(shopID, id string) (*entity.FAQ, error)
	ListByShop(shopID string) ([]*entity.FAQ, error)
	Update(faq *entity.FAQ) error
	Delete(shopID, id string) error
	DeleteByShop(shopID string) error
}
