package repository

import "github.com/detailchatbotai/chatbot-api/internal/domain/entity"

// ChatConfigRepository puerto de persistencia para ChatConfig (singleton por tienda).
type ChatConfigRepository interface {
	Create(config *entity.ChatConfig) error
	GetByShop(shopID string) (*entity.ChatConfig, error)
	Update(config *entity.ChatConfig) error
	DeleteByShop(shopID string) error
}
