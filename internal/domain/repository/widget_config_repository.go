package repository

import "github.com/detailchatbotai/chatbot-api/internal/domain/entity"

// WidgetConfigRepository puerto de persistencia para ChatWidgetConfig (singleton por tienda).
type WidgetConfigRepository interface {
	Create(config *entity.ChatWidgetConfig) error
	GetByShop(shopID string) (*entity.ChatWidgetConfig, error)
	Update(config *entity.ChatWidgetConfig) error
	DeleteByShop(shopID string) error
}
