package repository

import "github.com/detailchatbotai/chatbot-api/internal/domain/entity"

// SubscriptionRepository puerto de persistencia para Subscription (una por owner).
type SubscriptionRepository interface {
	Create(sub *entity.Subscription) error
	GetByOwner(ownerID string) (*entity.Subscription, error)
	Update(sub *entity.Subscription) error
	DeleteByOwner(ownerID string) error
}
