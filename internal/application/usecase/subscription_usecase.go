package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// SubscriptionUseCase ciclo de vida de la suscripción: solo existe activación del
// plan free y cancelación. No hay tiers de pago ni upgrades.
type SubscriptionUseCase struct {
	repo repository.SubscriptionRepository
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(repo repository.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo}
}

// GetByOwner devuelve la suscripción del owner. domain.ErrNotFound si nunca activó una.
func (uc *SubscriptionUseCase) GetByOwner(ownerID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(sub), nil
}

// ActivateFree crea la suscripción free del owner. domain.ErrConflict si ya tiene
// una (activa o cancelada: el registro se conserva); la carrera entre dos creates
// la cierra el índice único de owner_id.
func (uc *SubscriptionUseCase) ActivateFree(ownerID string) (*dto.SubscriptionResponse, error) {
	existing, _ := uc.repo.GetByOwner(ownerID)
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	sub := &entity.Subscription{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		PlanName:  entity.PlanFree,
		IsActive:  true,
		StartedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sub); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toSubscriptionResponse(sub), nil
}

// Cancel desactiva la suscripción y estampa canceled_at. domain.ErrNotFound si no
// existe. Re-cancelar vuelve a responder OK: is_active sigue en false.
func (uc *SubscriptionUseCase) Cancel(ownerID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sub.IsActive = false
	sub.CanceledAt = &now
	sub.UpdatedAt = now
	if err := uc.repo.Update(sub); err != nil {
		return nil, err
	}
	return toSubscriptionResponse(sub), nil
}

// HasActiveSubscription verifica el acceso a las funciones gateadas (chat-config,
// widget). Lo consume el middleware RequireSubscription vía interfaz mínima.
func (uc *SubscriptionUseCase) HasActiveSubscription(ctx context.Context, ownerID string) (bool, error) {
	sub, err := uc.repo.GetByOwner(ownerID)
	if err != nil {
		return false, err
	}
	return sub != nil && sub.IsActive, nil
}

func toSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubscriptionResponse{
		PlanName:   s.PlanName,
		IsActive:   s.IsActive,
		StartedAt:  s.StartedAt,
		CanceledAt: s.CanceledAt,
	}
}
