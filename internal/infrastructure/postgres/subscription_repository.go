package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación del puerto SubscriptionRepository sobre PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persiste una nueva suscripción. owner_id es único: una suscripción por usuario.
func (r *SubscriptionRepo) Create(sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, owner_id, plan_name, is_active, started_at, canceled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.OwnerID, sub.PlanName, sub.IsActive,
		sub.StartedAt, sub.CanceledAt, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetByOwner obtiene la suscripción del usuario, nil si no existe.
func (r *SubscriptionRepo) GetByOwner(ownerID string) (*entity.Subscription, error) {
	query := `
		SELECT id, owner_id, plan_name, is_active, started_at, canceled_at, created_at, updated_at
		FROM subscriptions WHERE owner_id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(context.Background(), query, ownerID).Scan(
		&s.ID, &s.OwnerID, &s.PlanName, &s.IsActive,
		&s.StartedAt, &s.CanceledAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// Update persiste cambios de estado (cancelación, reactivación).
func (r *SubscriptionRepo) Update(sub *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET plan_name = $2, is_active = $3, started_at = $4, canceled_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.PlanName, sub.IsActive, sub.StartedAt, sub.CanceledAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

// DeleteByOwner elimina la suscripción del usuario (borrado de cuenta).
func (r *SubscriptionRepo) DeleteByOwner(ownerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subscriptions WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
