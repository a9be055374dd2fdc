package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func (r *ServiceRepo) Create(svc *entity.Service) error {
	query := `
		INSERT INTO services (id, shop_id, name, description, price, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		svc.ID, svc.ShopID, svc.Name, svc.Description,
		svc.Price, svc.DurationMinutes, svc.CreatedAt, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByShopAndID obtiene un servicio verificando que pertenezca a la tienda (aislamiento por tenant).
func (r *ServiceRepo) GetByShopAndID(shopID, id string) (*entity.Service, error) {
	query := `
		SELECT id, shop_id, name, description, price, duration_minutes, created_at, updated_at
		FROM services WHERE shop_id = $1 AND id = $2`
	var s entity.Service
	err := r.q.QueryRow(context.Background(), query, shopID, id).Scan(
		&s.ID, &s.ShopID, &s.Name, &s.Description,
		&s.Price, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByShop lista los servicios de la tienda en orden de creación.
func (r *ServiceRepo) ListByShop(shopID string) ([]*entity.Service, error) {
	query := `
		SELECT id, shop_id, name, description, price, duration_minutes, created_at, updated_at
		FROM services WHERE shop_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	services := make([]*entity.Service, 0)
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ID, &s.ShopID, &s.Name, &s.Description,
			&s.Price, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *ServiceRepo) Update(svc *entity.Service) error {
	query := `
		UPDATE services SET name = $3, description = $4, price = $5, duration_minutes = $6, updated_at = $7
		WHERE shop_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		svc.ShopID, svc.ID, svc.Name, svc.Description,
		svc.Price, svc.DurationMinutes, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *ServiceRepo) Delete(shopID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// DeleteByShop elimina todos los servicios de la tienda (borrado de cuenta).
func (r *ServiceRepo) DeleteByShop(shopID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("delete services by shop: %w", err)
	}
	return nil
}
