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

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL (usable con pool o tx).
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persiste una nueva tienda. El índice único de owner_id garantiza una por usuario.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, owner_id, business_name, website, email, phone_number, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.OwnerID, shop.BusinessName, shop.Website,
		shop.Email, shop.PhoneNumber, shop.Description,
		shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `
		SELECT id, owner_id, business_name, website, email, phone_number, description, created_at, updated_at
		FROM shops WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByOwner obtiene la tienda por identidad del dueño (resolución de ownership).
func (r *ShopRepo) GetByOwner(ownerID string) (*entity.Shop, error) {
	query := `
		SELECT id, owner_id, business_name, website, email, phone_number, description, created_at, updated_at
		FROM shops WHERE owner_id = $1`
	return r.scanOne(query, ownerID)
}

func (r *ShopRepo) scanOne(query string, arg any) (*entity.Shop, error) {
	var s entity.Shop
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.OwnerID, &s.BusinessName, &s.Website, &s.Email,
		&s.PhoneNumber, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// Update reemplaza los campos editables de la tienda.
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET business_name = $2, website = $3, email = $4, phone_number = $5, description = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.BusinessName, shop.Website, shop.Email,
		shop.PhoneNumber, shop.Description, shop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// Delete elimina la tienda. Services, FAQs y configs caen por ON DELETE CASCADE.
func (r *ShopRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	return nil
}
