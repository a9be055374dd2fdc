package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

var _ repository.FAQRepository = (*FAQRepo)(nil)

// FAQRepo implementación del puerto FAQRepository sobre PostgreSQL.
type FAQRepo struct {
	q Querier
}

func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: q}
}

func (r *FAQRepo) Create(faq *entity.FAQ) error {
	query := `
		INSERT INTO faqs (id, shop_id, question, answer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		faq.ID, faq.ShopID, faq.Question, faq.Answer, faq.CreatedAt, faq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert faq: %w", err)
	}
	return nil
}

// GetByShopAndID obtiene una FAQ verificando que pertenezca a la tienda.
func (r *FAQRepo) GetByShopAndID(shopID, id string) (*entity.FAQ, error) {
	query := `
		SELECT id, shop_id, question, answer, created_at, updated_at
		FROM faqs WHERE shop_id = $1 AND id = $2`
	var f entity.FAQ
	err := r.q.QueryRow(context.Background(), query, shopID, id).Scan(
		&f.ID, &f.ShopID, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get faq: %w", err)
	}
	return &f, nil
}

func (r *FAQRepo) ListByShop(shopID string) ([]*entity.FAQ, error) {
	query := `
		SELECT id, shop_id, question, answer, created_at, updated_at
		FROM faqs WHERE shop_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	faqs := make([]*entity.FAQ, 0)
	for rows.Next() {
		var f entity.FAQ
		if err := rows.Scan(&f.ID, &f.ShopID, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, &f)
	}
	return faqs, rows.Err()
}

func (r *FAQRepo) Update(faq *entity.FAQ) error {
	query := `
		UPDATE faqs SET question = $3, answer = $4, updated_at = $5
		WHERE shop_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		faq.ShopID, faq.ID, faq.Question, faq.Answer, faq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	return nil
}

func (r *FAQRepo) Delete(shopID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM faqs WHERE shop_id = $1 AND id = $2`, shopID, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}

func (r *FAQRepo) DeleteByShop(shopID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM faqs WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("delete faqs by shop: %w", err)
	}
	return nil
}
