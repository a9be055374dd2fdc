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

var _ repository.WidgetConfigRepository = (*WidgetConfigRepo)(nil)

// WidgetConfigRepo implementación del puerto WidgetConfigRepository sobre PostgreSQL.
// shop_id es único: una configuración de widget por tienda.
type WidgetConfigRepo struct {
	q Querier
}

func NewWidgetConfigRepository(q Querier) *WidgetConfigRepo {
	return &WidgetConfigRepo{q: q}
}

func (r *WidgetConfigRepo) Create(cfg *entity.ChatWidgetConfig) error {
	query := `
		INSERT INTO widget_configs (id, shop_id, position, theme, primary_color, greeting, placeholder, show_branding, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.ShopID, cfg.Position, cfg.Theme, cfg.PrimaryColor,
		cfg.Greeting, cfg.Placeholder, cfg.ShowBranding, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert widget config: %w", err)
	}
	return nil
}

func (r *WidgetConfigRepo) GetByShop(shopID string) (*entity.ChatWidgetConfig, error) {
	query := `
		SELECT id, shop_id, position, theme, primary_color, greeting, placeholder, show_branding, created_at, updated_at
		FROM widget_configs WHERE shop_id = $1`
	var w entity.ChatWidgetConfig
	err := r.q.QueryRow(context.Background(), query, shopID).Scan(
		&w.ID, &w.ShopID, &w.Position, &w.Theme, &w.PrimaryColor,
		&w.Greeting, &w.Placeholder, &w.ShowBranding, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get widget config: %w", err)
	}
	return &w, nil
}

func (r *WidgetConfigRepo) Update(cfg *entity.ChatWidgetConfig) error {
	query := `
		UPDATE widget_configs SET position = $2, theme = $3, primary_color = $4, greeting = $5, placeholder = $6, show_branding = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.Position, cfg.Theme, cfg.PrimaryColor,
		cfg.Greeting, cfg.Placeholder, cfg.ShowBranding, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update widget config: %w", err)
	}
	return nil
}

func (r *WidgetConfigRepo) DeleteByShop(shopID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM widget_configs WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("delete widget config: %w", err)
	}
	return nil
}
