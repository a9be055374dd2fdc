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

var _ repository.ChatConfigRepository = (*ChatConfigRepo)(nil)

// ChatConfigRepo implementación del puerto ChatConfigRepository sobre PostgreSQL.
// shop_id es único: una configuración de chat por tienda.
type ChatConfigRepo struct {
	q Querier
}

func NewChatConfigRepository(q Querier) *ChatConfigRepo {
	return &ChatConfigRepo{q: q}
}

func (r *ChatConfigRepo) Create(cfg *entity.ChatConfig) error {
	query := `
		INSERT INTO chat_configs (id, shop_id, system_prompt, user_context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.ShopID, cfg.SystemPrompt, cfg.UserContext, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chat config: %w", err)
	}
	return nil
}

func (r *ChatConfigRepo) GetByShop(shopID string) (*entity.ChatConfig, error) {
	query := `
		SELECT id, shop_id, system_prompt, user_context, created_at, updated_at
		FROM chat_configs WHERE shop_id = $1`
	var c entity.ChatConfig
	err := r.q.QueryRow(context.Background(), query, shopID).Scan(
		&c.ID, &c.ShopID, &c.SystemPrompt, &c.UserContext, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat config: %w", err)
	}
	return &c, nil
}

func (r *ChatConfigRepo) Update(cfg *entity.ChatConfig) error {
	query := `
		UPDATE chat_configs SET system_prompt = $2, user_context = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cfg.ID, cfg.SystemPrompt, cfg.UserContext, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chat config: %w", err)
	}
	return nil
}

func (r *ChatConfigRepo) DeleteByShop(shopID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM chat_configs WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("delete chat config: %w", err)
	}
	return nil
}
