package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

var _ usecase.AccountTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta un callback con todos los repositorios atados a una misma
// transacción. Commit si el callback retorna nil, rollback en caso contrario.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) Run(ctx context.Context, fn func(
	serviceRepo repository.ServiceRepository,
	faqRepo repository.FAQRepository,
	chatConfigRepo repository.ChatConfigRepository,
	widgetRepo repository.WidgetConfigRepository,
	shopRepo repository.ShopRepository,
	subRepo repository.SubscriptionRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(
		NewServiceRepository(tx),
		NewFAQRepository(tx),
		NewChatConfigRepository(tx),
		NewWidgetConfigRepository(tx),
		NewShopRepository(tx),
		NewSubscriptionRepository(tx),
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
