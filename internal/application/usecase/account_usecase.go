package usecase

import (
	"context"

	"github.com/detailchatbotai/chatbot-api/internal/application/ports"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
	"github.com/detailchatbotai/chatbot-api/pkg/logger"
)

// AccountTxRunner ejecuta el borrado en cascada dentro de una transacción, con
// repos atados a la tx. La implementación vive en infrastructure/postgres.
type AccountTxRunner interface {
	Run(ctx context.Context, fn func(
		serviceRepo repository.ServiceRepository,
		faqRepo repository.FAQRepository,
		chatConfigRepo repository.ChatConfigRepository,
		widgetRepo repository.WidgetConfigRepository,
		shopRepo repository.ShopRepository,
		subRepo repository.SubscriptionRepository,
	) error) error
}

// AccountUseCase borrado completo de la cuenta: datos propios en una transacción
// y después, best-effort, el registro de identidad en el proveedor externo.
type AccountUseCase struct {
	tx       AccountTxRunner
	identity ports.IdentityService
	log      *logger.Logger
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(tx AccountTxRunner, identity ports.IdentityService, log *logger.Logger) *AccountUseCase {
	return &AccountUseCase{tx: tx, identity: identity, log: log}
}

// DeleteAccount elimina Services, FAQs, ChatConfig, ChatWidgetConfig, Shop y
// Subscription del owner en una sola transacción (hijos primero por las FKs).
// El borrado en el proveedor de identidad es fire-and-forget: un fallo ahí se
// registra y se traga, la operación sigue siendo exitosa.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, ownerID string) error {
	err := uc.tx.Run(ctx, func(
		serviceRepo repository.ServiceRepository,
		faqRepo repository.FAQRepository,
		chatConfigRepo repository.ChatConfigRepository,
		widgetRepo repository.WidgetConfigRepository,
		shopRepo repository.ShopRepository,
		subRepo repository.SubscriptionRepository,
	) error {
		shop, err := shopRepo.GetByOwner(ownerID)
		if err != nil {
			return err
		}
		if shop != nil {
			if err := serviceRepo.DeleteByShop(shop.ID); err != nil {
				return err
			}
			if err := faqRepo.DeleteByShop(shop.ID); err != nil {
				return err
			}
			if err := chatConfigRepo.DeleteByShop(shop.ID); err != nil {
				return err
			}
			if err := widgetRepo.DeleteByShop(shop.ID); err != nil {
				return err
			}
			if err := shopRepo.Delete(shop.ID); err != nil {
				return err
			}
		}
		return subRepo.DeleteByOwner(ownerID)
	})
	if err != nil {
		return err
	}

	if err := uc.identity.DeleteUser(ctx, ownerID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", ownerID).Msg("identity provider deletion failed, account data already removed")
	}
	return nil
}
