package usecase_test

import (
	"context"
	"errors"

	"github.com/detailchatbotai/chatbot-api/internal/application/dto"
	"github.com/detailchatbotai/chatbot-api/internal/application/ports"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	"github.com/detailchatbotai/chatbot-api/internal/domain"
	"github.com/detailchatbotai/chatbot-api/internal/domain/entity"
	"github.com/detailchatbotai/chatbot-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria. Replican el contrato de los adaptadores de
// postgres: (nil, nil) cuando no existe, domain.ErrDuplicate en violación de
// unicidad.
// ──────────────────────────────────────────────────────────────────────────────

type fakeShopRepo struct {
	shops map[string]*entity.Shop // por ID
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: map[string]*entity.Shop{}}
}

func (r *fakeShopRepo) Create(shop *entity.Shop) error {
	for _, s := range r.shops {
		if s.OwnerID == shop.OwnerID {
			return domain.ErrDuplicate
		}
	}
	cp := *shop
	r.shops[shop.ID] = &cp
	return nil
}

func (r *fakeShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeShopRepo) GetByOwner(ownerID string) (*entity.Shop, error) {
	for _, s := range r.shops {
		if s.OwnerID == ownerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShopRepo) Update(shop *entity.Shop) error {
	cp := *shop
	r.shops[shop.ID] = &cp
	return nil
}

func (r *fakeShopRepo) Delete(id string) error {
	delete(r.shops, id)
	return nil
}

type fakeSubscriptionRepo struct {
	subs map[string]*entity.Subscription // por OwnerID
	err  error                           // fuerza fallo de infraestructura
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[string]*entity.Subscription{}}
}

func (r *fakeSubscriptionRepo) Create(sub *entity.Subscription) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.subs[sub.OwnerID]; ok {
		return domain.ErrDuplicate
	}
	cp := *sub
	r.subs[sub.OwnerID] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) GetByOwner(ownerID string) (*entity.Subscription, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.subs[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubscriptionRepo) Update(sub *entity.Subscription) error {
	if r.err != nil {
		return r.err
	}
	cp := *sub
	r.subs[sub.OwnerID] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) DeleteByOwner(ownerID string) error {
	delete(r.subs, ownerID)
	return nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service // por ID
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*entity.Service{}}
}

func (r *fakeServiceRepo) Create(svc *entity.Service) error {
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByShopAndID(shopID, id string) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok || s.ShopID != shopID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) ListByShop(shopID string) ([]*entity.Service, error) {
	out := make([]*entity.Service, 0)
	for _, s := range r.services {
		if s.ShopID == shopID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(svc *entity.Service) error {
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(shopID, id string) error {
	if s, ok := r.services[id]; ok && s.ShopID == shopID {
		delete(r.services, id)
	}
	return nil
}

func (r *fakeServiceRepo) DeleteByShop(shopID string) error {
	for id, s := range r.services {
		if s.ShopID == shopID {
			delete(r.services, id)
		}
	}
	return nil
}

type fakeFAQRepo struct {
	faqs map[string]*entity.FAQ // por ID
}

func newFakeFAQRepo() *fakeFAQRepo {
	return &fakeFAQRepo{faqs: map[string]*entity.FAQ{}}
}

func (r *fakeFAQRepo) Create(faq *entity.FAQ) error {
	cp := *faq
	r.faqs[faq.ID] = &cp
	return nil
}

func (r *fakeFAQRepo) GetByShopAndID(shopID, id string) (*entity.FAQ, error) {
	f, ok := r.faqs[id]
	if !ok || f.ShopID != shopID {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFAQRepo) ListByShop(shopID string) ([]*entity.FAQ, error) {
	out := make([]*entity.FAQ, 0)
	for _, f := range r.faqs {
		if f.ShopID == shopID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFAQRepo) Update(faq *entity.FAQ) error {
	cp := *faq
	r.faqs[faq.ID] = &cp
	return nil
}

func (r *fakeFAQRepo) Delete(shopID, id string) error {
	if f, ok := r.faqs[id]; ok && f.ShopID == shopID {
		delete(r.faqs, id)
	}
	return nil
}

func (r *fakeFAQRepo) DeleteByShop(shopID string) error {
	for id, f := range r.faqs {
		if f.ShopID == shopID {
			delete(r.faqs, id)
		}
	}
	return nil
}

type fakeChatConfigRepo struct {
	configs map[string]*entity.ChatConfig // por ShopID
}

func newFakeChatConfigRepo() *fakeChatConfigRepo {
	return &fakeChatConfigRepo{configs: map[string]*entity.ChatConfig{}}
}

func (r *fakeChatConfigRepo) Create(cfg *entity.ChatConfig) error {
	if _, ok := r.configs[cfg.ShopID]; ok {
		return domain.ErrDuplicate
	}
	cp := *cfg
	r.configs[cfg.ShopID] = &cp
	return nil
}

func (r *fakeChatConfigRepo) GetByShop(shopID string) (*entity.ChatConfig, error) {
	c, ok := r.configs[shopID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeChatConfigRepo) Update(cfg *entity.ChatConfig) error {
	cp := *cfg
	r.configs[cfg.ShopID] = &cp
	return nil
}

func (r *fakeChatConfigRepo) DeleteByShop(shopID string) error {
	delete(r.configs, shopID)
	return nil
}

type fakeWidgetRepo struct {
	configs map[string]*entity.ChatWidgetConfig // por ShopID
}

func newFakeWidgetRepo() *fakeWidgetRepo {
	return &fakeWidgetRepo{configs: map[string]*entity.ChatWidgetConfig{}}
}

func (r *fakeWidgetRepo) Create(cfg *entity.ChatWidgetConfig) error {
	if _, ok := r.configs[cfg.ShopID]; ok {
		return domain.ErrDuplicate
	}
	cp := *cfg
	r.configs[cfg.ShopID] = &cp
	return nil
}

func (r *fakeWidgetRepo) GetByShop(shopID string) (*entity.ChatWidgetConfig, error) {
	c, ok := r.configs[shopID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeWidgetRepo) Update(cfg *entity.ChatWidgetConfig) error {
	cp := *cfg
	r.configs[cfg.ShopID] = &cp
	return nil
}

func (r *fakeWidgetRepo) DeleteByShop(shopID string) error {
	delete(r.configs, shopID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de puertos externos
// ──────────────────────────────────────────────────────────────────────────────

// fakeLLM registra lo recibido y responde con una respuesta fija o un error.
type fakeLLM struct {
	reply string
	err   error

	gotSystemContext string
	gotHistory       []dto.ChatMessage
}

func (l *fakeLLM) GenerateChatResponse(_ context.Context, systemContext string, history []dto.ChatMessage) (string, error) {
	l.gotSystemContext = systemContext
	l.gotHistory = history
	if l.err != nil {
		return "", l.err
	}
	return l.reply, nil
}

// fakeIdentity registra el borrado y opcionalmente falla.
type fakeIdentity struct {
	deleteErr  error
	deletedIDs []string
}

func (f *fakeIdentity) VerifyToken(context.Context, string) (*ports.Identity, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeIdentity) DeleteUser(_ context.Context, userID string) error {
	f.deletedIDs = append(f.deletedIDs, userID)
	return f.deleteErr
}

// fakeTxRunner ejecuta el callback sin transacción real, sobre los fakes.
type fakeTxRunner struct {
	serviceRepo repository.ServiceRepository
	faqRepo     repository.FAQRepository
	chatRepo    repository.ChatConfigRepository
	widgetRepo  repository.WidgetConfigRepository
	shopRepo    repository.ShopRepository
	subRepo     repository.SubscriptionRepository
}

var _ usecase.AccountTxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	serviceRepo repository.ServiceRepository,
	faqRepo repository.FAQRepository,
	chatConfigRepo repository.ChatConfigRepository,
	widgetRepo repository.WidgetConfigRepository,
	shopRepo repository.ShopRepository,
	subRepo repository.SubscriptionRepository,
) error) error {
	return fn(t.serviceRepo, t.faqRepo, t.chatRepo, t.widgetRepo, t.shopRepo, t.subRepo)
}
