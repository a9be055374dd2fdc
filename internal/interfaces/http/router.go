package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/detailchatbotai/chatbot-api/internal/application/ports"
	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ShopUC         *usecase.ShopUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	ServiceUC      *usecase.ServiceUseCase
	FAQUC          *usecase.FAQUseCase
	ChatConfigUC   *usecase.ChatConfigUseCase
	WidgetUC       *usecase.WidgetUseCase
	ChatUC         *usecase.ChatUseCase
	AccountUC      *usecase.AccountUseCase
	Identity       ports.IdentityService
	WidgetScript   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	chatHandler := NewChatHandler(deps.ChatUC)
	widgetHandler := NewWidgetHandler(deps.WidgetUC, deps.WidgetScript)

	// Endpoints públicos que consume el widget embebido en sitios de terceros.
	api.Post("/chat/:shop_id/public", chatHandler.PublicChat)
	api.Get("/widget/widget.js", widgetHandler.ServeScript)

	// Rutas protegidas (requieren Bearer token de Supabase)
	protected := api.Group("/", AuthMiddleware(deps.Identity))

	// Shops (protegido)
	shops := protected.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Post("/", shopHandler.Create)
	shops.Get("/me", shopHandler.GetMine)
	shops.Put("/me", shopHandler.UpdateMine)
	shops.Delete("/me", shopHandler.DeleteMine)

	// Subscriptions (protegido)
	subs := protected.Group("/subscriptions")
	subHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subs.Get("/me", subHandler.GetMine)
	subs.Post("/activate-free", subHandler.ActivateFree)
	subs.Post("/cancel", subHandler.Cancel)

	// Services (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// FAQs (protegido)
	faqs := protected.Group("/faqs")
	faqHandler := NewFAQHandler(deps.FAQUC)
	faqs.Get("/", faqHandler.List)
	faqs.Post("/", faqHandler.Create)
	faqs.Get("/:id", faqHandler.GetByID)
	faqs.Put("/:id", faqHandler.Update)
	faqs.Delete("/:id", faqHandler.Delete)

	// Chat config y widget (protegido + suscripción activa)
	gated := protected.Group("/", RequireSubscription(deps.SubscriptionUC))

	chatConfig := gated.Group("/chat-config")
	chatConfigHandler := NewChatConfigHandler(deps.ChatConfigUC)
	chatConfig.Get("/", chatConfigHandler.Get)
	chatConfig.Post("/", chatConfigHandler.Create)
	chatConfig.Put("/", chatConfigHandler.Update)
	chatConfig.Get("/widget-config", widgetHandler.GetConfig)
	chatConfig.Post("/widget-config", widgetHandler.CreateConfig)
	chatConfig.Put("/widget-config", widgetHandler.UpdateConfig)

	gated.Get("/widget/embed", widgetHandler.GetEmbed)

	// Chat del dueño (protegido, sin gate: probar el asistente no requiere suscripción)
	protected.Post("/chat", chatHandler.Chat)

	// Cuenta (protegido)
	userHandler := NewUserHandler(deps.AccountUC)
	protected.Delete("/users/me", userHandler.DeleteMe)
}
