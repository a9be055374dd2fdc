package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/detailchatbotai/chatbot-api/internal/application/usecase"
	infraai "github.com/detailchatbotai/chatbot-api/internal/infrastructure/ai"
	"github.com/detailchatbotai/chatbot-api/internal/infrastructure/identity"
	"github.com/detailchatbotai/chatbot-api/internal/infrastructure/postgres"
	httpRouter "github.com/detailchatbotai/chatbot-api/internal/interfaces/http"
	"github.com/detailchatbotai/chatbot-api/internal/observability"
	"github.com/detailchatbotai/chatbot-api/pkg/config"
	"github.com/detailchatbotai/chatbot-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	observability.Register()

	shopRepo := postgres.NewShopRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	faqRepo := postgres.NewFAQRepository(pool)
	chatConfigRepo := postgres.NewChatConfigRepository(pool)
	widgetRepo := postgres.NewWidgetConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	identitySvc := identity.NewSupabaseService(cfg.Supabase)
	llmSvc := infraai.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	shopUC := usecase.NewShopUseCase(shopRepo)
	subUC := usecase.NewSubscriptionUseCase(subRepo)
	serviceUC := usecase.NewServiceUseCase(shopRepo, serviceRepo)
	faqUC := usecase.NewFAQUseCase(shopRepo, faqRepo)
	chatConfigUC := usecase.NewChatConfigUseCase(shopRepo, chatConfigRepo)
	widgetUC := usecase.NewWidgetUseCase(shopRepo, widgetRepo, cfg.Widget.BackendURL)
	chatUC := usecase.NewChatUseCase(shopRepo, chatConfigRepo, serviceRepo, faqRepo, llmSvc)
	accountUC := usecase.NewAccountUseCase(txRunner, identitySvc, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chatbot.ai API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ShopUC:         shopUC,
		SubscriptionUC: subUC,
		ServiceUC:      serviceUC,
		FAQUC:          faqUC,
		ChatConfigUC:   chatConfigUC,
		WidgetUC:       widgetUC,
		ChatUC:         chatUC,
		AccountUC:      accountUC,
		Identity:       identitySvc,
		WidgetScript:   "./static/widget/v1/widget.js",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
