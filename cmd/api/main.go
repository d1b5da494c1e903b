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

	_ "github.com/factuurdesk/facturatie-api/docs"
	"github.com/factuurdesk/facturatie-api/internal/application/auth"
	"github.com/factuurdesk/facturatie-api/internal/application/billing"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kvrepo"
	infrapdf "github.com/factuurdesk/facturatie-api/internal/infrastructure/pdf"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/ubl"
	httpRouter "github.com/factuurdesk/facturatie-api/internal/interfaces/http"
	"github.com/factuurdesk/facturatie-api/pkg/config"
	"github.com/factuurdesk/facturatie-api/pkg/logger"
	"github.com/factuurdesk/facturatie-api/pkg/metrics"
)

// @title        Facturatie API
// @version      1.0
// @description  Quotation and invoicing API for Dutch freelancers and small businesses.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("starting application")

	ctx := context.Background()
	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("open document store")
	}
	defer store.Close()

	clientRepo := kvrepo.NewClientRepository(store)
	quotationRepo := kvrepo.NewQuotationRepository(store)
	invoiceRepo := kvrepo.NewInvoiceRepository(store)
	profileRepo := kvrepo.NewProfileRepository(store)
	credentialRepo := kvrepo.NewCredentialRepository(store)

	authUC := auth.NewAuthUseCase(credentialRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := billing.NewClientUseCase(clientRepo)
	quotationUC := billing.NewQuotationUseCase(quotationRepo, invoiceRepo, invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, invoiceRepo)
	profileUC := billing.NewProfileUseCase(profileRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	ublBuilder := ubl.NewXMLBuilderService()
	exportUC := billing.NewExportUseCase(quotationRepo, invoiceRepo, profileRepo, pdfGenerator, ublBuilder)

	recorder := metrics.NewRecorder()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(recorder))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturatie API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		QuotationUC: quotationUC,
		InvoiceUC:   invoiceUC,
		ProfileUC:   profileUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// newStore opens the configured document store backend.
func newStore(ctx context.Context, cfg config.StorageConfig) (kv.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return kv.NewSQLiteStore(ctx, cfg.SQLitePath)
	case "memory":
		return kv.NewMemoryStore(), nil
	default:
		return kv.NewPostgresStore(ctx, cfg)
	}
}
