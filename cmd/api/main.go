package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/application/invoicing"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/Facturas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Facturas-api/internal/interfaces/http"
	"github.com/jhoicas/Facturas-api/pkg/config"
	"github.com/jhoicas/Facturas-api/pkg/logger"
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

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	listingCache := cache.NewListingCache()
	invoiceUC := invoicing.NewInvoiceUseCase(
		invoiceRepo, customerRepo, listingCache, log.WithComponent("invoicing"),
	)

	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	pdfUC := invoicing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)

	provider := identity.NewProvider(userRepo, log.WithComponent("identity"))
	authUC := appauth.NewAuthUseCase(provider, userRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		PDFUC:     pdfUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
