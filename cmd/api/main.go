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
	"github.com/jhoicas/snacksvan-api/internal/application/auth"
	"github.com/jhoicas/snacksvan-api/internal/application/order"
	"github.com/jhoicas/snacksvan-api/internal/application/vendor"
	"github.com/jhoicas/snacksvan-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/snacksvan-api/internal/interfaces/http"
	"github.com/jhoicas/snacksvan-api/pkg/config"
	"github.com/jhoicas/snacksvan-api/pkg/logger"
	"github.com/jhoicas/snacksvan-api/pkg/token"
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

	issuer, err := token.NewIssuer(cfg.Token.Secret, cfg.Token.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar emisor de tokens")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := auth.DefaultPolicy()
	authUC := auth.NewAuthUseCase(customerRepo, issuer, policy, cfg.Token.BcryptCost)
	vendorUC := vendor.NewVendorUseCase(vendorRepo, issuer, policy, cfg.Token.BcryptCost)
	orderUC := order.NewOrderUseCase(orderRepo, vendorRepo, txRunner)

	sessions := httpRouter.NewSessions(cfg.Session.ExpirationMinutes)

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
		Title:    "SnacksVan API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		VendorUC:     vendorUC,
		OrderUC:      orderUC,
		CustomerRepo: customerRepo,
		VendorRepo:   vendorRepo,
		Sessions:     sessions,
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
