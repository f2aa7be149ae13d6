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
	"github.com/jhoicas/fieldops-api/internal/application/analytics"
	"github.com/jhoicas/fieldops-api/internal/application/inventory"
	"github.com/jhoicas/fieldops-api/internal/application/report"
	"github.com/jhoicas/fieldops-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/fieldops-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fieldops-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/fieldops-api/internal/interfaces/http"
	"github.com/jhoicas/fieldops-api/pkg/config"
	"github.com/jhoicas/fieldops-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer store.Close()

	retry := inventory.RetryPolicy{MaxRetries: cfg.Ledger.MaxRetries, Backoff: cfg.Ledger.Backoff()}
	ledgerLog := log.Component("ledger")

	itemUC := usecase.NewItemUseCase(store.Items, store.Categories, store.Tx, retry, log.Component("catalog"))
	categoryUC := usecase.NewCategoryUseCase(store.Categories)
	registerMovementUC := inventory.NewRegisterMovementUseCase(store.Tx, retry, ledgerLog)
	historyUC := inventory.NewMovementHistoryUseCase(store.Movements)
	replenishmentUC := inventory.NewReplenishmentUseCase(store.Items)
	summaryUC := analytics.NewSummaryUseCase(store.Items)
	stockReportUC := report.NewStockReportUseCase(store.Items, infrapdf.NewMarotoStockReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "FieldOps Inventory API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name, "db": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db_driver": store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:           itemUC,
		CategoryUC:       categoryUC,
		RegisterMovement: registerMovementUC,
		MovementHistory:  historyUC,
		Replenishment:    replenishmentUC,
		SummaryUC:        summaryUC,
		StockReport:      stockReportUC,
		JWTSecret:        cfg.JWT.Secret,
		JWTIssuer:        cfg.JWT.Issuer,
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
