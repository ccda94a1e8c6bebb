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

	"github.com/jhoicas/tamaleria-api/internal/application/reconcile"
	"github.com/jhoicas/tamaleria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tamaleria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tamaleria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tamaleria-api/internal/interfaces/http"
	"github.com/jhoicas/tamaleria-api/pkg/config"
	"github.com/jhoicas/tamaleria-api/pkg/logger"
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

	productionRepo := postgres.NewProductionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	registerRepo := postgres.NewCashRegisterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	strategy, err := reconcile.NewStrategy(cfg.Corte.Strategy, cfg.Corte.UnitCost)
	if err != nil {
		log.Fatal().Err(err).Msg("estrategia de conciliación")
	}
	reconciler := reconcile.NewService(strategy)
	log.Info().
		Str("strategy", strategy.Name()).
		Str("unit_cost", cfg.Corte.UnitCost.String()).
		Msg("conciliación del corte configurada")

	productionUC := usecase.NewProductionUseCase(txRunner, productionRepo, reconciler)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo)
	cortePDF := infrapdf.NewMarotoCorteGenerator()
	cashRegisterUC := usecase.NewCashRegisterUseCase(registerRepo, cortePDF)

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
		Title:    "Tamalería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductionUC:   productionUC,
		ProductUC:      productUC,
		SaleUC:         saleUC,
		CashRegisterUC: cashRegisterUC,
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
