package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/breadcraft/backoffice/internal/application/inventory"
	"github.com/breadcraft/backoffice/internal/application/purchases"
	"github.com/breadcraft/backoffice/internal/application/sales"
	"github.com/breadcraft/backoffice/internal/application/usecase"
	"github.com/breadcraft/backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/breadcraft/backoffice/internal/interfaces/http"
	"github.com/breadcraft/backoffice/pkg/config"
	"github.com/breadcraft/backoffice/pkg/logger"
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

	materialRepo := postgres.NewRawMaterialRepository(pool)
	batchRepo := postgres.NewProductionBatchRepository(pool)
	alertRepo := postgres.NewInventoryAlertRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	returnRepo := postgres.NewSaleReturnRepository(pool)
	creditRepo := postgres.NewCreditRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	historyRepo := postgres.NewClientHistoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)

	inventoryTx := postgres.NewInventoryTxRunner(pool)
	salesTx := postgres.NewSalesTxRunner(pool)
	purchasesTx := postgres.NewPurchasesTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(inventoryTx, materialRepo, batchRepo, alertRepo)
	reconcilerUC := sales.NewReconcilerUseCase(salesTx, saleRepo, returnRepo, creditRepo, clientRepo)
	procurementUC := purchases.NewProcurementUseCase(purchasesTx, purchaseRepo, supplierRepo, materialRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, historyRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:      ledgerUC,
		ReconcilerUC:  reconcilerUC,
		ProcurementUC: procurementUC,
		ClientUC:      clientUC,
		ProductUC:     productUC,
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
