package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/stock-ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
	"github.com/jhoicas/stock-ledger-api/pkg/jwt"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
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

	jwtService, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	movementTypeRepo := postgres.NewMovementTypeRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reportGenerator := infrapdf.NewMarotoStockReportGenerator()

	authUC := auth.NewUseCase(userRepo, companyRepo, jwtService)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)
	movementTypeUC := usecase.NewMovementTypeUseCase(movementTypeRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo, productRepo, warehouseRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(movementRepo, companyRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		UnitUC:           unitUC,
		WarehouseUC:      warehouseUC,
		PartnerUC:        partnerUC,
		MovementTypeUC:   movementTypeUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		StockQuery:       stockQueryUC,
		JWTService:       jwtService,
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
