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

	appanalytics "github.com/magicshop/admin-api/internal/application/analytics"
	"github.com/magicshop/admin-api/internal/application/auth"
	"github.com/magicshop/admin-api/internal/application/inventory"
	"github.com/magicshop/admin-api/internal/application/usecase"
	"github.com/magicshop/admin-api/internal/application/warehouse"
	"github.com/magicshop/admin-api/internal/infrastructure/cache"
	infrapdf "github.com/magicshop/admin-api/internal/infrastructure/pdf"
	"github.com/magicshop/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/magicshop/admin-api/internal/interfaces/http"
	"github.com/magicshop/admin-api/pkg/config"
	"github.com/magicshop/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	// Redis es opcional: sin REDIS_URL la caché de categorías se salta.
	redisClient, err := cache.NewRedis(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	slotRepo := postgres.NewSlotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	publisherRepo := postgres.NewPublisherRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryNames := cache.NewCategoryCache(
		redisClient, categoryRepo, time.Duration(cfg.Redis.TTL)*time.Minute,
	)
	packingSlipGen := infrapdf.NewPackingSlipGenerator(cfg.App.Name)

	registerMovementUC := inventory.NewRecordMovementUseCase(txRunner, productRepo)
	ledgerUC := inventory.NewLedgerUseCase(movementRepo, productRepo)
	slotRegistryUC := warehouse.NewSlotRegistryUseCase(slotRepo, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, reviewRepo, categoryNames)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, categoryNames)
	publisherUC := usecase.NewPublisherUseCase(publisherRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, packingSlipGen)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, movementRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Magic Shop Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		PublisherUC:      publisherUC,
		OrderUC:          orderUC,
		ReviewUC:         reviewUC,
		RegisterMovement: registerMovementUC,
		Ledger:           ledgerUC,
		SlotRegistry:     slotRegistryUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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
