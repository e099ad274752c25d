package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pos-service/internal/api/http"
	"github.com/spec-kit/pos-service/internal/api/http/handlers"
	"github.com/spec-kit/pos-service/internal/config"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/observability"
	"github.com/spec-kit/pos-service/internal/persistence"
	"github.com/spec-kit/pos-service/internal/repository"
	"github.com/spec-kit/pos-service/internal/service"
	"github.com/spec-kit/pos-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	customerRepo := repository.NewCustomerRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(logger, cfg.Notification)
	worker.StartNotificationWorker(dispatcher, notificationService, logger)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AccountRepo:  accountRepo,
		CustomerRepo: customerRepo,
		Dispatcher:   dispatcher,
	})
	catalogService := service.NewCatalogService(productRepo, categoryRepo, redis, cfg.Cache.ProductTTL(), logger)
	orderService := service.NewOrderService(orderRepo, productRepo, dispatcher)
	customerService := service.NewCustomerService(customerRepo, accountRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:       handlers.NewAuthHandler(authService),
		Customers:  handlers.NewCustomersHandler(customerService),
		Accounts:   handlers.NewAccountsHandler(customerService),
		Categories: handlers.NewCategoriesHandler(catalogService),
		Products:   handlers.NewProductsHandler(catalogService),
		Orders:     handlers.NewOrdersHandler(orderService),
		Tokens:     authService.TokenService(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
