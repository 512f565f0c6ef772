package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/Bhooomika2605/Cashflow/internal/adapter/http"
	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/handler"
	postgresRepo "github.com/Bhooomika2605/Cashflow/internal/adapter/repository/postgres"
	redisRepo "github.com/Bhooomika2605/Cashflow/internal/adapter/repository/redis"
	"github.com/Bhooomika2605/Cashflow/internal/extractor"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/config"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/logger"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/metrics"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/postgres"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/redis"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	connectCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	inventoryRepo := postgresRepo.NewInventoryRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	ext := extractor.New(extractor.Config{
		Catalog:          cfg.ItemCatalog,
		PurchaseKeywords: cfg.PurchaseKeywords,
	})
	forecastUC := usecase.NewForecastUseCase(transactionRepo, cfg.ForecastWindowDays)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	fraudUC := usecase.NewFraudUseCase(transactionRepo, cfg.FraudMinSamples)
	transactionUC := usecase.NewTransactionUseCase(
		txManager,
		transactionRepo,
		inventoryRepo,
		idGen,
		retrier,
		ext,
		forecastUC,
		inventoryUC,
		fraudUC,
		usecase.TransactionConfig{
			DefaultReorderLevel: cfg.DefaultReorderLevel,
			ClampZeroStock:      cfg.InventoryClampZero,
		},
	)
	dashboardUC := usecase.NewDashboardUseCase(transactionRepo, inventoryRepo)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(transactionUC, cache, m)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, cache, cfg.DashboardCacheTTL, m)
	inventoryHandler := handler.NewInventoryHandler(inventoryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		DashboardHandler:   dashboardHandler,
		InventoryHandler:   inventoryHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
