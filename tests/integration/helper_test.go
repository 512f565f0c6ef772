package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	redislib "github.com/redis/go-redis/v9"

	adaptershttp "github.com/Bhooomika2605/Cashflow/internal/adapter/http"
	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/handler"
	"github.com/Bhooomika2605/Cashflow/internal/adapter/repository/postgres"
	redisrepo "github.com/Bhooomika2605/Cashflow/internal/adapter/repository/redis"
	"github.com/Bhooomika2605/Cashflow/internal/extractor"
	infraredis "github.com/Bhooomika2605/Cashflow/internal/infrastructure/redis"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
	"github.com/Bhooomika2605/Cashflow/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database and a
// live Redis instance.
func newTestRouter(t *testing.T, testDB *testutil.TestDB) (http.Handler, *redislib.Client) {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	forecastUC := usecase.NewForecastUseCase(transactionRepo, 30)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	fraudUC := usecase.NewFraudUseCase(transactionRepo, 10)
	transactionUC := usecase.NewTransactionUseCase(
		txManager,
		transactionRepo,
		inventoryRepo,
		idGen,
		retrier,
		extractor.New(extractor.Config{}),
		forecastUC,
		inventoryUC,
		fraudUC,
		usecase.TransactionConfig{DefaultReorderLevel: 10},
	)
	dashboardUC := usecase.NewDashboardUseCase(transactionRepo, inventoryRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(transactionUC, cache, nil),
		DashboardHandler:   handler.NewDashboardHandler(dashboardUC, cache, 0, nil),
		InventoryHandler:   handler.NewInventoryHandler(inventoryUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
	})

	return router, redisClient
}
