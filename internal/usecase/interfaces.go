package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// TransactionRepository defines data access for the append-only transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error)
	// ListCashFlowWindow returns (amount, type) pairs for transactions in the
	// trailing window ending now.
	ListCashFlowWindow(ctx context.Context, since time.Time) ([]domain.CashFlowEntry, error)
	// ListSaleAmounts returns every recorded sale amount, oldest first.
	ListSaleAmounts(ctx context.Context) ([]decimal.Decimal, error)
	DailyStats(ctx context.Context, day time.Time) (*domain.DailyStats, error)
}

// InventoryRepository defines data access for the keyed inventory table.
type InventoryRepository interface {
	// GetForUpdate reads an item under a row lock, serializing concurrent
	// updates to the same item. Returns domain.ErrItemNotFound when absent.
	GetForUpdate(ctx context.Context, tx Transaction, itemName string) (*domain.InventoryItem, error)
	Upsert(ctx context.Context, tx Transaction, item *domain.InventoryItem) error
	UpdateQuantity(ctx context.Context, tx Transaction, itemName string, quantity int, updatedAt time.Time) error
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	ListBelowReorder(ctx context.Context) ([]*domain.InventoryItem, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
