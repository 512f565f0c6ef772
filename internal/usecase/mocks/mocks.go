package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc             func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	ListRecentFunc         func(ctx context.Context, limit int) ([]*domain.Transaction, error)
	ListCashFlowWindowFunc func(ctx context.Context, since time.Time) ([]domain.CashFlowEntry, error)
	ListSaleAmountsFunc    func(ctx context.Context) ([]decimal.Decimal, error)
	DailyStatsFunc         func(ctx context.Context, day time.Time) (*domain.DailyStats, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for i := len(m.transactions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.transactions[i])
	}
	return out, nil
}

func (m *MockTransactionRepository) ListCashFlowWindow(ctx context.Context, since time.Time) ([]domain.CashFlowEntry, error) {
	if m.ListCashFlowWindowFunc != nil {
		return m.ListCashFlowWindowFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []domain.CashFlowEntry
	for _, txn := range m.transactions {
		if !txn.Timestamp.Before(since) {
			entries = append(entries, domain.CashFlowEntry{Amount: txn.Amount, Type: txn.Type})
		}
	}
	return entries, nil
}

func (m *MockTransactionRepository) ListSaleAmounts(ctx context.Context) ([]decimal.Decimal, error) {
	if m.ListSaleAmountsFunc != nil {
		return m.ListSaleAmountsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var amounts []decimal.Decimal
	for _, txn := range m.transactions {
		if txn.Type == domain.TransactionTypeSale {
			amounts = append(amounts, txn.Amount)
		}
	}
	return amounts, nil
}

func (m *MockTransactionRepository) DailyStats(ctx context.Context, day time.Time) (*domain.DailyStats, error) {
	if m.DailyStatsFunc != nil {
		return m.DailyStatsFunc(ctx, day)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := &domain.DailyStats{TotalSales: decimal.Zero, TotalPurchases: decimal.Zero}
	for _, txn := range m.transactions {
		if txn.Timestamp.UTC().Truncate(24*time.Hour) != day.UTC().Truncate(24*time.Hour) {
			continue
		}
		stats.TransactionCount++
		switch txn.Type {
		case domain.TransactionTypeSale:
			stats.TotalSales = stats.TotalSales.Add(txn.Amount)
		case domain.TransactionTypePurchase:
			stats.TotalPurchases = stats.TotalPurchases.Add(txn.Amount)
		}
	}
	return stats, nil
}

// MockInventoryRepository is a mock implementation of InventoryRepository.
type MockInventoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.InventoryItem
	order []string

	GetForUpdateFunc     func(ctx context.Context, tx usecase.Transaction, itemName string) (*domain.InventoryItem, error)
	UpsertFunc           func(ctx context.Context, tx usecase.Transaction, item *domain.InventoryItem) error
	UpdateQuantityFunc   func(ctx context.Context, tx usecase.Transaction, itemName string, quantity int, updatedAt time.Time) error
	ListFunc             func(ctx context.Context) ([]*domain.InventoryItem, error)
	ListBelowReorderFunc func(ctx context.Context) ([]*domain.InventoryItem, error)
}

func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{
		items: make(map[string]*domain.InventoryItem),
	}
}

// Seed adds an item directly, bypassing any override funcs.
func (m *MockInventoryRepository) Seed(item *domain.InventoryItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ItemName]; !ok {
		m.order = append(m.order, item.ItemName)
	}
	m.items[item.ItemName] = item
}

// Get returns an item without locking semantics, for test assertions.
func (m *MockInventoryRepository) Get(itemName string) *domain.InventoryItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[itemName]
}

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, itemName string) (*domain.InventoryItem, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, itemName)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[itemName]; ok {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockInventoryRepository) Upsert(ctx context.Context, tx usecase.Transaction, item *domain.InventoryItem) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, tx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.items[item.ItemName]; ok {
		// An existing row keeps its configured reorder level.
		item.ReorderLevel = existing.ReorderLevel
	} else {
		m.order = append(m.order, item.ItemName)
	}
	m.items[item.ItemName] = item
	return nil
}

func (m *MockInventoryRepository) UpdateQuantity(ctx context.Context, tx usecase.Transaction, itemName string, quantity int, updatedAt time.Time) error {
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, tx, itemName, quantity, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[itemName]; ok {
		item.Quantity = quantity
		item.LastUpdated = updatedAt
	}
	return nil
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]*domain.InventoryItem, 0, len(m.order))
	for _, name := range m.order {
		items = append(items, m.items[name])
	}
	return items, nil
}

func (m *MockInventoryRepository) ListBelowReorder(ctx context.Context) ([]*domain.InventoryItem, error) {
	if m.ListBelowReorderFunc != nil {
		return m.ListBelowReorderFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.InventoryItem
	for _, name := range m.order {
		if m.items[name].NeedsReorder() {
			items = append(items, m.items[name])
		}
	}
	return items, nil
}

// MockTransaction is a no-op database transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu           sync.Mutex
	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator returns sequential test IDs.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu sync.Mutex
	n  int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return "test-id-" + strconv.Itoa(m.n)
}
