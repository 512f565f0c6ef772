package usecase

import (
	"context"
	"time"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// Dashboard is the shop owner's read model: the latest transactions, the
// full inventory table, and today's totals.
type Dashboard struct {
	Transactions []*domain.Transaction
	Inventory    []*domain.InventoryItem
	Stats        *domain.DailyStats
}

const recentTransactionLimit = 10

// DashboardUseCase assembles the dashboard from the ledger.
type DashboardUseCase struct {
	transactionRepo TransactionRepository
	inventoryRepo   InventoryRepository
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(transactionRepo TransactionRepository, inventoryRepo InventoryRepository) *DashboardUseCase {
	return &DashboardUseCase{
		transactionRepo: transactionRepo,
		inventoryRepo:   inventoryRepo,
	}
}

// GetDashboard returns the 10 most recent transactions (newest first), the
// current inventory, and stats for the current calendar day (UTC).
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*Dashboard, error) {
	transactions, err := uc.transactionRepo.ListRecent(ctx, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	inventory, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := uc.transactionRepo.DailyStats(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Transactions: transactions,
		Inventory:    inventory,
		Stats:        stats,
	}, nil
}
