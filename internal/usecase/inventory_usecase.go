package usecase

import (
	"context"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// InventoryUseCase flags items at or below their reorder threshold.
// The check is stateless and idempotent: an item stays in the report for as
// long as its quantity stays at or under the threshold.
type InventoryUseCase struct {
	inventoryRepo InventoryRepository
}

// NewInventoryUseCase creates a new InventoryUseCase.
func NewInventoryUseCase(inventoryRepo InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo}
}

// Check reports every item needing reorder, in the order the store returns
// them.
func (uc *InventoryUseCase) Check(ctx context.Context) (*domain.StockReport, error) {
	items, err := uc.inventoryRepo.ListBelowReorder(ctx)
	if err != nil {
		return nil, err
	}

	reorder := make([]domain.ReorderItem, 0, len(items))
	for _, item := range items {
		reorder = append(reorder, domain.ReorderItem{
			Item:         item.ItemName,
			Current:      item.Quantity,
			ReorderLevel: item.ReorderLevel,
		})
	}

	return &domain.StockReport{
		StockLow:       len(reorder) > 0,
		ItemsToReorder: reorder,
	}, nil
}

// ListInventory returns the full inventory table.
func (uc *InventoryUseCase) ListInventory(ctx context.Context) ([]*domain.InventoryItem, error) {
	return uc.inventoryRepo.List(ctx)
}
