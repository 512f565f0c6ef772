package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is one row of the shop's stock table, keyed by item name.
// Quantity is signed: an oversold item goes negative unless clamping is
// enabled at the write path.
type InventoryItem struct {
	ItemName     string
	Quantity     int
	ReorderLevel int
	UnitPrice    decimal.Decimal
	LastUpdated  time.Time
}

// NeedsReorder reports whether the item is at or below its reorder level.
func (i *InventoryItem) NeedsReorder() bool {
	return i.Quantity <= i.ReorderLevel
}

// ReorderItem is the monitor's view of an item that needs restocking.
type ReorderItem struct {
	Item         string `json:"item"`
	Current      int    `json:"current"`
	ReorderLevel int    `json:"reorder_level"`
}

// UnitPriceFor derives the per-unit price recorded on a purchase.
func UnitPriceFor(amount decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(int64(quantity)))
}
