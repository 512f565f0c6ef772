package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// InventoryRepository implements usecase.InventoryRepository over the
// item_name-keyed inventory relation.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

// GetForUpdate reads an item under a row lock so concurrent writes to the
// same item serialize instead of losing updates.
func (r *InventoryRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, itemName string) (*domain.InventoryItem, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT item_name, quantity, reorder_level, unit_price, last_updated
		FROM inventory
		WHERE item_name = $1
		FOR UPDATE
	`

	item, err := scanItem(pgxTx.QueryRow(ctx, query, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}

		return nil, err
	}

	return item, nil
}

// Upsert inserts an inventory row or, on an existing item, refreshes
// quantity, unit price and last_updated. The reorder level only applies to
// new rows; an existing row keeps its configured threshold.
func (r *InventoryRepository) Upsert(ctx context.Context, tx usecase.Transaction, item *domain.InventoryItem) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO inventory (item_name, quantity, reorder_level, unit_price, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_name) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			unit_price = EXCLUDED.unit_price,
			last_updated = EXCLUDED.last_updated
	`

	_, err := pgxTx.Exec(ctx, query,
		item.ItemName,
		item.Quantity,
		item.ReorderLevel,
		decimalToNumeric(item.UnitPrice),
		timeToPgTimestamptz(item.LastUpdated),
	)

	return err
}

// UpdateQuantity sets the quantity of an existing item.
func (r *InventoryRepository) UpdateQuantity(ctx context.Context, tx usecase.Transaction, itemName string, quantity int, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE inventory SET quantity = $2, last_updated = $3 WHERE item_name = $1`

	_, err := pgxTx.Exec(ctx, query, itemName, quantity, timeToPgTimestamptz(updatedAt))

	return err
}

// List returns the full inventory table in insertion order.
func (r *InventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	query := `
		SELECT item_name, quantity, reorder_level, unit_price, last_updated
		FROM inventory
		ORDER BY id
	`

	return r.queryItems(ctx, query)
}

// ListBelowReorder returns items at or below their reorder level, in
// insertion order.
func (r *InventoryRepository) ListBelowReorder(ctx context.Context) ([]*domain.InventoryItem, error) {
	query := `
		SELECT item_name, quantity, reorder_level, unit_price, last_updated
		FROM inventory
		WHERE quantity <= reorder_level
		ORDER BY id
	`

	return r.queryItems(ctx, query)
}

func (r *InventoryRepository) queryItems(ctx context.Context, query string) ([]*domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var (
		item        domain.InventoryItem
		unitPrice   pgtype.Numeric
		lastUpdated pgtype.Timestamptz
	)

	err := row.Scan(
		&item.ItemName,
		&item.Quantity,
		&item.ReorderLevel,
		&unitPrice,
		&lastUpdated,
	)
	if err != nil {
		return nil, err
	}

	item.UnitPrice = numericToDecimal(unitPrice)
	item.LastUpdated = lastUpdated.Time

	return &item, nil
}
