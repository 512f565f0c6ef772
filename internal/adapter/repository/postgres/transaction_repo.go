package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository against the
// append-only transactions relation.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a transaction row within the given database transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (id, timestamp, item, amount, type, quantity, payment_method, customer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, query,
		txn.ID,
		timeToPgTimestamptz(txn.Timestamp),
		txn.Item,
		decimalToNumeric(txn.Amount),
		string(txn.Type),
		txn.Quantity,
		txn.PaymentMethod,
		txn.CustomerName,
	)

	return err
}

// ListRecent returns the most recent transactions, newest first.
func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	query := `
		SELECT id, timestamp, item, amount, type, quantity, payment_method, customer_name
		FROM transactions
		ORDER BY timestamp DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		var (
			txn       domain.Transaction
			timestamp pgtype.Timestamptz
			amount    pgtype.Numeric
			txnType   string
		)

		err := rows.Scan(
			&txn.ID,
			&timestamp,
			&txn.Item,
			&amount,
			&txnType,
			&txn.Quantity,
			&txn.PaymentMethod,
			&txn.CustomerName,
		)
		if err != nil {
			return nil, err
		}

		txn.Timestamp = timestamp.Time
		txn.Amount = numericToDecimal(amount)
		txn.Type = domain.TransactionType(txnType)

		transactions = append(transactions, &txn)
	}

	return transactions, rows.Err()
}

// ListCashFlowWindow returns (amount, type) pairs since the given instant.
func (r *TransactionRepository) ListCashFlowWindow(ctx context.Context, since time.Time) ([]domain.CashFlowEntry, error) {
	query := `SELECT amount, type FROM transactions WHERE timestamp >= $1`

	rows, err := r.pool.Query(ctx, query, timeToPgTimestamptz(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CashFlowEntry
	for rows.Next() {
		var (
			amount  pgtype.Numeric
			txnType string
		)

		if err := rows.Scan(&amount, &txnType); err != nil {
			return nil, err
		}

		entries = append(entries, domain.CashFlowEntry{
			Amount: numericToDecimal(amount),
			Type:   domain.TransactionType(txnType),
		})
	}

	return entries, rows.Err()
}

// ListSaleAmounts returns every recorded sale amount, oldest first.
func (r *TransactionRepository) ListSaleAmounts(ctx context.Context) ([]decimal.Decimal, error) {
	query := `SELECT amount FROM transactions WHERE type = 'sale' ORDER BY timestamp`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amounts []decimal.Decimal
	for rows.Next() {
		var amount pgtype.Numeric

		if err := rows.Scan(&amount); err != nil {
			return nil, err
		}

		amounts = append(amounts, numericToDecimal(amount))
	}

	return amounts, rows.Err()
}

// DailyStats aggregates totals for the UTC calendar day containing the
// instant. The day boundary is computed here rather than with date_trunc,
// which would follow the session timezone.
func (r *TransactionRepository) DailyStats(ctx context.Context, day time.Time) (*domain.DailyStats, error) {
	day = day.UTC()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'sale' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'purchase' THEN amount ELSE 0 END), 0),
			COUNT(*)
		FROM transactions
		WHERE timestamp >= $1
		  AND timestamp < $1 + interval '1 day'
	`

	var (
		sales     pgtype.Numeric
		purchases pgtype.Numeric
		count     int
	)

	err := r.pool.QueryRow(ctx, query, timeToPgTimestamptz(dayStart)).Scan(&sales, &purchases, &count)
	if err != nil {
		return nil, err
	}

	return &domain.DailyStats{
		TotalSales:       numericToDecimal(sales),
		TotalPurchases:   numericToDecimal(purchases),
		TransactionCount: count,
	}, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
