package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypePurchase TransactionType = "purchase"
)

// Default values applied when extraction finds no explicit field.
const (
	DefaultItem          = "general"
	DefaultPaymentMethod = "cash"
	DefaultCustomerName  = "Customer"
)

// Transaction is an immutable ledger record created from one utterance.
type Transaction struct {
	ID            string
	Timestamp     time.Time
	Item          string
	Amount        decimal.Decimal
	Type          TransactionType
	Quantity      int
	PaymentMethod string
	CustomerName  string
}

// ParsedTransaction is the extractor output before persistence.
// Extraction never fails; missing fields carry defaults instead.
type ParsedTransaction struct {
	Item          string          `json:"item"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Quantity      int             `json:"quantity"`
	PaymentMethod string          `json:"payment_method"`
}

// DailyStats summarizes the current calendar day for the dashboard.
type DailyStats struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	TransactionCount int             `json:"transaction_count"`
}

// CashFlowEntry is one (amount, type) pair from the forecast window.
type CashFlowEntry struct {
	Amount decimal.Decimal
	Type   TransactionType
}
