package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// TransactionResponse represents a recorded transaction in API responses.
type TransactionResponse struct {
	ID            string                 `json:"id"`
	Timestamp     time.Time              `json:"timestamp"`
	Item          string                 `json:"item"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Quantity      int                    `json:"quantity"`
	PaymentMethod string                 `json:"payment_method"`
	CustomerName  string                 `json:"customer_name"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		Timestamp:     t.Timestamp,
		Item:          t.Item,
		Amount:        t.Amount,
		Type:          t.Type,
		Quantity:      t.Quantity,
		PaymentMethod: t.PaymentMethod,
		CustomerName:  t.CustomerName,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// InventoryItemResponse represents one stock row in API responses.
type InventoryItemResponse struct {
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// InventoryItemFromDomain converts a domain inventory item to a response.
func InventoryItemFromDomain(i *domain.InventoryItem) *InventoryItemResponse {
	return &InventoryItemResponse{
		ItemName:     i.ItemName,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		UnitPrice:    i.UnitPrice,
		LastUpdated:  i.LastUpdated,
	}
}

// InventoryFromDomain converts domain inventory items to responses.
func InventoryFromDomain(items []*domain.InventoryItem) []*InventoryItemResponse {
	result := make([]*InventoryItemResponse, len(items))
	for i, item := range items {
		result[i] = InventoryItemFromDomain(item)
	}
	return result
}

// AgentReports groups the three analysis reports. A null report means that
// pass degraded on error.
type AgentReports struct {
	CashFlow  *domain.CashFlowReport `json:"cash_flow"`
	Inventory *domain.StockReport    `json:"inventory"`
	Fraud     *domain.FraudReport    `json:"fraud"`
}

// SubmitTransactionResponse is the full outcome of one submitted utterance.
type SubmitTransactionResponse struct {
	ParsedTransaction domain.ParsedTransaction `json:"parsed_transaction"`
	Transaction       *TransactionResponse     `json:"transaction"`
	Agents            AgentReports             `json:"agents"`
	Alerts            []domain.Alert           `json:"alerts"`
}

// SubmitResultFromUseCase converts a pipeline result to a response.
func SubmitResultFromUseCase(res *usecase.SubmitResult) *SubmitTransactionResponse {
	alerts := res.Alerts
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return &SubmitTransactionResponse{
		ParsedTransaction: res.Parsed,
		Transaction:       TransactionFromDomain(res.Transaction),
		Agents: AgentReports{
			CashFlow:  res.CashFlow,
			Inventory: res.Stock,
			Fraud:     res.Fraud,
		},
		Alerts: alerts,
	}
}

// DashboardResponse is the owner's read model in API responses.
type DashboardResponse struct {
	Transactions []*TransactionResponse   `json:"transactions"`
	Inventory    []*InventoryItemResponse `json:"inventory"`
	Stats        *domain.DailyStats       `json:"stats"`
}

// DashboardFromUseCase converts a dashboard read model to a response.
func DashboardFromUseCase(d *usecase.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Transactions: TransactionsFromDomain(d.Transactions),
		Inventory:    InventoryFromDomain(d.Inventory),
		Stats:        d.Stats,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
