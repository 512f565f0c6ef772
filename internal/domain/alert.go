package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertType identifies which analysis pass produced an alert.
type AlertType string

const (
	AlertTypeCashFlow  AlertType = "cash_flow"
	AlertTypeInventory AlertType = "inventory"
	AlertTypeFraud     AlertType = "fraud"
)

// AlertSeverity ranks an alert for the shop owner.
type AlertSeverity string

const (
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// AlertStatusOpen is the only lifecycle state currently in use. Alerts are
// recomputed on every request and never persisted.
const AlertStatusOpen = "open"

// Alert is one entry of the aggregated alert list.
type Alert struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      AlertType     `json:"type"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	Status    string        `json:"status"`
}

// CashFlowReport is the forecaster's output over the trailing window.
// DailyAvgFlow is nil when the window held no transactions.
type CashFlowReport struct {
	ShortagePredicted bool             `json:"shortage_predicted"`
	DailyAvgFlow      *decimal.Decimal `json:"daily_avg_flow,omitempty"`
	Recommendation    string           `json:"recommendation"`
}

// StockReport is the inventory monitor's output.
type StockReport struct {
	StockLow       bool          `json:"stock_low"`
	ItemsToReorder []ReorderItem `json:"items_to_reorder"`
}

// FraudReport is the anomaly detector's verdict on the current amount.
type FraudReport struct {
	FraudSuspected bool   `json:"fraud_suspected"`
	Reason         string `json:"reason"`
}
