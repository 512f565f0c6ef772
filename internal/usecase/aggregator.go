package usecase

import (
	"fmt"
	"time"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// AggregateAlerts merges the three analysis outputs into one ordered list:
// cash-flow first, then one inventory alert per reorder item, then fraud.
// A nil report contributes nothing, so a degraded pass simply drops out.
// No deduplication and no suppression: every call recomputes the full set.
func AggregateAlerts(now time.Time, cashFlow *domain.CashFlowReport, stock *domain.StockReport, fraud *domain.FraudReport) []domain.Alert {
	alerts := []domain.Alert{}

	if cashFlow != nil && cashFlow.ShortagePredicted {
		alerts = append(alerts, domain.Alert{
			Timestamp: now,
			Type:      domain.AlertTypeCashFlow,
			Message:   cashFlow.Recommendation,
			Severity:  domain.SeverityHigh,
			Status:    domain.AlertStatusOpen,
		})
	}

	if stock != nil && stock.StockLow {
		for _, item := range stock.ItemsToReorder {
			alerts = append(alerts, domain.Alert{
				Timestamp: now,
				Type:      domain.AlertTypeInventory,
				Message:   fmt.Sprintf("Low stock: %s - Reorder needed", item.Item),
				Severity:  domain.SeverityMedium,
				Status:    domain.AlertStatusOpen,
			})
		}
	}

	if fraud != nil && fraud.FraudSuspected {
		alerts = append(alerts, domain.Alert{
			Timestamp: now,
			Type:      domain.AlertTypeFraud,
			Message:   fraud.Reason,
			Severity:  domain.SeverityCritical,
			Status:    domain.AlertStatusOpen,
		})
	}

	return alerts
}
