package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// Forecast recommendation strings, keyed by the shortage verdict.
const (
	RecommendationNoAction         = "No action needed"
	RecommendationShortage         = "Cash shortage expected. Consider delaying purchases or securing short-term loan."
	RecommendationInsufficientData = "Insufficient data"
)

// ForecastUseCase projects short-term cash shortage risk from the trailing
// transaction window. A simple moving-average heuristic, kept interpretable
// for a non-technical shop owner: no trend extrapolation, no seasonality.
type ForecastUseCase struct {
	transactionRepo TransactionRepository
	windowDays      int
}

// NewForecastUseCase creates a new ForecastUseCase.
func NewForecastUseCase(transactionRepo TransactionRepository, windowDays int) *ForecastUseCase {
	if windowDays <= 0 {
		windowDays = 30
	}

	return &ForecastUseCase{
		transactionRepo: transactionRepo,
		windowDays:      windowDays,
	}
}

// Forecast sums sales minus purchases over the window and divides by the
// window length. The divisor is fixed, not the number of days with data.
func (uc *ForecastUseCase) Forecast(ctx context.Context) (*domain.CashFlowReport, error) {
	since := time.Now().UTC().AddDate(0, 0, -uc.windowDays)

	entries, err := uc.transactionRepo.ListCashFlowWindow(ctx, since)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &domain.CashFlowReport{
			ShortagePredicted: false,
			Recommendation:    RecommendationInsufficientData,
		}, nil
	}

	sales := decimal.Zero
	purchases := decimal.Zero

	for _, e := range entries {
		switch e.Type {
		case domain.TransactionTypeSale:
			sales = sales.Add(e.Amount)
		case domain.TransactionTypePurchase:
			purchases = purchases.Add(e.Amount)
		}
	}

	// The shortage verdict comes from the raw net flow; rounding is only
	// for the reported average, so a tiny deficit still predicts shortage.
	net := sales.Sub(purchases)
	shortage := net.IsNegative()
	dailyAvg := net.DivRound(decimal.NewFromInt(int64(uc.windowDays)), 2)

	recommendation := RecommendationNoAction
	if shortage {
		recommendation = RecommendationShortage
	}

	return &domain.CashFlowReport{
		ShortagePredicted: shortage,
		DailyAvgFlow:      &dailyAvg,
		Recommendation:    recommendation,
	}, nil
}
