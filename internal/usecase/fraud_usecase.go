package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// ReasonWithinRange is returned when the current amount is not anomalous.
const ReasonWithinRange = "Transaction within normal range"

// Standard deviations above the mean before an amount is flagged.
const fraudStdDevFactor = 3.0

// FraudUseCase flags a transaction amount as statistically anomalous against
// the historical sale amounts. A static z-score outlier test: no seasonality,
// no per-item segmentation, no persisted model.
type FraudUseCase struct {
	transactionRepo TransactionRepository
	minSamples      int
}

// NewFraudUseCase creates a new FraudUseCase. minSamples is a hard floor:
// with fewer historical amounts the detector always reports no fraud.
func NewFraudUseCase(transactionRepo TransactionRepository, minSamples int) *FraudUseCase {
	if minSamples <= 0 {
		minSamples = 10
	}

	return &FraudUseCase{
		transactionRepo: transactionRepo,
		minSamples:      minSamples,
	}
}

// Evaluate compares currentAmount against mean + 3 population standard
// deviations of the recorded sale amounts. Strictly greater flags fraud.
func (uc *FraudUseCase) Evaluate(ctx context.Context, currentAmount decimal.Decimal) (*domain.FraudReport, error) {
	amounts, err := uc.transactionRepo.ListSaleAmounts(ctx)
	if err != nil {
		return nil, err
	}

	if len(amounts) < uc.minSamples {
		return &domain.FraudReport{
			FraudSuspected: false,
			Reason:         RecommendationInsufficientData,
		}, nil
	}

	mean, stdDev := populationStats(amounts)
	threshold := mean + fraudStdDevFactor*stdDev

	if current, _ := currentAmount.Float64(); current > threshold {
		return &domain.FraudReport{
			FraudSuspected: true,
			Reason:         fmt.Sprintf("Transaction amount (₹%s) exceeds normal range (₹%.2f)", currentAmount, threshold),
		}, nil
	}

	return &domain.FraudReport{
		FraudSuspected: false,
		Reason:         ReasonWithinRange,
	}, nil
}

// populationStats computes the arithmetic mean and population standard
// deviation (divisor n, not n-1).
func populationStats(amounts []decimal.Decimal) (mean, stdDev float64) {
	n := float64(len(amounts))

	var sum float64
	for _, a := range amounts {
		f, _ := a.Float64()
		sum += f
	}
	mean = sum / n

	var sqDiff float64
	for _, a := range amounts {
		f, _ := a.Float64()
		d := f - mean
		sqDiff += d * d
	}

	return mean, math.Sqrt(sqDiff / n)
}
