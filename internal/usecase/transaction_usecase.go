package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
	"github.com/Bhooomika2605/Cashflow/internal/extractor"
)

// TransactionConfig tunes the write path.
type TransactionConfig struct {
	// DefaultReorderLevel is assigned to inventory rows created by a purchase.
	DefaultReorderLevel int
	// ClampZeroStock stops a sale from driving quantity below zero. Off by
	// default: the observed behavior allows negative stock on oversell.
	ClampZeroStock bool
}

// SubmitResult is the outcome of one processed utterance: the parsed
// transaction, the three analysis reports, and the aggregated alerts.
// A nil report means that pass failed and was degraded, not that it ran clean.
type SubmitResult struct {
	Parsed      domain.ParsedTransaction
	Transaction *domain.Transaction
	CashFlow    *domain.CashFlowReport
	Stock       *domain.StockReport
	Fraud       *domain.FraudReport
	Alerts      []domain.Alert
}

// TransactionUseCase runs the per-utterance pipeline:
// extract, persist, analyze, aggregate.
type TransactionUseCase struct {
	txManager       TransactionManager
	transactionRepo TransactionRepository
	inventoryRepo   InventoryRepository
	idGen           IDGenerator
	retrier         Retrier
	extractor       *extractor.Extractor
	forecastUC      *ForecastUseCase
	inventoryUC     *InventoryUseCase
	fraudUC         *FraudUseCase
	cfg             TransactionConfig
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	transactionRepo TransactionRepository,
	inventoryRepo InventoryRepository,
	idGen IDGenerator,
	retrier Retrier,
	ext *extractor.Extractor,
	forecastUC *ForecastUseCase,
	inventoryUC *InventoryUseCase,
	fraudUC *FraudUseCase,
	cfg TransactionConfig,
) *TransactionUseCase {
	if cfg.DefaultReorderLevel <= 0 {
		cfg.DefaultReorderLevel = 10
	}

	return &TransactionUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		inventoryRepo:   inventoryRepo,
		idGen:           idGen,
		retrier:         retrier,
		extractor:       ext,
		forecastUC:      forecastUC,
		inventoryUC:     inventoryUC,
		fraudUC:         fraudUC,
		cfg:             cfg,
	}
}

// Submit processes one utterance end to end. Extraction cannot fail; a
// persistence failure aborts the request; a failed analysis pass is logged
// and reported as a nil result instead of failing the whole pipeline.
func (uc *TransactionUseCase) Submit(ctx context.Context, text string) (*SubmitResult, error) {
	if text == "" {
		return nil, domain.ErrEmptyInput
	}

	parsed := uc.extractor.Extract(text)

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:            uc.idGen.Generate(),
		Timestamp:     now,
		Item:          parsed.Item,
		Amount:        parsed.Amount,
		Type:          parsed.Type,
		Quantity:      parsed.Quantity,
		PaymentMethod: parsed.PaymentMethod,
		CustomerName:  domain.DefaultCustomerName,
	}

	persist := func() error { return uc.persist(ctx, txn) }
	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, persist)
	} else {
		err = persist()
	}
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Parsed:      parsed,
		Transaction: txn,
	}

	// The three passes are independent read-only checks against the updated
	// ledger. Each is isolated: a failure degrades its report to nil.
	if result.CashFlow, err = uc.forecastUC.Forecast(ctx); err != nil {
		log.Warn().Err(err).Msg("cash flow forecast failed, degrading")
		result.CashFlow = nil
	}

	if result.Stock, err = uc.inventoryUC.Check(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory check failed, degrading")
		result.Stock = nil
	}

	if result.Fraud, err = uc.fraudUC.Evaluate(ctx, parsed.Amount); err != nil {
		log.Warn().Err(err).Msg("fraud evaluation failed, degrading")
		result.Fraud = nil
	}

	result.Alerts = AggregateAlerts(now, result.CashFlow, result.Stock, result.Fraud)

	return result, nil
}

// persist writes the transaction row and the inventory effect in one
// database transaction. The inventory row is read under a lock, so
// concurrent updates to the same item serialize instead of losing writes.
func (uc *TransactionUseCase) persist(ctx context.Context, txn *domain.Transaction) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
		return err
	}

	if err := uc.applyInventoryEffect(ctx, tx, txn); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (uc *TransactionUseCase) applyInventoryEffect(ctx context.Context, tx Transaction, txn *domain.Transaction) error {
	item, err := uc.inventoryRepo.GetForUpdate(ctx, tx, txn.Item)

	switch txn.Type {
	case domain.TransactionTypeSale:
		if errors.Is(err, domain.ErrItemNotFound) {
			// A sale of an untracked item leaves inventory untouched.
			return nil
		}
		if err != nil {
			return err
		}

		quantity := item.Quantity - txn.Quantity
		if uc.cfg.ClampZeroStock && quantity < 0 {
			quantity = 0
		}

		return uc.inventoryRepo.UpdateQuantity(ctx, tx, txn.Item, quantity, txn.Timestamp)

	case domain.TransactionTypePurchase:
		quantity := txn.Quantity
		if err == nil {
			quantity += item.Quantity
		} else if !errors.Is(err, domain.ErrItemNotFound) {
			return err
		}

		return uc.inventoryRepo.Upsert(ctx, tx, &domain.InventoryItem{
			ItemName:     txn.Item,
			Quantity:     quantity,
			ReorderLevel: uc.cfg.DefaultReorderLevel,
			UnitPrice:    domain.UnitPriceFor(txn.Amount, txn.Quantity),
			LastUpdated:  txn.Timestamp,
		})
	}

	return nil
}
