package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/dto"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/metrics"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// dashboardCacheKey is shared with DashboardHandler: a successful write
// invalidates the cached dashboard.
const dashboardCacheKey = "dashboard"

// TransactionHandler handles transaction submission requests.
type TransactionHandler struct {
	transactionUC *usecase.TransactionUseCase
	cache         usecase.Cache
	metrics       *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC *usecase.TransactionUseCase, cache usecase.Cache, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		cache:         cache,
		metrics:       m,
	}
}

// Submit records a free-text transaction and returns the parsed record,
// the analysis reports, and the aggregated alerts.
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.transactionUC.Submit(r.Context(), req.Text)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transaction", err.Error())

		return
	}

	h.record(result)

	if h.cache != nil {
		if err := h.cache.Delete(r.Context(), dashboardCacheKey); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate dashboard cache")
		}
	}

	writeJSON(w, http.StatusCreated, dto.SubmitResultFromUseCase(result))
}

func (h *TransactionHandler) record(result *usecase.SubmitResult) {
	if h.metrics == nil {
		return
	}

	txnType := string(result.Transaction.Type)
	h.metrics.TransactionsRecorded.WithLabelValues(txnType).Inc()
	amount, _ := result.Transaction.Amount.Float64()
	h.metrics.TransactionAmount.WithLabelValues(txnType).Observe(amount)

	for _, alert := range result.Alerts {
		h.metrics.AlertsRaised.WithLabelValues(string(alert.Type), string(alert.Severity)).Inc()
	}

	if result.CashFlow == nil {
		h.metrics.AnalysisFailures.WithLabelValues("cash_flow").Inc()
	}
	if result.Stock == nil {
		h.metrics.AnalysisFailures.WithLabelValues("inventory").Inc()
	}
	if result.Fraud == nil {
		h.metrics.AnalysisFailures.WithLabelValues("fraud").Inc()
	}
}
