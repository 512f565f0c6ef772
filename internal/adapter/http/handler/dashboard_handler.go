package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/dto"
	"github.com/Bhooomika2605/Cashflow/internal/infrastructure/metrics"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// DashboardHandler serves the owner's dashboard read model.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	cache       usecase.Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, cache usecase.Cache, cacheTTL time.Duration, m *metrics.Metrics) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     m,
	}
}

// Get returns the dashboard, serving a short-lived cached copy when one
// exists. The write path invalidates the cache on every recorded
// transaction, so staleness is bounded by the TTL on idle reads only.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		cached, err := h.cache.Get(r.Context(), dashboardCacheKey)
		if err == nil {
			if h.metrics != nil {
				h.metrics.CacheHits.WithLabelValues(dashboardCacheKey).Inc()
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))

			return
		}

		if h.metrics != nil {
			h.metrics.CacheMisses.WithLabelValues(dashboardCacheKey).Inc()
		}
	}

	dashboard, err := h.dashboardUC.GetDashboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard", err.Error())
		return
	}

	resp := dto.DashboardFromUseCase(dashboard)

	if h.cache != nil {
		payload, err := json.Marshal(resp)
		if err == nil {
			if err := h.cache.Set(r.Context(), dashboardCacheKey, string(payload), h.cacheTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache dashboard")
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
