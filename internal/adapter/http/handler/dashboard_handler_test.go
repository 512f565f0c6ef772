package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/dto"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
	"github.com/Bhooomika2605/Cashflow/internal/usecase/mocks"
)

func newDashboardHandler(cache usecase.Cache) *DashboardHandler {
	txnRepo := mocks.NewMockTransactionRepository()
	invRepo := mocks.NewMockInventoryRepository()
	uc := usecase.NewDashboardUseCase(txnRepo, invRepo)

	return NewDashboardHandler(uc, cache, 30*time.Second, nil)
}

func TestDashboardHandler_Get_ComputesAndCaches(t *testing.T) {
	cache := newFakeCache()
	handler := newDashboardHandler(cache)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Stats == nil {
		t.Fatalf("expected stats in dashboard response")
	}

	if _, ok := cache.values[dashboardCacheKey]; !ok {
		t.Fatalf("expected dashboard to be cached after compute")
	}
}

func TestDashboardHandler_Get_ServesCachedCopy(t *testing.T) {
	cache := newFakeCache()
	cached := `{"transactions":[],"inventory":[],"stats":{"total_sales":"0","total_purchases":"0","transaction_count":0}}`
	cache.values[dashboardCacheKey] = cached

	handler := newDashboardHandler(cache)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if rec.Body.String() != cached {
		t.Fatalf("expected cached payload to be served verbatim, got %s", rec.Body.String())
	}
}

func TestDashboardHandler_Get_NoCacheConfigured(t *testing.T) {
	handler := newDashboardHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without cache, got %d", rec.Code)
	}
}
