package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/dto"
	"github.com/Bhooomika2605/Cashflow/tests/testutil"
)

func submitText(t *testing.T, router http.Handler, text string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(dto.SubmitTransactionRequest{Text: text})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestSubmitTransaction(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	router, redisClient := newTestRouter(t, testDB)

	t.Run("sale decrements tracked inventory", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		testDB.SeedInventory(ctx, "rice", 20, 10, decimal.NewFromInt(50))

		rec := submitText(t, router, "sold 5 kg rice for rs 250", nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp dto.SubmitTransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Equal(t, "rice", resp.ParsedTransaction.Item)
		require.Equal(t, "sale", string(resp.ParsedTransaction.Type))
		require.Equal(t, 5, resp.ParsedTransaction.Quantity)
		require.True(t, resp.ParsedTransaction.Amount.Equal(decimal.NewFromInt(250)))
		require.NotNil(t, resp.Transaction)

		var quantity int
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`SELECT quantity FROM inventory WHERE item_name = 'rice'`).Scan(&quantity))
		require.Equal(t, 15, quantity)
	})

	t.Run("purchase creates inventory row", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		rec := submitText(t, router, "bought 10 packets sugar rs500 from supplier", nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp dto.SubmitTransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "purchase", string(resp.ParsedTransaction.Type))

		var (
			quantity     int
			reorderLevel int
			unitPrice    decimal.Decimal
		)
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`SELECT quantity, reorder_level, unit_price FROM inventory WHERE item_name = 'sugar'`).
			Scan(&quantity, &reorderLevel, &unitPrice))
		require.Equal(t, 10, quantity)
		require.Equal(t, 10, reorderLevel)
		require.True(t, unitPrice.Equal(decimal.NewFromInt(50)), unitPrice.String())

		// Newly stocked at its reorder level, so the monitor flags it.
		require.NotNil(t, resp.Agents.Inventory)
		require.True(t, resp.Agents.Inventory.StockLow)
	})

	t.Run("empty input rejected", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		rec := submitText(t, router, "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("idempotency key replays response", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		headers := map[string]string{"Idempotency-Key": "submit-once"}

		first := submitText(t, router, "sold 2 kg dal for rs 180", headers)
		require.Equal(t, http.StatusCreated, first.Code)

		second := submitText(t, router, "sold 2 kg dal for rs 180", headers)
		require.Equal(t, "true", second.Header().Get("X-Idempotency-Replay"))
		require.JSONEq(t, first.Body.String(), second.Body.String())

		var count int
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM transactions`).Scan(&count))
		require.Equal(t, 1, count)
	})

	t.Run("oversell drives quantity negative", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		require.NoError(t, redisClient.FlushAll(ctx).Err())

		testDB.SeedInventory(ctx, "oil", 3, 10, decimal.NewFromInt(120))

		rec := submitText(t, router, "sold 5 packets oil for rs 600", nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var quantity int
		require.NoError(t, testDB.Pool.QueryRow(ctx,
			`SELECT quantity FROM inventory WHERE item_name = 'oil'`).Scan(&quantity))
		require.Equal(t, -2, quantity)
	})
}
