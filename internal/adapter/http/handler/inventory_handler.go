package handler

import (
	"net/http"

	"github.com/Bhooomika2605/Cashflow/internal/adapter/http/dto"
	"github.com/Bhooomika2605/Cashflow/internal/usecase"
)

// InventoryHandler serves the stock table.
type InventoryHandler struct {
	inventoryUC *usecase.InventoryUseCase
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryUC *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{inventoryUC: inventoryUC}
}

// List returns every inventory row in store order.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUC.ListInventory(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list inventory", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InventoryFromDomain(items))
}
