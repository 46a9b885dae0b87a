package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warehouse-kit/inventory-api/internal/inventory"
	"github.com/warehouse-kit/inventory-api/internal/models"
	"github.com/warehouse-kit/inventory-api/internal/repo"
)

// LowStockReportHandler godoc
// @Summary List items needing attention
// @Description Items whose status is need_restock or restocking, ordered by id
// @Tags reports
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {string} string "Internal error"
// @Router /api/reports/low-stock [get]
func LowStockReportHandler(w http.ResponseWriter, r *http.Request) {
	items, err := reporter.LowStockItems()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not build low-stock report")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// UpdateItemStatusHandler godoc
// @Summary Manually override an item's status
// @Description The override holds until the next stock operation recomputes the status
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} models.Item
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Router /api/items/{id}/status [put]
func UpdateItemStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var req StatusRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	item, err := reporter.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrUnknownStatus):
			respondError(w, http.StatusBadRequest, "invalid status")
		case errors.Is(err, repo.ErrItemNotFound):
			respondError(w, http.StatusNotFound, "item not found")
		default:
			respondError(w, http.StatusInternalServerError, "could not update status")
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}
