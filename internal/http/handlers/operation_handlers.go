package handlers

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warehouse-kit/inventory-api/internal/inventory"
	"github.com/warehouse-kit/inventory-api/internal/repo"
)

// ApplyOperationHandler godoc
// @Summary Apply a stock operation to an item
// @Description inbound adds, outbound subtracts, adjustment sets the absolute quantity; the operation is recorded in the ledger and the status recomputed
// @Tags operations
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param operation body OperationRequest true "Operation to apply"
// @Success 200 {object} OperationResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /api/items/{id}/operation [post]
func ApplyOperationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var req OperationRequest
	if err := readJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	item, op, err := processor.Apply(id, req.OperationType, req.Quantity, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, "quantity must be greater than zero")
		case errors.Is(err, inventory.ErrUnknownOperationType):
			respondError(w, http.StatusBadRequest, "invalid operation type")
		case errors.Is(err, repo.ErrItemNotFound):
			respondError(w, http.StatusNotFound, "item not found")
		case errors.Is(err, inventory.ErrInsufficientStock):
			respondError(w, http.StatusConflict, "insufficient stock")
		default:
			respondError(w, http.StatusInternalServerError, "could not apply operation")
		}
		return
	}
	reporter.InvalidateCache()

	writeJSON(w, http.StatusOK, OperationResult{Item: item, Operation: op})
}

// GetOperationsHandler godoc
// @Summary Get an item's stock operation ledger
// @Tags operations
// @Produce json
// @Param id path int true "Item ID"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} OperationsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Item not found"
// @Router /api/items/{id}/operations [get]
func GetOperationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	if _, err := itemRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "could not fetch item")
		return
	}

	var offset, limit *int

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be greater than zero")
			return
		}
		limit = &v
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil || v < 0 {
			respondError(w, http.StatusBadRequest, "offset must be zero or positive")
			return
		}
		offset = &v
	}

	entries, total, err := ledgerRepo.ListByItem(id, offset, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not retrieve operations")
		return
	}

	writeJSON(w, http.StatusOK, OperationsSearchResult{
		Data: entries,
		Meta: Meta{TotalCount: total},
	})
}

// ExportOperationsHandler godoc
// @Summary Export an item's stock operation ledger
// @Tags operations
// @Produce text/csv, application/json
// @Param id path int true "Item ID"
// @Param format query string true "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Router /api/items/{id}/operations/export [get]
func ExportOperationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		respondError(w, http.StatusBadRequest, "format must be 'csv' or 'json'")
		return
	}

	entries, _, err := ledgerRepo.ListByItem(id, nil, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not retrieve operations")
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Disposition", `attachment; filename="operations.json"`)
		writeJSON(w, http.StatusOK, entries)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="operations.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "item_id", "operation_type", "quantity", "resulting_quantity", "notes", "timestamp"})
		for _, e := range entries {
			_ = csvWriter.Write([]string{
				strconv.Itoa(e.ID),
				strconv.Itoa(e.ItemID),
				e.OperationType,
				strconv.Itoa(e.Quantity),
				strconv.Itoa(e.ResultingQuantity),
				e.Notes,
				e.Timestamp,
			})
		}
		csvWriter.Flush()
	}
}
