package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warehouse-kit/inventory-api/internal/inventory"
	"github.com/warehouse-kit/inventory-api/internal/models"
	"github.com/warehouse-kit/inventory-api/internal/repo"
	"github.com/warehouse-kit/inventory-api/internal/status"
)

// CreateItemHandler godoc
// @Summary Create a new item
// @Description Adds an item to the inventory; status is computed from quantity vs threshold
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} models.Item
// @Failure 400 {object} MessageResponse
// @Router /api/items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	req.Status = "" // never accepted on create
	if errs := validateItem(req); len(errs) > 0 {
		respondMessage(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	item := models.Item{
		Name:              req.Name,
		Description:       req.Description,
		Quantity:          req.Quantity,
		UnitPrice:         req.UnitPrice,
		LowStockThreshold: req.LowStockThreshold,
		Status:            status.Compute(req.Quantity, req.LowStockThreshold, "", false),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := itemRepo.Create(item)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "could not create item")
		return
	}
	reporter.InvalidateCache()

	writeJSON(w, http.StatusCreated, created)
}

// GetItemsHandler godoc
// @Summary List all items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {object} MessageResponse
// @Router /api/items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "could not fetch items")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// SearchItemsHandler godoc
// @Summary Search items by keyword
// @Description Case-insensitive substring match over name and description; blank keyword returns everything
// @Tags items
// @Produce json
// @Param keyword query string false "Search keyword"
// @Success 200 {array} models.Item
// @Failure 500 {object} MessageResponse
// @Router /api/items/search [get]
func SearchItemsHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	items, err := itemRepo.Search(keyword)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "could not search items")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// UpdateItemHandler godoc
// @Summary Update an item
// @Description Edits name, description, unit price and threshold; a status value in the body is applied as a manual override. Quantity is not editable here.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Updated fields"
// @Success 200 {object} models.Item
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/items/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateItem(req); len(errs) > 0 {
		respondMessage(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	updated, err := reporter.UpdateItem(id, inventory.ItemEdit{
		Name:              req.Name,
		Description:       req.Description,
		UnitPrice:         req.UnitPrice,
		LowStockThreshold: req.LowStockThreshold,
		Status:            req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			respondMessage(w, http.StatusNotFound, "item not found")
		case errors.Is(err, inventory.ErrUnknownStatus):
			respondMessage(w, http.StatusBadRequest, "invalid status value")
		default:
			respondMessage(w, http.StatusInternalServerError, "could not update item")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Description Removes an item; ledger entries are retained for audit unless the block policy is active, in which case items with history cannot be deleted
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /api/items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	if err := reporter.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			respondMessage(w, http.StatusNotFound, "item not found")
		case errors.Is(err, inventory.ErrItemHasHistory):
			respondMessage(w, http.StatusConflict, "item has recorded operations and cannot be deleted")
		default:
			respondMessage(w, http.StatusInternalServerError, "could not delete item")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}
