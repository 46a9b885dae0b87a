package handlers

import "github.com/warehouse-kit/inventory-api/internal/models"

// ItemRequest is the body of POST /api/items and PUT /api/items/{id}.
// Status is only honored on update, as a manual override. Quantity is only
// honored on create; afterwards quantity changes go through the operation
// endpoint.
type ItemRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Status            string  `json:"status,omitempty"`
}

// OperationRequest is the body of POST /api/items/{id}/operation. For
// adjustment operations Quantity is the item's new absolute quantity.
type OperationRequest struct {
	OperationType string `json:"operation_type"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes,omitempty"`
}

type OperationResult struct {
	Item      models.Item           `json:"item"`
	Operation models.StockOperation `json:"operation"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type OperationsSearchResult struct {
	Data []models.StockOperation `json:"data"`
	Meta Meta                    `json:"meta,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
