package models

// Status classifies an item's restocking urgency.
type Status string

const (
	StatusNormal      Status = "normal"
	StatusNeedRestock Status = "need_restock"
	StatusRestocking  Status = "restocking"
)

// Item represents a stock-keeping unit in the warehouse.
type Item struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Status            Status  `json:"status"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}
