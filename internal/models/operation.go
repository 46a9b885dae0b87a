package models

// Recognized stock operation types.
const (
	OpInbound    = "inbound"
	OpOutbound   = "outbound"
	OpAdjustment = "adjustment"
)

// StockOperation is one entry of the append-only stock ledger. Entries are
// never mutated or deleted; they survive deletion of the item they reference.
type StockOperation struct {
	ID                int    `json:"id"`
	ItemID            int    `json:"item_id"`
	OperationType     string `json:"operation_type"`
	Quantity          int    `json:"quantity"`
	ResultingQuantity int    `json:"resulting_quantity"`
	Notes             string `json:"notes,omitempty"`
	Timestamp         string `json:"timestamp"`
}
