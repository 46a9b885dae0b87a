package repo

import "github.com/warehouse-kit/inventory-api/internal/models"

// LedgerRepository is the append-only log of stock operations.
type LedgerRepository interface {
	// Append stores the entry, assigning its id and timestamp.
	Append(entry models.StockOperation) (models.StockOperation, error)
	// ListByItem returns one item's entries ordered by timestamp ascending
	// (ties by id), plus the total count before paging. Nil offset/limit
	// return everything.
	ListByItem(itemID int, offset, limit *int) ([]models.StockOperation, int, error)
}
