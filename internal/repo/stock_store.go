package repo

import "github.com/warehouse-kit/inventory-api/internal/models"

// StockStore is the commit point for stock operations. ApplyOperation
// persists the item's new quantity/status and appends the ledger entry as a
// single atomic unit; readers never observe one without the other. The entry
// id and timestamp are assigned on commit.
type StockStore interface {
	ApplyOperation(item models.Item, entry models.StockOperation) (models.Item, models.StockOperation, error)
}
