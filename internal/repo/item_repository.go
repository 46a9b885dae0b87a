package repo

import "github.com/warehouse-kit/inventory-api/internal/models"

// ItemRepository defines the interface for item data operations.
//
// Quantity and status are only written through the StockStore or through
// explicit edits (Update); repositories never recompute them on their own.
type ItemRepository interface {
	Create(item models.Item) (models.Item, error)
	GetAll() ([]models.Item, error)
	GetByID(id int) (models.Item, error)
	Update(item models.Item) (models.Item, error)
	Delete(id int) error
	// Search matches keyword case-insensitively against name and
	// description. A blank keyword returns the full list. Results are
	// ordered by id ascending.
	Search(keyword string) ([]models.Item, error)
	// FindLowStock returns items whose status is not "normal", ordered by
	// id ascending.
	FindLowStock() ([]models.Item, error)
}
