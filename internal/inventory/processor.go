package inventory

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/warehouse-kit/inventory-api/internal/models"
	"github.com/warehouse-kit/inventory-api/internal/repo"
	"github.com/warehouse-kit/inventory-api/internal/status"
)

var (
	// ErrInvalidQuantity is returned for operations with quantity <= 0.
	ErrInvalidQuantity = errors.New("operation quantity must be greater than zero")
	// ErrUnknownOperationType is returned for operation types other than
	// inbound, outbound or adjustment.
	ErrUnknownOperationType = errors.New("unknown operation type")
	// ErrInsufficientStock is returned when an outbound operation would
	// drive the quantity negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Processor applies stock operations. Operations against the same item are
// serialized through the shared per-item lock registry, which manual edits
// hold as well; operations against different items run in parallel. Each
// successful operation commits quantity, status and the ledger entry as one
// unit through the StockStore.
type Processor struct {
	items repo.ItemRepository
	store repo.StockStore
	locks *ItemLocks
}

func NewProcessor(items repo.ItemRepository, store repo.StockStore, locks *ItemLocks) *Processor {
	return &Processor{
		items: items,
		store: store,
		locks: locks,
	}
}

// Apply validates and applies one stock operation against an item.
//
// Deltas: inbound adds quantity, outbound subtracts it, adjustment sets the
// absolute quantity. Any failure leaves quantity, status and ledger
// untouched.
func (p *Processor) Apply(itemID int, opType string, quantity int, notes string) (models.Item, models.StockOperation, error) {
	if quantity <= 0 {
		return models.Item{}, models.StockOperation{}, ErrInvalidQuantity
	}
	switch opType {
	case models.OpInbound, models.OpOutbound, models.OpAdjustment:
	default:
		return models.Item{}, models.StockOperation{}, ErrUnknownOperationType
	}

	lock := p.locks.get(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := p.items.GetByID(itemID)
	if err != nil {
		return models.Item{}, models.StockOperation{}, err
	}

	newQty := item.Quantity
	switch opType {
	case models.OpInbound:
		newQty += quantity
	case models.OpOutbound:
		if quantity > item.Quantity {
			return models.Item{}, models.StockOperation{}, ErrInsufficientStock
		}
		newQty -= quantity
	case models.OpAdjustment:
		newQty = quantity
	}

	item.Quantity = newQty
	item.Status = status.Compute(newQty, item.LowStockThreshold, item.Status, false)
	item.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	entry := models.StockOperation{
		ItemID:            itemID,
		OperationType:     opType,
		Quantity:          quantity,
		ResultingQuantity: newQty,
		Notes:             notes,
	}

	item, stored, err := p.store.ApplyOperation(item, entry)
	if err != nil {
		return models.Item{}, models.StockOperation{}, err
	}

	if item.Status != models.StatusNormal {
		log.Warn().
			Int("item_id", item.ID).
			Str("name", item.Name).
			Int("quantity", item.Quantity).
			Int("threshold", item.LowStockThreshold).
			Msg("item at or below low-stock threshold")
	}
	return item, stored, nil
}
