package repo

import "github.com/warehouse-kit/inventory-api/internal/models"

// InMemoryStockStore commits a stock operation against the in-memory
// repositories. Both repository locks are held for the duration of the
// commit, so readers see either the full pre- or post-operation state.
type InMemoryStockStore struct {
	items  *InMemoryItemRepository
	ledger *InMemoryLedgerRepository
}

func NewInMemoryStockStore(items *InMemoryItemRepository, ledger *InMemoryLedgerRepository) *InMemoryStockStore {
	return &InMemoryStockStore{items: items, ledger: ledger}
}

// ApplyOperation implements StockStore.
func (s *InMemoryStockStore) ApplyOperation(item models.Item, entry models.StockOperation) (models.Item, models.StockOperation, error) {
	s.items.mu.Lock()
	defer s.items.mu.Unlock()
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	for i, it := range s.items.items {
		if it.ID == item.ID {
			s.items.items[i] = item
			stored := s.ledger.appendLocked(entry)
			return item, stored, nil
		}
	}
	return models.Item{}, models.StockOperation{}, ErrItemNotFound
}
