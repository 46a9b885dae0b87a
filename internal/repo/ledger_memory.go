package repo

import (
	"sync"
	"time"

	"github.com/warehouse-kit/inventory-api/internal/models"
)

// InMemoryLedgerRepository is an in-memory implementation of
// LedgerRepository. Entries are kept in append order, which equals
// chronological order with ties already broken by id.
type InMemoryLedgerRepository struct {
	mu      sync.RWMutex
	entries []models.StockOperation
	nextID  int
}

// NewInMemoryLedgerRepository creates a new instance of InMemoryLedgerRepository.
func NewInMemoryLedgerRepository() *InMemoryLedgerRepository {
	return &InMemoryLedgerRepository{
		entries: []models.StockOperation{},
		nextID:  1,
	}
}

// Append stores the entry, assigning its id and timestamp.
func (r *InMemoryLedgerRepository) Append(entry models.StockOperation) (models.StockOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.appendLocked(entry), nil
}

// appendLocked assumes r.mu is held for writing.
func (r *InMemoryLedgerRepository) appendLocked(entry models.StockOperation) models.StockOperation {
	entry.ID = r.nextID
	r.nextID++
	entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	r.entries = append(r.entries, entry)
	return entry
}

// ListByItem returns one item's entries in chronological order plus the
// total count before paging.
func (r *InMemoryLedgerRepository) ListByItem(itemID int, offset, limit *int) ([]models.StockOperation, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.StockOperation{}
	for _, e := range r.entries {
		if e.ItemID == itemID {
			filtered = append(filtered, e)
		}
	}
	total := len(filtered)

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, total)
	}
	end := total
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, total)
	}
	return filtered[start:end], total, nil
}

func (r *InMemoryLedgerRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = []models.StockOperation{}
	r.nextID = 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
