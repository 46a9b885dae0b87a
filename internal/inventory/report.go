package inventory

import (
	"errors"
	"time"

	"github.com/warehouse-kit/inventory-api/internal/models"
	"github.com/warehouse-kit/inventory-api/internal/redissvc"
	"github.com/warehouse-kit/inventory-api/internal/repo"
	"github.com/warehouse-kit/inventory-api/internal/status"
)

var (
	// ErrUnknownStatus is returned for status values outside the
	// recognized set.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrItemHasHistory is returned by Delete under the "block" policy
	// when ledger entries exist for the item.
	ErrItemHasHistory = errors.New("item has recorded operations")
)

// DeletePolicy controls what happens to items with ledger history.
type DeletePolicy string

const (
	// DeleteRetainHistory removes the item and keeps its ledger entries
	// for audit. This matches the behavior the browser client expects.
	DeleteRetainHistory DeletePolicy = "retain"
	// DeleteBlockHistory refuses to delete an item while ledger entries
	// for it exist.
	DeleteBlockHistory DeletePolicy = "block"
)

const lowStockCacheKey = "reports:low-stock"

// Reporter answers read-side queries, applies manual item edits and status
// overrides and enforces the delete retention policy. Manual writes run
// under the same per-item locks as stock operations so neither side can
// revert the other.
type Reporter struct {
	items  repo.ItemRepository
	ledger repo.LedgerRepository
	policy DeletePolicy
	cache  *redissvc.ReportCache
	locks  *ItemLocks
}

func NewReporter(items repo.ItemRepository, ledger repo.LedgerRepository, policy DeletePolicy, cache *redissvc.ReportCache, locks *ItemLocks) *Reporter {
	return &Reporter{items: items, ledger: ledger, policy: policy, cache: cache, locks: locks}
}

// LowStockItems returns items whose status is not "normal", ordered by id.
// The result is served from the redis cache when one is configured.
func (r *Reporter) LowStockItems() ([]models.Item, error) {
	if items, ok := r.cache.GetItems(lowStockCacheKey); ok {
		return items, nil
	}
	items, err := r.items.FindLowStock()
	if err != nil {
		return nil, err
	}
	r.cache.SetItems(lowStockCacheKey, items)
	return items, nil
}

// SetStatus applies a manual status override. The override sticks until the
// next stock operation re-derives the status. The item's lock is held across
// the read and write so a stock operation committing at the same time is
// never reverted.
func (r *Reporter) SetStatus(itemID int, value string) (models.Item, error) {
	parsed, ok := status.Parse(value)
	if !ok {
		return models.Item{}, ErrUnknownStatus
	}

	lock := r.locks.get(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := r.items.GetByID(itemID)
	if err != nil {
		return models.Item{}, err
	}

	item.Status = status.Compute(item.Quantity, item.LowStockThreshold, parsed, true)
	item.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := r.items.Update(item)
	if err != nil {
		return models.Item{}, err
	}
	r.InvalidateCache()
	return updated, nil
}

// ItemEdit carries the editable fields of a manual item update. Quantity is
// deliberately absent; it only changes through stock operations.
type ItemEdit struct {
	Name              string
	Description       string
	UnitPrice         float64
	LowStockThreshold int
	// Status, when non-empty, is applied as a manual override and takes
	// precedence over the automatic recompute a threshold change triggers.
	Status string
}

// UpdateItem applies a manual edit under the item's lock.
func (r *Reporter) UpdateItem(itemID int, edit ItemEdit) (models.Item, error) {
	var override models.Status
	if edit.Status != "" {
		parsed, ok := status.Parse(edit.Status)
		if !ok {
			return models.Item{}, ErrUnknownStatus
		}
		override = parsed
	}

	lock := r.locks.get(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := r.items.GetByID(itemID)
	if err != nil {
		return models.Item{}, err
	}

	thresholdChanged := item.LowStockThreshold != edit.LowStockThreshold
	item.Name = edit.Name
	item.Description = edit.Description
	item.UnitPrice = edit.UnitPrice
	item.LowStockThreshold = edit.LowStockThreshold

	if override != "" {
		item.Status = status.Compute(item.Quantity, item.LowStockThreshold, override, true)
	} else if thresholdChanged {
		item.Status = status.Compute(item.Quantity, item.LowStockThreshold, item.Status, false)
	}
	item.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := r.items.Update(item)
	if err != nil {
		return models.Item{}, err
	}
	r.InvalidateCache()
	return updated, nil
}

// Delete removes an item subject to the retention policy. Ledger entries are
// never deleted; under the default "retain" policy they outlive the item.
// The item's lock registry entry is dropped with the item.
func (r *Reporter) Delete(itemID int) error {
	lock := r.locks.get(itemID)
	lock.Lock()
	defer lock.Unlock()

	if r.policy == DeleteBlockHistory {
		_, total, err := r.ledger.ListByItem(itemID, nil, nil)
		if err != nil {
			return err
		}
		if total > 0 {
			return ErrItemHasHistory
		}
	}
	if err := r.items.Delete(itemID); err != nil {
		return err
	}
	r.locks.forget(itemID)
	r.InvalidateCache()
	return nil
}

// InvalidateCache drops the cached low-stock report. Called after every
// mutation that can change an item's status or membership in the report.
func (r *Reporter) InvalidateCache() {
	r.cache.Invalidate(lowStockCacheKey)
}
