package inventory

import (
	"errors"
	"sync"
	"testing"

	"github.com/warehouse-kit/inventory-api/internal/models"
	"github.com/warehouse-kit/inventory-api/internal/repo"
)

func newReporterFixture(policy DeletePolicy) (*fixture, *Reporter) {
	f := newFixture()
	return f, NewReporter(f.items, f.ledger, policy, nil, f.locks)
}

func TestSetStatus_ManualRestockingThenInboundRecovers(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 4, 5, models.StatusNeedRestock)

	updated, err := reporter.SetStatus(it.ID, "restocking")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != models.StatusRestocking {
		t.Fatalf("expected restocking, got %q", updated.Status)
	}

	// the next stock operation supersedes the manual marker
	after, _, err := f.processor.Apply(it.ID, models.OpInbound, 2, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if after.Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", after.Quantity)
	}
	if after.Status != models.StatusNormal {
		t.Errorf("expected automatic recompute back to normal, got %q", after.Status)
	}
}

func TestSetStatus_RejectsUnknownValue(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 4, 5, models.StatusNeedRestock)

	if _, err := reporter.SetStatus(it.ID, "sold_out"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if _, err := reporter.SetStatus(99, "normal"); !errors.Is(err, repo.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSetStatus_DoesNotRevertConcurrentOperations(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 0, 0, models.StatusNeedRestock)

	const inbounds = 200

	stop := make(chan struct{})
	var overrides sync.WaitGroup
	overrides.Add(1)
	go func() {
		defer overrides.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if _, err := reporter.SetStatus(it.ID, "restocking"); err != nil {
				t.Errorf("SetStatus: %v", err)
				return
			}
		}
	}()

	var ops sync.WaitGroup
	ops.Add(inbounds)
	for i := 0; i < inbounds; i++ {
		go func() {
			defer ops.Done()
			if _, _, err := f.processor.Apply(it.ID, models.OpInbound, 1, ""); err != nil {
				t.Errorf("Apply: %v", err)
			}
		}()
	}
	ops.Wait()
	close(stop)
	overrides.Wait()

	after, _ := f.items.GetByID(it.ID)
	if after.Quantity != inbounds {
		t.Errorf("status overrides reverted stock operations: quantity %d, want %d", after.Quantity, inbounds)
	}
	_, total, _ := f.ledger.ListByItem(it.ID, nil, nil)
	if total != inbounds {
		t.Errorf("expected %d ledger entries, got %d", inbounds, total)
	}
}

func TestUpdateItem_EditsFieldsButNeverQuantity(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 10, 2, models.StatusNormal)

	updated, err := reporter.UpdateItem(it.ID, ItemEdit{
		Name:              "Bolt M10",
		Description:       "zinc plated",
		UnitPrice:         0.25,
		LowStockThreshold: 12,
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "Bolt M10" || updated.UnitPrice != 0.25 {
		t.Errorf("edit not applied: %+v", updated)
	}
	if updated.Quantity != 10 {
		t.Errorf("quantity changed by edit: %d", updated.Quantity)
	}
	// raising the threshold above the quantity re-derives the status
	if updated.Status != models.StatusNeedRestock {
		t.Errorf("expected need_restock after threshold raise, got %q", updated.Status)
	}

	if _, err := reporter.UpdateItem(it.ID, ItemEdit{Name: "x", Status: "sold_out"}); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
	if _, err := reporter.UpdateItem(99, ItemEdit{Name: "x"}); !errors.Is(err, repo.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItem_DoesNotRevertConcurrentOperations(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 0, 0, models.StatusNeedRestock)

	const inbounds = 200

	stop := make(chan struct{})
	var edits sync.WaitGroup
	edits.Add(1)
	go func() {
		defer edits.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			_, err := reporter.UpdateItem(it.ID, ItemEdit{
				Name:        "Bolt M8",
				Description: "zinc plated",
				UnitPrice:   0.15,
			})
			if err != nil {
				t.Errorf("UpdateItem: %v", err)
				return
			}
		}
	}()

	var ops sync.WaitGroup
	ops.Add(inbounds)
	for i := 0; i < inbounds; i++ {
		go func() {
			defer ops.Done()
			if _, _, err := f.processor.Apply(it.ID, models.OpInbound, 1, ""); err != nil {
				t.Errorf("Apply: %v", err)
			}
		}()
	}
	ops.Wait()
	close(stop)
	edits.Wait()

	after, _ := f.items.GetByID(it.ID)
	if after.Quantity != inbounds {
		t.Errorf("item edits reverted stock operations: quantity %d, want %d", after.Quantity, inbounds)
	}
	_, total, _ := f.ledger.ListByItem(it.ID, nil, nil)
	if total != inbounds {
		t.Errorf("expected %d ledger entries, got %d", inbounds, total)
	}
}

func TestLowStockItems_CoversBothNonNormalStatuses(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	f.createItem(t, 10, 2, models.StatusNormal)
	needs := f.createItem(t, 1, 2, models.StatusNeedRestock)
	restocking := f.createItem(t, 1, 2, models.StatusRestocking)

	low, err := reporter.LowStockItems()
	if err != nil {
		t.Fatalf("LowStockItems: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(low))
	}
	if low[0].ID != needs.ID || low[1].ID != restocking.ID {
		t.Errorf("expected ids [%d %d] in order, got [%d %d]",
			needs.ID, restocking.ID, low[0].ID, low[1].ID)
	}
}

func TestDelete_RetainPolicyKeepsLedger(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 10, 2, models.StatusNormal)

	if _, _, err := f.processor.Apply(it.ID, models.OpOutbound, 1, ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if err := reporter.Delete(it.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.items.GetByID(it.ID); !errors.Is(err, repo.ErrItemNotFound) {
		t.Errorf("expected item gone, got %v", err)
	}
	_, total, _ := f.ledger.ListByItem(it.ID, nil, nil)
	if total != 1 {
		t.Errorf("expected ledger history retained after delete, got %d entries", total)
	}
}

func TestDelete_BlockPolicyRefusesWithHistory(t *testing.T) {
	f, reporter := newReporterFixture(DeleteBlockHistory)
	it := f.createItem(t, 10, 2, models.StatusNormal)

	if _, _, err := f.processor.Apply(it.ID, models.OpOutbound, 1, ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := reporter.Delete(it.ID); !errors.Is(err, ErrItemHasHistory) {
		t.Fatalf("expected ErrItemHasHistory, got %v", err)
	}
	if _, err := f.items.GetByID(it.ID); err != nil {
		t.Errorf("item should survive a blocked delete, got %v", err)
	}

	fresh := f.createItem(t, 5, 2, models.StatusNormal)
	if err := reporter.Delete(fresh.ID); err != nil {
		t.Errorf("expected delete of item without history to succeed, got %v", err)
	}
}

func TestDelete_DropsLockRegistryEntry(t *testing.T) {
	f, reporter := newReporterFixture(DeleteRetainHistory)
	it := f.createItem(t, 5, 1, models.StatusNormal)

	if _, _, err := f.processor.Apply(it.ID, models.OpOutbound, 1, ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	f.locks.mu.Lock()
	_, present := f.locks.locks[it.ID]
	f.locks.mu.Unlock()
	if !present {
		t.Fatal("expected a lock entry after a stock operation")
	}

	if err := reporter.Delete(it.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	f.locks.mu.Lock()
	_, present = f.locks.locks[it.ID]
	f.locks.mu.Unlock()
	if present {
		t.Error("lock entry retained for deleted item")
	}
}

func TestDelete_UnknownItem(t *testing.T) {
	_, reporter := newReporterFixture(DeleteRetainHistory)
	if err := reporter.Delete(404); !errors.Is(err, repo.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
