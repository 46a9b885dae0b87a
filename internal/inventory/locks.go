package inventory

import "sync"

// ItemLocks hands out one mutex per item id. Every writer of an item, stock
// operations and manual edits alike, must hold the item's lock so their
// read-modify-write cycles never interleave. Entries are dropped when the
// item is deleted; ids are never reused, so a late waiter on a dropped lock
// only ever finds the item gone.
type ItemLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewItemLocks() *ItemLocks {
	return &ItemLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *ItemLocks) get(id int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

func (l *ItemLocks) forget(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}
