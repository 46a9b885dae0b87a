package repo

import (
	"strings"
	"sync"

	"github.com/warehouse-kit/inventory-api/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// The slice stays ordered by id because ids are assigned in creation order
// and deletes preserve order.
type InMemoryItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

// Create adds a new item to the repository.
func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all items ordered by id.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID retrieves an item by its ID.
func (r *InMemoryItemRepository) GetByID(id int) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Update replaces an existing item in the repository.
func (r *InMemoryItemRepository) Update(item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Delete removes an item from the repository by its ID.
func (r *InMemoryItemRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Search matches keyword case-insensitively against name and description.
func (r *InMemoryItemRepository) Search(keyword string) ([]models.Item, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return r.GetAll()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	kw := strings.ToLower(keyword)
	matched := []models.Item{}
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Name), kw) ||
			strings.Contains(strings.ToLower(it.Description), kw) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// FindLowStock returns items whose status is not "normal".
func (r *InMemoryItemRepository) FindLowStock() ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	low := []models.Item{}
	for _, it := range r.items {
		if it.Status != models.StatusNormal {
			low = append(low, it)
		}
	}
	return low, nil
}

func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = []models.Item{}
	r.nextID = 1
}
