package items

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
)

// MemoryRepository keeps items in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Item)}
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Item, 0, len(r.items))
	for _, it := range r.items {
		it := it
		result = append(result, &it)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DateAdded != result[j].DateAdded {
			return result[i].DateAdded < result[j].DateAdded
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &it, nil
}

func (r *MemoryRepository) Create(_ context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.items[item.ID] = *item
	return item, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, c models.ItemChanges) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	it.Category = c.Category
	it.Condition = c.Condition
	it.Description = c.Description
	it.AgeDays = c.AgeDays
	it.AgeYears = c.AgeYears
	updatedAt := c.UpdatedAt
	it.UpdatedAt = &updatedAt
	r.items[id] = it

	return &it, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
