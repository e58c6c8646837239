package repomanager

import (
	"context"

	"github.com/dmitrijs2005/secondchance/internal/server/repositories/items"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Data is lost
// on exit.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	items *items.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		items: items.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *MemoryRepositoryManager) Close(context.Context) error {
	return nil
}
