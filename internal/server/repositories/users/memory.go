package users

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. Email uniqueness is
// enforced at insert, like the unique index of the other backends.
type MemoryRepository struct {
	mu       sync.RWMutex
	byEmail  map[string]models.Account
	sequence int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]models.Account)}
}

func (r *MemoryRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *MemoryRepository) Create(_ context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.sequence++
	account.ID = strconv.Itoa(r.sequence)
	r.byEmail[account.Email] = *account

	return account, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) UpdateFirstNameByEmail(_ context.Context, email, firstName string, updatedAt time.Time) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a.FirstName = firstName
	a.UpdatedAt = &updatedAt
	r.byEmail[email] = a

	return &a, nil
}

// Count returns the number of stored accounts.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
