package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/server/models"
)

// Repository stores accounts keyed by email.
//
// Create returns common.ErrorAlreadyExists when the backend's unique
// constraint on email rejects the insert. FindByEmail and
// UpdateFirstNameByEmail return common.ErrorNotFound for unknown emails.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	UpdateFirstNameByEmail(ctx context.Context, email, firstName string, updatedAt time.Time) (*models.Account, error)
}
