package items

import (
	"context"

	"github.com/dmitrijs2005/secondchance/internal/server/models"
)

// Repository stores catalog items. Get, Update and Delete return
// common.ErrorNotFound for an unknown id.
type Repository interface {
	List(ctx context.Context) ([]*models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, id string, changes models.ItemChanges) (*models.Item, error)
	Delete(ctx context.Context, id string) error
}
