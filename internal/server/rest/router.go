// Package rest exposes the account and item services over HTTP using gin.
package rest

import (
	"context"

	"github.com/dmitrijs2005/secondchance/internal/logging"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
	"github.com/dmitrijs2005/secondchance/internal/server/services"
	"github.com/dmitrijs2005/secondchance/internal/server/validation"
	"github.com/gin-gonic/gin"
)

type AccountService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	UpdateProfile(ctx context.Context, email, name string) (*services.Session, error)
}

type ItemService interface {
	List(ctx context.Context) ([]*models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, in services.ItemInput) (*models.Item, error)
	Update(ctx context.Context, id string, in services.ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, id string) error
}

// Handler holds the dependencies shared by all routes.
type Handler struct {
	logger    logging.Logger
	accounts  AccountService
	items     ItemService
	validator *validation.Validator
}

func NewHandler(l logging.Logger, accounts AccountService, items ItemService, v *validation.Validator) *Handler {
	return &Handler{
		logger:    l.With("module", "rest"),
		accounts:  accounts,
		items:     items,
		validator: v,
	}
}

// Router builds the gin engine with request logging, panic recovery and
// every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(h.requestLogger(), gin.Recovery())

	r.POST("/register", h.register)
	r.POST("/login", h.login)
	r.PUT("/update", h.updateProfile)

	items := r.Group("/items")
	{
		items.GET("", h.listItems)
		items.POST("", h.createItem)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}

	return r
}
