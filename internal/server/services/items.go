package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/items"
	"github.com/google/uuid"
)

// ItemInput is the payload of a new item.
type ItemInput struct {
	Name        string
	Category    string
	Condition   string
	PostedBy    string
	Zipcode     string
	Description string
	Image       string
	AgeDays     float64
}

// ItemUpdate lists the fields a caller may change on an existing item.
type ItemUpdate struct {
	Category    string
	Condition   string
	Description string
	AgeDays     float64
}

type ItemService struct {
	items items.Repository
	now   func() time.Time
	newID func() string
}

func NewItemService(repo items.Repository) *ItemService {
	return &ItemService{
		items: repo,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	list, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return list, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, wrapItemError("error getting item", err)
	}
	return item, nil
}

// Create assigns a fresh id and date_added and derives age_years.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (*models.Item, error) {
	item := &models.Item{
		ID:          s.newID(),
		Name:        in.Name,
		Category:    in.Category,
		Condition:   in.Condition,
		PostedBy:    in.PostedBy,
		Zipcode:     in.Zipcode,
		Description: in.Description,
		Image:       in.Image,
		DateAdded:   s.now().Unix(),
		AgeDays:     in.AgeDays,
		AgeYears:    models.AgeYears(in.AgeDays),
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return created, nil
}

func (s *ItemService) Update(ctx context.Context, id string, in ItemUpdate) (*models.Item, error) {
	item, err := s.items.Update(ctx, id, models.ItemChanges{
		Category:    in.Category,
		Condition:   in.Condition,
		Description: in.Description,
		AgeDays:     in.AgeDays,
		AgeYears:    models.AgeYears(in.AgeDays),
		UpdatedAt:   s.now(),
	})
	if err != nil {
		return nil, wrapItemError("error updating item", err)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return wrapItemError("error deleting item", err)
	}
	return nil
}

func wrapItemError(msg string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
