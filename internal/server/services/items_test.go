package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/items"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingItemsRepo struct {
	items.Repository
	err error
}

func (f *failingItemsRepo) List(context.Context) ([]*models.Item, error) { return nil, f.err }
func (f *failingItemsRepo) Get(context.Context, string) (*models.Item, error) {
	return nil, f.err
}
func (f *failingItemsRepo) Create(context.Context, *models.Item) (*models.Item, error) {
	return nil, f.err
}
func (f *failingItemsRepo) Update(context.Context, string, models.ItemChanges) (*models.Item, error) {
	return nil, f.err
}
func (f *failingItemsRepo) Delete(context.Context, string) error { return f.err }

func newItemService(now time.Time) *ItemService {
	s := NewItemService(items.NewMemoryRepository())
	s.now = func() time.Time { return now }
	n := 0
	s.newID = func() string {
		n++
		return []string{"", "id-a", "id-b", "id-c"}[n]
	}
	return s
}

func TestItemService_CreateDerivesFields(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := newItemService(now)

	got, err := s.Create(context.Background(), ItemInput{
		Name: "Chair", Category: "Living", Condition: "Used", PostedBy: "u1",
		Zipcode: "10001", Description: "oak", Image: "/images/chair.png", AgeDays: 400,
	})
	require.NoError(t, err)

	want := &models.Item{
		ID: "id-a", Name: "Chair", Category: "Living", Condition: "Used", PostedBy: "u1",
		Zipcode: "10001", Description: "oak", Image: "/images/chair.png",
		DateAdded: 1700000000, AgeDays: 400, AgeYears: 1.1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Create mismatch (-want +got):\n%s", diff)
	}
}

func TestItemService_UpdateOnlyTouchesMutableFields(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := newItemService(now)
	ctx := context.Background()

	_, err := s.Create(ctx, ItemInput{Name: "Chair", Category: "Living", PostedBy: "u1", AgeDays: 10})
	require.NoError(t, err)

	later := now.Add(time.Hour)
	s.now = func() time.Time { return later }

	got, err := s.Update(ctx, "id-a", ItemUpdate{Category: "Office", Condition: "Worn", Description: "d", AgeDays: 730})
	require.NoError(t, err)
	assert.Equal(t, "Chair", got.Name)
	assert.Equal(t, "u1", got.PostedBy)
	assert.Equal(t, int64(1700000000), got.DateAdded)
	assert.Equal(t, "Office", got.Category)
	assert.Equal(t, 2.0, got.AgeYears)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(later))
}

func TestItemService_ListGetDelete(t *testing.T) {
	s := newItemService(time.Unix(1, 0))
	ctx := context.Background()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, _ = s.Create(ctx, ItemInput{Name: "A"})
	_, _ = s.Create(ctx, ItemInput{Name: "B"})

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := s.Get(ctx, "id-b")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)

	require.NoError(t, s.Delete(ctx, "id-b"))
	_, err = s.Get(ctx, "id-b")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "id-b"), common.ErrorNotFound)
	_, err = s.Update(ctx, "id-b", ItemUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestItemService_StoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	s := NewItemService(&failingItemsRepo{err: boom})
	ctx := context.Background()

	_, err := s.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.Get(ctx, "x")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error getting item")
	_, err = s.Create(ctx, ItemInput{})
	assert.ErrorIs(t, err, boom)
	_, err = s.Update(ctx, "x", ItemUpdate{})
	assert.ErrorIs(t, err, boom)
	err = s.Delete(ctx, "x")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, common.ErrorNotFound))
}

func TestNewItemService_GeneratesUUIDs(t *testing.T) {
	s := NewItemService(items.NewMemoryRepository())

	a, err := s.Create(context.Background(), ItemInput{Name: "A"})
	require.NoError(t, err)
	b, err := s.Create(context.Background(), ItemInput{Name: "B"})
	require.NoError(t, err)

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}
