package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestStore_InsertListOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	names := []string{"+5 Dexterity Vest", "Aged Brie", "Elixir of the Mongoose"}
	for _, name := range names {
		require.NoError(t, store.InsertItem(ctx, domain.NewItem(name, 5, 5)))
	}

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, names[i], item.Name)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	item := domain.NewItem("Aged Brie", 2, 0)
	require.NoError(t, store.InsertItem(ctx, item))

	item.Quality = 40
	listed, err := store.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, listed[0].Quality, "caller mutation after insert must not leak in")

	listed[0].Quality = 30
	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quality, "mutating a listed item must not change the store")
}

func TestStore_InsertDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	item := domain.NewItem("Aged Brie", 2, 0)

	require.NoError(t, store.InsertItem(ctx, item))
	assert.ErrorIs(t, store.InsertItem(ctx, item), domain.ErrInvalidItem)
	assert.ErrorIs(t, store.InsertItem(ctx, nil), domain.ErrNilItem)
}

func TestStore_DeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	a := domain.NewItem("a", 1, 1)
	b := domain.NewItem("b", 1, 1)
	c := domain.NewItem("c", 1, 1)
	for _, item := range []*domain.Item{a, b, c} {
		require.NoError(t, store.InsertItem(ctx, item))
	}

	require.NoError(t, store.DeleteItem(ctx, b.ID))
	assert.ErrorIs(t, store.DeleteItem(ctx, b.ID), domain.ErrItemNotFound)

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "c", items[1].Name)

	got, err := store.GetItem(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Name)
}

func TestStore_GetMissing(t *testing.T) {
	_, err := NewStore().GetItem(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStore_SaveDay(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	item := domain.NewItem("Aged Brie", 2, 0)
	require.NoError(t, store.InsertItem(ctx, item))

	_, err := store.LastReport(ctx)
	assert.ErrorIs(t, err, domain.ErrNoReport)

	item.SellIn, item.Quality = 1, 1
	report := domain.NewDayReport(1, time.Now(), []*domain.Item{item})
	require.NoError(t, store.SaveDay(ctx, []*domain.Item{item}, report))

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SellIn)
	assert.Equal(t, 1, got.Quality)

	last, err := store.LastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, last.Day)
	assert.Equal(t, 1, last.ByCategory[domain.CategoryAged])
}

func TestStore_SaveDayUnknownItemWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	known := domain.NewItem("Aged Brie", 2, 0)
	require.NoError(t, store.InsertItem(ctx, known))

	updated := *known
	updated.Quality = 9
	stranger := domain.NewItem("Stranger", 1, 1)

	err := store.SaveDay(ctx, []*domain.Item{&updated, stranger}, domain.NewDayReport(1, time.Now(), nil))
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	got, err := store.GetItem(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quality)
	_, err = store.LastReport(ctx)
	assert.ErrorIs(t, err, domain.ErrNoReport)
}
