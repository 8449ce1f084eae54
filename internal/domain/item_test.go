package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewItem_ClassifiesOnce(t *testing.T) {
	item := NewItem(NameAgedBrie, 2, 0)
	assert.Equal(t, CategoryAged, item.Category)

	// Renaming does not reclassify
	item.Name = NameSulfuras
	assert.Equal(t, CategoryAged, item.Category)
}

func TestNewItemWithCategory(t *testing.T) {
	item := NewItemWithCategory("Vintage Cheddar", 5, 10, CategoryAged)
	assert.Equal(t, CategoryAged, item.Category)
	assert.NotEqual(t, [16]byte{}, [16]byte(item.ID))
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    *Item
		wantErr error
	}{
		{"ordinary ok", NewItem("Generic Item", 10, 20), nil},
		{"ordinary at bounds", NewItem("Generic Item", 0, 50), nil},
		{"legendary ok", NewItem(NameSulfuras, 0, 80), nil},
		{"nil item", nil, ErrNilItem},
		{"empty name", &Item{Name: " ", Category: CategoryOrdinary}, ErrInvalidItem},
		{"unclassified", &Item{Name: "Generic Item", Quality: 10}, ErrUnclassifiedItem},
		{"legendary wrong quality", NewItem(NameSulfuras, 0, 50), ErrInvalidItem},
		{"quality above max", NewItem(NameAgedBrie, 3, 51), ErrInvalidItem},
		{"negative quality", NewItem("Generic Item", 3, -1), ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "Aged Brie, 2, 0", NewItem(NameAgedBrie, 2, 0).String())
}

func TestNewDayReport_MixedItems(t *testing.T) {
	items := []*Item{
		NewItem("Generic Item", -1, 0),
		NewItem(NameAgedBrie, 3, 10),
		NewItem(NameSulfuras, -1, 80),
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	report := NewDayReport(4, now, items)

	assert.Equal(t, 4, report.Day)
	assert.Equal(t, now, report.AdvancedAt)
	assert.Equal(t, 2, report.ItemsUpdated)
	assert.Equal(t, 2, report.ItemsExpired)
	assert.Equal(t, 1, report.ByCategory[CategoryOrdinary])
	assert.Equal(t, 1, report.ByCategory[CategoryAged])
	assert.Equal(t, 1, report.ByCategory[CategoryLegendary])
}
