package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Item is a single stock entry. SellIn counts days until the sell-by date and may go negative.
// Category is assigned once at construction and is never re-derived from Name during updates.
type Item struct {
	ID       uuid.UUID `json:"id" db:"item_id"`
	Name     string    `json:"name" db:"name"`
	SellIn   int       `json:"sell_in" db:"sell_in"`
	Quality  int       `json:"quality" db:"quality"`
	Category Category  `json:"category" db:"category"`
}

// NewItem builds an item and classifies it from its exact name
func NewItem(name string, sellIn, quality int) *Item {
	return NewItemWithCategory(name, sellIn, quality, CategoryFromName(name))
}

// NewItemWithCategory builds an item with a category supplied by the caller
func NewItemWithCategory(name string, sellIn, quality int, category Category) *Item {
	return &Item{
		ID:       uuid.New(),
		Name:     name,
		SellIn:   sellIn,
		Quality:  quality,
		Category: category,
	}
}

// Validate checks that the item is well formed for the update engine
func (i *Item) Validate() error {
	if i == nil {
		return ErrNilItem
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidItem, ErrMsgEmptyName)
	}
	if !i.Category.IsClassified() {
		return fmt.Errorf("%w: %q", ErrUnclassifiedItem, i.Name)
	}
	if i.Category.IsLegendary() {
		if i.Quality != LegendaryQuality {
			return fmt.Errorf("%w: legendary item %q must have quality %d, got %d", ErrInvalidItem, i.Name, LegendaryQuality, i.Quality)
		}
		return nil
	}
	if i.Quality < QualityMin || i.Quality > QualityMax {
		return fmt.Errorf("%w: item %q quality %d outside [%d, %d]", ErrInvalidItem, i.Name, i.Quality, QualityMin, QualityMax)
	}
	return nil
}

// IsExpired reports whether the sell-by date has passed
func (i *Item) IsExpired() bool {
	return i.SellIn < 0
}

// String renders the item the way the fixture prints it
func (i *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
