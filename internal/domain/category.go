package domain

import "fmt"

// Category is the tagged variant that selects an item's daily update rule.
// The zero value is Unclassified and is rejected by the update engine.
type Category int

const (
	CategoryUnclassified Category = iota
	CategoryOrdinary
	CategoryAged
	CategoryEventTicket
	CategoryLegendary
)

// Categories lists every assignable category in display order
var Categories = []Category{
	CategoryOrdinary,
	CategoryAged,
	CategoryEventTicket,
	CategoryLegendary,
}

var categoryText = map[Category]string{
	CategoryUnclassified: CategoryTextUnclassified,
	CategoryOrdinary:     CategoryTextOrdinary,
	CategoryAged:         CategoryTextAged,
	CategoryEventTicket:  CategoryTextEventTicket,
	CategoryLegendary:    CategoryTextLegendary,
}

// CategoryFromName classifies an item by its exact name. Unknown names are ordinary.
func CategoryFromName(name string) Category {
	switch name {
	case NameSulfuras:
		return CategoryLegendary
	case NameAgedBrie:
		return CategoryAged
	case NameBackstagePasses:
		return CategoryEventTicket
	default:
		return CategoryOrdinary
	}
}

// ParseCategory converts a text value back into a Category
func ParseCategory(s string) (Category, error) {
	for c, text := range categoryText {
		if text == s {
			return c, nil
		}
	}
	return CategoryUnclassified, fmt.Errorf("%w: unknown category %q", ErrInvalidItem, s)
}

// String returns the text form of the category
func (c Category) String() string {
	if text, ok := categoryText[c]; ok {
		return text
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// IsClassified reports whether the category was assigned
func (c Category) IsClassified() bool {
	return c > CategoryUnclassified && c <= CategoryLegendary
}

// IsLegendary reports whether items of this category are exempt from updates
func (c Category) IsLegendary() bool {
	return c == CategoryLegendary
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
