package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Inventory defines the interface for stock persistence.
// Implementations return copies: callers may mutate returned items freely until SaveDay.
type Inventory interface {
	// Item operations. ListItems returns items in insertion order.
	ListItems(ctx context.Context) ([]*domain.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// SaveDay writes the updated sellIn and quality of every item and records the report atomically
	SaveDay(ctx context.Context, items []*domain.Item, report *domain.DayReport) error
	LastReport(ctx context.Context) (*domain.DayReport, error)

	Ping(ctx context.Context) error
	Close() error
}
