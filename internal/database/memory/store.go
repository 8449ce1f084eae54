package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// Store keeps the inventory in process memory. Used by tests and the simulate command.
type Store struct {
	mu      sync.RWMutex
	items   []*domain.Item
	index   map[uuid.UUID]int
	reports []*domain.DayReport
}

var _ repository.Inventory = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{index: make(map[uuid.UUID]int)}
}

// ListItems returns copies of all items in insertion order
func (s *Store) ListItems(_ context.Context) ([]*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*domain.Item, len(s.items))
	for i, item := range s.items {
		clone := *item
		items[i] = &clone
	}
	return items, nil
}

// GetItem returns a copy of a single item
func (s *Store) GetItem(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	clone := *s.items[pos]
	return &clone, nil
}

// InsertItem appends an item. Duplicate IDs are rejected.
func (s *Store) InsertItem(_ context.Context, item *domain.Item) error {
	if item == nil {
		return domain.ErrNilItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[item.ID]; exists {
		return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidItem, item.ID)
	}
	clone := *item
	s.index[item.ID] = len(s.items)
	s.items = append(s.items, &clone)
	return nil
}

// DeleteItem removes an item and keeps the order of the rest
func (s *Store) DeleteItem(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	s.items = slices.Delete(s.items, pos, pos+1)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return nil
}

// SaveDay applies the new values and appends the report. Nothing is written if any item is unknown.
func (s *Store) SaveDay(_ context.Context, items []*domain.Item, report *domain.DayReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := make([]int, len(items))
	for i, item := range items {
		if item == nil {
			return domain.ErrNilItem
		}
		pos, ok := s.index[item.ID]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
		}
		positions[i] = pos
	}

	for i, item := range items {
		stored := s.items[positions[i]]
		stored.SellIn = item.SellIn
		stored.Quality = item.Quality
	}
	if report != nil {
		s.reports = append(s.reports, cloneReport(report))
	}
	return nil
}

// LastReport returns the most recent day report
func (s *Store) LastReport(_ context.Context) (*domain.DayReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reports) == 0 {
		return nil, domain.ErrNoReport
	}
	return cloneReport(s.reports[len(s.reports)-1]), nil
}

// Ping always succeeds
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}

func cloneReport(r *domain.DayReport) *domain.DayReport {
	clone := *r
	clone.ByCategory = maps.Clone(r.ByCategory)
	return &clone
}
