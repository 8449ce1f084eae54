package inventory

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Engine provides the pure nightly update logic (no storage, no clock).
// Items are independent, so the engine may fan out across goroutines; each item is owned by exactly one.
type Engine struct {
	workers int
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWorkers sets how many goroutines may update items concurrently
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEngine creates a new update engine
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AdvanceOneDay moves every item forward by one day in place.
// A nil or unclassified item is a precondition violation: the call fails before any item is touched.
func (e *Engine) AdvanceOneDay(items []*domain.Item) error {
	if err := checkItems(items); err != nil {
		return err
	}

	partitions := e.partitions(len(items))
	if partitions <= 1 {
		for _, item := range items {
			advanceItem(item)
		}
		return nil
	}

	var g errgroup.Group
	size := (len(items) + partitions - 1) / partitions
	for start := 0; start < len(items); start += size {
		chunk := items[start:min(start+size, len(items))]
		g.Go(func() error {
			for _, item := range chunk {
				advanceItem(item)
			}
			return nil
		})
	}
	return g.Wait()
}

// AdvanceDays runs AdvanceOneDay the given number of times.
// Tier thresholds are evaluated every day, so there is no closed-form shortcut.
func (e *Engine) AdvanceDays(items []*domain.Item, days int) error {
	if days < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDayCount, days)
	}
	for day := 0; day < days; day++ {
		if err := e.AdvanceOneDay(items); err != nil {
			return err
		}
	}
	return nil
}

// partitions decides how many goroutines to use for n items
func (e *Engine) partitions(n int) int {
	if e.workers <= 1 || n < 2*MinItemsPerWorker {
		return 1
	}
	return min(e.workers, n/MinItemsPerWorker)
}

// checkItems rejects malformed input up front so a failed call leaves the collection untouched.
// Items sharing a pointer would be updated twice, which is also rejected.
func checkItems(items []*domain.Item) error {
	seen := make(map[*domain.Item]int, len(items))
	for i, item := range items {
		if item == nil {
			return fmt.Errorf("%w: "+ErrMsgItemAtIndex, domain.ErrNilItem, i)
		}
		if !item.Category.IsClassified() {
			return fmt.Errorf("%w: "+ErrMsgItemAtIndex+" (%q)", domain.ErrUnclassifiedItem, i, item.Name)
		}
		if first, dup := seen[item]; dup {
			return fmt.Errorf("%w: "+ErrMsgItemAtIndex+" repeats index %d", domain.ErrInvalidItem, i, first)
		}
		seen[item] = i
	}
	return nil
}
