package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// ErrShutDown is returned by mutating calls after Shutdown
var ErrShutDown = errors.New(ErrMsgServiceShutDown)

// Service defines the inventory feature interface
type Service interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	AdvanceDay(ctx context.Context) (*domain.DayReport, error)
	AdvanceDays(ctx context.Context, days int) ([]*domain.DayReport, error)
	LastReport(ctx context.Context) (*domain.DayReport, error)
	Seed(ctx context.Context, items []*domain.Item) (int, error)
	Shutdown(ctx context.Context) error
}

// ServiceOption configures the service
type ServiceOption func(*service)

// WithEngine replaces the default sequential engine
func WithEngine(engine *Engine) ServiceOption {
	return func(s *service) {
		s.engine = engine
	}
}

// WithClock overrides the time source used for reports
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo   repository.Inventory
	engine *Engine
	now    func() time.Time

	// mu serialises every mutation of the collection
	mu     sync.Mutex
	closed bool
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		engine: NewEngine(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListItems returns the current stock in insertion order
func (s *service) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// GetItem returns a single item
func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return s.repo.GetItem(ctx, id)
}

// AddItem validates and stores a new item, assigning an ID when none is set
func (s *service) AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrShutDown
	}

	if err := s.repo.InsertItem(ctx, item); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertItemFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemAdded, "item_id", item.ID, "name", item.Name, "category", item.Category.String())
	return item, nil
}

// RemoveItem deletes an item from stock
func (s *service) RemoveItem(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrShutDown
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemRemoved, "item_id", id)
	return nil
}

// AdvanceDay moves the whole inventory forward by one day and records the report
func (s *service) AdvanceDay(ctx context.Context) (*domain.DayReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrShutDown
	}
	return s.advanceLocked(ctx)
}

// AdvanceDays advances one day at a time, persisting each, and stops at the first failure
func (s *service) AdvanceDays(ctx context.Context, days int) ([]*domain.DayReport, error) {
	if days < 1 || days > MaxDaysPerAdvance {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", domain.ErrInvalidDayCount, days, MaxDaysPerAdvance)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrShutDown
	}

	reports := make([]*domain.DayReport, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := s.advanceLocked(ctx)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (s *service) advanceLocked(ctx context.Context) (*domain.DayReport, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	report, err := s.runDay(ctx, start)
	if err != nil {
		metrics.DayAdvanceFailures.Inc()
		log.Error(LogMsgAdvanceFailed, "error", err)
		return nil, err
	}

	metrics.RecordDay(report)
	log.Info(LogMsgDayAdvanced,
		"day", report.Day,
		"items_updated", report.ItemsUpdated,
		"items_expired", report.ItemsExpired,
		"duration", report.Duration)
	return report, nil
}

func (s *service) runDay(ctx context.Context, start time.Time) (*domain.DayReport, error) {
	day, err := s.nextDay(ctx)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgAdvancingDay, "day", day)

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}

	if err := s.engine.AdvanceOneDay(items); err != nil {
		return nil, err
	}

	report := domain.NewDayReport(day, start, items)
	report.Duration = s.now().Sub(start)

	if err := s.repo.SaveDay(ctx, items, report); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveDayFailed, day, err)
	}
	return report, nil
}

func (s *service) nextDay(ctx context.Context) (int, error) {
	last, err := s.repo.LastReport(ctx)
	if errors.Is(err, domain.ErrNoReport) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Day + 1, nil
}

// LastReport returns the most recent day report
func (s *service) LastReport(ctx context.Context) (*domain.DayReport, error) {
	return s.repo.LastReport(ctx)
}

// Seed stocks an empty inventory. An already stocked inventory is left alone.
func (s *service) Seed(ctx context.Context, items []*domain.Item) (int, error) {
	log := logger.FromContext(ctx)

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return 0, fmt.Errorf("%w: "+ErrMsgItemAtIndex, err, i)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrShutDown
	}

	existing, err := s.repo.ListItems(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	if len(existing) > 0 {
		log.Info(LogMsgSeedSkipped, "existing", len(existing))
		return 0, nil
	}

	for _, item := range items {
		if err := s.repo.InsertItem(ctx, item); err != nil {
			return 0, fmt.Errorf(ErrMsgInsertItemFailed, err)
		}
	}
	log.Info(LogMsgSeeded, "items", len(items))
	return len(items), nil
}

// Shutdown waits for an in-flight advance to finish and rejects further mutations
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
