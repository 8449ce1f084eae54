package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// DayAdvancer is the part of the inventory service the workers drive
type DayAdvancer interface {
	AdvanceDay(ctx context.Context) (*domain.DayReport, error)
}

// NightlyUpdateWorker advances the inventory once per day at 00:00 in its location
type NightlyUpdateWorker struct {
	advancer DayAdvancer
	location *time.Location
	now      func() time.Time
	timer    *time.Timer
	lastRun  time.Time // midnight most recently claimed by fire
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewNightlyUpdateWorker creates a worker that fires at local midnight in location
func NewNightlyUpdateWorker(advancer DayAdvancer, location *time.Location) *NightlyUpdateWorker {
	if location == nil {
		location = time.UTC
	}
	return &NightlyUpdateWorker{
		advancer: advancer,
		location: location,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first update
func (w *NightlyUpdateWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next midnight that has not been handled yet
func (w *NightlyUpdateWorker) scheduleNext() {
	now := w.now()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// An early fire claims the coming midnight, so count from it
	from := now
	if w.lastRun.After(from) {
		from = w.lastRun
	}
	duration := nextUpdateAt(from, w.location).Sub(now)

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > StandbyThreshold {
		waitDuration := duration - StandbyWakeLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgNightlyUpdateStandby, "next_check_at", now.Add(waitDuration).In(w.location))
		return
	}

	w.timer = time.AfterFunc(duration, w.fire)
	w.mu.Unlock()

	log.Info(LogMsgNightlyUpdateApproach, "next_update_at", now.Add(duration).In(w.location))
}

// fire runs at the end of the final approach
func (w *NightlyUpdateWorker) fire() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	// Jitter protection: an early fire reschedules for the remainder.
	// More than LateFireWindow remaining means midnight has just passed.
	now := w.now()
	next := nextUpdateAt(now, w.location)
	rem := next.Sub(now)
	if rem > EarlyFireTolerance && rem < LateFireWindow {
		w.scheduleNext()
		return
	}

	midnight := next
	if rem > EarlyFireTolerance {
		midnight = next.AddDate(0, 0, -1)
	}
	if w.claim(midnight) {
		w.executeUpdate()
	} else {
		logger.FromContext(context.Background()).Info(LogMsgNightlyUpdateAlreadyRun, "midnight", midnight)
	}
	w.scheduleNext()
}

// claim records midnight as handled. It reports false if that midnight already ran.
func (w *NightlyUpdateWorker) claim(midnight time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !midnight.After(w.lastRun) {
		return false
	}
	w.lastRun = midnight
	return true
}

// executeUpdate advances the inventory in a tracked goroutine
func (w *NightlyUpdateWorker) executeUpdate() {
	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)
		log.Info(LogMsgNightlyUpdateStarting)

		report, err := w.advancer.AdvanceDay(ctx)
		if err != nil {
			log.Error(LogMsgNightlyUpdateFailed, "error", err)
			return
		}

		log.Info(LogMsgNightlyUpdateCompleted,
			"day", report.Day,
			"items_updated", report.ItemsUpdated,
			"items_expired", report.ItemsExpired)
	}()
}

// Shutdown cancels the pending timer and waits for any in-flight update to complete
func (w *NightlyUpdateWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgNightlyShuttingDown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info(LogMsgNightlyCancelledPending)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgNightlyShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgNightlyShutdownTimeout)
		return ctx.Err()
	}
}

// nextUpdateAt returns the first 00:00 in location strictly after now
func nextUpdateAt(now time.Time, location *time.Location) time.Time {
	local := now.In(location)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
