package bootstrap

import (
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Workers holds the background components that advance the inventory
type Workers struct {
	Nightly   *worker.NightlyUpdateWorker
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartWorkers starts the nightly update worker and, when SIMULATED_DAY_INTERVAL is set,
// a scheduler that enqueues an extra day advance on every tick
func StartWorkers(cfg *config.Config, svc inventory.Service) *Workers {
	w := &Workers{
		Nightly: worker.NewNightlyUpdateWorker(svc, cfg.UpdateLocation()),
	}
	w.Nightly.Start()
	slog.Info(LogMsgNightlyWorkerStarted, "location", cfg.UpdateLocation().String())

	if cfg.SimulatedDayInterval > 0 {
		w.Pool = worker.NewPool(worker.DefaultPoolWorkers, worker.DefaultPoolQueueSize)
		w.Pool.Start()
		w.Scheduler = scheduler.New(w.Pool)
		w.Scheduler.Schedule(cfg.SimulatedDayInterval, &worker.AdvanceDayJob{Advancer: svc})
		slog.Info(LogMsgSimulatedDaysEnabled, "interval", cfg.SimulatedDayInterval.String())
	}
	return w
}
