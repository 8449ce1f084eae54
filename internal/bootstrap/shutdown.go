package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// httpStopper is satisfied by *server.Server
type httpStopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  httpStopper
	Workers *Workers
	Service inventory.Service
	Store   repository.Inventory
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler, pool and nightly worker (no new day advances)
// 3. Inventory service (wait for an in-flight advance)
// 4. Store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if w := components.Workers; w != nil {
		if w.Scheduler != nil {
			w.Scheduler.Stop()
		}
		if w.Pool != nil {
			w.Pool.Stop()
		}
		if w.Nightly != nil {
			if err := w.Nightly.Shutdown(ctx); err != nil {
				slog.Error(LogMsgWorkerShutdownFailed, "error", err)
			}
		}
	}

	if components.Service != nil {
		if err := components.Service.Shutdown(ctx); err != nil {
			slog.Error(LogMsgServiceShutdownFail, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
