package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/server"
)

// shutdownTimeout bounds the whole graceful shutdown sequence
const shutdownTimeout = 30 * time.Second

func main() {
	// Load reads .env before the environment is checked
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open inventory store", "error", err)
		os.Exit(1)
	}

	svc := inventory.NewService(store,
		inventory.WithEngine(inventory.NewEngine(inventory.WithWorkers(cfg.EngineWorkers))))

	if err := bootstrap.SeedInventory(ctx, cfg, svc); err != nil {
		slog.Error("Failed to seed inventory", "error", err)
		_ = store.Close()
		os.Exit(1)
	}

	workers := bootstrap.StartWorkers(cfg, svc)
	srv := server.NewServer(cfg.Port, cfg.APIKey, store, svc)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Workers: workers,
		Service: svc,
		Store:   store,
	})
}
