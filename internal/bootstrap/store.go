package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/database"
	"github.com/osse101/GildedRose_Go/internal/database/memory"
	"github.com/osse101/GildedRose_Go/internal/database/postgres"
	"github.com/osse101/GildedRose_Go/internal/database/sqlite"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// OpenStore creates the inventory store selected by STORE_DRIVER
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Inventory, error) {
	ctx, cancel := context.WithTimeout(ctx, StoreOpenTimeout)
	defer cancel()

	var (
		store repository.Inventory
		err   error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store = memory.NewStore()
	case config.StoreDriverSQLite:
		store, err = sqlite.NewStore(cfg.SQLitePath)
	case config.StoreDriverPostgres:
		store, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Inventory, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}

	repo := postgres.NewInventoryRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}
