package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
)

// SeedInventory loads the seed file, validates it against the items schema and stocks an
// empty inventory. A stocked inventory is left untouched.
func SeedInventory(ctx context.Context, cfg *config.Config, svc inventory.Service) error {
	if cfg.ItemsSeedPath == "" {
		slog.Info(LogMsgSeedDisabled)
		return nil
	}

	slog.Info(LogMsgSeeding, "path", cfg.ItemsSeedPath)
	items, err := item.LoadItems(item.NewLoaderWithSchema(cfg.ItemsSchemaPath), cfg.ItemsSeedPath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	if _, err := svc.Seed(ctx, items); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeed, err)
	}
	return nil
}
