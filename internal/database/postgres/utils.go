package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollback, "error", err)
	}
}

// scanItem reads one inventory_items row selected by queryListItems or queryGetItem
func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item     domain.Item
		id       string
		category string
	)
	if err := row.Scan(&id, &item.Name, &item.SellIn, &item.Quality, &category); err != nil {
		return nil, err
	}

	var err error
	if item.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanItem, err)
	}
	if item.Category, err = domain.ParseCategory(category); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanItem, err)
	}
	return &item, nil
}
