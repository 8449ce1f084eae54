package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GildedRose_Go/internal/database/schema"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

// EnsureSchema creates the inventory tables if they do not exist
func (r *InventoryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema.SchemaSQL); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplySchema, err)
	}
	return nil
}

// ListItems retrieves all items in insertion order
func (r *InventoryRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	rows, err := r.pool.Query(ctx, queryListItems)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// GetItem retrieves an item by ID
func (r *InventoryRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := scanItem(r.pool.QueryRow(ctx, queryGetItem, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// InsertItem appends an item. Duplicate IDs are rejected.
func (r *InventoryRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	if item == nil {
		return domain.ErrNilItem
	}

	tag, err := r.pool.Exec(ctx, queryInsertItem,
		item.ID.String(), item.Name, item.SellIn, item.Quality, item.Category.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidItem, item.ID)
	}
	return nil
}

// DeleteItem removes an item by ID
func (r *InventoryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, queryDeleteItem, id.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return nil
}

// SaveDay updates every item and records the report in one transaction
func (r *InventoryRepository) SaveDay(ctx context.Context, items []*domain.Item, report *domain.DayReport) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, item := range items {
		if item == nil {
			return domain.ErrNilItem
		}
		batch.Queue(queryUpdateItem, item.SellIn, item.Quality, item.ID.String())
	}

	results := tx.SendBatch(ctx, batch)
	for _, item := range items {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpdateItem, item.ID, err)
		}
		if tag.RowsAffected() == 0 {
			_ = results.Close()
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}

	if report != nil {
		byCategory, err := json.Marshal(report.ByCategory)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertReport, err)
		}
		if _, err := tx.Exec(ctx, queryInsertReport,
			report.Day,
			report.AdvancedAt,
			int64(report.Duration),
			report.ItemsUpdated,
			report.ItemsExpired,
			byCategory,
		); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertReport, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// LastReport retrieves the report with the highest day number
func (r *InventoryRepository) LastReport(ctx context.Context) (*domain.DayReport, error) {
	var (
		report     domain.DayReport
		durationNs int64
		byCategory []byte
	)
	err := r.pool.QueryRow(ctx, queryLastReport).Scan(
		&report.Day, &report.AdvancedAt, &durationNs, &report.ItemsUpdated, &report.ItemsExpired, &byCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoReport
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetReport, err)
	}

	report.Duration = time.Duration(durationNs)
	if err := json.Unmarshal(byCategory, &report.ByCategory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetReport, err)
	}
	return &report, nil
}

// Ping checks database connectivity
func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the pool
func (r *InventoryRepository) Close() error {
	r.pool.Close()
	return nil
}
