package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// Store persists the inventory to a single SQLite file
type Store struct {
	db   *sql.DB
	path string
}

var _ repository.Inventory = (*Store)(nil)

// NewStore opens (or creates) the database file and applies the schema
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf(ErrMsgCreateDirs, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpen, err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(ErrMsgApplySchema, err)
	}
	return &Store{db: db, path: path}, nil
}

// ListItems returns all items in insertion order
func (s *Store) ListItems(ctx context.Context) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, queryListItems)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItems, err)
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListItems, err)
	}
	return items, nil
}

// GetItem returns a single item by ID
func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, queryGetItem, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, err
}

// InsertItem appends an item. Duplicate IDs are rejected.
func (s *Store) InsertItem(ctx context.Context, item *domain.Item) (retErr error) {
	if item == nil {
		return domain.ErrNilItem
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err := tx.QueryRowContext(ctx, queryItemExists, item.ID.String()).Scan(&count); err != nil {
		return fmt.Errorf(ErrMsgInsertItem, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidItem, item.ID)
	}

	if _, err := tx.ExecContext(ctx, queryInsertItem,
		item.ID.String(), item.Name, item.SellIn, item.Quality, item.Category.String()); err != nil {
		return fmt.Errorf(ErrMsgInsertItem, err)
	}
	return tx.Commit()
}

// DeleteItem removes an item by ID
func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, queryDeleteItem, id.String())
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteItem, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return nil
}

// SaveDay updates every item and records the report in one transaction
func (s *Store) SaveDay(ctx context.Context, items []*domain.Item, report *domain.DayReport) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, queryUpdateItem)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateItem, "prepare", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range items {
		if item == nil {
			return domain.ErrNilItem
		}
		res, err := stmt.ExecContext(ctx, item.SellIn, item.Quality, item.ID.String())
		if err != nil {
			return fmt.Errorf(ErrMsgUpdateItem, item.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
		}
	}

	if report != nil {
		byCategory, err := json.Marshal(report.ByCategory)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertReport, report.Day, err)
		}
		if _, err := tx.ExecContext(ctx, queryInsertReport,
			report.Day,
			report.AdvancedAt.UTC().Format(time.RFC3339Nano),
			int64(report.Duration),
			report.ItemsUpdated,
			report.ItemsExpired,
			string(byCategory),
		); err != nil {
			return fmt.Errorf(ErrMsgInsertReport, report.Day, err)
		}
	}

	return tx.Commit()
}

// LastReport returns the report with the highest day number
func (s *Store) LastReport(ctx context.Context) (*domain.DayReport, error) {
	var (
		report     domain.DayReport
		advancedAt string
		durationNs int64
		byCategory string
	)
	err := s.db.QueryRowContext(ctx, queryLastReport).Scan(
		&report.Day, &advancedAt, &durationNs, &report.ItemsUpdated, &report.ItemsExpired, &byCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLastReport, err)
	}

	if report.AdvancedAt, err = time.Parse(time.RFC3339Nano, advancedAt); err != nil {
		return nil, fmt.Errorf(ErrMsgLastReport, err)
	}
	report.Duration = time.Duration(durationNs)
	if err := json.Unmarshal([]byte(byCategory), &report.ByCategory); err != nil {
		return nil, fmt.Errorf(ErrMsgLastReport, err)
	}
	return &report, nil
}

// Ping checks the database handle
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the configured database path
func (s *Store) Path() string { return s.path }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item     domain.Item
		id       string
		category string
	)
	if err := row.Scan(&id, &item.Name, &item.SellIn, &item.Quality, &category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgScanItem, err)
	}

	var err error
	if item.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf(ErrMsgScanItem, err)
	}
	if item.Category, err = domain.ParseCategory(category); err != nil {
		return nil, fmt.Errorf(ErrMsgScanItem, err)
	}
	return &item, nil
}
