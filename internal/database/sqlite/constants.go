package sqlite

// DefaultPath is used when no database file is configured
const DefaultPath = "data/gildedrose.db"

// Schema is applied on every open; statements are idempotent
const Schema = `
CREATE TABLE IF NOT EXISTS items (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	item_id  TEXT    NOT NULL UNIQUE,
	name     TEXT    NOT NULL,
	sell_in  INTEGER NOT NULL,
	quality  INTEGER NOT NULL,
	category TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS day_reports (
	day           INTEGER PRIMARY KEY,
	advanced_at   TEXT    NOT NULL,
	duration_ns   INTEGER NOT NULL,
	items_updated INTEGER NOT NULL,
	items_expired INTEGER NOT NULL,
	by_category   TEXT    NOT NULL
);
`

// Queries
const (
	queryListItems    = `SELECT item_id, name, sell_in, quality, category FROM items ORDER BY position`
	queryGetItem      = `SELECT item_id, name, sell_in, quality, category FROM items WHERE item_id = ?`
	queryItemExists   = `SELECT COUNT(*) FROM items WHERE item_id = ?`
	queryInsertItem   = `INSERT INTO items (item_id, name, sell_in, quality, category) VALUES (?, ?, ?, ?, ?)`
	queryDeleteItem   = `DELETE FROM items WHERE item_id = ?`
	queryUpdateItem   = `UPDATE items SET sell_in = ?, quality = ? WHERE item_id = ?`
	queryInsertReport = `INSERT INTO day_reports (day, advanced_at, duration_ns, items_updated, items_expired, by_category) VALUES (?, ?, ?, ?, ?, ?)`
	queryLastReport   = `SELECT day, advanced_at, duration_ns, items_updated, items_expired, by_category FROM day_reports ORDER BY day DESC LIMIT 1`
)

// Error messages
const (
	ErrMsgCreateDirs   = "create dirs: %w"
	ErrMsgOpen         = "open sqlite: %w"
	ErrMsgApplySchema  = "apply schema: %w"
	ErrMsgBeginTx      = "begin tx: %w"
	ErrMsgScanItem     = "scan item: %w"
	ErrMsgListItems    = "list items: %w"
	ErrMsgInsertItem   = "insert item: %w"
	ErrMsgDeleteItem   = "delete item: %w"
	ErrMsgUpdateItem   = "update item %s: %w"
	ErrMsgInsertReport = "insert report for day %d: %w"
	ErrMsgLastReport   = "last report: %w"
)
