package postgres

// Queries
const (
	queryListItems    = `SELECT item_id::text, name, sell_in, quality, category FROM inventory_items ORDER BY position`
	queryGetItem      = `SELECT item_id::text, name, sell_in, quality, category FROM inventory_items WHERE item_id = $1`
	queryInsertItem   = `INSERT INTO inventory_items (item_id, name, sell_in, quality, category) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (item_id) DO NOTHING`
	queryDeleteItem   = `DELETE FROM inventory_items WHERE item_id = $1`
	queryUpdateItem   = `UPDATE inventory_items SET sell_in = $1, quality = $2 WHERE item_id = $3`
	queryInsertReport = `INSERT INTO day_reports (day, advanced_at, duration_ns, items_updated, items_expired, by_category) VALUES ($1, $2, $3, $4, $5, $6)`
	queryLastReport   = `SELECT day, advanced_at, duration_ns, items_updated, items_expired, by_category FROM day_reports ORDER BY day DESC LIMIT 1`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToApplySchema  = "failed to apply schema"
	ErrMsgFailedToListItems    = "failed to list items"
	ErrMsgFailedToGetItem      = "failed to get item"
	ErrMsgFailedToInsertItem   = "failed to insert item"
	ErrMsgFailedToDeleteItem   = "failed to delete item"
	ErrMsgFailedToUpdateItem   = "failed to update item"
	ErrMsgFailedToInsertReport = "failed to insert day report"
	ErrMsgFailedToGetReport    = "failed to get last day report"
	ErrMsgFailedToScanItem     = "failed to scan item"
)
