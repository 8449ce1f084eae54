package schema

// SchemaSQL contains the full database schema initialization script.
// Every statement is idempotent so it is safe to run on each startup.
const SchemaSQL = `
-- Inventory items. position preserves insertion order for listings and reports.
CREATE TABLE IF NOT EXISTS inventory_items (
    position BIGSERIAL PRIMARY KEY,
    item_id UUID UNIQUE NOT NULL,
    name VARCHAR(255) NOT NULL,
    sell_in INTEGER NOT NULL,
    quality INTEGER NOT NULL,
    category VARCHAR(32) NOT NULL
        CHECK (category IN ('ordinary', 'aged', 'event_ticket', 'legendary'))
);

-- One row per advanced day
CREATE TABLE IF NOT EXISTS day_reports (
    day INTEGER PRIMARY KEY,
    advanced_at TIMESTAMPTZ NOT NULL,
    duration_ns BIGINT NOT NULL,
    items_updated INTEGER NOT NULL,
    items_expired INTEGER NOT NULL,
    by_category JSONB NOT NULL DEFAULT '{}'::jsonb
);
`
