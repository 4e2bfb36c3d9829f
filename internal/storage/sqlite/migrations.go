package sqlite

import (
	"context"
	"database/sql"
)

// schema is the on-disk contract for the roster. It runs on every startup;
// CREATE TABLE IF NOT EXISTS keeps existing data intact.
// AUTOINCREMENT keeps deleted IDs from being handed out again.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    contact TEXT NOT NULL UNIQUE
);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
