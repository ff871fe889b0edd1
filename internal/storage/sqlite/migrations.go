package sqlite

import "database/sql"

// schema holds one row per state slice. Values are JSON documents.
const schema = `
CREATE TABLE IF NOT EXISTS state_slices (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
