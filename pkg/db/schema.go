// Package db provides the SQLite cache behind the workspace account index,
// so editor sessions have completion data before the first scan finishes.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Account names discovered in the workspace, by source file.
CREATE TABLE IF NOT EXISTS account_names (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,                -- full account name, e.g. expenses:food
    source_file TEXT NOT NULL,         -- journal file the name was seen in
    first_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_seen TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(name, source_file)
);

CREATE INDEX IF NOT EXISTS idx_account_names_name
    ON account_names(name);

CREATE INDEX IF NOT EXISTS idx_account_names_file
    ON account_names(source_file);

-- Key-value metadata about the cache (last scan time, schema version).
CREATE TABLE IF NOT EXISTS cache_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
