package db

import (
	"database/sql"
	"fmt"
	"time"
)

// AccountRecord is one cached account name with its provenance.
type AccountRecord struct {
	ID         int64
	Name       string
	SourceFile string
	FirstSeen  time.Time
	LastSeen   time.Time
}

// AccountStore manages the cached account names.
type AccountStore struct {
	conn *Connection
}

// NewAccountStore creates a new AccountStore instance.
func NewAccountStore(conn *Connection) *AccountStore {
	return &AccountStore{conn: conn}
}

// ReplaceFileAccounts replaces the cached account names for one source file
// with the given set, inside a single transaction so readers never observe a
// half-updated file.
func (s *AccountStore) ReplaceFileAccounts(sourceFile string, names []string) error {
	return s.conn.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM account_names WHERE source_file = ?`, sourceFile); err != nil {
			return fmt.Errorf("failed to clear accounts for %s: %w", sourceFile, err)
		}

		insert := `
			INSERT INTO account_names (name, source_file)
			VALUES (?, ?)
			ON CONFLICT(name, source_file) DO UPDATE SET
				last_seen = CURRENT_TIMESTAMP
		`
		for _, name := range names {
			if _, err := tx.Exec(insert, name, sourceFile); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", name, err)
			}
		}
		return nil
	})
}

// ListAccounts returns all distinct cached account names, sorted.
func (s *AccountStore) ListAccounts() ([]string, error) {
	rows, err := s.conn.Query(`SELECT DISTINCT name FROM account_names ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan account name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// PruneMissingFiles deletes cached entries whose source file is no longer in
// keep. Returns the number of rows removed.
func (s *AccountStore) PruneMissingFiles(keep []string) (int64, error) {
	kept := make(map[string]bool, len(keep))
	for _, f := range keep {
		kept[f] = true
	}

	rows, err := s.conn.Query(`SELECT DISTINCT source_file FROM account_names`)
	if err != nil {
		return 0, fmt.Errorf("failed to list source files: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return 0, fmt.Errorf("failed to scan source file: %w", err)
		}
		if !kept[f] {
			stale = append(stale, f)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	var removed int64
	for _, f := range stale {
		result, err := s.conn.Exec(`DELETE FROM account_names WHERE source_file = ?`, f)
		if err != nil {
			return removed, fmt.Errorf("failed to prune %s: %w", f, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			removed += n
		}
	}
	return removed, nil
}

// GetMetadata retrieves a metadata value; missing keys return "".
func (s *AccountStore) GetMetadata(key string) (string, error) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM cache_metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}
	return value, nil
}

// SetMetadata sets a metadata value.
func (s *AccountStore) SetMetadata(key, value string) error {
	query := `
		INSERT INTO cache_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.conn.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}
	return nil
}
