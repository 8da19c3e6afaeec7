package seen

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists fingerprints in a SQLite database. Functionally
// equivalent to FileStore; useful when the seen set grows large enough that
// loading a flat file each run becomes wasteful to eyeball or dedupe by hand.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the seen_keys table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS seen_keys (
		key        TEXT PRIMARY KEY,
		first_seen DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating seen_keys table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads every recorded key into a set.
func (s *SQLiteStore) Load() (map[string]struct{}, error) {
	rows, err := s.db.Query("SELECT key FROM seen_keys")
	if err != nil {
		return nil, fmt.Errorf("loading seen keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning seen key: %w", err)
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seen keys: %w", err)
	}

	return keys, nil
}

// Append records the given keys. Already-present keys are ignored.
func (s *SQLiteStore) Append(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seen append: %w", err)
	}
	for _, key := range keys {
		if _, err := tx.Exec("INSERT OR IGNORE INTO seen_keys (key) VALUES (?)", key); err != nil {
			tx.Rollback()
			return fmt.Errorf("appending seen key: %w", err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
