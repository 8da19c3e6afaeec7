package seen

import (
	"path/filepath"

	"jobsweep/internal/model"
)

// Open selects a store backend from the path extension: .db and .sqlite
// open a SQLite store, anything else the append-only line file.
func Open(path string) (model.SeenStore, error) {
	switch filepath.Ext(path) {
	case ".db", ".sqlite":
		return NewSQLiteStore(path)
	default:
		return NewFileStore(path), nil
	}
}
