package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_records (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore is a KVStore backed by a single-table SQLite database. It is
// the fast-storage backend used after migration off the legacy key-value
// files; the pure-Go driver keeps the app free of cgo.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	if _, err := db.Exec(createKVTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the record bytes, or (nil, nil) when the key is absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_records WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("store get: %w", err)
	}
	return value, nil
}

// Set upserts the record.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv_records (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	return nil
}

// Delete removes the record. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
