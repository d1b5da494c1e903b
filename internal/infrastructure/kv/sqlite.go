package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE TABLE IF NOT EXISTS kv_counters (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);`

// SQLiteStore implements Store on an embedded SQLite database. Meant for
// single-node deployments and local development.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path with WAL mode and a
// busy timeout, ensures the schema and returns the store.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		path,
	))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	// SQLite supports one writer; keep the pool at a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLiteStore{db: db}, nil
}

// Get returns the value under key, or (nil, nil) when absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return value, nil
}

// Set upserts the value under key.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}

// GetByPrefix returns all entries whose key starts with prefix, key-ordered.
func (s *SQLiteStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	hi := prefix + string(rune(0x10FFFF))
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM kv_entries WHERE key >= ? AND key < ? ORDER BY key`,
		prefix, hi,
	)
	if err != nil {
		return nil, fmt.Errorf("kv scan: %w", err)
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("kv scan row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Incr atomically increments the counter under key and returns the new value.
// The single-connection pool makes the upsert a serialized read-modify-write.
func (s *SQLiteStore) Incr(ctx context.Context, key string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO kv_counters (key, value) VALUES (?, 1)
		ON CONFLICT (key) DO UPDATE SET value = kv_counters.value + 1
		RETURNING value`, key).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("kv incr: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
