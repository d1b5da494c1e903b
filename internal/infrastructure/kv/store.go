// Package kv implements the key-value document store behind all persistence:
// JSON values under string keys with prefix scan and atomic counters.
// Backends: PostgreSQL (pgx), SQLite (modernc) and in-memory.
package kv

import "context"

// Entry is one stored key/value pair.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the key-value port. Get returns (nil, nil) for a missing key.
// GetByPrefix returns entries in ascending key order. Incr atomically
// increments the named counter and returns the new value, starting at 1.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	Incr(ctx context.Context, key string) (int64, error)
	Close() error
}
