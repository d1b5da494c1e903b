package kv

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore implements Store with in-process maps. Used by tests and by
// STORAGE_DRIVER=memory; contents vanish on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	counters map[string]int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:  make(map[string][]byte),
		counters: make(map[string]int64),
	}
}

// Get returns the value under key, or (nil, nil) when absent.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set upserts the value under key.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.entries[key] = v
	return nil
}

// Delete removes key; deleting a missing key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// GetByPrefix returns all entries whose key starts with prefix, key-ordered.
func (s *MemoryStore) GetByPrefix(_ context.Context, prefix string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		v := make([]byte, len(s.entries[k]))
		copy(v, s.entries[k])
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries, nil
}

// Incr atomically increments the counter under key and returns the new value.
func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
