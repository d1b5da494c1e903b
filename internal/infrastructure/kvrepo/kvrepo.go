// Package kvrepo implements the domain repository ports on top of the
// key-value document store. Every entity is one JSON document under an
// owner-prefixed key.
package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

// getJSON loads and decodes the document under key into out.
// Returns (false, nil) when the key is absent.
func getJSON(ctx context.Context, store kv.Store, key string, out any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// getJSONEntry decodes a scanned entry into out. A corrupt document is
// reported as an error rather than skipped silently.
func getJSONEntry(e kv.Entry, out any) (bool, error) {
	if len(e.Value) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(e.Value, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", e.Key, err)
	}
	return true, nil
}

// setJSON encodes v and stores it under key.
func setJSON(ctx context.Context, store kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
