package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	s := kv.NewMemoryStore()
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "missing key yields (nil, nil)")

	require.NoError(t, s.Set(ctx, "a", []byte(`{"x":1}`)))
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":1}`), got)

	require.NoError(t, s.Set(ctx, "a", []byte(`{"x":2}`)))
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":2}`), got, "set is an upsert")

	require.NoError(t, s.Delete(ctx, "a"))
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, s.Delete(ctx, "a"), "deleting a missing key is not an error")
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	s := kv.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "quotation:u1:b", []byte("2")))
	require.NoError(t, s.Set(ctx, "quotation:u1:a", []byte("1")))
	require.NoError(t, s.Set(ctx, "quotation:u2:c", []byte("3")))
	require.NoError(t, s.Set(ctx, "invoice:u1:d", []byte("4")))

	entries, err := s.GetByPrefix(ctx, "quotation:u1:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "quotation:u1:a", entries[0].Key, "entries come back key-ordered")
	assert.Equal(t, "quotation:u1:b", entries[1].Key)

	entries, err = s.GetByPrefix(ctx, "client:")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryStore_Incr(t *testing.T) {
	s := kv.NewMemoryStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		n, err := s.Incr(ctx, "counter:invoice:u1:2026")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	// Independent counters do not interfere.
	n, err := s.Incr(ctx, "counter:invoice:u1:2027")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_ValueCopiesAreDefensive(t *testing.T) {
	s := kv.NewMemoryStore()
	ctx := context.Background()

	buf := []byte("original")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "user:u1", kv.ProfileKey("u1"))
	assert.Equal(t, "auth:email:jan@voorbeeld.nl", kv.CredentialKey("jan@voorbeeld.nl"))
	assert.Equal(t, "client:u1:c1", kv.ClientKey("u1", "c1"))
	assert.Equal(t, "client:u1:", kv.ClientPrefix("u1"))
	assert.Equal(t, "quotation:u1:q1", kv.QuotationKey("u1", "q1"))
	assert.Equal(t, "invoice:u1:i1", kv.InvoiceKey("u1", "i1"))
	assert.Equal(t, "counter:invoice:u1:2026", kv.InvoiceCounterKey("u1", 2026))
}
