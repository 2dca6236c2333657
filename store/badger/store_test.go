package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/searchit/store"
)

func TestStore_FetchCollection(t *testing.T) {
	s, err := NewMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.PutRecord(ctx, "users", "alice", map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	}))
	require.NoError(t, s.PutRecord(ctx, "users", "bob", map[string]any{
		"name": "Bob",
	}))
	require.NoError(t, s.PutRecord(ctx, "orders", "o1", map[string]any{
		"total": 12.5,
	}))

	records, err := s.FetchCollection(ctx, "users")
	require.NoError(t, err)
	require.Len(t, records, 2)

	alice, ok := records["alice"].(map[string]any)
	require.True(t, ok, "alice record should decode to a map")
	assert.Equal(t, "Alice", alice["name"])

	// Records from other collections must not leak in.
	_, present := records["o1"]
	assert.False(t, present)
}

func TestStore_FetchCollection_NotFound(t *testing.T) {
	s, err := NewMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	_, err = s.FetchCollection(context.Background(), "missing")
	assert.True(t, errors.Is(err, store.ErrCollectionNotFound))
}

func TestStore_FetchCollection_Overwrite(t *testing.T) {
	s, err := NewMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.PutRecord(ctx, "users", "alice", map[string]any{"name": "Alice"}))
	require.NoError(t, s.PutRecord(ctx, "users", "alice", map[string]any{"name": "Alicia"}))

	records, err := s.FetchCollection(ctx, "users")
	require.NoError(t, err)
	require.Len(t, records, 1)

	alice := records["alice"].(map[string]any)
	assert.Equal(t, "Alicia", alice["name"])
}

func TestStore_Closed(t *testing.T) {
	s, err := NewMemoryStore()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.PutRecord(ctx, "users", "alice", map[string]any{"name": "Alice"}))
	require.NoError(t, s.Close())

	_, err = s.FetchCollection(ctx, "users")
	assert.True(t, errors.Is(err, store.ErrStoreClosed), "got %v", err)

	err = s.PutRecord(ctx, "users", "bob", map[string]any{"name": "Bob"})
	assert.True(t, errors.Is(err, store.ErrStoreClosed), "got %v", err)
}

func TestStore_FetchCollection_CancelledContext(t *testing.T) {
	s, err := NewMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.PutRecord(ctx, "users", "alice", map[string]any{"name": "Alice"}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = s.FetchCollection(cancelled, "users")
	assert.Error(t, err)
}
