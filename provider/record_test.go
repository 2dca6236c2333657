package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/store"
)

// stubCollectionStore is an in-memory store.CollectionStore for tests.
type stubCollectionStore struct {
	collections map[string]map[string]any
	err         error
	fetchCount  int
}

func (s *stubCollectionStore) FetchCollection(ctx context.Context, locator string) (map[string]any, error) {
	s.fetchCount++
	if s.err != nil {
		return nil, s.err
	}
	records, ok := s.collections[locator]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", locator, store.ErrCollectionNotFound)
	}
	return records, nil
}

func (s *stubCollectionStore) PutRecord(ctx context.Context, collection, key string, document any) error {
	if s.collections == nil {
		s.collections = make(map[string]map[string]any)
	}
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]any)
	}
	s.collections[collection][key] = document
	return nil
}

func (s *stubCollectionStore) Close() error { return nil }

func TestNewRecordProvider(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		_, err := NewRecordProvider(nil)
		assert.Equal(t, ErrCollectionStoreRequired, err)
	})

	t.Run("valid store", func(t *testing.T) {
		p, err := NewRecordProvider(&stubCollectionStore{})
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
}

func TestRecordProvider_FetchItems(t *testing.T) {
	cs := &stubCollectionStore{
		collections: map[string]map[string]any{
			"users": {
				"alice": map[string]any{
					"name": "Alice",
					"age":  float64(30),
					"address": map[string]any{
						"city": "Lisbon",
						"zip":  "1000-001",
					},
					"tags": []any{"admin", "ops"},
				},
				"bob": map[string]any{
					"name": "Bob",
				},
				"counter": float64(7), // scalar top-level value, not a record
			},
		},
	}
	p, err := NewRecordProvider(cs)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("flattens records deterministically", func(t *testing.T) {
		items, err := p.FetchItems(ctx, core.NewOptions(core.WithSearchPaths("users")))
		require.NoError(t, err)
		require.Len(t, items, 2, "scalar top-level values are not records")

		// Lexicographic record order: alice before bob.
		assert.Equal(t, "users/alice", items[0].Path)
		assert.Equal(t, "users/bob", items[1].Path)

		// Leaf order inside alice: address.city, address.zip, age, name, tags[0], tags[1].
		assert.Equal(t, "Lisbon\n1000-001\n30\nAlice\nadmin\nops", items[0].Data)
		assert.Equal(t, "users", items[0].Metadata["collection"])
		assert.Equal(t, "alice", items[0].Metadata["documentId"])
	})

	t.Run("flattening is reproducible across fetches", func(t *testing.T) {
		first, err := p.FetchItems(ctx, core.NewOptions(core.WithSearchPaths("users")))
		require.NoError(t, err)
		second, err := p.FetchItems(ctx, core.NewOptions(core.WithSearchPaths("users")))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("requires scope", func(t *testing.T) {
		_, err := p.FetchItems(ctx, core.NewOptions())
		assert.True(t, errors.Is(err, core.ErrSearchPathUnavailable))
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, err := p.FetchItems(ctx, core.NewOptions(core.WithSearchPaths("missing")))
		assert.True(t, errors.Is(err, core.ErrInvalidSearchPath), "got %v", err)
	})

	t.Run("invalid snapshot data", func(t *testing.T) {
		broken, err := NewRecordProvider(&stubCollectionStore{err: store.ErrInvalidCollectionData})
		require.NoError(t, err)

		_, err = broken.FetchItems(ctx, core.NewOptions(core.WithSearchPaths("users")))
		assert.True(t, errors.Is(err, core.ErrInvalidSnapshotFormat), "got %v", err)
	})
}

func TestFlattenRecord(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
		want   string
	}{
		{
			name:   "empty record",
			record: map[string]any{},
			want:   "",
		},
		{
			name: "keys in lexicographic order",
			record: map[string]any{
				"zebra": "last",
				"alpha": "first",
			},
			want: "first\nlast",
		},
		{
			name: "arrays in index order",
			record: map[string]any{
				"items": []any{"one", "two", "three"},
			},
			want: "one\ntwo\nthree",
		},
		{
			name: "numbers without trailing zeros",
			record: map[string]any{
				"int":   float64(42),
				"float": 3.14,
			},
			want: "3.14\n42",
		},
		{
			name: "booleans and nulls are skipped",
			record: map[string]any{
				"flag": true,
				"gone": nil,
				"name": "kept",
			},
			want: "kept",
		},
		{
			name: "deep nesting",
			record: map[string]any{
				"b": map[string]any{
					"inner": []any{map[string]any{"x": "deep"}},
				},
				"a": "top",
			},
			want: "top\ndeep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenRecord(tt.record))
		})
	}
}
