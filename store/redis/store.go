package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/poiesic/searchit/store"
)

// Verify interface compliance
var _ store.CollectionStore = (*Store)(nil)

const collectionPrefix = "collection:"

// Store implements store.CollectionStore backed by Redis.
// Each collection is a Redis hash whose fields are record keys and whose
// values are JSON documents.
type Store struct {
	client *redis.Client
}

// NewStore creates a collection store on top of an existing Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Open connects to the Redis instance at addr and returns a collection store.
func Open(addr string) *Store {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Store{client: client}
}

// FetchCollection reads the hash stored under the locator and decodes each
// field value as a JSON document.
func (s *Store) FetchCollection(ctx context.Context, locator string) (map[string]any, error) {
	key := collectionPrefix + locator

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.ErrClosed) {
			return nil, fmt.Errorf("collection %q: %w", locator, store.ErrStoreClosed)
		}
		return nil, fmt.Errorf("failed to fetch collection %q: %w", locator, err)
	}
	// HGetAll returns an empty map for a missing key.
	if len(fields) == 0 {
		return nil, fmt.Errorf("collection %q: %w", locator, store.ErrCollectionNotFound)
	}

	records := make(map[string]any, len(fields))
	for field, raw := range fields {
		var doc any
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("collection %q record %q: %w", locator, field, store.ErrInvalidCollectionData)
		}
		records[field] = doc
	}

	return records, nil
}

// PutRecord stores a document as a JSON hash field under the collection key.
func (s *Store) PutRecord(ctx context.Context, collection, key string, document any) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal record %q: %w", key, err)
	}

	if err := s.client.HSet(ctx, collectionPrefix+collection, key, data).Err(); err != nil {
		if errors.Is(err, redis.ErrClosed) {
			return fmt.Errorf("record %q: %w", key, store.ErrStoreClosed)
		}
		return fmt.Errorf("failed to store record %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
