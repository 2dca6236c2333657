package store

import "context"

// CollectionStore abstracts a remote key-value/document store read.
// Implementations must be thread-safe and support concurrent access.
type CollectionStore interface {
	// FetchCollection retrieves the keyed structure stored at the locator.
	// Each map entry is one record key with its decoded document value.
	// Returns ErrCollectionNotFound if the locator does not resolve and
	// ErrInvalidCollectionData if a stored document cannot be decoded.
	FetchCollection(ctx context.Context, locator string) (map[string]any, error)

	// PutRecord stores a document under collection/key. Used for seeding.
	PutRecord(ctx context.Context, collection, key string, document any) error

	// Close closes the storage backend and releases resources.
	Close() error
}
