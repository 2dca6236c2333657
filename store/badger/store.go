package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/poiesic/searchit/store"
)

// Verify interface compliance
var _ store.CollectionStore = (*Store)(nil)

const snapshotPrefix = "snap"

// Store implements store.CollectionStore on an embedded BadgerDB. Collection
// snapshots are stored as JSON documents under collection-prefixed keys, so a
// database search can run against a local copy of remote records.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens a snapshot store at the specified path.
// Creates the directory if it doesn't exist.
func OpenStore(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// makeRecordKey generates the key for a record within a collection.
func makeRecordKey(collection, recordKey string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", snapshotPrefix, collection, recordKey))
}

// makeCollectionPrefix generates the iteration prefix for a collection.
func makeCollectionPrefix(collection string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", snapshotPrefix, collection))
}

// FetchCollection reads every record stored under the collection prefix and
// decodes each value as a JSON document.
func (s *Store) FetchCollection(ctx context.Context, locator string) (map[string]any, error) {
	prefix := makeCollectionPrefix(locator)
	records := make(map[string]any)

	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = prefix
		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			recordKey := strings.TrimPrefix(string(item.Key()), string(prefix))

			err := item.Value(func(val []byte) error {
				var doc any
				if err := json.Unmarshal(val, &doc); err != nil {
					return fmt.Errorf("collection %q record %q: %w", locator, recordKey, store.ErrInvalidCollectionData)
				}
				records[recordKey] = doc
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, badger.ErrDBClosed) {
			return nil, fmt.Errorf("collection %q: %w", locator, store.ErrStoreClosed)
		}
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("collection %q: %w", locator, store.ErrCollectionNotFound)
	}

	return records, nil
}

// PutRecord stores a document as JSON under the collection key.
func (s *Store) PutRecord(ctx context.Context, collection, key string, document any) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal record %q: %w", key, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(makeRecordKey(collection, key), data)
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return fmt.Errorf("record %q: %w", key, store.ErrStoreClosed)
	}
	return err
}

// Close closes the underlying BadgerDB.
func (s *Store) Close() error {
	return s.db.Close()
}
