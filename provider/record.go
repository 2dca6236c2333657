package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/store"
)

// ErrCollectionStoreRequired is returned when a record provider is created
// without a collection store.
var ErrCollectionStoreRequired = errors.New("collection store required")

// RecordProvider produces items from remote keyed records. Each structured
// record is flattened into a newline-joined text payload.
type RecordProvider struct {
	collections store.CollectionStore
}

// Verify interface compliance
var _ Provider = (*RecordProvider)(nil)

// NewRecordProvider creates a provider over a collection store.
func NewRecordProvider(collections store.CollectionStore) (*RecordProvider, error) {
	if collections == nil {
		return nil, ErrCollectionStoreRequired
	}
	return &RecordProvider{collections: collections}, nil
}

// FetchItems fetches every collection in scope and flattens each keyed
// record into an item. Record keys are visited in lexicographic order so
// item order is reproducible across runs.
func (p *RecordProvider) FetchItems(ctx context.Context, opts *core.Options) ([]core.Item, error) {
	if len(opts.SearchPaths) == 0 {
		return nil, core.ErrSearchPathUnavailable
	}

	var items []core.Item
	for _, locator := range opts.SearchPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := p.collections.FetchCollection(ctx, locator)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrCollectionNotFound):
				return nil, fmt.Errorf("%w: %s", core.ErrInvalidSearchPath, locator)
			case errors.Is(err, store.ErrInvalidCollectionData):
				return nil, fmt.Errorf("%w: %s", core.ErrInvalidSnapshotFormat, locator)
			default:
				return nil, fmt.Errorf("%w: fetch %s: %v", core.ErrInternal, locator, err)
			}
		}

		keys := make([]string, 0, len(records))
		for key := range records {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			record, ok := records[key].(map[string]any)
			if !ok {
				// Only keyed structures are searchable records.
				continue
			}

			data := flattenRecord(record)
			if data == "" {
				continue
			}

			path := locator + "/" + key
			items = append(items, core.Item{
				ID:   core.IDFromLocator(path),
				Data: data,
				Path: path,
				Metadata: map[string]string{
					"collection": locator,
					"documentId": key,
				},
			})
		}
	}

	return items, nil
}
