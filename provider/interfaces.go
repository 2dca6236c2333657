package provider

import (
	"context"

	"github.com/poiesic/searchit/core"
)

// Provider produces searchable items for a given search scope.
// Implementations are stateless and safe for concurrent use.
type Provider interface {
	// FetchItems resolves the scope in opts.SearchPaths and converts every
	// member into a core.Item. Directory scopes expand to their immediate
	// regular-file children only, filtered by opts.FileExtensions.
	// Fails with core.ErrInvalidSearchPath when a scope entry does not
	// resolve and core.ErrSearchPathUnavailable when a required scope list
	// is absent.
	FetchItems(ctx context.Context, opts *core.Options) ([]core.Item, error)
}
