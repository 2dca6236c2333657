package strategy

import (
	"context"
	"sort"
	"strings"

	"github.com/poiesic/searchit/core"
)

// Strategy scores items against a search term.
// Implementations are stateless and safe for concurrent use.
type Strategy interface {
	// Match scores every item against the term and returns the matching
	// results sorted by relevance descending, truncated to opts.MaxResults.
	Match(ctx context.Context, term string, items []core.Item, opts *core.Options) ([]core.Result, error)
}

// normalize folds case unless the search is case-sensitive.
func normalize(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// sortAndTruncate orders results by relevance descending and applies the
// result cap. The sort is stable so ties keep encounter order.
func sortAndTruncate(results []core.Result, maxResults int) []core.Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
