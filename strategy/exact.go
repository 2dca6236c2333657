package strategy

import (
	"context"
	"strings"

	"github.com/poiesic/searchit/core"
)

const (
	exactMatchScore     = 1.0
	substringMatchScore = 0.7
)

// Exact matches payloads by equality or substring containment.
type Exact struct {
	matchType core.SourceKind
}

// Verify interface compliance
var _ Strategy = (*Exact)(nil)

// NewExact creates an exact-match strategy stamping results with the given
// match type.
func NewExact(matchType core.SourceKind) *Exact {
	return &Exact{matchType: matchType}
}

// Match scores 1.0 for payloads equal to the term and 0.7 for payloads
// merely containing it. Items not containing the term are excluded.
func (s *Exact) Match(ctx context.Context, term string, items []core.Item, opts *core.Options) ([]core.Result, error) {
	normTerm := normalize(term, opts.CaseSensitive)

	var results []core.Result
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		normData := normalize(item.Data, opts.CaseSensitive)

		var score float64
		switch {
		case normData == normTerm:
			score = exactMatchScore
		case strings.Contains(normData, normTerm):
			score = substringMatchScore
		default:
			continue
		}

		results = append(results, core.Result{
			MatchType:    s.matchType,
			Path:         item.Path,
			Relevance:    score,
			MatchedTerms: []string{term},
		})
	}

	return sortAndTruncate(results, opts.MaxResults), nil
}
