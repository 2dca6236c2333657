package strategy

import (
	"context"

	"github.com/poiesic/searchit/core"
)

// fuzzyMinRelevance is the hard exclusion threshold: items scoring at or
// below it never appear in fuzzy results.
const fuzzyMinRelevance = 0.3

// Fuzzy matches payloads by Levenshtein edit distance.
type Fuzzy struct {
	matchType core.SourceKind
}

// Verify interface compliance
var _ Strategy = (*Fuzzy)(nil)

// NewFuzzy creates a fuzzy-match strategy stamping results with the given
// match type.
func NewFuzzy(matchType core.SourceKind) *Fuzzy {
	return &Fuzzy{matchType: matchType}
}

// Match scores each item as 1 - distance/max(len(term), len(payload)) and
// excludes everything at or below the relevance threshold.
func (s *Fuzzy) Match(ctx context.Context, term string, items []core.Item, opts *core.Options) ([]core.Result, error) {
	normTerm := normalize(term, opts.CaseSensitive)

	var results []core.Result
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		score := fuzzyRelevance(normTerm, normalize(item.Data, opts.CaseSensitive))
		if score <= fuzzyMinRelevance {
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

// fuzzyRelevance maps edit distance into [0, 1]. Two empty strings are a
// perfect match.
func fuzzyRelevance(term, payload string) float64 {
	longest := max(len([]rune(term)), len([]rune(payload)))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(term, payload))/float64(longest)
}

// levenshtein computes the edit distance between two strings with unit
// insertion, deletion, and substitution costs. Uses the standard dynamic
// programming recurrence with a two-row rolling table.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
