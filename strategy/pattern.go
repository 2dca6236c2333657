package strategy

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/searchit/core"
)

const (
	// contextWindow is the number of characters kept either side of the
	// first match in the context snippet.
	contextWindow = 50

	ellipsis = "..."

	patternBaseScore     = 0.5
	patternPerMatchBoost = 0.1
)

// Pattern matches payloads by occurrence counting and extracts a context
// snippet around the first match.
type Pattern struct {
	matchType core.SourceKind
}

// Verify interface compliance
var _ Strategy = (*Pattern)(nil)

// NewPattern creates a pattern-match strategy stamping results with the
// given match type.
func NewPattern(matchType core.SourceKind) *Pattern {
	return &Pattern{matchType: matchType}
}

// Match scores each containing item as min(0.1*count + 0.5, 1.0), where
// count is the number of non-overlapping occurrences of the term. Items
// whose payload is not decodable text are skipped rather than failing the
// whole scan.
func (s *Pattern) Match(ctx context.Context, term string, items []core.Item, opts *core.Options) ([]core.Result, error) {
	normTerm := normalize(term, opts.CaseSensitive)

	var results []core.Result
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !utf8.ValidString(item.Data) {
			continue
		}

		normData := normalize(item.Data, opts.CaseSensitive)
		count := strings.Count(normData, normTerm)
		if count == 0 {
			continue
		}

		score := patternBaseScore + patternPerMatchBoost*float64(count)
		if score > 1.0 {
			score = 1.0
		}

		results = append(results, core.Result{
			MatchType:    s.matchType,
			Path:         item.Path,
			Relevance:    score,
			MatchedTerms: []string{term},
			Context:      buildContext(item.Data, term),
		})
	}

	return sortAndTruncate(results, opts.MaxResults), nil
}

// buildContext extracts up to contextWindow characters either side of the
// first case-insensitive match of the term, clipped at string boundaries.
// Ellipsis markers flag truncation on either end.
func buildContext(data, term string) string {
	runes := []rune(data)
	termRunes := []rune(term)

	// Locate the match in rune space. Lowercasing can change byte lengths
	// (e.g. U+023A is 2 bytes, its lowercase U+2C65 is 3), so a byte index
	// found in the folded string does not transfer back to the original.
	matchStart := foldIndex(runes, termRunes)
	if matchStart < 0 {
		return ""
	}
	matchLen := len(termRunes)

	start := matchStart - contextWindow
	if start < 0 {
		start = 0
	}
	end := matchStart + matchLen + contextWindow
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet = snippet + ellipsis
	}
	return snippet
}

// foldIndex returns the rune offset of the first case-insensitive occurrence
// of term within data, or -1 when absent.
func foldIndex(data, term []rune) int {
	if len(term) == 0 {
		return 0
	}
	for i := 0; i+len(term) <= len(data); i++ {
		found := true
		for j := range term {
			if unicode.ToLower(data[i+j]) != unicode.ToLower(term[j]) {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}
