package search

import (
	"log/slog"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/strategy"
)

// chooseStrategy is the pure decision table mapping option flags to one of
// the four strategies, wired to stamp results with the source kind.
//
// Precedence is semantic > pattern > fuzzy > exact for every source kind.
// Earlier revisions checked fuzzy before pattern on file-name searches; the
// discrepancy served no purpose, so one consistent order is used throughout
// and pinned by tests.
func chooseStrategy(kind core.SourceKind, opts *core.Options, factory ai.EmbedderFactory, logger *slog.Logger) (strategy.Strategy, error) {
	switch {
	case opts.Semantic:
		return strategy.NewSemantic(kind, factory, strategy.WithLogger(logger))
	case opts.PatternMatch:
		return strategy.NewPattern(kind), nil
	case opts.FuzzyMatching:
		return strategy.NewFuzzy(kind), nil
	default:
		return strategy.NewExact(kind), nil
	}
}
