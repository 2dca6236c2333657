package strategy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/searchit/core"
)

func makeItems(payloads ...string) []core.Item {
	items := make([]core.Item, len(payloads))
	for i, p := range payloads {
		items[i] = core.Item{
			ID:       core.IDFromLocator(p),
			Data:     p,
			Path:     "/src/" + p,
			Metadata: map[string]string{},
		}
	}
	return items
}

func TestExact_Match(t *testing.T) {
	s := NewExact(core.SourceFileNames)
	ctx := context.Background()

	t.Run("substring scores 0.7", func(t *testing.T) {
		// "apple.txt" contains but does not equal "apple".
		results, err := s.Match(ctx, "apple", makeItems("apple.txt", "banana.txt"), core.NewOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, strings.HasSuffix(results[0].Path, "apple.txt"))
		assert.Equal(t, 0.7, results[0].Relevance)
		assert.Equal(t, []string{"apple"}, results[0].MatchedTerms)
		assert.Equal(t, core.SourceFileNames, results[0].MatchType)
	})

	t.Run("equality scores 1.0", func(t *testing.T) {
		results, err := s.Match(ctx, "apple.txt", makeItems("apple.txt", "apple.txt.bak"), core.NewOptions())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 1.0, results[0].Relevance)
		assert.Equal(t, 0.7, results[1].Relevance)
	})

	t.Run("only two score values exist", func(t *testing.T) {
		items := makeItems("apple", "apple pie", "an apple a day", "pear")
		results, err := s.Match(ctx, "apple", items, core.NewOptions())
		require.NoError(t, err)
		require.Len(t, results, 3)
		for _, r := range results {
			assert.Contains(t, []float64{1.0, 0.7}, r.Relevance)
		}
	})

	t.Run("case insensitive by default", func(t *testing.T) {
		results, err := s.Match(ctx, "APPLE", makeItems("Apple.txt"), core.NewOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)
	})

	t.Run("case sensitive excludes mismatched case", func(t *testing.T) {
		results, err := s.Match(ctx, "APPLE", makeItems("apple.txt"), core.NewOptions(core.WithCaseSensitive()))
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("truncates to max results", func(t *testing.T) {
		items := makeItems("apple1", "apple2", "apple3", "apple4")
		results, err := s.Match(ctx, "apple", items, core.NewOptions(core.WithMaxResults(2)))
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("ties keep encounter order", func(t *testing.T) {
		items := makeItems("apple pie", "apple tart", "apple cake")
		results, err := s.Match(ctx, "apple", items, core.NewOptions())
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "/src/apple pie", results[0].Path)
		assert.Equal(t, "/src/apple tart", results[1].Path)
		assert.Equal(t, "/src/apple cake", results[2].Path)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Match(cancelled, "apple", makeItems("apple"), core.NewOptions())
		assert.Error(t, err)
	})
}
