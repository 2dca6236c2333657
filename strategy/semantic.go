package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
)

// semanticMinSimilarity is the exclusion threshold: items at or below it
// never appear in semantic results.
const semanticMinSimilarity = 0.4

// Semantic matches payloads by cosine similarity of embedding vectors.
// One embedding call is made for the term plus one per item; calls run on a
// bounded worker pool but are never batched or cached.
type Semantic struct {
	matchType core.SourceKind
	factory   ai.EmbedderFactory
	poolSize  int
	logger    *slog.Logger
}

// Verify interface compliance
var _ Strategy = (*Semantic)(nil)

// SemanticOption configures a Semantic strategy.
type SemanticOption func(*Semantic)

// WithPoolSize sets the worker pool size for concurrent embedding calls.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) SemanticOption {
	return func(s *Semantic) {
		if size >= 1 {
			s.poolSize = size
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) SemanticOption {
	return func(s *Semantic) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewSemantic creates a semantic strategy. The factory binds the per-call
// credential to a concrete embedding client.
func NewSemantic(matchType core.SourceKind, factory ai.EmbedderFactory, opts ...SemanticOption) (*Semantic, error) {
	if factory == nil {
		return nil, ErrEmbedderFactoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	s := &Semantic{
		matchType: matchType,
		factory:   factory,
		poolSize:  poolSize,
		logger:    slog.Default().With("component", "semantic-strategy"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Match embeds the term and every item payload, scores by cosine similarity,
// and excludes everything at or below the similarity threshold. Fails with
// core.ErrMissingAPIKey before any network call when no credential is set.
func (s *Semantic) Match(ctx context.Context, term string, items []core.Item, opts *core.Options) ([]core.Result, error) {
	if opts.APIKey == "" {
		return nil, core.ErrMissingAPIKey
	}

	embedder, err := s.factory(opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create embedder: %v", core.ErrInternal, err)
	}

	termVector, err := embedder.EmbedText(ctx, normalize(term, opts.CaseSensitive))
	if err != nil {
		return nil, fmt.Errorf("embed term: %w", err)
	}
	if len(termVector) == 0 {
		return nil, fmt.Errorf("%w: term %q", core.ErrFailedEmbeddingExtraction, term)
	}

	vectors, err := s.embedItems(ctx, embedder, items, opts)
	if err != nil {
		return nil, err
	}

	var results []core.Result
	for i, item := range items {
		score := cosineSimilarity(termVector, vectors[i])
		if score <= semanticMinSimilarity {
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

// embedItems embeds every item payload on a bounded worker pool. Vectors are
// written by index so ordering stays deterministic; the first error cancels
// the remaining work and no further calls are issued.
func (s *Semantic) embedItems(ctx context.Context, embedder ai.Embedder, items []core.Item, opts *core.Options) ([][]float32, error) {
	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: create worker pool: %v", core.ErrInternal, err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vectors := make([][]float32, len(items))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i, item := range items {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}

			vector, err := embedder.EmbedText(ctx, normalize(item.Data, opts.CaseSensitive))
			if err != nil {
				s.logger.Error("error embedding item", "path", item.Path, "err", err)
				fail(fmt.Errorf("embed %s: %w", item.Path, err))
				return
			}
			if len(vector) == 0 {
				fail(fmt.Errorf("%w: %s", core.ErrFailedEmbeddingExtraction, item.Path))
				return
			}
			vectors[i] = vector
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("%w: submit embedding task: %v", core.ErrInternal, submitErr))
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// cosineSimilarity computes cosine similarity between two vectors.
// Returns 0 if either vector is empty, has zero magnitude, or the two differ
// in dimensionality.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
