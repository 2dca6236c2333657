package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/provider"
	"github.com/poiesic/searchit/store"
	"github.com/poiesic/searchit/strategy"
)

// Engine orchestrates a single search call: strategy selection, provider
// fetch, scoring, and the optional timeout race. Engines are stateless
// between calls and safe for concurrent use.
type Engine struct {
	fileNames       provider.Provider
	fileContents    provider.Provider
	records         provider.Provider
	embedderFactory ai.EmbedderFactory
	monitor         SearchMonitor
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithCollectionStore enables database searches against the given store.
func WithCollectionStore(collections store.CollectionStore) Option {
	return func(e *Engine) error {
		p, err := provider.NewRecordProvider(collections)
		if err != nil {
			return err
		}
		e.records = p
		return nil
	}
}

// WithEmbedderFactory enables semantic searches through the given factory.
func WithEmbedderFactory(factory ai.EmbedderFactory) Option {
	return func(e *Engine) error {
		e.embedderFactory = factory
		return nil
	}
}

// WithMonitor sets a search monitor.
// Default is a no-op monitor.
func WithMonitor(monitor SearchMonitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// withProvider substitutes the provider for a source kind. Test seam.
func withProvider(kind core.SourceKind, p provider.Provider) Option {
	return func(e *Engine) error {
		switch kind {
		case core.SourceFileNames:
			e.fileNames = p
		case core.SourceFileContents:
			e.fileContents = p
		case core.SourceDatabase:
			e.records = p
		}
		return nil
	}
}

// NewEngine creates a search engine. File searches work out of the box;
// database and semantic searches need WithCollectionStore and
// WithEmbedderFactory respectively.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		fileNames:    provider.NewFileNameProvider(),
		fileContents: provider.NewFileContentProvider(),
		monitor:      &noopMonitor{},
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// providerFor maps a source kind to its provider.
func (e *Engine) providerFor(kind core.SourceKind) (provider.Provider, error) {
	switch kind {
	case core.SourceFileNames:
		return e.fileNames, nil
	case core.SourceFileContents:
		return e.fileContents, nil
	case core.SourceDatabase:
		if e.records == nil {
			return nil, ErrCollectionStoreRequired
		}
		return e.records, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSourceKind, kind)
	}
}

// Search runs one search for the term against the given source kind.
// Empty terms fail with core.ErrEmptySearchTerm. A nil opts uses the
// defaults; the caller's options are copied, never mutated.
func (e *Engine) Search(ctx context.Context, term string, kind core.SourceKind, opts *core.Options) ([]core.Result, error) {
	if term == "" {
		return nil, core.ErrEmptySearchTerm
	}

	if opts == nil {
		opts = core.DefaultOptions()
	} else {
		opts = opts.Clone()
		opts.Normalize()
	}

	return e.search(ctx, term, kind, opts)
}

// search executes one already-validated search, racing the strategy against
// the configured timeout.
func (e *Engine) search(ctx context.Context, term string, kind core.SourceKind, opts *core.Options) ([]core.Result, error) {
	prov, err := e.providerFor(kind)
	if err != nil {
		return nil, err
	}
	strat, err := chooseStrategy(kind, opts, e.embedderFactory, e.logger)
	if err != nil {
		return nil, err
	}

	if opts.Timeout <= 0 {
		return e.run(ctx, term, kind, prov, strat, opts)
	}

	// Race the strategy execution against the timer: first of the two to
	// finish decides the outcome, the loser is cancelled. No partial
	// results survive a timeout.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.NewTimer(opts.Timeout)
	defer timer.Stop()

	type outcome struct {
		results []core.Result
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		results, err := e.run(ctx, term, kind, prov, strat, opts)
		done <- outcome{results: results, err: err}
	}()

	select {
	case out := <-done:
		return out.results, out.err
	case <-timer.C:
		cancel()
		e.logger.Warn("search timed out", "term", term, "timeout", opts.Timeout)
		return nil, fmt.Errorf("%w after %v", core.ErrSearchTimeout, opts.Timeout)
	}
}

// run fetches the items and scores them.
func (e *Engine) run(ctx context.Context, term string, kind core.SourceKind, prov provider.Provider, strat strategy.Strategy, opts *core.Options) ([]core.Result, error) {
	start := time.Now()
	e.monitor.Start(term, kind)

	items, err := prov.FetchItems(ctx, opts)
	if err != nil {
		e.logger.Error("error fetching items", "term", term, "source", kind, "err", err)
		return nil, err
	}
	e.monitor.AfterFetch(items)

	results, err := strat.Match(ctx, term, items, opts)
	if err != nil {
		e.logger.Error("error matching items", "term", term, "source", kind, "err", err)
		return nil, err
	}
	e.monitor.Finish(results)

	e.logger.Debug("search complete",
		"term", term,
		"source", kind,
		"items", len(items),
		"results", len(results),
		"duration", time.Since(start))

	return results, nil
}

// MultiSearch fans the terms out to parallel searches and joins the
// completions into a per-term map. Empty terms lists return an empty map
// without touching any provider. The first failing term cancels the rest
// and fails the whole call; no partial map is returned.
func (e *Engine) MultiSearch(ctx context.Context, terms []string, kind core.SourceKind, opts *core.Options) (map[string][]core.Result, error) {
	results := make(map[string][]core.Result, len(terms))
	if len(terms) == 0 {
		return results, nil
	}

	for _, term := range terms {
		if term == "" {
			return nil, core.ErrEmptySearchTerm
		}
	}

	if opts == nil {
		opts = core.DefaultOptions()
	} else {
		opts = opts.Clone()
		opts.Normalize()
	}

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for _, term := range terms {
		searchOpts := opts.Clone() // independent copy per task
		g.Go(func() error {
			found, err := e.search(gctx, term, kind, searchOpts)
			if err != nil {
				return fmt.Errorf("search %q: %w", term, err)
			}

			mu.Lock()
			results[term] = found
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
