// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package searchit is a pluggable multi-strategy search library. It matches
// a term against file names, file contents, or stored record collections
// using exact, fuzzy, pattern, or semantic matching, selected per call
// through core.Options.
package searchit

import (
	"context"
	"log/slog"

	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/ai/openai"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/search"
	"github.com/poiesic/searchit/store"
)

// Client is the top-level entry point. It owns an engine wired with the
// OpenAI-compatible embedder factory and, optionally, a collection store
// for database searches.
type Client struct {
	engine      *search.Engine
	collections store.CollectionStore
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	aiConfig    *ai.Config
	collections store.CollectionStore
	monitor     search.SearchMonitor
	logger      *slog.Logger
}

// WithAIConfig sets the embedding service configuration used by semantic
// searches. Defaults to ai.DefaultConfig().
func WithAIConfig(config *ai.Config) ClientOption {
	return func(o *clientOptions) {
		o.aiConfig = config
	}
}

// WithCollectionStore enables database searches against the given store.
// The client takes ownership and closes the store on Close.
func WithCollectionStore(collections store.CollectionStore) ClientOption {
	return func(o *clientOptions) {
		o.collections = collections
	}
}

// WithMonitor sets a search monitor on the underlying engine.
func WithMonitor(monitor search.SearchMonitor) ClientOption {
	return func(o *clientOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewClient creates a search client. File searches work with no options at
// all; database searches need WithCollectionStore.
func NewClient(opts ...ClientOption) (*Client, error) {
	options := &clientOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	engineOpts := []search.Option{
		search.WithEmbedderFactory(openai.NewFactory(options.aiConfig)),
		search.WithLogger(options.logger),
	}
	if options.collections != nil {
		engineOpts = append(engineOpts, search.WithCollectionStore(options.collections))
	}
	if options.monitor != nil {
		engineOpts = append(engineOpts, search.WithMonitor(options.monitor))
	}

	engine, err := search.NewEngine(engineOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		engine:      engine,
		collections: options.collections,
		logger:      options.logger,
	}, nil
}

// Search runs one search for the term against the given source kind.
func (c *Client) Search(ctx context.Context, term string, kind core.SourceKind, opts *core.Options) ([]core.Result, error) {
	return c.engine.Search(ctx, term, kind, opts)
}

// MultiSearch runs parallel searches for each term and returns a per-term
// result map.
func (c *Client) MultiSearch(ctx context.Context, terms []string, kind core.SourceKind, opts *core.Options) (map[string][]core.Result, error) {
	return c.engine.MultiSearch(ctx, terms, kind, opts)
}

// Engine exposes the underlying engine for callers that need to compose it
// directly.
func (c *Client) Engine() *search.Engine {
	return c.engine
}

// Close releases the collection store, if one was configured.
func (c *Client) Close() error {
	if c.collections == nil {
		return nil
	}
	if err := c.collections.Close(); err != nil {
		c.logger.Error("error closing collection store", "err", err)
		return err
	}
	return nil
}
