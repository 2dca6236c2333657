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


package core

import (
	"strings"
	"time"
)

// DefaultMaxResults is the result-list cap applied when none is configured.
const DefaultMaxResults = 100

// Options is the configuration bundle for a single search call.
type Options struct {
	// CaseSensitive disables the default case folding of terms and payloads.
	CaseSensitive bool

	// FuzzyMatching selects edit-distance matching.
	FuzzyMatching bool

	// PatternMatch selects occurrence-count matching with context snippets.
	PatternMatch bool

	// Semantic selects embedding-based similarity matching.
	// Takes precedence over PatternMatch and FuzzyMatching.
	Semantic bool

	// MaxResults caps the result list after sorting. Clamped to >= 1.
	MaxResults int

	// SearchPaths lists the scope locators. Required by content-bearing
	// sources; the file-name source defaults to the current directory.
	SearchPaths []string

	// FileExtensions is an optional allow-list filter, without dot prefix.
	FileExtensions []string

	// Timeout bounds the whole search call. Zero means unbounded.
	Timeout time.Duration

	// APIKey is the credential passed to the embedding service.
	// Only the semantic strategy requires it.
	APIKey string
}

// Option is a functional option for configuring search Options.
type Option func(*Options)

// WithCaseSensitive enables case-sensitive matching.
func WithCaseSensitive() Option {
	return func(o *Options) {
		o.CaseSensitive = true
	}
}

// WithFuzzyMatching selects the fuzzy edit-distance strategy.
func WithFuzzyMatching() Option {
	return func(o *Options) {
		o.FuzzyMatching = true
	}
}

// WithPatternMatch selects the pattern/context-extraction strategy.
func WithPatternMatch() Option {
	return func(o *Options) {
		o.PatternMatch = true
	}
}

// WithSemantic selects the embedding-based semantic strategy.
func WithSemantic(apiKey string) Option {
	return func(o *Options) {
		o.Semantic = true
		o.APIKey = apiKey
	}
}

// WithMaxResults sets the result-list cap. Values below 1 are clamped to 1.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		o.MaxResults = n
	}
}

// WithSearchPaths sets the scope locators.
func WithSearchPaths(paths ...string) Option {
	return func(o *Options) {
		o.SearchPaths = paths
	}
}

// WithFileExtensions sets the extension allow-list. Leading dots are stripped.
func WithFileExtensions(exts ...string) Option {
	return func(o *Options) {
		o.FileExtensions = exts
	}
}

// WithTimeout bounds the search call.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// DefaultOptions returns Options with the documented defaults: case-insensitive
// exact matching, up to DefaultMaxResults results, no timeout.
func DefaultOptions() *Options {
	return &Options{
		MaxResults: DefaultMaxResults,
	}
}

// NewOptions creates Options from the defaults, applies the provided
// functional options, and normalizes the result.
func NewOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.Normalize()
	return o
}

// Normalize puts the options into canonical form: MaxResults is clamped to
// at least 1 and extension filters lose any leading dot.
func (o *Options) Normalize() {
	if o.MaxResults < 1 {
		o.MaxResults = 1
	}
	for i, ext := range o.FileExtensions {
		o.FileExtensions[i] = strings.TrimPrefix(ext, ".")
	}
}

// Clone returns an independent copy of the options. Concurrent searches each
// operate on their own copy to avoid aliasing the slices.
func (o *Options) Clone() *Options {
	dup := *o
	if o.SearchPaths != nil {
		dup.SearchPaths = make([]string, len(o.SearchPaths))
		copy(dup.SearchPaths, o.SearchPaths)
	}
	if o.FileExtensions != nil {
		dup.FileExtensions = make([]string, len(o.FileExtensions))
		copy(dup.FileExtensions, o.FileExtensions)
	}
	return &dup
}
