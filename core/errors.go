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

import "errors"

// Search error taxonomy. Every failure surfaced by a provider, strategy or
// the engine wraps one of these sentinels so callers can match with errors.Is.
var (
	// ErrInvalidSearchPath indicates a scope entry does not resolve to an
	// existing file, directory, or collection.
	ErrInvalidSearchPath = errors.New("invalid search path")

	// ErrFileAccessDenied indicates a permission failure reading a scope member.
	ErrFileAccessDenied = errors.New("file access denied")

	// ErrSearchTimeout indicates the timeout elapsed before the strategy completed.
	ErrSearchTimeout = errors.New("search timed out")

	// ErrEmptySearchTerm indicates an empty term was passed to a search entry point.
	ErrEmptySearchTerm = errors.New("search term cannot be empty")

	// ErrSearchPathUnavailable indicates a required scope list is missing.
	ErrSearchPathUnavailable = errors.New("search paths required but not provided")

	// ErrMissingAPIKey indicates the semantic strategy was invoked without a credential.
	ErrMissingAPIKey = errors.New("API key required for semantic search")

	// ErrFailedEmbeddingExtraction indicates the embedding collaborator
	// returned no usable vector.
	ErrFailedEmbeddingExtraction = errors.New("failed to extract embedding")

	// ErrInvalidSnapshotFormat indicates a remote scope payload is not a
	// keyed structure.
	ErrInvalidSnapshotFormat = errors.New("invalid snapshot format")

	// ErrInternal is the catch-all for unexpected collaborator failures.
	ErrInternal = errors.New("internal search error")
)
