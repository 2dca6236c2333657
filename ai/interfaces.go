package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// scoring. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// EmbedderFactory builds an Embedder bound to the given API credential.
// The credential is supplied per search call rather than read from the
// process environment.
type EmbedderFactory func(apiKey string) (Embedder, error)
