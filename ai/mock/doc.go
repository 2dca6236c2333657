// Package mock provides test double implementations of the ai interfaces.
//
// MockEmbedder implements ai.Embedder without external service dependencies
// and enables controlled, deterministic behavior in unit tests.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	embedder := mock.NewMockEmbedder()
//	vector, err := embedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
//
// # Default Behavior
//
// MockEmbedder returns deterministic vectors derived from the text hash, so
// identical texts always embed to identical vectors.
package mock
