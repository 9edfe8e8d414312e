// Package embedding abstracts the external embedding provider: given a
// batch of texts, it returns one fixed-length vector per text, in matching
// order. Order preservation is a correctness requirement; a provider that
// reorders results silently corrupts similarity scores downstream.
package embedding

import "context"

// Embedder produces one vector per input text, preserving input order.
// Implementations must be deterministic for identical text and model
// version. Batching mechanics are the implementation's concern; callers
// hand over all texts in one call so the provider can minimize round trips.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbedderFunc adapts a function to the Embedder interface
type EmbedderFunc func(ctx context.Context, texts []string) ([][]float32, error)

// Embed calls the wrapped function
func (f EmbedderFunc) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return f(ctx, texts)
}
