// Package llm provides the embedding and text-generation provider clients.
package llm

import "context"

// Embedder converts text into a fixed-length vector for similarity scoring.
// Implementations must be deterministic for identical input so that domain
// detection and intent classification are reproducible.
type Embedder interface {
	CreateEmbedding(ctx context.Context, input string) ([]float32, error)
}

// TextGenerator produces a chat completion from a system message and a
// user prompt. Calls block until the provider responds; callers impose
// their own timeout and retry policy.
type TextGenerator interface {
	GenerateResponse(ctx context.Context, prompt, systemMessage string, temperature float64, maxTokens int) (string, error)
}

// Ensure the concrete clients satisfy the interfaces at compile time.
var (
	_ Embedder      = (*Client)(nil)
	_ TextGenerator = (*Client)(nil)
	_ TextGenerator = (*AnthropicGenerator)(nil)
)
