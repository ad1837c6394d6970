package llm

import "context"

// MockEmbedder is a configurable Embedder for tests.
// Set the function field to control behavior.
type MockEmbedder struct {
	// CreateEmbeddingFunc is called when CreateEmbedding is invoked.
	// If nil, returns nil slice and nil error.
	CreateEmbeddingFunc func(ctx context.Context, input string) ([]float32, error)

	// Call tracking for verification
	CreateEmbeddingCalls int
}

// NewMockEmbedder creates a new mock embedder.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// CreateEmbedding implements Embedder.
func (m *MockEmbedder) CreateEmbedding(ctx context.Context, input string) ([]float32, error) {
	m.CreateEmbeddingCalls++
	if m.CreateEmbeddingFunc != nil {
		return m.CreateEmbeddingFunc(ctx, input)
	}
	return nil, nil
}

// Reset clears call tracking.
func (m *MockEmbedder) Reset() {
	m.CreateEmbeddingCalls = 0
}

// MockGenerator is a configurable TextGenerator for tests.
type MockGenerator struct {
	// GenerateResponseFunc is called when GenerateResponse is invoked.
	// If nil, returns empty string and nil error.
	GenerateResponseFunc func(ctx context.Context, prompt, systemMessage string, temperature float64, maxTokens int) (string, error)

	// Call tracking for verification
	GenerateResponseCalls int
	LastPrompt            string
	LastSystemMessage     string
	LastTemperature       float64
	LastMaxTokens         int
}

// NewMockGenerator creates a new mock generator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateResponse implements TextGenerator.
func (m *MockGenerator) GenerateResponse(ctx context.Context, prompt, systemMessage string, temperature float64, maxTokens int) (string, error) {
	m.GenerateResponseCalls++
	m.LastPrompt = prompt
	m.LastSystemMessage = systemMessage
	m.LastTemperature = temperature
	m.LastMaxTokens = maxTokens
	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, prompt, systemMessage, temperature, maxTokens)
	}
	return "", nil
}

// Reset clears call tracking.
func (m *MockGenerator) Reset() {
	m.GenerateResponseCalls = 0
	m.LastPrompt = ""
	m.LastSystemMessage = ""
	m.LastTemperature = 0
	m.LastMaxTokens = 0
}

// Ensure mocks implement the interfaces at compile time.
var (
	_ Embedder      = (*MockEmbedder)(nil)
	_ TextGenerator = (*MockGenerator)(nil)
)
