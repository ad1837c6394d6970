package llm

import (
	"context"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/apperrors"
)

// AnthropicGenerator is a TextGenerator backed by the Anthropic Messages
// API. It only generates; embeddings still come from an OpenAI-compatible
// Embedder.
type AnthropicGenerator struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

// NewAnthropicGenerator creates an Anthropic-backed text generator.
// A missing API key is a configuration error surfaced immediately.
func NewAnthropicGenerator(apiKey, model string, logger *zap.Logger) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	if model == "" {
		model = string(anthropic.ModelClaude3Dot5SonnetLatest)
	}

	return &AnthropicGenerator{
		client: anthropic.NewClient(apiKey),
		model:  model,
		logger: logger.Named("anthropic"),
	}, nil
}

// GenerateResponse implements TextGenerator.
func (g *AnthropicGenerator) GenerateResponse(ctx context.Context, prompt, systemMessage string, temperature float64, maxTokens int) (string, error) {
	temp := float32(temperature)

	start := time.Now()

	resp, err := g.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(g.model),
		System:      systemMessage,
		Messages:    []anthropic.Message{anthropic.NewUserTextMessage(prompt)},
		MaxTokens:   maxTokens,
		Temperature: &temp,
	})
	if err != nil {
		g.logger.Error("Anthropic request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", ClassifyError(err)
	}

	g.logger.Info("Anthropic request completed",
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.GetFirstContentText(), nil
}

// GetModel returns the configured model name.
func (g *AnthropicGenerator) GetModel() string {
	return g.model
}
