package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/llm"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/prompts"
	"github.com/askdb-ai/askdb-engine/pkg/retry"
)

// Response generation runs warm so the wording varies between calls.
const (
	responseTemperature = 0.7
	responseMaxTokens   = 1024
)

// ResponseGenerator turns query results into a plain-language answer.
type ResponseGenerator interface {
	Generate(ctx context.Context, prompt string, results *models.ResultSet, intent models.IntentCategory) (string, error)
}

type responseGenerator struct {
	generator llm.TextGenerator
	retryCfg  *retry.Config
	logger    *zap.Logger
}

// NewResponseGenerator creates a generator backed by the given text model.
func NewResponseGenerator(generator llm.TextGenerator, retryCfg *retry.Config, logger *zap.Logger) ResponseGenerator {
	if retryCfg == nil {
		retryCfg = retry.DefaultConfig()
	}
	return &responseGenerator{
		generator: generator,
		retryCfg:  retryCfg,
		logger:    logger,
	}
}

// Generate implements ResponseGenerator.
func (g *responseGenerator) Generate(ctx context.Context, prompt string, results *models.ResultSet, intent models.IntentCategory) (string, error) {
	responsePrompt := prompts.BuildResponsePrompt(prompt, results, intent)

	answer, err := retry.DoWithResult(ctx, g.retryCfg, func() (string, error) {
		return g.generator.GenerateResponse(ctx, responsePrompt, prompts.ResponseSystemMessage, responseTemperature, responseMaxTokens)
	})
	if err != nil {
		return "", fmt.Errorf("generate response: %w", err)
	}

	g.logger.Debug("response generated", zap.Int("length", len(answer)))
	return answer, nil
}
