package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/llm"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/scoring"
)

// IntentClassifier assigns a prompt to one of the fixed intent categories.
type IntentClassifier interface {
	// Classify always returns one of the declared categories; unlike
	// domain detection there is no threshold or fallback.
	Classify(ctx context.Context, prompt string) (*models.IntentResult, error)
}

type intentClassifier struct {
	signatures []models.IntentSignature
	embedder   llm.Embedder
	logger     *zap.Logger
}

// NewIntentClassifier creates a classifier over the given intent table.
// Slice order is the argmax tie-break, same rule as domain detection.
func NewIntentClassifier(signatures []models.IntentSignature, embedder llm.Embedder, logger *zap.Logger) IntentClassifier {
	return &intentClassifier{
		signatures: signatures,
		embedder:   embedder,
		logger:     logger,
	}
}

// Classify implements IntentClassifier.
func (c *intentClassifier) Classify(ctx context.Context, prompt string) (*models.IntentResult, error) {
	promptEmb, err := c.embedder.CreateEmbedding(ctx, strings.ToLower(prompt))
	if err != nil {
		return nil, fmt.Errorf("embed prompt: %w", err)
	}

	scores := make(map[models.IntentCategory]float64, len(c.signatures))
	var best models.IntentCategory
	bestScore := 0.0
	haveBest := false

	for _, sig := range c.signatures {
		phraseEmb, err := c.embedder.CreateEmbedding(ctx, strings.Join(sig.Phrases, " "))
		if err != nil {
			return nil, fmt.Errorf("embed phrases for %s: %w", sig.Name, err)
		}

		score := scoring.Cosine(promptEmb, phraseEmb)
		scores[sig.Name] = score

		if !haveBest || score > bestScore {
			best = sig.Name
			bestScore = score
			haveBest = true
		}
	}

	c.logger.Debug("intent classified",
		zap.String("intent", string(best)),
		zap.Float64("confidence", bestScore))

	return &models.IntentResult{
		Intent:     best,
		Confidence: bestScore,
		AllScores:  scores,
	}, nil
}
