// Package services contains the decision engine: domain detection, intent
// classification, entity extraction, chart selection, and the orchestration
// that ties them to the SQL and response generators.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/llm"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/scoring"
)

// Score fusion weights and the general-domain threshold. Keyword matching
// is fast and literal; embedding similarity carries schemas whose
// vocabulary paraphrases the domain, so it gets the larger weight.
const (
	semanticWeight     = 0.7
	keywordWeight      = 0.3
	detectionThreshold = 0.3
)

// DomainDetector infers the business vertical of a schema.
type DomainDetector interface {
	// Detect scores the schema against every domain signature and returns
	// the fused result. Degenerate inputs (empty schema, zero-variance
	// embeddings) yield a low-confidence general result, not an error;
	// only embedding provider failures propagate.
	Detect(ctx context.Context, schema models.Schema) (*models.DetectionResult, error)
}

type domainDetector struct {
	signatures []models.DomainSignature
	embedder   llm.Embedder
	logger     *zap.Logger
}

// NewDomainDetector creates a detector over the given signature table.
// The table is read-only; slice order is the argmax tie-break.
func NewDomainDetector(signatures []models.DomainSignature, embedder llm.Embedder, logger *zap.Logger) DomainDetector {
	return &domainDetector{
		signatures: signatures,
		embedder:   embedder,
		logger:     logger,
	}
}

// Detect implements DomainDetector.
func (d *domainDetector) Detect(ctx context.Context, schema models.Schema) (*models.DetectionResult, error) {
	schemaText := schema.Flatten()

	schemaEmb, err := d.embedder.CreateEmbedding(ctx, schemaText)
	if err != nil {
		return nil, fmt.Errorf("embed schema text: %w", err)
	}

	combined := make(map[models.Domain]float64, len(d.signatures))
	var best models.Domain
	bestScore := 0.0
	haveBest := false

	for _, sig := range d.signatures {
		keywordScore := scoring.KeywordOverlap(schemaText, sig.Keywords)

		descEmb, err := d.embedder.CreateEmbedding(ctx, sig.Description)
		if err != nil {
			return nil, fmt.Errorf("embed description for %s: %w", sig.Name, err)
		}
		semanticScore := scoring.Cosine(schemaEmb, descEmb)

		score := semanticWeight*semanticScore + keywordWeight*keywordScore
		combined[sig.Name] = score

		// Strictly-greater keeps the first-seen domain on ties.
		if !haveBest || score > bestScore {
			best = sig.Name
			bestScore = score
			haveBest = true
		}
	}

	if !haveBest || bestScore < detectionThreshold {
		d.logger.Debug("no domain cleared threshold",
			zap.Float64("max_score", bestScore))
		return &models.DetectionResult{
			Domain:     models.DomainGeneral,
			Confidence: bestScore,
			AllScores:  combined,
		}, nil
	}

	d.logger.Info("domain detected",
		zap.String("domain", string(best)),
		zap.Float64("confidence", bestScore))

	return &models.DetectionResult{
		Domain:     best,
		Confidence: bestScore,
		AllScores:  combined,
	}, nil
}
