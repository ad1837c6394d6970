package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/apperrors"
	"github.com/askdb-ai/askdb-engine/pkg/llm"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/prompts"
	"github.com/askdb-ai/askdb-engine/pkg/retry"
	"github.com/askdb-ai/askdb-engine/pkg/sql"
)

// SQL generation runs cold: correctness over creativity.
const (
	sqlGenTemperature = 0.1
	sqlGenMaxTokens   = 512
)

// QueryGenerator produces a single screened SELECT statement for a
// classified prompt.
type QueryGenerator interface {
	Generate(ctx context.Context, prompt string, cls *models.Classification, schema models.Schema) (string, error)
}

type queryGenerator struct {
	generator llm.TextGenerator
	retryCfg  *retry.Config
	logger    *zap.Logger
}

// NewQueryGenerator creates a generator backed by the given text model.
func NewQueryGenerator(generator llm.TextGenerator, retryCfg *retry.Config, logger *zap.Logger) QueryGenerator {
	if retryCfg == nil {
		retryCfg = retry.DefaultConfig()
	}
	return &queryGenerator{
		generator: generator,
		retryCfg:  retryCfg,
		logger:    logger,
	}
}

// Generate implements QueryGenerator. The raw completion is cleaned,
// checked for multiple statements, and its string literals are screened
// for injection before being returned.
func (g *queryGenerator) Generate(ctx context.Context, prompt string, cls *models.Classification, schema models.Schema) (string, error) {
	if len(schema) == 0 {
		return "", apperrors.ErrSchemaRequired
	}

	sqlPrompt := prompts.BuildSQLPrompt(prompt, cls, schema)
	systemMsg := prompts.SQLSystemMessage(cls.Domain)

	raw, err := retry.DoWithResult(ctx, g.retryCfg, func() (string, error) {
		return g.generator.GenerateResponse(ctx, sqlPrompt, systemMsg, sqlGenTemperature, sqlGenMaxTokens)
	})
	if err != nil {
		return "", fmt.Errorf("generate SQL: %w", err)
	}

	query := sql.CleanGeneratedSQL(raw)
	if query == "" {
		return "", fmt.Errorf("model returned no usable SQL")
	}

	if err := sql.ValidateSingleStatement(query); err != nil {
		return "", err
	}

	for _, check := range sql.ScreenStringLiterals(query) {
		if check.IsSQLi {
			g.logger.Warn("injection pattern in generated SQL",
				zap.String("fingerprint", check.Fingerprint),
				zap.String("literal", check.Literal))
			return "", apperrors.ErrInjectionDetected
		}
	}

	g.logger.Debug("SQL generated",
		zap.String("domain", string(cls.Domain)),
		zap.Int("query_length", len(query)))

	return query, nil
}
