package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/apperrors"
	"github.com/askdb-ai/askdb-engine/pkg/llm"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/retry"
)

// noRetry keeps failure tests fast.
func noRetry() *retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 0
	return cfg
}

func testClassification() *models.Classification {
	return &models.Classification{
		Domain: models.DomainRetail,
		Intent: &models.IntentResult{Intent: models.IntentTopBottom},
		Entities: &models.Entities{
			Metrics: []string{"sales"},
		},
	}
}

func testSchema() models.Schema {
	return models.Schema{
		{Name: "sales", Columns: []string{"product", "amount"}},
	}
}

func TestGenerateCleansFencedSQL(t *testing.T) {
	mock := llm.NewMockGenerator()
	mock.GenerateResponseFunc = func(_ context.Context, _, _ string, _ float64, _ int) (string, error) {
		return "```sql\nSELECT product, SUM(amount) FROM sales GROUP BY product;\n```", nil
	}

	gen := NewQueryGenerator(mock, noRetry(), zap.NewNop())

	got, err := gen.Generate(context.Background(), "top products", testClassification(), testSchema())
	require.NoError(t, err)

	assert.Equal(t, "SELECT product, SUM(amount) FROM sales GROUP BY product", got)
	assert.Equal(t, 1, mock.GenerateResponseCalls)
	assert.Equal(t, 0.1, mock.LastTemperature)
	assert.Equal(t, 512, mock.LastMaxTokens)
	assert.Contains(t, mock.LastPrompt, "USER REQUEST: top products")
	assert.Contains(t, mock.LastSystemMessage, "retail databases")
}

func TestGenerateRequiresSchema(t *testing.T) {
	gen := NewQueryGenerator(llm.NewMockGenerator(), noRetry(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "top products", testClassification(), models.Schema{})

	assert.ErrorIs(t, err, apperrors.ErrSchemaRequired)
}

func TestGenerateRejectsMultipleStatements(t *testing.T) {
	mock := llm.NewMockGenerator()
	mock.GenerateResponseFunc = func(_ context.Context, _, _ string, _ float64, _ int) (string, error) {
		return "SELECT 1; DROP TABLE sales", nil
	}

	gen := NewQueryGenerator(mock, noRetry(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "top products", testClassification(), testSchema())

	require.Error(t, err)
}

func TestGenerateRejectsInjectionInLiteral(t *testing.T) {
	mock := llm.NewMockGenerator()
	mock.GenerateResponseFunc = func(_ context.Context, _, _ string, _ float64, _ int) (string, error) {
		return "SELECT * FROM users WHERE name = '1'' OR ''1''=''1'", nil
	}

	gen := NewQueryGenerator(mock, noRetry(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "find user", testClassification(), testSchema())

	assert.ErrorIs(t, err, apperrors.ErrInjectionDetected)
}

func TestGenerateRejectsEmptyCompletion(t *testing.T) {
	mock := llm.NewMockGenerator()
	mock.GenerateResponseFunc = func(_ context.Context, _, _ string, _ float64, _ int) (string, error) {
		return "   \n", nil
	}

	gen := NewQueryGenerator(mock, noRetry(), zap.NewNop())

	_, err := gen.Generate(context.Background(), "top products", testClassification(), testSchema())

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInjectionDetected)
}

func TestGenerateRetriesTransientProviderErrors(t *testing.T) {
	mock := llm.NewMockGenerator()
	mock.GenerateResponseFunc = func(_ context.Context, _, _ string, _ float64, _ int) (string, error) {
		if mock.GenerateResponseCalls == 1 {
			return "", llm.NewError(llm.ErrorTypeEndpoint, "rate limited", true, nil)
		}
		return "SELECT 1", nil
	}

	cfg := retry.DefaultConfig()
	cfg.InitialDelay = 0
	gen := NewQueryGenerator(mock, cfg, zap.NewNop())

	got, err := gen.Generate(context.Background(), "anything", testClassification(), testSchema())
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1", got)
	assert.Equal(t, 2, mock.GenerateResponseCalls)
}

func TestResponseGeneratorTemperature(t *testing.T) {
	mock := llm.NewMockGenerator()
	mock.GenerateResponseFunc = func(_ context.Context, _, _ string, _ float64, _ int) (string, error) {
		return "Sales totaled 42.", nil
	}

	gen := NewResponseGenerator(mock, noRetry(), zap.NewNop())

	rs := &models.ResultSet{
		Columns: []models.ResultColumn{{Name: "total", Kind: models.ColumnNumeric}},
		Rows:    [][]any{{42}},
	}

	got, err := gen.Generate(context.Background(), "what were sales?", rs, models.IntentAnalyzeMetrics)
	require.NoError(t, err)

	assert.Equal(t, "Sales totaled 42.", got)
	assert.Equal(t, 0.7, mock.LastTemperature)
	assert.Equal(t, 1024, mock.LastMaxTokens)
	assert.Contains(t, mock.LastPrompt, "USER QUESTION: what were sales?")
}
