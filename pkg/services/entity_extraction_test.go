package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdb-ai/askdb-engine/pkg/models"
)

func TestExtractEntities(t *testing.T) {
	extractor := NewEntityExtractor()

	got := extractor.Extract("Total average revenue by product last month")

	// Matches come back in scan-list order, not prompt order.
	assert.Equal(t, []string{"total", "average", "revenue"}, got.Metrics)
	assert.Equal(t, []string{"product", "month"}, got.Dimensions)
	assert.Equal(t, models.PeriodLastMonth, got.TimePeriod)
	// "total" wins even though "average" also appears.
	assert.Equal(t, models.AggregationSum, got.Aggregation)
	assert.Nil(t, got.Limit)
}

func TestExtractLimitRequiresRankingWord(t *testing.T) {
	extractor := NewEntityExtractor()

	t.Run("top N extracts limit", func(t *testing.T) {
		got := extractor.Extract("top 5 products by sales")
		require.NotNil(t, got.Limit)
		assert.Equal(t, 5, *got.Limit)
	})

	t.Run("bare number without ranking word is ignored", func(t *testing.T) {
		got := extractor.Extract("show 5 products")
		assert.Nil(t, got.Limit)
	})

	t.Run("ranking word without number yields no limit", func(t *testing.T) {
		got := extractor.Extract("best sellers last month")
		assert.Nil(t, got.Limit)
	})

	t.Run("unrelated number still captured", func(t *testing.T) {
		// Known misfire: "top" arms the extractor and the zip code is the
		// first integer in the prompt.
		got := extractor.Extract("top restaurants in zip 90210")
		require.NotNil(t, got.Limit)
		assert.Equal(t, 90210, *got.Limit)
	})
}

func TestExtractTimePeriodEnumOrder(t *testing.T) {
	extractor := NewEntityExtractor()

	tests := []struct {
		prompt string
		want   models.TimePeriod
	}{
		{"revenue last month", models.PeriodLastMonth},
		{"revenue this month", models.PeriodCurrentMonth},
		{"revenue previous year", models.PeriodLastYear},
		{"revenue current year", models.PeriodCurrentYear},
		{"revenue last quarter", models.PeriodLastQuarter},
		{"revenue last week", models.PeriodLastWeek},
		// Both periods present: enum order wins, not prompt order.
		{"last week vs last month", models.PeriodLastMonth},
		{"revenue overall", models.TimePeriod("")},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.prompt).TimePeriod)
		})
	}
}

func TestExtractAggregationPriority(t *testing.T) {
	extractor := NewEntityExtractor()

	tests := []struct {
		prompt string
		want   models.Aggregation
	}{
		{"sum of sales", models.AggregationSum},
		{"average order value", models.AggregationAverage},
		{"count of orders", models.AggregationCount},
		{"highest salary", models.AggregationMax},
		{"lowest salary", models.AggregationMin},
		{"average and total sales", models.AggregationSum},
		{"list the orders", models.Aggregation("")},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.prompt).Aggregation)
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	extractor := NewEntityExtractor()

	first := extractor.Extract("top 10 products by total sales last quarter")
	second := extractor.Extract("top 10 products by total sales last quarter")

	assert.Equal(t, first, second)
}

func TestExtractEmptyPrompt(t *testing.T) {
	got := NewEntityExtractor().Extract("")

	assert.Empty(t, got.Metrics)
	assert.Empty(t, got.Dimensions)
	assert.Empty(t, got.TimePeriod)
	assert.Empty(t, got.Aggregation)
	assert.Nil(t, got.Limit)
}
