package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/askdb-ai/askdb-engine/pkg/models"
)

// Keyword scan lists. Matches are collected in this order, not in the
// order they appear in the prompt.
var (
	metricPatterns = []string{
		"total", "sum", "count", "average", "max", "min",
		"revenue", "sales", "profit", "cost", "price", "amount",
		"quantity", "number", "rate", "percentage",
	}

	dimensionPatterns = []string{
		"product", "customer", "region", "category", "type",
		"date", "time", "month", "year", "day", "department",
		"location", "city", "country", "state",
	}
)

// timePeriodTriggers pairs each period with its trigger phrases, in the
// declared enum order. The first period with any matching phrase wins.
var timePeriodTriggers = []struct {
	period   models.TimePeriod
	triggers []string
}{
	{models.PeriodLastMonth, []string{"last month", "previous month"}},
	{models.PeriodCurrentMonth, []string{"this month", "current month"}},
	{models.PeriodLastYear, []string{"last year", "previous year"}},
	{models.PeriodCurrentYear, []string{"this year", "current year"}},
	{models.PeriodLastQuarter, []string{"last quarter", "previous quarter"}},
	{models.PeriodLastWeek, []string{"last week", "previous week"}},
}

// aggregationChecks is the single-label priority order: sum/total is
// checked first and wins even when other aggregation words co-occur.
var aggregationChecks = []struct {
	agg      models.Aggregation
	triggers []string
}{
	{models.AggregationSum, []string{"total", "sum"}},
	{models.AggregationAverage, []string{"average", "avg", "mean"}},
	{models.AggregationCount, []string{"count"}},
	{models.AggregationMax, []string{"max", "maximum", "highest"}},
	{models.AggregationMin, []string{"min", "minimum", "lowest"}},
}

var (
	rankingWords = []string{"top", "bottom", "first", "last"}
	integerRe    = regexp.MustCompile(`\b(\d+)\b`)
)

// EntityExtractor pulls structured facts out of a prompt with pure,
// case-insensitive substring matching. No provider calls.
type EntityExtractor interface {
	Extract(prompt string) *models.Entities
}

type entityExtractor struct{}

// NewEntityExtractor creates the extractor.
func NewEntityExtractor() EntityExtractor {
	return &entityExtractor{}
}

// Extract implements EntityExtractor.
//
// Known limitation: the limit field captures the first integer in the
// prompt whenever a ranking word is present, even when the number is
// unrelated (e.g. "top restaurants in zip 90210" extracts 90210). The
// misfire is inherited behavior; intended semantics are ambiguous.
func (e *entityExtractor) Extract(prompt string) *models.Entities {
	lower := strings.ToLower(prompt)

	entities := &models.Entities{}

	for _, m := range metricPatterns {
		if strings.Contains(lower, m) {
			entities.Metrics = append(entities.Metrics, m)
		}
	}

	for _, d := range dimensionPatterns {
		if strings.Contains(lower, d) {
			entities.Dimensions = append(entities.Dimensions, d)
		}
	}

	for _, tp := range timePeriodTriggers {
		if containsAny(lower, tp.triggers) {
			entities.TimePeriod = tp.period
			break
		}
	}

	for _, ac := range aggregationChecks {
		if containsAny(lower, ac.triggers) {
			entities.Aggregation = ac.agg
			break
		}
	}

	if containsAny(lower, rankingWords) {
		if match := integerRe.FindString(lower); match != "" {
			if n, err := strconv.Atoi(match); err == nil {
				entities.Limit = &n
			}
		}
	}

	return entities
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
