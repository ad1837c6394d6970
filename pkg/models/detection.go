package models

// DetectionResult is the outcome of domain detection over a schema.
// Domain is the argmax of AllScores unless the argmax value falls below
// the detection threshold, in which case Domain is DomainGeneral and
// Confidence still carries the sub-threshold maximum.
type DetectionResult struct {
	Domain     Domain             `json:"domain"`
	Confidence float64            `json:"confidence"`
	AllScores  map[Domain]float64 `json:"all_scores"`
}

// IntentResult is the outcome of intent classification over a prompt.
// Intent is always the argmax of AllScores; there is no fallback category.
// Scores are cosine similarities, not probabilities.
type IntentResult struct {
	Intent     IntentCategory             `json:"intent"`
	Confidence float64                    `json:"confidence"`
	AllScores  map[IntentCategory]float64 `json:"all_scores"`
}

// TimePeriod is the relative time window extracted from a prompt.
type TimePeriod string

const (
	PeriodLastMonth    TimePeriod = "last_month"
	PeriodCurrentMonth TimePeriod = "current_month"
	PeriodLastYear     TimePeriod = "last_year"
	PeriodCurrentYear  TimePeriod = "current_year"
	PeriodLastQuarter  TimePeriod = "last_quarter"
	PeriodLastWeek     TimePeriod = "last_week"
)

// Aggregation is the single aggregation function extracted from a prompt.
type Aggregation string

const (
	AggregationSum     Aggregation = "sum"
	AggregationAverage Aggregation = "average"
	AggregationCount   Aggregation = "count"
	AggregationMax     Aggregation = "max"
	AggregationMin     Aggregation = "min"
)

// Entities holds the structured facts extracted from a prompt.
// Metrics and Dimensions preserve scan-list order, not prompt order.
// TimePeriod and Aggregation are empty when nothing matched; Limit is nil
// when no ranking limit was requested.
type Entities struct {
	Metrics     []string    `json:"metrics"`
	Dimensions  []string    `json:"dimensions"`
	TimePeriod  TimePeriod  `json:"time_period,omitempty"`
	Aggregation Aggregation `json:"aggregation,omitempty"`
	Limit       *int        `json:"limit,omitempty"`
}

// Classification bundles everything the prompt and schema analysis produced.
// Query generation embeds it as structured context.
type Classification struct {
	Domain           Domain             `json:"domain"`
	DomainConfidence float64            `json:"domain_confidence"`
	DomainScores     map[Domain]float64 `json:"all_domain_scores,omitempty"`
	Intent           *IntentResult      `json:"intent"`
	Entities         *Entities          `json:"entities"`
}
