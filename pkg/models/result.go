package models

import "github.com/google/uuid"

// Result is the complete outcome of processing one prompt end to end.
// On failure Success is false, Error carries the human-readable message,
// and GeneratedQuery is still populated when SQL generation succeeded
// before the failure.
type Result struct {
	RequestID        uuid.UUID          `json:"request_id"`
	Success          bool               `json:"success"`
	Domain           Domain             `json:"domain"`
	DomainConfidence float64            `json:"domain_confidence"`
	DomainScores     map[Domain]float64 `json:"all_domain_scores,omitempty"`
	Intent           *IntentResult      `json:"intent,omitempty"`
	Entities         *Entities          `json:"entities,omitempty"`
	GeneratedQuery   string             `json:"generated_query,omitempty"`
	Results          *ResultSet         `json:"query_results,omitempty"`
	Response         string             `json:"response,omitempty"`
	Chart            *ChartDecision     `json:"visualization,omitempty"`
	ChartType        ChartType          `json:"chart_type"`
	Error            string             `json:"error,omitempty"`
}

// SchemaAnalysis is the domain report produced without running a query.
type SchemaAnalysis struct {
	DetectedDomain Domain             `json:"detected_domain"`
	Confidence     float64            `json:"confidence"`
	AllScores      map[Domain]float64 `json:"all_scores"`
	Tables         []string           `json:"tables"`
	TotalColumns   int                `json:"total_columns"`
	Recommendation string             `json:"recommendation"`
}
