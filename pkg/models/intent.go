package models

// IntentCategory is the functional category of a user's question.
type IntentCategory string

const (
	IntentGenerateReport IntentCategory = "generate_report"
	IntentQueryData      IntentCategory = "query_data"
	IntentAnalyzeMetrics IntentCategory = "analyze_metrics"
	IntentCompare        IntentCategory = "compare"
	IntentTrend          IntentCategory = "trend"
	IntentFilter         IntentCategory = "filter"
	IntentTopBottom      IntentCategory = "top_bottom"
)

// IntentSignature pairs a category with its representative phrases.
// The phrases are joined into one string for embedding comparison.
type IntentSignature struct {
	Name    IntentCategory
	Phrases []string
}

// DefaultIntentSignatures returns the closed set of intent categories.
// Slice order is the argmax tie-break, same rule as domain signatures.
func DefaultIntentSignatures() []IntentSignature {
	return []IntentSignature{
		{IntentGenerateReport, []string{"generate report", "create report", "show report", "make report"}},
		{IntentQueryData, []string{"show me", "get data", "what is", "display", "fetch", "retrieve"}},
		{IntentAnalyzeMetrics, []string{"total", "sum", "average", "count", "calculate", "compute"}},
		{IntentCompare, []string{"compare", "versus", "vs", "difference", "between"}},
		{IntentTrend, []string{"trend", "over time", "growth", "change", "timeline"}},
		{IntentFilter, []string{"filter", "where", "only", "specific", "particular"}},
		{IntentTopBottom, []string{"top", "bottom", "best", "worst", "highest", "lowest"}},
	}
}
