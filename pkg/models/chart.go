package models

// ChartType is the visualization selected for a result set.
type ChartType string

const (
	ChartBar        ChartType = "bar"
	ChartPie        ChartType = "pie"
	ChartLine       ChartType = "line"
	ChartScatter    ChartType = "scatter"
	ChartHistogram  ChartType = "histogram"
	ChartBox        ChartType = "box"
	ChartGroupedBar ChartType = "grouped_bar"
	ChartHeatmap    ChartType = "heatmap"
	ChartTreemap    ChartType = "treemap"
	ChartWaterfall  ChartType = "waterfall"
	ChartFunnel     ChartType = "funnel"

	// ChartTable is the tabular fallback when no chart rule matches.
	ChartTable ChartType = "table"

	// ChartNone means the data is unsuitable for any visualization.
	ChartNone ChartType = "none"
)

// ChartPreference captures a domain's visualization preferences.
// Avoid lists chart types the selection cascade must never pick for the
// domain; Colors is the color-scheme token handed to the renderer.
type ChartPreference struct {
	Primary      []ChartType
	Avoid        []ChartType
	Colors       string
	MetricsFocus []string
}

// Avoids reports whether the preference forbids the given chart type.
func (p ChartPreference) Avoids(ct ChartType) bool {
	for _, avoided := range p.Avoid {
		if avoided == ct {
			return true
		}
	}
	return false
}

// DefaultChartPreference is used for domains without an entry, including
// the general domain.
func DefaultChartPreference() ChartPreference {
	return ChartPreference{Colors: "Blues"}
}

// DomainChartPreferences returns the per-domain chart preference table.
func DomainChartPreferences() map[Domain]ChartPreference {
	return map[Domain]ChartPreference{
		DomainHealthcare: {
			Primary:      []ChartType{ChartBar, ChartLine, ChartPie, ChartFunnel},
			Avoid:        []ChartType{ChartTreemap},
			Colors:       "Blues",
			MetricsFocus: []string{"patient_count", "diagnosis_rate", "treatment_outcome"},
		},
		DomainFinance: {
			Primary:      []ChartType{ChartWaterfall, ChartLine, ChartBar, ChartHeatmap},
			Avoid:        []ChartType{ChartFunnel},
			Colors:       "Greens",
			MetricsFocus: []string{"revenue", "profit", "cost", "margin"},
		},
		DomainHospital: {
			Primary:      []ChartType{ChartBar, ChartHeatmap, ChartLine},
			Colors:       "Teal",
			MetricsFocus: []string{"bed_occupancy", "patient_flow", "department_load"},
		},
		DomainRetail: {
			Primary:      []ChartType{ChartBar, ChartPie, ChartLine, ChartTreemap},
			Avoid:        []ChartType{ChartWaterfall},
			Colors:       "Oranges",
			MetricsFocus: []string{"sales", "inventory", "customer_count"},
		},
		DomainEducation: {
			Primary:      []ChartType{ChartBar, ChartLine, ChartHistogram, ChartBox},
			Avoid:        []ChartType{ChartWaterfall},
			Colors:       "Purples",
			MetricsFocus: []string{"enrollment", "grades", "attendance"},
		},
		DomainHR: {
			Primary:      []ChartType{ChartBar, ChartPie, ChartHeatmap, ChartFunnel},
			Colors:       "Blues",
			MetricsFocus: []string{"headcount", "turnover", "salary"},
		},
		DomainLogistics: {
			Primary:      []ChartType{ChartLine, ChartHeatmap, ChartBar},
			Avoid:        []ChartType{ChartPie},
			Colors:       "Reds",
			MetricsFocus: []string{"delivery_time", "routes", "capacity"},
		},
		DomainEcommerce: {
			Primary:      []ChartType{ChartFunnel, ChartBar, ChartLine, ChartTreemap},
			Colors:       "Viridis",
			MetricsFocus: []string{"conversion", "cart_value", "sessions"},
		},
	}
}

// FigureSpec is the renderer boundary: the chart-type tag, the column
// bindings, the color-scheme token, and the already-transformed data.
// The UI turns this into an actual figure; the engine never renders.
type FigureSpec struct {
	ChartType   ChartType   `json:"chart_type"`
	XColumn     string      `json:"x_column,omitempty"`
	YColumn     string      `json:"y_column,omitempty"`
	ValueColumn string      `json:"value_column,omitempty"`
	GroupColumn string      `json:"group_column,omitempty"`
	PathColumns []string    `json:"path_columns,omitempty"`
	ColorScheme string      `json:"color_scheme,omitempty"`
	Data        *ResultSet  `json:"data,omitempty"`
	Pivot       *PivotTable `json:"pivot,omitempty"`
}

// ChartDecision is the outcome of chart selection: the chosen type and the
// figure inputs. Figure is nil when ChartType is ChartNone.
type ChartDecision struct {
	ChartType ChartType   `json:"chart_type"`
	Figure    *FigureSpec `json:"figure,omitempty"`
}
