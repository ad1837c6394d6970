package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/models"
)

// Per-chart transform limits.
const (
	barChartMaxRows  = 20  // bar charts keep the 20 largest-by-value rows
	pieChartMaxSlice = 8   // pie charts keep 8 slices plus a merged "Others"
	pieChartMaxRows  = 10  // composition rule only fires for small results
	tableMaxRows     = 100 // tabular fallback truncates beyond this
)

// ChartSelector maps a result set, the original prompt, the classified
// intent, and the detected domain to a chart decision.
type ChartSelector interface {
	Select(data *models.ResultSet, prompt string, intent models.IntentCategory, domain models.Domain) *models.ChartDecision
}

type chartSelector struct {
	preferences map[models.Domain]models.ChartPreference
	logger      *zap.Logger
}

// NewChartSelector creates a selector over the given preference table.
func NewChartSelector(preferences map[models.Domain]models.ChartPreference, logger *zap.Logger) ChartSelector {
	return &chartSelector{
		preferences: preferences,
		logger:      logger,
	}
}

// selection carries the per-call facts every rule predicate consults.
type selection struct {
	data     *models.ResultSet
	prompt   string // lowercased
	intent   models.IntentCategory
	domain   models.Domain
	pref     models.ChartPreference
	numeric  []string
	categor  []string
	temporal []string
}

// chartRule is one step of the cascade: the first rule whose predicate
// holds builds the figure; later rules are never consulted.
type chartRule struct {
	name    string
	matches func(s *selection) bool
	build   func(s *selection) *models.FigureSpec
}

// Select implements ChartSelector. The cascade is an explicit ordered
// rule list evaluated top to bottom with no backtracking.
func (c *chartSelector) Select(data *models.ResultSet, prompt string, intent models.IntentCategory, domain models.Domain) *models.ChartDecision {
	if data.IsEmpty() {
		return &models.ChartDecision{ChartType: models.ChartNone}
	}

	pref, ok := c.preferences[domain]
	if !ok {
		pref = models.DefaultChartPreference()
	}

	s := &selection{
		data:     data,
		prompt:   strings.ToLower(prompt),
		intent:   intent,
		domain:   domain,
		pref:     pref,
		numeric:  data.NumericColumns(),
		categor:  data.CategoricalColumns(),
		temporal: data.TemporalColumns(),
	}

	for _, rule := range c.rules() {
		if !rule.matches(s) {
			continue
		}
		fig := rule.build(s)
		if fig == nil {
			continue
		}
		c.logger.Debug("chart selected",
			zap.String("rule", rule.name),
			zap.String("chart_type", string(fig.ChartType)),
			zap.String("domain", string(domain)))
		return &models.ChartDecision{ChartType: fig.ChartType, Figure: fig}
	}

	// No rule matched and the data fits nothing tabular either.
	return &models.ChartDecision{ChartType: models.ChartNone}
}

func (c *chartSelector) rules() []chartRule {
	return []chartRule{
		{
			name: "financial_waterfall",
			matches: func(s *selection) bool {
				return s.domain == models.DomainFinance &&
					mentionsAny(s.prompt, "profit", "loss", "breakdown", "p&l") &&
					s.data.RowCount() <= 10 &&
					len(s.numeric) >= 1
			},
			build: buildWaterfall,
		},
		{
			name: "conversion_funnel",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "funnel", "conversion", "pipeline", "stages") &&
					len(s.categor) >= 1 && len(s.numeric) >= 1 &&
					!s.pref.Avoids(models.ChartFunnel)
			},
			build: buildFunnel,
		},
		{
			name: "hierarchy_treemap",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "hierarchy", "breakdown", "composition") &&
					len(s.categor) >= 2 &&
					!s.pref.Avoids(models.ChartTreemap)
			},
			build: buildTreemap,
		},
		{
			name: "distribution",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "distribution", "spread", "range") &&
					len(s.numeric) >= 1
			},
			build: buildDistribution,
		},
		{
			name: "correlation_scatter",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "correlation", "relationship", "vs", "versus") &&
					len(s.numeric) >= 2
			},
			build: buildScatter,
		},
		{
			name: "comparison_grouped_bar",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "compare", "comparison") &&
					len(s.categor) >= 2 && len(s.numeric) >= 1
			},
			build: buildGroupedBar,
		},
		{
			// Fires on data shape alone: any date-like column plus a
			// numeric column reads as a trend, regardless of wording.
			name: "trend_line",
			matches: func(s *selection) bool {
				return len(s.temporal) >= 1 && len(s.numeric) >= 1
			},
			build: buildLine,
		},
		{
			name: "composition_pie",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "share", "percentage", "proportion") &&
					s.data.RowCount() <= pieChartMaxRows &&
					len(s.categor) >= 1 && len(s.numeric) >= 1 &&
					!s.pref.Avoids(models.ChartPie)
			},
			build: buildPie,
		},
		{
			name: "top_bottom_bar",
			matches: func(s *selection) bool {
				return (s.intent == models.IntentTopBottom ||
					mentionsAny(s.prompt, "top", "bottom", "best", "worst")) &&
					len(s.categor) >= 1 && len(s.numeric) >= 1
			},
			build: buildBar,
		},
		{
			name: "pattern_heatmap",
			matches: func(s *selection) bool {
				return mentionsAny(s.prompt, "pattern", "heatmap", "matrix") &&
					len(s.categor) >= 2 && len(s.numeric) >= 1
			},
			build: buildHeatmap,
		},
		{
			name:    "default",
			matches: func(s *selection) bool { return true },
			build:   buildDefault,
		},
	}
}

func mentionsAny(prompt string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(prompt, w) {
			return true
		}
	}
	return false
}

// firstOr returns the first element or the fallback when empty.
func firstOr(names []string, fallback string) string {
	if len(names) > 0 {
		return names[0]
	}
	return fallback
}

func buildWaterfall(s *selection) *models.FigureSpec {
	// Without a categorical column the first declared column labels the bars.
	x := firstOr(s.categor, s.data.Columns[0].Name)
	return &models.FigureSpec{
		ChartType:   models.ChartWaterfall,
		XColumn:     x,
		YColumn:     s.numeric[0],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}

func buildFunnel(s *selection) *models.FigureSpec {
	return &models.FigureSpec{
		ChartType:   models.ChartFunnel,
		XColumn:     s.numeric[0],
		YColumn:     s.categor[0],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}

func buildTreemap(s *selection) *models.FigureSpec {
	fig := &models.FigureSpec{
		ChartType:   models.ChartTreemap,
		PathColumns: s.categor[:2],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
	if len(s.numeric) > 0 {
		fig.ValueColumn = s.numeric[0]
	}
	return fig
}

func buildDistribution(s *selection) *models.FigureSpec {
	chartType := models.ChartHistogram
	if s.domain == models.DomainEducation || s.domain == models.DomainHealthcare {
		chartType = models.ChartBox
	}
	return &models.FigureSpec{
		ChartType:   chartType,
		YColumn:     s.numeric[0],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}

func buildScatter(s *selection) *models.FigureSpec {
	return &models.FigureSpec{
		ChartType:   models.ChartScatter,
		XColumn:     s.numeric[0],
		YColumn:     s.numeric[1],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}

func buildGroupedBar(s *selection) *models.FigureSpec {
	return &models.FigureSpec{
		ChartType:   models.ChartGroupedBar,
		XColumn:     s.categor[0],
		GroupColumn: s.categor[1],
		ValueColumn: s.numeric[0],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}

func buildLine(s *selection) *models.FigureSpec {
	return &models.FigureSpec{
		ChartType:   models.ChartLine,
		XColumn:     s.temporal[0],
		YColumn:     s.numeric[0],
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}

// buildPie projects the result down to (label, value) and collapses
// everything past the 8 largest slices into a single "Others" slice
// carrying the sum of the excluded values.
func buildPie(s *selection) *models.FigureSpec {
	labels := s.categor[0]
	values := s.numeric[0]

	return &models.FigureSpec{
		ChartType:   models.ChartPie,
		XColumn:     labels,
		ValueColumn: values,
		ColorScheme: s.pref.Colors,
		Data:        pieData(s.data, labels, values),
	}
}

func pieData(data *models.ResultSet, labelColumn, valueColumn string) *models.ResultSet {
	labelIdx := data.ColumnIndex(labelColumn)
	valueIdx := data.ColumnIndex(valueColumn)

	projected := &models.ResultSet{
		Columns: []models.ResultColumn{
			{Name: labelColumn, Kind: models.ColumnText},
			{Name: valueColumn, Kind: models.ColumnNumeric},
		},
	}
	for _, row := range data.Rows {
		projected.Rows = append(projected.Rows, []any{row[labelIdx], row[valueIdx]})
	}

	if projected.RowCount() <= pieChartMaxSlice {
		return projected
	}

	sorted := projected.SortedByDesc(valueColumn)
	othersSum := sorted.SumColumn(valueColumn, pieChartMaxSlice, sorted.RowCount())

	collapsed := sorted.Head(pieChartMaxSlice)
	rows := make([][]any, 0, pieChartMaxSlice+1)
	rows = append(rows, collapsed.Rows...)
	rows = append(rows, []any{"Others", othersSum})

	return &models.ResultSet{Columns: projected.Columns, Rows: rows}
}

// buildBar keeps the 20 largest-by-value rows when more than 20 exist;
// smaller results keep their original order.
func buildBar(s *selection) *models.FigureSpec {
	value := s.numeric[0]

	data := s.data
	if data.RowCount() > barChartMaxRows {
		data = data.SortedByDesc(value).Head(barChartMaxRows)
	}

	return &models.FigureSpec{
		ChartType:   models.ChartBar,
		XColumn:     s.categor[0],
		YColumn:     value,
		ColorScheme: s.pref.Colors,
		Data:        data,
	}
}

func buildHeatmap(s *selection) *models.FigureSpec {
	x := s.categor[0]
	y := s.categor[1]
	value := s.numeric[0]

	return &models.FigureSpec{
		ChartType:   models.ChartHeatmap,
		XColumn:     x,
		YColumn:     y,
		ValueColumn: value,
		ColorScheme: s.pref.Colors,
		Pivot:       s.data.PivotSum(x, y, value),
	}
}

func buildDefault(s *selection) *models.FigureSpec {
	if s.data.RowCount() > tableMaxRows {
		return &models.FigureSpec{
			ChartType:   models.ChartTable,
			ColorScheme: s.pref.Colors,
			Data:        s.data.Head(tableMaxRows),
		}
	}
	if len(s.categor) >= 1 && len(s.numeric) >= 1 {
		return buildBar(s)
	}
	return &models.FigureSpec{
		ChartType:   models.ChartTable,
		ColorScheme: s.pref.Colors,
		Data:        s.data,
	}
}
