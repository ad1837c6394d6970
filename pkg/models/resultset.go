package models

import (
	"fmt"
	"sort"
	"time"
)

// ColumnKind classifies a result column for chart selection.
type ColumnKind string

const (
	ColumnNumeric  ColumnKind = "numeric"
	ColumnText     ColumnKind = "text"
	ColumnTemporal ColumnKind = "temporal"
)

// ResultColumn is a named, typed column of a query result.
type ResultColumn struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// ResultSet is the tabular result of an executed query. Columns keep the
// declaration order of the query; chart selection binds columns by that
// order, never by cardinality or variance.
type ResultSet struct {
	Columns []ResultColumn `json:"columns"`
	Rows    [][]any        `json:"rows"`
}

// RowCount returns the number of rows.
func (r *ResultSet) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// IsEmpty reports whether the result set is nil or has no rows.
func (r *ResultSet) IsEmpty() bool {
	return r.RowCount() == 0
}

// ColumnIndex returns the index of the named column, or -1.
func (r *ResultSet) ColumnIndex(name string) int {
	for i, col := range r.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// ColumnsOfKind returns column names of the given kind in declaration order.
func (r *ResultSet) ColumnsOfKind(kind ColumnKind) []string {
	if r == nil {
		return nil
	}
	var names []string
	for _, col := range r.Columns {
		if col.Kind == kind {
			names = append(names, col.Name)
		}
	}
	return names
}

// NumericColumns returns numeric column names in declaration order.
func (r *ResultSet) NumericColumns() []string { return r.ColumnsOfKind(ColumnNumeric) }

// CategoricalColumns returns text column names in declaration order.
func (r *ResultSet) CategoricalColumns() []string { return r.ColumnsOfKind(ColumnText) }

// TemporalColumns returns temporal column names in declaration order.
func (r *ResultSet) TemporalColumns() []string { return r.ColumnsOfKind(ColumnTemporal) }

// NumericValue coerces a cell value to float64. Non-numeric values
// report ok=false and sort below every number.
func NumericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// SortedByDesc returns a copy sorted descending by the numeric value of the
// named column. The sort is stable so equal values keep input order.
func (r *ResultSet) SortedByDesc(column string) *ResultSet {
	idx := r.ColumnIndex(column)
	if idx < 0 {
		return r
	}

	rows := make([][]any, len(r.Rows))
	copy(rows, r.Rows)

	sort.SliceStable(rows, func(i, j int) bool {
		vi, iok := NumericValue(rows[i][idx])
		vj, jok := NumericValue(rows[j][idx])
		if iok != jok {
			return iok
		}
		return vi > vj
	})

	return &ResultSet{Columns: r.Columns, Rows: rows}
}

// Head returns a copy containing at most n rows.
func (r *ResultSet) Head(n int) *ResultSet {
	if r.RowCount() <= n {
		return r
	}
	return &ResultSet{Columns: r.Columns, Rows: r.Rows[:n]}
}

// SumColumn returns the sum of the numeric values in the named column
// across rows [from, to). Non-numeric cells contribute 0.
func (r *ResultSet) SumColumn(column string, from, to int) float64 {
	idx := r.ColumnIndex(column)
	if idx < 0 {
		return 0
	}
	if to > len(r.Rows) {
		to = len(r.Rows)
	}
	var sum float64
	for i := from; i < to; i++ {
		if v, ok := NumericValue(r.Rows[i][idx]); ok {
			sum += v
		}
	}
	return sum
}

// PivotTable is a groupby-aggregate matrix used by heatmap figures.
type PivotTable struct {
	XLabels []string    `json:"x_labels"`
	YLabels []string    `json:"y_labels"`
	Values  [][]float64 `json:"values"`
}

// PivotSum pivots the result set into a matrix of summed values: one row
// per distinct yColumn value, one column per distinct xColumn value.
// Labels appear in first-seen row order; missing cells are 0.
func (r *ResultSet) PivotSum(xColumn, yColumn, valueColumn string) *PivotTable {
	xIdx := r.ColumnIndex(xColumn)
	yIdx := r.ColumnIndex(yColumn)
	vIdx := r.ColumnIndex(valueColumn)
	if xIdx < 0 || yIdx < 0 || vIdx < 0 {
		return nil
	}

	var xLabels, yLabels []string
	xPos := make(map[string]int)
	yPos := make(map[string]int)
	sums := make(map[[2]int]float64)

	for _, row := range r.Rows {
		x := cellString(row[xIdx])
		y := cellString(row[yIdx])

		xi, ok := xPos[x]
		if !ok {
			xi = len(xLabels)
			xPos[x] = xi
			xLabels = append(xLabels, x)
		}
		yi, ok := yPos[y]
		if !ok {
			yi = len(yLabels)
			yPos[y] = yi
			yLabels = append(yLabels, y)
		}

		if v, ok := NumericValue(row[vIdx]); ok {
			sums[[2]int{yi, xi}] += v
		}
	}

	values := make([][]float64, len(yLabels))
	for yi := range values {
		values[yi] = make([]float64, len(xLabels))
		for xi := range values[yi] {
			values[yi][xi] = sums[[2]int{yi, xi}]
		}
	}

	return &PivotTable{XLabels: xLabels, YLabels: yLabels, Values: values}
}

func cellString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		return s.Format(time.RFC3339)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}
