// Package stats computes descriptive statistics directly from column values.
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"weather-dash/models/chart"
)

// NumericSummary mirrors a pandas describe() of a numeric column.
// Statistics are NaN when Count is zero; Std is NaN when Count is one.
type NumericSummary struct {
	Variable string  `json:"variable"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	P25      float64 `json:"p25"`
	P50      float64 `json:"p50"`
	P75      float64 `json:"p75"`
	Max      float64 `json:"max"`
}

// CategoricalSummary mirrors a pandas describe() of an object column.
type CategoricalSummary struct {
	Variable string `json:"variable"`
	Count    int    `json:"count"`
	Unique   int    `json:"unique"`
	Top      string `json:"top"`
	Freq     int    `json:"freq"`
}

// DescribeNumeric summarises the present values of one column.
func DescribeNumeric(variable string, values []float64) NumericSummary {
	s := NumericSummary{
		Variable: variable,
		Count:    len(values),
		Mean:     math.NaN(),
		Std:      math.NaN(),
		Min:      math.NaN(),
		P25:      math.NaN(),
		P50:      math.NaN(),
		P75:      math.NaN(),
		Max:      math.NaN(),
	}
	if len(values) == 0 {
		return s
	}

	sorted := Sorted(values)
	s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		s.Std = math.NaN()
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.P25 = Quantile(sorted, 0.25)
	s.P50 = Quantile(sorted, 0.50)
	s.P75 = Quantile(sorted, 0.75)
	return s
}

// DescribeCategorical counts labels; ties for the most frequent label go to the first seen.
func DescribeCategorical(variable string, values []string) CategoricalSummary {
	s := CategoricalSummary{Variable: variable, Count: len(values)}
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	s.Unique = len(order)
	for _, v := range order {
		if counts[v] > s.Freq {
			s.Top = v
			s.Freq = counts[v]
		}
	}
	return s
}

// Sorted returns an ascending copy of values.
func Sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// Quantile interpolates linearly between closest ranks (h = (n-1)p), the numpy default.
// sorted must be ascending.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Text renders the summary the way pandas prints Series.describe().
func (s NumericSummary) Text() string {
	var b strings.Builder
	rows := []struct {
		name string
		val  float64
	}{
		{"count", float64(s.Count)},
		{"mean", s.Mean},
		{"std", s.Std},
		{"min", s.Min},
		{"25%", s.P25},
		{"50%", s.P50},
		{"75%", s.P75},
		{"max", s.Max},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-6s %14.6f\n", r.name, r.val)
	}
	fmt.Fprintf(&b, "Name: %s, dtype: float64", s.Variable)
	return b.String()
}

func (s CategoricalSummary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-7s %s\n", "count", fmt.Sprint(s.Count))
	fmt.Fprintf(&b, "%-7s %s\n", "unique", fmt.Sprint(s.Unique))
	fmt.Fprintf(&b, "%-7s %s\n", "top", s.Top)
	fmt.Fprintf(&b, "%-7s %s\n", "freq", fmt.Sprint(s.Freq))
	fmt.Fprintf(&b, "Name: %s, dtype: object", s.Variable)
	return b.String()
}

type numericSummaryJSON struct {
	Variable string   `json:"variable"`
	Count    int      `json:"count"`
	Mean     *float64 `json:"mean"`
	Std      *float64 `json:"std"`
	Min      *float64 `json:"min"`
	P25      *float64 `json:"p25"`
	P50      *float64 `json:"p50"`
	P75      *float64 `json:"p75"`
	Max      *float64 `json:"max"`
}

// MarshalJSON writes undefined statistics as null.
func (s NumericSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(numericSummaryJSON{
		Variable: s.Variable,
		Count:    s.Count,
		Mean:     chart.Nullable(s.Mean),
		Std:      chart.Nullable(s.Std),
		Min:      chart.Nullable(s.Min),
		P25:      chart.Nullable(s.P25),
		P50:      chart.Nullable(s.P50),
		P75:      chart.Nullable(s.P75),
		Max:      chart.Nullable(s.Max),
	})
}

func (s *NumericSummary) UnmarshalJSON(data []byte) error {
	var in numericSummaryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = NumericSummary{
		Variable: in.Variable,
		Count:    in.Count,
		Mean:     chart.FromNullable(in.Mean),
		Std:      chart.FromNullable(in.Std),
		Min:      chart.FromNullable(in.Min),
		P25:      chart.FromNullable(in.P25),
		P50:      chart.FromNullable(in.P50),
		P75:      chart.FromNullable(in.P75),
		Max:      chart.FromNullable(in.Max),
	}
	return nil
}
