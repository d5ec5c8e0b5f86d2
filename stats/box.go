package stats

import (
	"math"

	"weather-dash/models/chart"
)

// WHISKER_IQR_FACTOR bounds the whiskers at Q1-1.5*IQR and Q3+1.5*IQR.
const WHISKER_IQR_FACTOR = 1.5

// Box builds the distribution summary drawn by a box plot.
// An empty input yields Count 0 and NaN statistics.
func Box(values []float64) chart.BoxSummary {
	if len(values) == 0 {
		nan := math.NaN()
		return chart.BoxSummary{
			Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan,
			LowerWhisker: nan, UpperWhisker: nan,
			Outliers: []float64{},
		}
	}

	sorted := Sorted(values)
	b := chart.BoxSummary{
		Count:    len(sorted),
		Min:      sorted[0],
		Q1:       Quantile(sorted, 0.25),
		Median:   Quantile(sorted, 0.5),
		Q3:       Quantile(sorted, 0.75),
		Max:      sorted[len(sorted)-1],
		Outliers: []float64{},
	}

	iqr := b.Q3 - b.Q1
	lowFence := b.Q1 - WHISKER_IQR_FACTOR*iqr
	highFence := b.Q3 + WHISKER_IQR_FACTOR*iqr
	b.LowerWhisker = math.NaN()
	b.UpperWhisker = math.NaN()
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		if math.IsNaN(b.LowerWhisker) {
			b.LowerWhisker = v
		}
		b.UpperWhisker = v
	}
	return b
}
