package services

import (
	"weather-dash/dataset"
	"weather-dash/models/weather"
	"weather-dash/stats"
)

// SUMMARY_SKIPPED_CATEGORICAL is identifier-like (one value per row) and left out
// of the categorical summary table.
const SUMMARY_SKIPPED_CATEGORICAL = weather.FeatureDate

func buildSummaryTables(ds *dataset.Dataset) ([]stats.NumericSummary, []stats.CategoricalSummary) {
	numeric := make([]stats.NumericSummary, 0)
	for _, f := range weather.FeaturesOfKind(weather.KindNumeric) {
		numeric = append(numeric, stats.DescribeNumeric(string(f), ds.NumericColumn(f)))
	}

	categorical := make([]stats.CategoricalSummary, 0)
	for _, f := range weather.FeaturesOfKind(weather.KindCategorical) {
		if f == SUMMARY_SKIPPED_CATEGORICAL {
			continue
		}
		categorical = append(categorical, stats.DescribeCategorical(string(f), ds.CategoricalColumn(f)))
	}
	return numeric, categorical
}

// NumericSummaryTable returns a copy of the startup summary of every numeric column.
func (d *Dashboard) NumericSummaryTable() []stats.NumericSummary {
	return append([]stats.NumericSummary(nil), d.numericTable...)
}

// CategoricalSummaryTable returns a copy of the startup summary of the categorical columns.
func (d *Dashboard) CategoricalSummaryTable() []stats.CategoricalSummary {
	return append([]stats.CategoricalSummary(nil), d.categoricalTable...)
}
