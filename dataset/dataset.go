// Package dataset holds the immutable weather table shared by every view.
package dataset

import (
	"errors"
	"math"
	"time"

	"weather-dash/models/weather"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrMalformedCell = errors.New("malformed cell")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

// Dataset is the process-lifetime observation table. It is never mutated after New.
type Dataset struct {
	rows      []weather.Observation
	cloudsMin float64
	cloudsMax float64
	dateMin   time.Time
	dateMax   time.Time
}

// New copies rows into a Dataset and precomputes its bounds.
func New(rows []weather.Observation) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	owned := make([]weather.Observation, len(rows))
	copy(owned, rows)

	ds := &Dataset{
		rows:      owned,
		cloudsMin: math.Inf(1),
		cloudsMax: math.Inf(-1),
	}
	for _, r := range owned {
		if c, ok := r.Numeric(weather.FeatureClouds); ok {
			ds.cloudsMin = math.Min(ds.cloudsMin, c)
			ds.cloudsMax = math.Max(ds.cloudsMax, c)
		}
		if ds.dateMin.IsZero() || r.Date.Before(ds.dateMin) {
			ds.dateMin = r.Date
		}
		if r.Date.After(ds.dateMax) {
			ds.dateMax = r.Date
		}
	}
	if math.IsInf(ds.cloudsMin, 1) {
		ds.cloudsMin, ds.cloudsMax = 0, 0
	}
	return ds, nil
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns a copy of the i-th observation.
func (d *Dataset) Row(i int) weather.Observation {
	return d.rows[i]
}

// Each calls fn for every row in source order. Rows are passed by value.
func (d *Dataset) Each(fn func(i int, o weather.Observation)) {
	for i, r := range d.rows {
		fn(i, r)
	}
}

// Filter returns the indexes of the rows accepted by keep, in source order.
func (d *Dataset) Filter(keep func(o weather.Observation) bool) []int {
	var idx []int
	for i, r := range d.rows {
		if keep(r) {
			idx = append(idx, i)
		}
	}
	return idx
}

// NumericColumn returns the present values of a numeric column.
func (d *Dataset) NumericColumn(f weather.Feature) []float64 {
	out := make([]float64, 0, len(d.rows))
	for _, r := range d.rows {
		if v, ok := r.Numeric(f); ok {
			out = append(out, v)
		}
	}
	return out
}

// CategoricalColumn returns the present values of a categorical column.
func (d *Dataset) CategoricalColumn(f weather.Feature) []string {
	out := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		if v, ok := r.Categorical(f); ok {
			out = append(out, v)
		}
	}
	return out
}

// CloudBounds is the observed [min, max] cloud cover, rounded outward to integers.
func (d *Dataset) CloudBounds() (int, int) {
	return int(math.Floor(d.cloudsMin)), int(math.Ceil(d.cloudsMax))
}

// DateBounds is the [first, last] calendar date of the table.
func (d *Dataset) DateBounds() (time.Time, time.Time) {
	return weather.TruncateToDay(d.dateMin), weather.TruncateToDay(d.dateMax)
}
