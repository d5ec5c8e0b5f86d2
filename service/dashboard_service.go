package services

import (
	"weather-dash/dataset"
	"weather-dash/models"
	"weather-dash/models/chart"
	"weather-dash/models/weather"
	"weather-dash/stats"
)

// DOT_PLOT_TRANSITION_MS is the render transition requested for the dot plot.
const DOT_PLOT_TRANSITION_MS = 500

// Dashboard is the immutable view context built once at startup.
// Every recomputation is a pure function of its arguments and the dataset.
type Dashboard struct {
	data     *dataset.Dataset
	defaults models.FilterState

	humidityMin float64
	humidityMax float64

	staticViews      StaticViews
	numericTable     []stats.NumericSummary
	categoricalTable []stats.CategoricalSummary
}

// NewDashboard precomputes the static views and summary tables of ds.
func NewDashboard(ds *dataset.Dataset) *Dashboard {
	d := &Dashboard{data: ds}

	cloudsMin, cloudsMax := ds.CloudBounds()
	start, end := ds.DateBounds()
	d.defaults = models.FilterState{
		Clouds:  models.CloudRange{Min: cloudsMin, Max: cloudsMax},
		Dates:   models.DateRange{Start: start, End: end},
		Feature: weather.FeatureTemp,
	}

	humidity := stats.DescribeNumeric(string(weather.FeatureHumidity), ds.NumericColumn(weather.FeatureHumidity))
	d.humidityMin, d.humidityMax = 0, 100
	if humidity.Count > 0 {
		d.humidityMin, d.humidityMax = humidity.Min, humidity.Max
	}

	d.staticViews = d.buildStaticViews()
	d.numericTable, d.categoricalTable = buildSummaryTables(ds)
	return d
}

func (d *Dashboard) Dataset() *dataset.Dataset {
	return d.data
}

// Defaults is the initial FilterState: full cloud and date ranges.
func (d *Dashboard) Defaults() models.FilterState {
	return d.defaults
}

// DotPlot plots temperature against month for rows with lo <= clouds <= hi, shaded by humidity.
func (d *Dashboard) DotPlot(r models.CloudRange) chart.Description {
	monthMin, monthMax := 1.0, 12.0
	desc := chart.Description{
		Kind:         chart.KindScatter,
		Title:        "Temperature by Month",
		XAxis:        chart.Axis{Name: weather.FeatureTemp.Label(), Type: "value"},
		YAxis:        chart.Axis{Name: "Month (#)", Type: "value", Min: &monthMin, Max: &monthMax},
		ShadeLabel:   weather.FeatureHumidity.Label(),
		ShadeMin:     d.humidityMin,
		ShadeMax:     d.humidityMax,
		TransitionMs: DOT_PLOT_TRANSITION_MS,
	}

	points := []chart.Point{}
	for _, i := range d.data.Filter(func(o weather.Observation) bool {
		clouds, ok := o.Numeric(weather.FeatureClouds)
		return ok && r.Contains(clouds)
	}) {
		o := d.data.Row(i)
		points = append(points, chart.Point{
			X:     o.Temp,
			Y:     float64(o.Month()),
			Shade: o.Humidity,
			Label: o.Date.Format(weather.DateTimeLayout),
		})
	}
	desc.Series = []chart.Series{{Name: "observations", Points: points}}
	return desc
}

// BoxPlot summarises temperatures recorded between r.Start and r.End, by calendar date.
// An inverted or empty window gives an empty distribution.
func (d *Dashboard) BoxPlot(r models.DateRange) chart.Description {
	points := []chart.Point{}
	values := []float64{}
	if !weather.TruncateToDay(r.Start).After(weather.TruncateToDay(r.End)) {
		for _, i := range d.data.Filter(func(o weather.Observation) bool { return r.Contains(o.Date) }) {
			o := d.data.Row(i)
			temp, ok := o.Numeric(weather.FeatureTemp)
			if !ok {
				continue
			}
			values = append(values, temp)
			points = append(points, chart.Point{Y: temp, Label: o.Date.Format(weather.DateTimeLayout)})
		}
	}

	box := stats.Box(values)
	return chart.Description{
		Kind:       chart.KindBox,
		Title:      "Temperature Distribution",
		XAxis:      chart.Axis{Name: "", Type: "category"},
		YAxis:      chart.Axis{Name: weather.FeatureTemp.Label(), Type: "value"},
		Categories: []string{string(weather.FeatureTemp)},
		Series:     []chart.Series{{Name: string(weather.FeatureTemp), Points: points}},
		Box:        &box,
	}
}

// FeatureSummary is the descriptive-statistics text shown for the selected column.
type FeatureSummary struct {
	Feature     weather.Feature           `json:"feature"`
	Kind        weather.FeatureKind       `json:"kind"`
	Numeric     *stats.NumericSummary     `json:"numeric,omitempty"`
	Categorical *stats.CategoricalSummary `json:"categorical,omitempty"`
	Text        string                    `json:"text"`
}

// Summarize describes feature f over the full, unfiltered dataset.
func (d *Dashboard) Summarize(f weather.Feature) FeatureSummary {
	out := FeatureSummary{Feature: f, Kind: f.Kind()}
	if f.IsNumeric() {
		s := stats.DescribeNumeric(string(f), d.data.NumericColumn(f))
		out.Numeric = &s
		out.Text = s.Text()
		return out
	}
	s := stats.DescribeCategorical(string(f), d.data.CategoricalColumn(f))
	out.Categorical = &s
	out.Text = s.Text()
	return out
}

// StaticViews returns the charts built once at startup.
func (d *Dashboard) StaticViews() StaticViews {
	return d.staticViews
}
