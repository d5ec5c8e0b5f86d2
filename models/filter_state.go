package models

import (
	"time"

	"weather-dash/models/weather"
)

// Control ids emitted by the page's input widgets.
const (
	CONTROL_CLOUDS_SLIDER    = "clouds-slider"
	CONTROL_DATE_RANGE_START = "date-range-start"
	CONTROL_DATE_RANGE_END   = "date-range-end"
	CONTROL_FEATURE_DROPDOWN = "feature-dropdown"
)

// Output regions receiving recomputed artifacts.
const (
	OUTPUT_DOT_PLOT      = "graph-with-slider"
	OUTPUT_BOX_PLOT      = "box-plot"
	OUTPUT_STATS_SUMMARY = "stats-summary"
)

// Slider marks are drawn every CLOUD_SLIDER_STEP percent from 0 to 100.
const CLOUD_SLIDER_STEP = 10
const CLOUD_SLIDER_MARK_MAX = 100

// CloudRange is the inclusive [Min, Max] cloud-cover percentage window.
type CloudRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether a cloud-cover value lies inside the window.
func (r CloudRange) Contains(clouds float64) bool {
	return float64(r.Min) <= clouds && clouds <= float64(r.Max)
}

// DateRange is the inclusive [Start, End] calendar-date window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains compares by calendar date so every reading of the end day is included.
func (r DateRange) Contains(t time.Time) bool {
	day := weather.TruncateToDay(t)
	return !day.Before(weather.TruncateToDay(r.Start)) && !day.After(weather.TruncateToDay(r.End))
}

// FilterState is the current value of every dashboard control.
type FilterState struct {
	Clouds  CloudRange      `json:"clouds"`
	Dates   DateRange       `json:"dates"`
	Feature weather.Feature `json:"feature"`
}

// SliderMarks returns the labelled positions of the cloud slider.
func SliderMarks() []int {
	marks := make([]int, 0, CLOUD_SLIDER_MARK_MAX/CLOUD_SLIDER_STEP+1)
	for m := 0; m <= CLOUD_SLIDER_MARK_MAX; m += CLOUD_SLIDER_STEP {
		marks = append(marks, m)
	}
	return marks
}
