package services

import (
	"errors"
	"fmt"
	"sort"

	"weather-dash/models"
	"weather-dash/models/chart"
	"weather-dash/models/weather"
)

var ErrUnknownControl = errors.New("unknown control")

// Output is the artifact a recomputation delivers to its output region.
type Output struct {
	Region  string             `json:"region"`
	Chart   *chart.Description `json:"chart,omitempty"`
	Summary *FeatureSummary    `json:"summary,omitempty"`
}

// Callback recomputes one output from the current control values.
type Callback func(state models.FilterState) Output

// InputKey canonicalises the part of the state a callback reads.
type InputKey func(state models.FilterState) string

type registration struct {
	output string
	fn     Callback
	key    InputKey
}

// CallbackRegistry maps control ids to the recomputation they trigger.
// The HTTP layer owns dispatch; the registry only owns the mapping.
type CallbackRegistry struct {
	callbacks map[string]registration
}

func NewCallbackRegistry() *CallbackRegistry {
	return &CallbackRegistry{callbacks: make(map[string]registration)}
}

// Register binds controlID to fn producing output. Re-registering replaces the binding.
func (r *CallbackRegistry) Register(controlID, output string, key InputKey, fn Callback) {
	r.callbacks[controlID] = registration{output: output, fn: fn, key: key}
}

// RegisterDashboard wires the dashboard's controls. Both ends of the date
// range trigger the same box-plot recomputation from both current values.
func RegisterDashboard(r *CallbackRegistry, d *Dashboard) *CallbackRegistry {
	dotPlot := func(s models.FilterState) Output {
		c := d.DotPlot(s.Clouds)
		return Output{Region: models.OUTPUT_DOT_PLOT, Chart: &c}
	}
	boxPlot := func(s models.FilterState) Output {
		c := d.BoxPlot(s.Dates)
		return Output{Region: models.OUTPUT_BOX_PLOT, Chart: &c}
	}
	summary := func(s models.FilterState) Output {
		sum := d.Summarize(s.Feature)
		return Output{Region: models.OUTPUT_STATS_SUMMARY, Summary: &sum}
	}

	r.Register(models.CONTROL_CLOUDS_SLIDER, models.OUTPUT_DOT_PLOT, cloudsKey, dotPlot)
	r.Register(models.CONTROL_DATE_RANGE_START, models.OUTPUT_BOX_PLOT, datesKey, boxPlot)
	r.Register(models.CONTROL_DATE_RANGE_END, models.OUTPUT_BOX_PLOT, datesKey, boxPlot)
	r.Register(models.CONTROL_FEATURE_DROPDOWN, models.OUTPUT_STATS_SUMMARY, featureKey, summary)
	return r
}

func cloudsKey(s models.FilterState) string {
	return fmt.Sprintf("%d-%d", s.Clouds.Min, s.Clouds.Max)
}

func datesKey(s models.FilterState) string {
	return s.Dates.Start.Format(weather.DateLayout) + "_" + s.Dates.End.Format(weather.DateLayout)
}

func featureKey(s models.FilterState) string {
	return string(s.Feature)
}

// Dispatch runs the callback bound to controlID.
func (r *CallbackRegistry) Dispatch(controlID string, state models.FilterState) (Output, error) {
	reg, ok := r.callbacks[controlID]
	if !ok {
		return Output{}, fmt.Errorf("%w: %q", ErrUnknownControl, controlID)
	}
	return reg.fn(state), nil
}

// Target returns the output region and canonical input key for a control change.
func (r *CallbackRegistry) Target(controlID string, state models.FilterState) (output, inputKey string, err error) {
	reg, ok := r.callbacks[controlID]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownControl, controlID)
	}
	return reg.output, reg.key(state), nil
}

// Controls lists the registered control ids in sorted order.
func (r *CallbackRegistry) Controls() []string {
	ids := make([]string, 0, len(r.callbacks))
	for id := range r.callbacks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
