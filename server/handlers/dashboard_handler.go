package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"weather-dash/logging"
	"weather-dash/models"
	"weather-dash/models/weather"
	"weather-dash/server/responseformat"
	services "weather-dash/service"
	"weather-dash/stats"
)

const (
	DOT_PLOT_PATH     = "/charts/dot-plot"
	BOX_PLOT_PATH     = "/charts/box-plot"
	STATIC_CHART_PATH = "/charts/static"
)

type featureOption struct {
	Name     weather.Feature
	Selected bool
}

type dashboardPageData struct {
	Title string
	State models.FilterState

	CloudsControl    string
	DateStartControl string
	DateEndControl   string
	FeatureControl   string
	DotPlotRegion    string
	BoxPlotRegion    string
	SummaryRegion    string

	CloudLow, CloudHigh int
	SliderStep          int
	SliderMarks         []int
	StartDate, EndDate  string
	DateLow, DateHigh   string
	Features            []featureOption

	DotPlotURL string
	BoxPlotURL string
	StaticURL  string

	SummaryText      string
	NumericTable     []stats.NumericSummary
	CategoricalTable []stats.CategoricalSummary
}

// baseHandler carries what every handler reads: the immutable dashboard and
// the memoizing recompute service. Browser-facing handlers set
// swapCrossedClouds since the page's two range inputs can pass each other.
type baseHandler struct {
	dashboard         *services.Dashboard
	recompute         *services.RecomputeService
	formatter         *responseformat.Formatter
	swapCrossedClouds bool
}

type DashboardHandler struct {
	baseHandler
}

func NewDashboardHandler(
	dashboard *services.Dashboard,
	recompute *services.RecomputeService,
	formatter *responseformat.Formatter) *DashboardHandler {
	return &DashboardHandler{baseHandler{
		dashboard:         dashboard,
		recompute:         recompute,
		formatter:         formatter,
		swapCrossedClouds: true,
	}}
}

// GetDashboard handles GET / with the optional control query arguments.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	state, ok := h.parseState(w, r)
	if !ok {
		return
	}

	summary, err := h.recompute.Recompute(models.CONTROL_FEATURE_DROPDOWN, state)
	if err != nil || summary.Summary == nil {
		logging.Errorf("[DashboardHandler] Failed to summarize %s: %v", state.Feature, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	defaults := h.dashboard.Defaults()
	query := encodeFilterState(state).Encode()
	data := dashboardPageData{
		Title:            DASHBOARD_TITLE,
		State:            state,
		CloudsControl:    models.CONTROL_CLOUDS_SLIDER,
		DateStartControl: models.CONTROL_DATE_RANGE_START,
		DateEndControl:   models.CONTROL_DATE_RANGE_END,
		FeatureControl:   models.CONTROL_FEATURE_DROPDOWN,
		DotPlotRegion:    models.OUTPUT_DOT_PLOT,
		BoxPlotRegion:    models.OUTPUT_BOX_PLOT,
		SummaryRegion:    models.OUTPUT_STATS_SUMMARY,
		CloudLow:         defaults.Clouds.Min,
		CloudHigh:        defaults.Clouds.Max,
		SliderStep:       models.CLOUD_SLIDER_STEP,
		SliderMarks:      models.SliderMarks(),
		StartDate:        state.Dates.Start.Format(weather.DateLayout),
		EndDate:          state.Dates.End.Format(weather.DateLayout),
		DateLow:          defaults.Dates.Start.Format(weather.DateLayout),
		DateHigh:         defaults.Dates.End.Format(weather.DateLayout),
		DotPlotURL:       DOT_PLOT_PATH + "?" + query,
		BoxPlotURL:       BOX_PLOT_PATH + "?" + query,
		StaticURL:        STATIC_CHART_PATH,
		SummaryText:      summary.Summary.Text,
		NumericTable:     h.dashboard.NumericSummaryTable(),
		CategoricalTable: h.dashboard.CategoricalSummaryTable(),
	}
	for _, f := range weather.Features {
		data.Features = append(data.Features, featureOption{Name: f, Selected: f == state.Feature})
	}

	// render into a buffer so a template failure can still produce a 500
	var buf bytes.Buffer
	if err := dashboardPage.Execute(&buf, data); err != nil {
		logging.Errorf("[DashboardHandler] Failed to render page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseState writes a 400 and returns false for out-of-contract control values.
func (h *baseHandler) parseState(w http.ResponseWriter, r *http.Request) (models.FilterState, bool) {
	state, err := parseFilterState(r.URL.Query(), h.dashboard.Defaults(), h.swapCrossedClouds)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			h.formatter.WriteError(w, http.StatusBadRequest, err.Error())
		} else {
			h.formatter.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return models.FilterState{}, false
	}
	return state, true
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	logging.Debugf("[DashboardHandler] Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
