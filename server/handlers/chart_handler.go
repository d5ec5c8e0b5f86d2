package handlers

import (
	"bytes"
	"net/http"

	"weather-dash/logging"
	"weather-dash/models"
	"weather-dash/models/chart"
	"weather-dash/server/responseformat"
	services "weather-dash/service"
	"weather-dash/util"
)

// Chart ids of the static page, in display order.
const (
	LINE_CHART_ID      = "line-graph"
	WIND_ROSE_CHART_ID = "wind-rose"
	SCATTER_CHART_ID   = "feels-like-scatter"
	FULL_BOX_CHART_ID  = "full-year-box"
)

// ChartHandler serves each output region as a standalone go-echarts page.
type ChartHandler struct {
	baseHandler
}

func NewChartHandler(
	dashboard *services.Dashboard,
	recompute *services.RecomputeService,
	formatter *responseformat.Formatter) *ChartHandler {
	return &ChartHandler{baseHandler{
		dashboard:         dashboard,
		recompute:         recompute,
		formatter:         formatter,
		swapCrossedClouds: true,
	}}
}

// GetDotPlot handles GET /charts/dot-plot?cloud_min={int}&cloud_max={int}
func (h *ChartHandler) GetDotPlot(w http.ResponseWriter, r *http.Request) {
	h.renderControl(w, r, models.CONTROL_CLOUDS_SLIDER)
}

// GetBoxPlot handles GET /charts/box-plot?start_date={YYYY-MM-DD}&end_date={YYYY-MM-DD}
func (h *ChartHandler) GetBoxPlot(w http.ResponseWriter, r *http.Request) {
	h.renderControl(w, r, models.CONTROL_DATE_RANGE_END)
}

// GetStaticViews handles GET /charts/static
func (h *ChartHandler) GetStaticViews(w http.ResponseWriter, r *http.Request) {
	views := h.dashboard.StaticViews()
	descs := map[string]chart.Description{
		LINE_CHART_ID:      views.Line,
		WIND_ROSE_CHART_ID: views.Polar,
		SCATTER_CHART_ID:   views.Scatter,
		FULL_BOX_CHART_ID:  views.FullYearBox,
	}
	order := []string{LINE_CHART_ID, WIND_ROSE_CHART_ID, SCATTER_CHART_ID, FULL_BOX_CHART_ID}

	var buf bytes.Buffer
	if err := util.RenderPage(&buf, descs, order); err != nil {
		logging.Errorf("[ChartHandler] Failed to render static views: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *ChartHandler) renderControl(w http.ResponseWriter, r *http.Request, controlID string) {
	state, ok := h.parseState(w, r)
	if !ok {
		return
	}

	out, err := h.recompute.Recompute(controlID, state)
	if err != nil || out.Chart == nil {
		logging.Errorf("[ChartHandler] Failed to recompute %s: %v", controlID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := util.RenderDescription(&buf, *out.Chart, out.Region); err != nil {
		logging.Errorf("[ChartHandler] Failed to render %s: %v", out.Region, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
