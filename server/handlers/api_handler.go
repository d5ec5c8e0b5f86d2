package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"weather-dash/logging"
	"weather-dash/models/weather"
	"weather-dash/server/responseformat"
	services "weather-dash/service"
)

const (
	CONTROL_PATH_VAR = "control"
	KIND_PATH_VAR    = "kind"
)

const (
	SUMMARY_KIND_NUMERIC     = "numeric"
	SUMMARY_KIND_CATEGORICAL = "categorical"
)

// FeatureInfo describes one selectable column.
type FeatureInfo struct {
	Name  weather.Feature     `json:"name"`
	Kind  weather.FeatureKind `json:"kind"`
	Label string              `json:"label"`
}

// APIHandler exposes the recomputations as JSON or msgpack.
type APIHandler struct {
	baseHandler
}

func NewAPIHandler(
	dashboard *services.Dashboard,
	recompute *services.RecomputeService,
	formatter *responseformat.Formatter) *APIHandler {
	return &APIHandler{baseHandler{
		dashboard: dashboard,
		recompute: recompute,
		formatter: formatter,
	}}
}

// Recompute handles GET /api/v1/recompute/{control} with the control query arguments.
func (h *APIHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	controlID := mux.Vars(r)[CONTROL_PATH_VAR]
	state, ok := h.parseState(w, r)
	if !ok {
		return
	}

	payload, err := h.recompute.RecomputeJSON(controlID, state)
	if err != nil {
		if errors.Is(err, services.ErrUnknownControl) {
			h.formatter.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		logging.Errorf("[APIHandler] Failed to recompute %s: %v", controlID, err)
		h.formatter.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.formatter.WriteRawJSON(w, r, payload); err != nil {
		logging.Errorf("[APIHandler] Error encoding response: %v", err)
	}
}

// GetSummaryTable handles GET /api/v1/summary/{kind}, kind in numeric|categorical.
func (h *APIHandler) GetSummaryTable(w http.ResponseWriter, r *http.Request) {
	var table any
	switch kind := mux.Vars(r)[KIND_PATH_VAR]; kind {
	case SUMMARY_KIND_NUMERIC:
		table = h.dashboard.NumericSummaryTable()
	case SUMMARY_KIND_CATEGORICAL:
		table = h.dashboard.CategoricalSummaryTable()
	default:
		h.formatter.WriteError(w, http.StatusNotFound, "unknown summary kind "+kind)
		return
	}

	if err := h.formatter.WriteResponse(w, r, table); err != nil {
		logging.Errorf("[APIHandler] Error encoding response: %v", err)
	}
}

// GetFeatures handles GET /api/v1/features
func (h *APIHandler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	features := make([]FeatureInfo, 0, len(weather.Features))
	for _, f := range weather.Features {
		features = append(features, FeatureInfo{Name: f, Kind: f.Kind(), Label: f.Label()})
	}
	if err := h.formatter.WriteResponse(w, r, features); err != nil {
		logging.Errorf("[APIHandler] Error encoding response: %v", err)
	}
}

// GetCachedKeys handles GET /api/v1/cache/keys, listing memoized "output:input" pairs.
func (h *APIHandler) GetCachedKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.recompute.CachedKeys()
	if err != nil {
		logging.Errorf("[APIHandler] Failed to list cached results: %v", err)
		h.formatter.WriteError(w, http.StatusServiceUnavailable, "result cache unavailable")
		return
	}
	if err := h.formatter.WriteResponse(w, r, keys); err != nil {
		logging.Errorf("[APIHandler] Error encoding response: %v", err)
	}
}
