package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PageRoutes serves the dashboard layout and liveness.
type PageRoutes interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// ChartRoutes serves the go-echarts output regions.
type ChartRoutes interface {
	GetDotPlot(w http.ResponseWriter, r *http.Request)
	GetBoxPlot(w http.ResponseWriter, r *http.Request)
	GetStaticViews(w http.ResponseWriter, r *http.Request)
}

// APIRoutes serves the recomputations as data.
type APIRoutes interface {
	Recompute(w http.ResponseWriter, r *http.Request)
	GetSummaryTable(w http.ResponseWriter, r *http.Request)
	GetFeatures(w http.ResponseWriter, r *http.Request)
	GetCachedKeys(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	pageHandler  PageRoutes
	chartHandler ChartRoutes
	apiHandler   APIRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	pageHandler PageRoutes,
	chartHandler ChartRoutes,
	apiHandler APIRoutes,
	router *mux.Router) *Router {
	return &Router{
		pageHandler:  pageHandler,
		chartHandler: chartHandler,
		apiHandler:   apiHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(accessLogMiddleware)

	// expects ?cloud_min={int}&cloud_max={int}&start_date={YYYY-MM-DD}&end_date={YYYY-MM-DD}&feature={column}
	r.router.HandleFunc("/", r.pageHandler.GetDashboard).Methods("GET")

	r.router.HandleFunc("/charts/dot-plot", r.chartHandler.GetDotPlot).Methods("GET")
	r.router.HandleFunc("/charts/box-plot", r.chartHandler.GetBoxPlot).Methods("GET")
	r.router.HandleFunc("/charts/static", r.chartHandler.GetStaticViews).Methods("GET")

	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/recompute/{control}", r.apiHandler.Recompute).Methods("GET")
	api.HandleFunc("/summary/{kind}", r.apiHandler.GetSummaryTable).Methods("GET")
	api.HandleFunc("/features", r.apiHandler.GetFeatures).Methods("GET")
	api.HandleFunc("/cache/keys", r.apiHandler.GetCachedKeys).Methods("GET")

	r.router.HandleFunc("/ping", r.pageHandler.Ping).Methods("GET")
}
