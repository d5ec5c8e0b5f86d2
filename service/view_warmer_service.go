package services

import (
	"time"

	"weather-dash/logging"
	"weather-dash/models"
)

// ViewWarmerService precomputes the outputs of the default FilterState so the
// first page load is served from the cache.
type ViewWarmerService struct {
	recompute *RecomputeService
	defaults  models.FilterState
}

func NewViewWarmerService(recompute *RecomputeService, defaults models.FilterState) *ViewWarmerService {
	return &ViewWarmerService{
		recompute: recompute,
		defaults:  defaults,
	}
}

// StartPeriodicJob re-warms the cache at the given interval. Each run
// rewrites the default entries, so an interval shorter than the cache TTL
// keeps them from expiring.
func (vw *ViewWarmerService) StartPeriodicJob(interval time.Duration, stop <-chan struct{}) {
	go vw.startPeriodicJob(interval, stop)
}

func (vw *ViewWarmerService) startPeriodicJob(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			logging.Infof("[ViewWarmerService] Stopping periodic warm-up job.")
			return
		case <-ticker.C:
			logging.Debugf("[ViewWarmerService] Running periodic warm-up job.")
			vw.WarmDefaults()
		}
	}
}

// WarmDefaults recomputes every registered control at the default state,
// overwriting any cached entry, and returns how many outputs were produced.
func (vw *ViewWarmerService) WarmDefaults() int {
	warmed := 0
	for _, controlID := range vw.recompute.Registry().Controls() {
		if _, err := vw.recompute.Refresh(controlID, vw.defaults); err != nil {
			logging.Errorf("[ViewWarmerService] Failed to warm %s: %v", controlID, err)
			continue
		}
		warmed++
	}

	keys, err := vw.recompute.CachedKeys()
	if err != nil {
		logging.Warnf("[ViewWarmerService] Warmed %d default outputs; could not list cache: %v", warmed, err)
		return warmed
	}
	logging.Infof("[ViewWarmerService] Warmed %d default outputs, %d results cached", warmed, len(keys))
	return warmed
}
