package services

import (
	"encoding/json"
	"fmt"

	"weather-dash/logging"
	"weather-dash/models"
)

// ResultCache stores encoded outputs by region and canonical input.
type ResultCache interface {
	Get(output, inputKey string) ([]byte, bool, error)
	Set(output, inputKey string, payload []byte) error
}

// keyLister is implemented by caches that can enumerate their entries.
type keyLister interface {
	ListCachedKeys() ([]string, error)
}

// RecomputeService dispatches control changes through the registry and
// memoizes the encoded results. Callbacks are pure, so a cached result is
// always identical to a fresh one.
type RecomputeService struct {
	registry *CallbackRegistry
	cache    ResultCache
}

// NewRecomputeService builds the service; cache may be nil to disable memoization.
func NewRecomputeService(registry *CallbackRegistry, cache ResultCache) *RecomputeService {
	return &RecomputeService{registry: registry, cache: cache}
}

func (rs *RecomputeService) Registry() *CallbackRegistry {
	return rs.registry
}

// RecomputeJSON returns the JSON encoding of the output triggered by controlID.
func (rs *RecomputeService) RecomputeJSON(controlID string, state models.FilterState) ([]byte, error) {
	output, inputKey, err := rs.registry.Target(controlID, state)
	if err != nil {
		return nil, err
	}

	if rs.cache != nil {
		payload, found, err := rs.cache.Get(output, inputKey)
		if err != nil {
			logging.Warnf("[RecomputeService] cache read failed for %s:%s, recomputing: %v", output, inputKey, err)
		} else if found {
			logging.Debugf("[RecomputeService] cache hit for %s:%s", output, inputKey)
			return payload, nil
		}
	}
	return rs.computeAndStore(controlID, output, inputKey, state)
}

// Refresh recomputes the output of controlID and overwrites its cache entry,
// restarting the entry's TTL.
func (rs *RecomputeService) Refresh(controlID string, state models.FilterState) ([]byte, error) {
	output, inputKey, err := rs.registry.Target(controlID, state)
	if err != nil {
		return nil, err
	}
	return rs.computeAndStore(controlID, output, inputKey, state)
}

func (rs *RecomputeService) computeAndStore(controlID, output, inputKey string, state models.FilterState) ([]byte, error) {
	result, err := rs.registry.Dispatch(controlID, state)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s output: %w", output, err)
	}

	if rs.cache != nil {
		if err := rs.cache.Set(output, inputKey, payload); err != nil {
			logging.Warnf("[RecomputeService] cache write failed for %s:%s: %v", output, inputKey, err)
		}
	}
	return payload, nil
}

// CachedKeys lists the "output:input" keys currently memoized. A cache that
// cannot enumerate its entries reports none.
func (rs *RecomputeService) CachedKeys() ([]string, error) {
	lister, ok := rs.cache.(keyLister)
	if !ok {
		return []string{}, nil
	}
	return lister.ListCachedKeys()
}

// Recompute is RecomputeJSON decoded back into an Output.
func (rs *RecomputeService) Recompute(controlID string, state models.FilterState) (Output, error) {
	payload, err := rs.RecomputeJSON(controlID, state)
	if err != nil {
		return Output{}, err
	}
	var out Output
	if err := json.Unmarshal(payload, &out); err != nil {
		return Output{}, fmt.Errorf("failed to decode cached output: %w", err)
	}
	return out, nil
}
