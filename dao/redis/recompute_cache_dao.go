package redis

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"weather-dash/db"
	"weather-dash/logging"
)

// RECOMPUTE_KEY_FORMAT_V1 keys a cached result by output region and canonical input.
const RECOMPUTE_KEY_FORMAT_V1 = "recompute_v1:%s:%s"
const RECOMPUTE_KEY_PREFIX_V1 = "recompute_v1:"

// RecomputeCacheDAO memoizes recomputation results. Cache outages trip a
// circuit breaker so requests fall back to recomputing without waiting on redis.
type RecomputeCacheDAO struct {
	client  db.RedisClient
	ttl     time.Duration
	circuit *gobreaker.CircuitBreaker
}

type cacheLookup struct {
	value string
	found bool
}

// NewRecomputeCacheDAO initializes the DAO; a zero ttl keeps entries forever.
func NewRecomputeCacheDAO(client db.RedisClient, ttl time.Duration) *RecomputeCacheDAO {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "recompute-cache",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warnf("[RecomputeCacheDAO] circuit %s: %s -> %s", name, from, to)
		},
	})
	return &RecomputeCacheDAO{client: client, ttl: ttl, circuit: cb}
}

func recomputeKey(output, inputKey string) string {
	return fmt.Sprintf(RECOMPUTE_KEY_FORMAT_V1, output, inputKey)
}

// Get returns the cached payload and whether it was present.
func (dao *RecomputeCacheDAO) Get(output, inputKey string) ([]byte, bool, error) {
	key := recomputeKey(output, inputKey)
	res, err := dao.circuit.Execute(func() (interface{}, error) {
		val, err := dao.client.Get(key)
		if errors.Is(err, db.ErrKeyNotFound) {
			return cacheLookup{}, nil
		}
		if err != nil {
			return nil, err
		}
		return cacheLookup{value: val, found: true}, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	lookup := res.(cacheLookup)
	if !lookup.found {
		return nil, false, nil
	}
	return []byte(lookup.value), true, nil
}

// Set stores a payload for (output, inputKey).
func (dao *RecomputeCacheDAO) Set(output, inputKey string, payload []byte) error {
	key := recomputeKey(output, inputKey)
	_, err := dao.circuit.Execute(func() (interface{}, error) {
		return nil, dao.client.Set(key, string(payload), dao.ttl)
	})
	if err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// ListCachedKeys returns "output:input" for every cached result, sorted.
func (dao *RecomputeCacheDAO) ListCachedKeys() ([]string, error) {
	keys, err := dao.client.Keys(RECOMPUTE_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list recompute keys: %w", err)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, RECOMPUTE_KEY_PREFIX_V1))
	}
	sort.Strings(out)
	return out, nil
}

// Purge deletes every cached result, e.g. after the dataset file changed.
func (dao *RecomputeCacheDAO) Purge() (int, error) {
	keys, err := dao.client.Keys(RECOMPUTE_KEY_PREFIX_V1 + "*")
	if err != nil {
		return 0, fmt.Errorf("failed to list recompute keys: %w", err)
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return 0, fmt.Errorf("failed to delete %s: %w", k, err)
		}
	}
	logging.Infof("[RecomputeCacheDAO] Purged %d cached results", len(keys))
	return len(keys), nil
}
