package db

import (
	"fmt"
	"path"
	"sort"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryRedisClient is an in-process stand-in for redis, used when no server
// is configured and in tests.
type MemoryRedisClient struct {
	data map[string]memoryEntry
	mu   sync.RWMutex
	now  func() time.Time
}

// NewMemoryRedisClient initializes an empty MemoryRedisClient.
func NewMemoryRedisClient() *MemoryRedisClient {
	return &MemoryRedisClient{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryRedisClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	entry, exists := m.data[key]
	m.mu.RUnlock()
	if !exists || m.expired(entry) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return entry.value, nil
}

func (m *MemoryRedisClient) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}

func (m *MemoryRedisClient) Ping() error {
	return nil
}

// Keys matches live keys with glob patterns, like redis KEYS.
func (m *MemoryRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := []string{}
	for k, e := range m.data {
		if m.expired(e) {
			continue
		}
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
