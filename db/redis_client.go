package db

import (
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient is the key/value surface the result cache needs.
type RedisClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
