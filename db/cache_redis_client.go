package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"weather-dash/logging"
)

// CacheRedisClient stores values in a redis server.
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient wraps an already configured go-redis client.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) *CacheRedisClient {
	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set stores value under key; a zero ttl never expires.
func (r *CacheRedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key, mapping redis.Nil to ErrKeyNotFound.
func (r *CacheRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

func (r *CacheRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	logging.Infof("[CacheRedisClient] Connected to redis at %s", r.client.Options().Addr)
	return nil
}

func (r *CacheRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *CacheRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
