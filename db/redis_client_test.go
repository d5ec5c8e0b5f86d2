package db_test

import (
	"errors"
	"testing"
	"time"

	"weather-dash/db"
)

// Test the Set and Get methods for every in-process RedisClient
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MemoryRedisClient", db.NewMemoryRedisClient()},
		// Replace with a real Redis client configuration for integration testing
		// {"CacheRedisClient", db.NewCacheRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			// Act
			if err := test.client.Set(key, value, 0); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

func TestMemoryRedisClient_MissingKey(t *testing.T) {
	client := db.NewMemoryRedisClient()

	_, err := client.Get("absent")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemoryRedisClient_Expiry(t *testing.T) {
	client := db.NewMemoryRedisClient()

	if err := client.Set("short", "lived", time.Nanosecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(time.Millisecond)

	if _, err := client.Get("short"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected expired key to be missing, got %v", err)
	}
	keys, _ := client.Keys("*")
	if len(keys) != 0 {
		t.Errorf("Expected no live keys, got %v", keys)
	}
}

func TestMemoryRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMemoryRedisClient()
	_ = client.Set("recompute_v1:box-plot:a", "1", 0)
	_ = client.Set("recompute_v1:box-plot:b", "2", 0)
	_ = client.Set("other:c", "3", 0)

	keys, err := client.Keys("recompute_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "recompute_v1:box-plot:a" {
		t.Errorf("Unexpected keys %v", keys)
	}

	if err := client.Del("other:c"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("other:c"); err == nil {
		t.Errorf("Expected deleted key to be missing")
	}
}

func TestRedisClient_Ping(t *testing.T) {
	client := db.NewMemoryRedisClient()
	if err := client.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
