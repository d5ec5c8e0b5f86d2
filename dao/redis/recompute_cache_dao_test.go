package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dash/db"
)

// failingRedisClient simulates an unreachable redis server.
type failingRedisClient struct {
	*db.MemoryRedisClient
	calls int
}

func (f *failingRedisClient) Get(key string) (string, error) {
	f.calls++
	return "", errors.New("connection refused")
}

func TestRecomputeCacheDAO_SetAndGet(t *testing.T) {
	// Setup
	mockClient := db.NewMemoryRedisClient()
	dao := NewRecomputeCacheDAO(mockClient, time.Minute)

	// Act
	err := dao.Set("box-plot", "2022-08-07_2022-08-07", []byte(`{"region":"box-plot"}`))
	require.NoError(t, err)

	payload, found, err := dao.Get("box-plot", "2022-08-07_2022-08-07")

	// Assert
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"region":"box-plot"}`, string(payload))

	stored, err := mockClient.Get("recompute_v1:box-plot:2022-08-07_2022-08-07")
	require.NoError(t, err)
	assert.Equal(t, `{"region":"box-plot"}`, stored)
}

func TestRecomputeCacheDAO_Miss(t *testing.T) {
	dao := NewRecomputeCacheDAO(db.NewMemoryRedisClient(), 0)

	payload, found, err := dao.Get("graph-with-slider", "0-100")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, payload)
}

func TestRecomputeCacheDAO_ListAndPurge(t *testing.T) {
	dao := NewRecomputeCacheDAO(db.NewMemoryRedisClient(), 0)
	require.NoError(t, dao.Set("graph-with-slider", "0-100", []byte("a")))
	require.NoError(t, dao.Set("stats-summary", "temp", []byte("b")))

	keys, err := dao.ListCachedKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"graph-with-slider:0-100", "stats-summary:temp"}, keys)

	n, err := dao.Purge()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	keys, err = dao.ListCachedKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRecomputeCacheDAO_CircuitOpensOnFailures(t *testing.T) {
	client := &failingRedisClient{MemoryRedisClient: db.NewMemoryRedisClient()}
	dao := NewRecomputeCacheDAO(client, 0)

	// gobreaker's default trip rule opens after more than 5 consecutive failures
	for i := 0; i < 6; i++ {
		_, _, err := dao.Get("stats-summary", "temp")
		assert.Error(t, err)
	}
	_, _, err := dao.Get("stats-summary", "temp")
	assert.Error(t, err)
	assert.Equal(t, 6, client.calls, "open circuit should not reach the client")
}
