package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewWarmerService_PeriodicJobRefreshesCache(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())
	cache := newCountingCache()
	rs := NewRecomputeService(RegisterDashboard(NewCallbackRegistry(), d), cache)
	warmer := NewViewWarmerService(rs, d.Defaults())

	stop := make(chan struct{})
	warmer.StartPeriodicJob(10*time.Millisecond, stop)

	require.Eventually(t, func() bool {
		keys, err := cache.ListCachedKeys()
		return err == nil && len(keys) == 3
	}, 2*time.Second, 10*time.Millisecond)
	close(stop)

	keys, err := cache.ListCachedKeys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"graph-with-slider:" + cloudsKey(d.Defaults()),
		"box-plot:" + datesKey(d.Defaults()),
		"stats-summary:temp",
	}, keys)
}
