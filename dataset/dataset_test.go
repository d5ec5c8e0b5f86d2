package dataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dash/models/weather"
)

func obs(day int, clouds float64) weather.Observation {
	return weather.Observation{
		Date:   time.Date(2022, 8, day, 12, 0, 0, 0, time.UTC),
		Temp:   70 + float64(day),
		Clouds: clouds,
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestNew_CopiesRows(t *testing.T) {
	rows := []weather.Observation{obs(1, 10), obs(2, 90)}
	ds, err := New(rows)
	require.NoError(t, err)

	rows[0].Temp = -100
	assert.Equal(t, 71.0, ds.Row(0).Temp)
}

func TestBounds(t *testing.T) {
	ds, err := New([]weather.Observation{obs(3, 40), obs(1, 12.5), obs(9, math.NaN()), obs(5, 99.5)})
	require.NoError(t, err)

	lo, hi := ds.CloudBounds()
	assert.Equal(t, 12, lo)
	assert.Equal(t, 100, hi)

	start, end := ds.DateBounds()
	assert.Equal(t, time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2022, 8, 9, 0, 0, 0, 0, time.UTC), end)
}

func TestFilterAndColumns(t *testing.T) {
	ds, err := New([]weather.Observation{obs(1, 10), obs(2, math.NaN()), obs(3, 30)})
	require.NoError(t, err)

	idx := ds.Filter(func(o weather.Observation) bool { return o.Clouds >= 10 })
	assert.Equal(t, []int{0, 2}, idx)

	assert.Equal(t, []float64{10, 30}, ds.NumericColumn(weather.FeatureClouds))
	assert.Len(t, ds.CategoricalColumn(weather.FeatureDate), 3)
	assert.Empty(t, ds.CategoricalColumn(weather.FeatureMain))
}
