package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox(t *testing.T) {
	b := Box([]float64{5, 1, 2, 3, 4, 100})

	assert.Equal(t, 6, b.Count)
	assert.Equal(t, 1.0, b.Min)
	assert.Equal(t, 100.0, b.Max)
	assert.InDelta(t, 2.25, b.Q1, 1e-9)
	assert.InDelta(t, 3.5, b.Median, 1e-9)
	assert.InDelta(t, 4.75, b.Q3, 1e-9)
	assert.Equal(t, []float64{100}, b.Outliers)
	assert.Equal(t, 1.0, b.LowerWhisker)
	assert.Equal(t, 5.0, b.UpperWhisker)
}

func TestBox_Empty(t *testing.T) {
	b := Box(nil)

	assert.True(t, b.Empty())
	assert.Empty(t, b.Outliers)
	for _, v := range []float64{b.Min, b.Q1, b.Median, b.Q3, b.Max, b.LowerWhisker, b.UpperWhisker} {
		assert.True(t, math.IsNaN(v))
	}
}

func TestBox_SingleValue(t *testing.T) {
	b := Box([]float64{71.6})

	assert.Equal(t, 1, b.Count)
	assert.Equal(t, 71.6, b.Median)
	assert.Equal(t, 71.6, b.LowerWhisker)
	assert.Equal(t, 71.6, b.UpperWhisker)
	assert.Empty(t, b.Outliers)
}
