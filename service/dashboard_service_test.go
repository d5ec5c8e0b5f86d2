package services

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dash/models"
	"weather-dash/models/chart"
	"weather-dash/models/weather"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDashboard_Defaults(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	defaults := d.Defaults()
	assert.Equal(t, models.CloudRange{Min: 0, Max: 100}, defaults.Clouds)
	assert.Equal(t, day(2022, 1, 1), defaults.Dates.Start)
	assert.Equal(t, day(2022, 12, 31), defaults.Dates.End)
	assert.Equal(t, weather.FeatureTemp, defaults.Feature)
}

func TestDotPlot_LowCloudExample(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	c := d.DotPlot(models.CloudRange{Min: 0, Max: 10})

	assert.Equal(t, chart.KindScatter, c.Kind)
	assert.Equal(t, 5, c.PointCount())
	assert.Equal(t, DOT_PLOT_TRANSITION_MS, c.TransitionMs)
}

func TestDotPlot_SubsetMatchesPredicateExactlyOnce(t *testing.T) {
	rows := yearOfDays()
	d := newTestDashboard(t, rows)

	ranges := []models.CloudRange{{Min: 0, Max: 100}, {Min: 0, Max: 0}, {Min: 10, Max: 10}, {Min: 20, Max: 50}, {Min: 55, Max: 100}, {Min: 11, Max: 19}, {Min: 100, Max: 100}}
	for _, r := range ranges {
		c := d.DotPlot(r)
		require.Len(t, c.Series, 1)

		var want []string
		for _, o := range rows {
			if float64(r.Min) <= o.Clouds && o.Clouds <= float64(r.Max) {
				want = append(want, o.Date.Format(weather.DateTimeLayout))
			}
		}
		got := []string{}
		for _, p := range c.Series[0].Points {
			got = append(got, p.Label)
		}
		if len(want) == 0 {
			assert.Empty(t, got, "range %v", r)
			continue
		}
		assert.Equal(t, want, got, "range %v", r)
	}
}

func TestDotPlot_PointEncoding(t *testing.T) {
	rows := yearOfDays()
	d := newTestDashboard(t, rows)

	c := d.DotPlot(models.CloudRange{Min: 0, Max: 0})

	require.Equal(t, 1, c.PointCount())
	p := c.Series[0].Points[0]
	assert.Equal(t, rows[0].Temp, p.X)
	assert.Equal(t, 1.0, p.Y, "month of January")
	assert.Equal(t, rows[0].Humidity, p.Shade)
	assert.Equal(t, "Month (#)", c.YAxis.Name)
}

func TestDotPlot_EmptyRangeIsNotAnError(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	c := d.DotPlot(models.CloudRange{Min: 11, Max: 19})

	assert.Equal(t, 0, c.PointCount())
	require.Len(t, c.Series, 1)
	assert.NotNil(t, c.Series[0].Points)
}

func TestBoxPlot_SingleDay(t *testing.T) {
	rows := yearOfDays()
	d := newTestDashboard(t, rows)

	c := d.BoxPlot(models.DateRange{Start: day(2022, 8, 7), End: day(2022, 8, 7)})

	require.NotNil(t, c.Box)
	assert.Equal(t, 1, c.Box.Count)
	var want float64
	for _, o := range rows {
		if o.Date.Month() == time.August && o.Date.Day() == 7 {
			want = o.Temp
		}
	}
	assert.Equal(t, want, c.Box.Median)
	assert.Equal(t, want, c.Box.Min)
	assert.Equal(t, want, c.Box.Max)
}

func TestBoxPlot_InputMultisetMatchesWindow(t *testing.T) {
	rows := []weather.Observation{
		{Date: time.Date(2022, 8, 6, 23, 0, 0, 0, time.UTC), Temp: 60},
		{Date: time.Date(2022, 8, 7, 0, 0, 0, 0, time.UTC), Temp: 70},
		{Date: time.Date(2022, 8, 7, 12, 0, 0, 0, time.UTC), Temp: 80},
		{Date: time.Date(2022, 8, 7, 23, 59, 0, 0, time.UTC), Temp: 70},
		{Date: time.Date(2022, 8, 8, 0, 0, 0, 0, time.UTC), Temp: 90},
		{Date: time.Date(2022, 8, 7, 6, 0, 0, 0, time.UTC), Temp: math.NaN()},
	}
	d := newTestDashboard(t, rows)

	c := d.BoxPlot(models.DateRange{Start: day(2022, 8, 7), End: day(2022, 8, 7)})

	var got []float64
	for _, p := range c.Series[0].Points {
		got = append(got, p.Y)
	}
	assert.ElementsMatch(t, []float64{70, 80, 70}, got)
	assert.Equal(t, 3, c.Box.Count)
	assert.Equal(t, 70.0, c.Box.Median)
}

func TestBoxPlot_SameDayBoundsIgnoreTimeOfDay(t *testing.T) {
	rows := []weather.Observation{
		{Date: time.Date(2022, 8, 7, 3, 0, 0, 0, time.UTC), Temp: 65},
		{Date: time.Date(2022, 8, 7, 21, 0, 0, 0, time.UTC), Temp: 75},
		{Date: time.Date(2022, 8, 8, 3, 0, 0, 0, time.UTC), Temp: 95},
	}
	d := newTestDashboard(t, rows)

	c := d.BoxPlot(models.DateRange{
		Start: time.Date(2022, 8, 7, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2022, 8, 7, 6, 0, 0, 0, time.UTC),
	})

	require.NotNil(t, c.Box)
	assert.False(t, c.Box.Empty())
	assert.Equal(t, 2, c.Box.Count)
	assert.Equal(t, 70.0, c.Box.Median)
}

func TestBoxPlot_DegenerateWindows(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	tests := []struct {
		name string
		r    models.DateRange
	}{
		{"start after end", models.DateRange{Start: day(2022, 9, 1), End: day(2022, 8, 1)}},
		{"outside dataset", models.DateRange{Start: day(2030, 1, 1), End: day(2030, 2, 1)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := d.BoxPlot(test.r)
			require.NotNil(t, c.Box)
			assert.True(t, c.Box.Empty())
			assert.True(t, math.IsNaN(c.Box.Median))
			assert.Equal(t, 0, c.PointCount())

			_, err := json.Marshal(c)
			assert.NoError(t, err)
		})
	}
}

func TestRecomputations_AreIdempotent(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	encode := func(v interface{}) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return string(data)
	}

	clouds := models.CloudRange{Min: 20, Max: 60}
	assert.Equal(t, encode(d.DotPlot(clouds)), encode(d.DotPlot(clouds)))

	dates := models.DateRange{Start: day(2022, 3, 1), End: day(2022, 5, 31)}
	assert.Equal(t, encode(d.BoxPlot(dates)), encode(d.BoxPlot(dates)))

	empty := models.DateRange{Start: day(2023, 3, 1), End: day(2023, 5, 31)}
	assert.Equal(t, encode(d.BoxPlot(empty)), encode(d.BoxPlot(empty)))

	assert.Equal(t, d.Summarize(weather.FeatureMain), d.Summarize(weather.FeatureMain))
}

func TestSummarize_NumericAndCategorical(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	humidity := d.Summarize(weather.FeatureHumidity)
	require.NotNil(t, humidity.Numeric)
	assert.Nil(t, humidity.Categorical)
	assert.Equal(t, weather.KindNumeric, humidity.Kind)
	assert.Equal(t, 365, humidity.Numeric.Count)
	assert.Contains(t, humidity.Text, "mean")
	assert.Contains(t, humidity.Text, "std")
	assert.Contains(t, humidity.Text, "25%")

	description := d.Summarize(weather.FeatureDescription)
	require.NotNil(t, description.Categorical)
	assert.Nil(t, description.Numeric)
	assert.Equal(t, 365, description.Categorical.Count)
	assert.Equal(t, 3, description.Categorical.Unique)
	assert.Equal(t, "clear sky", description.Categorical.Top)
	assert.Equal(t, 122, description.Categorical.Freq)
	assert.Contains(t, description.Text, "unique")
}

func TestSummarize_CountIsNonMissing(t *testing.T) {
	rows := yearOfDays()
	rows[3].Humidity = math.NaN()
	rows[4].Humidity = math.NaN()
	rows[10].Description = ""
	d := newTestDashboard(t, rows)

	for _, f := range weather.Features {
		want := 0
		for _, o := range rows {
			if f.IsNumeric() {
				if _, ok := o.Numeric(f); ok {
					want++
				}
			} else if _, ok := o.Categorical(f); ok {
				want++
			}
		}

		s := d.Summarize(f)
		if f.IsNumeric() {
			assert.Equal(t, want, s.Numeric.Count, f)
		} else {
			assert.Equal(t, want, s.Categorical.Count, f)
		}
	}
	assert.Equal(t, 363, d.Summarize(weather.FeatureHumidity).Numeric.Count)
	assert.Equal(t, 364, d.Summarize(weather.FeatureDescription).Categorical.Count)
}

func TestSummaryTables(t *testing.T) {
	d := newTestDashboard(t, yearOfDays())

	numeric := d.NumericSummaryTable()
	require.Len(t, numeric, 11)
	assert.Equal(t, "dt", numeric[0].Variable)
	assert.Equal(t, "temp", numeric[1].Variable)

	categorical := d.CategoricalSummaryTable()
	require.Len(t, categorical, 3)
	for _, c := range categorical {
		assert.NotEqual(t, string(weather.FeatureDate), c.Variable)
	}
	assert.Equal(t, "main", categorical[0].Variable)

	// callers get copies
	numeric[0].Variable = "changed"
	assert.Equal(t, "dt", d.NumericSummaryTable()[0].Variable)
}
