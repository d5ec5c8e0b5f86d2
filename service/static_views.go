package services

import (
	"math"

	"weather-dash/models/chart"
	"weather-dash/models/weather"
)

// COMPASS_SECTORS are the wind-rose directions, clockwise from north.
var COMPASS_SECTORS = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// StaticViews are the non-reactive charts of the page.
type StaticViews struct {
	Line        chart.Description `json:"line"`
	Polar       chart.Description `json:"polar"`
	Scatter     chart.Description `json:"scatter"`
	FullYearBox chart.Description `json:"full_year_box"`
}

func (d *Dashboard) buildStaticViews() StaticViews {
	return StaticViews{
		Line:        d.temperatureLine(),
		Polar:       d.windRose(),
		Scatter:     d.feelsLikeScatter(),
		FullYearBox: d.BoxPlot(d.defaults.Dates),
	}
}

// temperatureLine draws temperature over time with one series per weather description.
func (d *Dashboard) temperatureLine() chart.Description {
	var order []string
	byDescription := map[string][]chart.Point{}
	d.data.Each(func(_ int, o weather.Observation) {
		if _, seen := byDescription[o.Description]; !seen {
			order = append(order, o.Description)
		}
		byDescription[o.Description] = append(byDescription[o.Description], chart.Point{
			X:     float64(o.Date.UnixMilli()),
			Y:     o.Temp,
			Label: o.Date.Format(weather.DateTimeLayout),
		})
	})

	series := make([]chart.Series, 0, len(order))
	for _, name := range order {
		series = append(series, chart.Series{Name: name, Points: byDescription[name]})
	}
	return chart.Description{
		Kind:   chart.KindLine,
		Title:  "Temperature for Each Weather Condition",
		XAxis:  chart.Axis{Name: weather.FeatureDate.Label(), Type: "time"},
		YAxis:  chart.Axis{Name: weather.FeatureTemp.Label(), Type: "value"},
		Series: series,
	}
}

// CompassSector maps a bearing in degrees to its index in COMPASS_SECTORS.
func CompassSector(deg float64) int {
	width := 360.0 / float64(len(COMPASS_SECTORS))
	shifted := math.Mod(math.Mod(deg+width/2, 360)+360, 360)
	return int(shifted/width) % len(COMPASS_SECTORS)
}

// windRose counts observations and averages wind speed per compass sector.
func (d *Dashboard) windRose() chart.Description {
	counts := make([]int, len(COMPASS_SECTORS))
	speedSums := make([]float64, len(COMPASS_SECTORS))
	speedCounts := make([]int, len(COMPASS_SECTORS))

	d.data.Each(func(_ int, o weather.Observation) {
		deg, ok := o.Numeric(weather.FeatureDeg)
		if !ok {
			return
		}
		sector := CompassSector(deg)
		counts[sector]++
		if speed, ok := o.Numeric(weather.FeatureSpeed); ok {
			speedSums[sector] += speed
			speedCounts[sector]++
		}
	})

	frequency := make([]chart.Point, len(COMPASS_SECTORS))
	meanSpeed := make([]chart.Point, len(COMPASS_SECTORS))
	for i, label := range COMPASS_SECTORS {
		frequency[i] = chart.Point{X: float64(i), Y: float64(counts[i]), Label: label}
		mean := 0.0
		if speedCounts[i] > 0 {
			mean = speedSums[i] / float64(speedCounts[i])
		}
		meanSpeed[i] = chart.Point{X: float64(i), Y: mean, Label: label}
	}

	return chart.Description{
		Kind:       chart.KindPolar,
		Title:      "Wind Rose",
		XAxis:      chart.Axis{Name: weather.FeatureDeg.Label(), Type: "category"},
		YAxis:      chart.Axis{Name: "Observations", Type: "value"},
		Categories: append([]string(nil), COMPASS_SECTORS...),
		Series: []chart.Series{
			{Name: "Observations", Points: frequency},
			{Name: "Mean " + weather.FeatureSpeed.Label(), Points: meanSpeed},
		},
	}
}

// feelsLikeScatter plots apparent against measured temperature, shaded by cloud cover.
func (d *Dashboard) feelsLikeScatter() chart.Description {
	points := []chart.Point{}
	d.data.Each(func(_ int, o weather.Observation) {
		points = append(points, chart.Point{
			X:     o.Temp,
			Y:     o.FeelsLike,
			Shade: o.Clouds,
			Label: o.Date.Format(weather.DateTimeLayout),
		})
	})
	return chart.Description{
		Kind:       chart.KindScatter,
		Title:      "Feels Like vs Temperature",
		XAxis:      chart.Axis{Name: weather.FeatureTemp.Label(), Type: "value"},
		YAxis:      chart.Axis{Name: weather.FeatureFeelsLike.Label(), Type: "value"},
		ShadeLabel: weather.FeatureClouds.Label(),
		ShadeMin:   0,
		ShadeMax:   100,
		Series:     []chart.Series{{Name: "observations", Points: points}},
	}
}
