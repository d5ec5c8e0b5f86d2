package services

import (
	"testing"
	"time"

	"weather-dash/dataset"
	"weather-dash/models/weather"
)

var descriptions = []string{"clear sky", "few clouds", "light rain"}
var mains = []string{"Clear", "Clouds", "Rain"}

// lowCloudDays are the day offsets whose cloud cover is at most 10%.
var lowCloudDays = map[int]float64{0: 0, 30: 5, 60: 10, 90: 10, 120: 3}

// yearOfDays builds one noon observation per day of 2022.
func yearOfDays() []weather.Observation {
	start := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]weather.Observation, 0, 365)
	for i := 0; i < 365; i++ {
		clouds := 20 + float64(i%81)
		if c, ok := lowCloudDays[i]; ok {
			clouds = c
		}
		rows = append(rows, weather.Observation{
			Date:        start.AddDate(0, 0, i),
			Temp:        30 + float64(i)*0.1,
			FeelsLike:   28 + float64(i)*0.1,
			TempMin:     25 + float64(i)*0.1,
			TempMax:     35 + float64(i)*0.1,
			Pressure:    1000 + float64(i%30),
			Humidity:    40 + float64(i%50),
			Speed:       float64(i % 10),
			Deg:         float64(i % 360),
			Clouds:      clouds,
			ConditionID: 800 + float64(i%3),
			Main:        mains[i%3],
			Description: descriptions[i%3],
			Icon:        "01d",
		})
	}
	return rows
}

func newTestDashboard(t *testing.T, rows []weather.Observation) *Dashboard {
	t.Helper()
	ds, err := dataset.New(rows)
	if err != nil {
		t.Fatalf("Failed to build dataset: %v", err)
	}
	return NewDashboard(ds)
}
