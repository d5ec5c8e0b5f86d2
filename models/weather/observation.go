package weather

import (
	"math"
	"time"
)

// Observation is one row of the historical weather table.
// Missing numeric cells are stored as NaN, missing categorical cells as "".
type Observation struct {
	Dt          int64     `json:"dt"`
	Date        time.Time `json:"date"`
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feels_like"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Pressure    float64   `json:"pressure"`
	Humidity    float64   `json:"humidity"`
	Speed       float64   `json:"speed"`
	Deg         float64   `json:"deg"`
	Clouds      float64   `json:"clouds"`
	ConditionID float64   `json:"id"`
	Main        string    `json:"main"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// Month returns the month-of-year (1-12) of the observation timestamp.
func (o Observation) Month() int {
	return int(o.Date.Month())
}

// TruncateToDay drops the clock part of t, keeping it UTC-naive.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Numeric returns the value of a numeric feature and whether it is present.
func (o Observation) Numeric(f Feature) (float64, bool) {
	var v float64
	switch f {
	case FeatureDt:
		return float64(o.Dt), true
	case FeatureTemp:
		v = o.Temp
	case FeatureFeelsLike:
		v = o.FeelsLike
	case FeatureTempMin:
		v = o.TempMin
	case FeatureTempMax:
		v = o.TempMax
	case FeaturePressure:
		v = o.Pressure
	case FeatureHumidity:
		v = o.Humidity
	case FeatureSpeed:
		v = o.Speed
	case FeatureDeg:
		v = o.Deg
	case FeatureClouds:
		v = o.Clouds
	case FeatureID:
		v = o.ConditionID
	default:
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Categorical returns the value of a categorical feature and whether it is present.
func (o Observation) Categorical(f Feature) (string, bool) {
	var v string
	switch f {
	case FeatureDate:
		if o.Date.IsZero() {
			return "", false
		}
		v = o.Date.Format(DateTimeLayout)
	case FeatureMain:
		v = o.Main
	case FeatureDescription:
		v = o.Description
	case FeatureIcon:
		v = o.Icon
	default:
		return "", false
	}
	return v, v != ""
}
