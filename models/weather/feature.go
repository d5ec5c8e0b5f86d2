package weather

import (
	"errors"
	"fmt"
)

// DateTimeLayout is how timestamps are printed in summaries.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-date format used by the date-range controls.
const DateLayout = "2006-01-02"

var ErrUnknownFeature = errors.New("unknown feature")

// Feature identifies one column of the dataset.
type Feature string

const (
	FeatureDt          Feature = "dt"
	FeatureDate        Feature = "date"
	FeatureTemp        Feature = "temp"
	FeatureFeelsLike   Feature = "feels_like"
	FeatureTempMin     Feature = "temp_min"
	FeatureTempMax     Feature = "temp_max"
	FeaturePressure    Feature = "pressure"
	FeatureHumidity    Feature = "humidity"
	FeatureSpeed       Feature = "speed"
	FeatureDeg         Feature = "deg"
	FeatureClouds      Feature = "clouds"
	FeatureID          Feature = "id"
	FeatureMain        Feature = "main"
	FeatureDescription Feature = "description"
	FeatureIcon        Feature = "icon"
)

// FeatureKind tells whether a column holds numbers or labels.
type FeatureKind string

const (
	KindNumeric     FeatureKind = "numeric"
	KindCategorical FeatureKind = "categorical"
)

// Features lists the selectable columns in file order.
var Features = []Feature{
	FeatureDt,
	FeatureDate,
	FeatureTemp,
	FeatureFeelsLike,
	FeatureTempMin,
	FeatureTempMax,
	FeaturePressure,
	FeatureHumidity,
	FeatureSpeed,
	FeatureDeg,
	FeatureClouds,
	FeatureID,
	FeatureMain,
	FeatureDescription,
	FeatureIcon,
}

var featureKinds = map[Feature]FeatureKind{
	FeatureDt:          KindNumeric,
	FeatureDate:        KindCategorical,
	FeatureTemp:        KindNumeric,
	FeatureFeelsLike:   KindNumeric,
	FeatureTempMin:     KindNumeric,
	FeatureTempMax:     KindNumeric,
	FeaturePressure:    KindNumeric,
	FeatureHumidity:    KindNumeric,
	FeatureSpeed:       KindNumeric,
	FeatureDeg:         KindNumeric,
	FeatureClouds:      KindNumeric,
	FeatureID:          KindNumeric,
	FeatureMain:        KindCategorical,
	FeatureDescription: KindCategorical,
	FeatureIcon:        KindCategorical,
}

var featureLabels = map[Feature]string{
	FeatureDt:          "Unix Time",
	FeatureDate:        "Date",
	FeatureTemp:        "Temperature (F)",
	FeatureFeelsLike:   "Feels Like (F)",
	FeatureTempMin:     "Min Temperature (F)",
	FeatureTempMax:     "Max Temperature (F)",
	FeaturePressure:    "Pressure (hPa)",
	FeatureHumidity:    "Humidity",
	FeatureSpeed:       "Wind Speed",
	FeatureDeg:         "Wind Direction (deg)",
	FeatureClouds:      "Clouds (%)",
	FeatureID:          "Condition ID",
	FeatureMain:        "Main",
	FeatureDescription: "Description",
	FeatureIcon:        "Icon",
}

// ParseFeature validates a column identifier.
func ParseFeature(s string) (Feature, error) {
	f := Feature(s)
	if _, ok := featureKinds[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
	}
	return f, nil
}

func (f Feature) Kind() FeatureKind {
	return featureKinds[f]
}

func (f Feature) IsNumeric() bool {
	return featureKinds[f] == KindNumeric
}

// Label is the human readable axis/legend label of the column.
func (f Feature) Label() string {
	if l, ok := featureLabels[f]; ok {
		return l
	}
	return string(f)
}

// FeaturesOfKind returns the columns of the given kind in file order.
func FeaturesOfKind(kind FeatureKind) []Feature {
	out := make([]Feature, 0, len(Features))
	for _, f := range Features {
		if f.Kind() == kind {
			out = append(out, f)
		}
	}
	return out
}
