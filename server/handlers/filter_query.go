package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"weather-dash/models"
	"weather-dash/models/weather"
)

const (
	CLOUD_MIN_QUERY_ARG  = "cloud_min"
	CLOUD_MAX_QUERY_ARG  = "cloud_max"
	START_DATE_QUERY_ARG = "start_date"
	END_DATE_QUERY_ARG   = "end_date"
	FEATURE_QUERY_ARG    = "feature"
)

var ErrInvalidQuery = errors.New("invalid query")

// filterQuery is the raw control state carried by a request. Absent
// arguments keep the dashboard defaults.
type filterQuery struct {
	CloudMin  int    `query:"cloud_min" validate:"gte=0,lte=100"`
	CloudMax  int    `query:"cloud_max" validate:"gte=0,lte=100,gtefield=CloudMin"`
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
	Feature   string `query:"feature" validate:"required,feature"`
}

var queryValidator = newQueryValidator()

func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("query")
	})
	v.RegisterValidation("feature", func(fl validator.FieldLevel) bool {
		_, err := weather.ParseFeature(fl.Field().String())
		return err == nil
	})
	return v
}

// parseFilterState overlays the request's query arguments on defaults.
// Inverted date ranges are allowed; they select nothing. A crossed cloud pair
// is reordered when swapCrossedClouds is set and rejected otherwise.
func parseFilterState(vals url.Values, defaults models.FilterState, swapCrossedClouds bool) (models.FilterState, error) {
	q := filterQuery{
		CloudMin:  defaults.Clouds.Min,
		CloudMax:  defaults.Clouds.Max,
		StartDate: defaults.Dates.Start.Format(weather.DateLayout),
		EndDate:   defaults.Dates.End.Format(weather.DateLayout),
		Feature:   string(defaults.Feature),
	}

	var err error
	if q.CloudMin, err = intArg(vals, CLOUD_MIN_QUERY_ARG, q.CloudMin); err != nil {
		return models.FilterState{}, err
	}
	if q.CloudMax, err = intArg(vals, CLOUD_MAX_QUERY_ARG, q.CloudMax); err != nil {
		return models.FilterState{}, err
	}
	if swapCrossedClouds && q.CloudMin > q.CloudMax {
		q.CloudMin, q.CloudMax = q.CloudMax, q.CloudMin
	}
	q.StartDate = stringArg(vals, START_DATE_QUERY_ARG, q.StartDate)
	q.EndDate = stringArg(vals, END_DATE_QUERY_ARG, q.EndDate)
	q.Feature = stringArg(vals, FEATURE_QUERY_ARG, q.Feature)

	if err := queryValidator.Struct(q); err != nil {
		return models.FilterState{}, describeValidation(err)
	}

	// both dates already passed the datetime check
	start, _ := time.Parse(weather.DateLayout, q.StartDate)
	end, _ := time.Parse(weather.DateLayout, q.EndDate)
	feature, _ := weather.ParseFeature(q.Feature)

	return models.FilterState{
		Clouds:  models.CloudRange{Min: q.CloudMin, Max: q.CloudMax},
		Dates:   models.DateRange{Start: start, End: end},
		Feature: feature,
	}, nil
}

// encodeFilterState is the inverse of parseFilterState.
func encodeFilterState(s models.FilterState) url.Values {
	vals := url.Values{}
	vals.Set(CLOUD_MIN_QUERY_ARG, strconv.Itoa(s.Clouds.Min))
	vals.Set(CLOUD_MAX_QUERY_ARG, strconv.Itoa(s.Clouds.Max))
	vals.Set(START_DATE_QUERY_ARG, s.Dates.Start.Format(weather.DateLayout))
	vals.Set(END_DATE_QUERY_ARG, s.Dates.End.Format(weather.DateLayout))
	vals.Set(FEATURE_QUERY_ARG, string(s.Feature))
	return vals
}

func intArg(vals url.Values, name string, def int) (int, error) {
	s := strings.TrimSpace(vals.Get(name))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: argument %s must be an integer", ErrInvalidQuery, name)
	}
	return n, nil
}

func stringArg(vals url.Values, name, def string) string {
	if s := strings.TrimSpace(vals.Get(name)); s != "" {
		return s
	}
	return def
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("argument %s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidQuery, strings.Join(msgs, "; "))
}
