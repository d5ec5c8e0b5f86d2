package util

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"weather-dash/api"
	"weather-dash/dataset"
	"weather-dash/logging"
	"weather-dash/models/weather"
)

// REQUIRED_COLUMNS must all be present in the header row.
var REQUIRED_COLUMNS = []weather.Feature{
	weather.FeatureDate,
	weather.FeatureTemp,
	weather.FeatureFeelsLike,
	weather.FeatureTempMin,
	weather.FeatureTempMax,
	weather.FeaturePressure,
	weather.FeatureHumidity,
	weather.FeatureSpeed,
	weather.FeatureDeg,
	weather.FeatureClouds,
	weather.FeatureID,
	weather.FeatureMain,
	weather.FeatureDescription,
	weather.FeatureIcon,
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// LoadDataset reads the weather table from a local path or an http(s) URL.
func LoadDataset(source string) (*dataset.Dataset, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return ReadDatasetFromURL(api.NewHTTPClient(""), source)
	}
	return ReadDatasetFromCSV(source)
}

// ReadDatasetFromURL downloads the CSV once with client and parses it.
func ReadDatasetFromURL(client *api.HTTPClient, url string) (*dataset.Dataset, error) {
	body, err := client.Fetch(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %w", url, err)
	}

	ds, err := ParseDatasetCSV(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", url, err)
	}
	logging.Infof("[WeatherCSVReader] Loaded %d observations from %s", ds.Len(), url)
	return ds, nil
}

// ReadDatasetFromCSV loads the weather table from a CSV file on disk.
func ReadDatasetFromCSV(filePath string) (*dataset.Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}
	defer f.Close()

	ds, err := ParseDatasetCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", filePath, err)
	}
	logging.Infof("[WeatherCSVReader] Loaded %d observations from %s", ds.Len(), filePath)
	return ds, nil
}

// ParseDatasetCSV reads a header row followed by one observation per line.
func ParseDatasetCSV(r io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", dataset.ErrEmptyDataset)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, req := range REQUIRED_COLUMNS {
		if _, ok := cols[string(req)]; !ok {
			return nil, fmt.Errorf("%w: %s", dataset.ErrMissingColumn, req)
		}
	}
	dtCol, hasDt := cols[string(weather.FeatureDt)]

	var rows []weather.Observation
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseObservation(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row.Dt = row.Date.Unix()
		if hasDt && strings.TrimSpace(record[dtCol]) != "" {
			dt, err := strconv.ParseFloat(strings.TrimSpace(record[dtCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: dt=%q", line, dataset.ErrMalformedCell, record[dtCol])
			}
			row.Dt = int64(dt)
		}
		rows = append(rows, row)
	}

	return dataset.New(rows)
}

func parseObservation(record []string, cols map[string]int) (weather.Observation, error) {
	var o weather.Observation
	cell := func(f weather.Feature) string {
		return strings.TrimSpace(record[cols[string(f)]])
	}

	ts, err := ParseTimestamp(cell(weather.FeatureDate))
	if err != nil {
		return o, err
	}
	o.Date = ts

	numeric := []struct {
		feature weather.Feature
		dst     *float64
	}{
		{weather.FeatureTemp, &o.Temp},
		{weather.FeatureFeelsLike, &o.FeelsLike},
		{weather.FeatureTempMin, &o.TempMin},
		{weather.FeatureTempMax, &o.TempMax},
		{weather.FeaturePressure, &o.Pressure},
		{weather.FeatureHumidity, &o.Humidity},
		{weather.FeatureSpeed, &o.Speed},
		{weather.FeatureDeg, &o.Deg},
		{weather.FeatureClouds, &o.Clouds},
		{weather.FeatureID, &o.ConditionID},
	}
	for _, n := range numeric {
		v, err := parseNumericCell(cell(n.feature))
		if err != nil {
			return o, fmt.Errorf("%w: %s=%q", dataset.ErrMalformedCell, n.feature, cell(n.feature))
		}
		*n.dst = v
	}

	o.Main = cell(weather.FeatureMain)
	o.Description = cell(weather.FeatureDescription)
	o.Icon = cell(weather.FeatureIcon)
	return o, nil
}

// parseNumericCell maps empty cells to NaN so they count as missing.
func parseNumericCell(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseTimestamp accepts the layouts pandas writes and drops any zone, keeping the wall clock.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date=%q", dataset.ErrMalformedCell, s)
}
