package util

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dash/dataset"
	"weather-dash/models/weather"
)

const csvHeader = "date,temp,feels_like,temp_min,temp_max,pressure,humidity,speed,deg,clouds,id,main,description,icon\n"

func createTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadDatasetFromCSV(t *testing.T) {
	// Arrange
	content := csvHeader +
		"2022-08-07 00:00:00,80.6,84.2,78.1,82.0,1015,74,5.75,200,20,801,Clouds,few clouds,02n\n" +
		"2022-08-07 01:00:00,79.5,,77.0,81.0,1015,78,4.61,190,0,800,Clear,clear sky,01n\n"
	path := createTempCSV(t, content)

	// Act
	ds, err := ReadDatasetFromCSV(path)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	first := ds.Row(0)
	assert.Equal(t, time.Date(2022, 8, 7, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 80.6, first.Temp)
	assert.Equal(t, 801.0, first.ConditionID)
	assert.Equal(t, "few clouds", first.Description)
	assert.Equal(t, first.Date.Unix(), first.Dt)

	second := ds.Row(1)
	assert.True(t, math.IsNaN(second.FeelsLike), "empty numeric cell should be missing")
	_, ok := second.Numeric(weather.FeatureFeelsLike)
	assert.False(t, ok)

	lo, hi := ds.CloudBounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 20, hi)
}

func TestParseDatasetCSV_DtColumnAndExtraColumns(t *testing.T) {
	content := ",dt," + strings.TrimSuffix(csvHeader, "\n") + ",city\n" +
		"0,1659830400,2022-08-07,80.6,84.2,78.1,82.0,1015,74,5.75,200,20,801,Clouds,few clouds,02n,Philadelphia\n"

	ds, err := ParseDatasetCSV(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, int64(1659830400), ds.Row(0).Dt)
	assert.Equal(t, "02n", ds.Row(0).Icon)
}

func TestParseDatasetCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: dataset.ErrEmptyDataset,
		},
		{
			name:    "header only",
			content: csvHeader,
			wantErr: dataset.ErrEmptyDataset,
		},
		{
			name:    "missing column",
			content: "date,temp\n2022-08-07,80\n",
			wantErr: dataset.ErrMissingColumn,
		},
		{
			name:    "bad number",
			content: csvHeader + "2022-08-07,hot,84.2,78.1,82.0,1015,74,5.75,200,20,801,Clouds,few clouds,02n\n",
			wantErr: dataset.ErrMalformedCell,
		},
		{
			name:    "bad date",
			content: csvHeader + "yesterday,80,84.2,78.1,82.0,1015,74,5.75,200,20,801,Clouds,few clouds,02n\n",
			wantErr: dataset.ErrMalformedCell,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseDatasetCSV(strings.NewReader(test.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.wantErr), "got %v", err)
		})
	}
}

func TestReadDatasetFromCSV_MissingFile(t *testing.T) {
	_, err := ReadDatasetFromCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2022, 8, 7, 13, 0, 0, 0, time.UTC)
	for _, s := range []string{"2022-08-07 13:00:00", "2022-08-07T13:00:00", "2022-08-07 13:00:00+00:00", "8/7/2022 13:00"} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	// the zone is dropped, the wall clock kept
	got, err := ParseTimestamp("2022-08-07T13:00:00-04:00")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadDataset(t *testing.T) {
	content := csvHeader +
		"2022-08-07 00:00:00,80.6,84.2,78.1,82.0,1015,74,5.75,200,20,801,Clouds,few clouds,02n\n"

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather.csv" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(content))
	}))
	defer mockServer.Close()

	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{"local file", createTempCSV(t, content), false},
		{"remote file", mockServer.URL + "/weather.csv", false},
		{"remote missing", mockServer.URL + "/gone.csv", true},
		{"local missing", filepath.Join(t.TempDir(), "gone.csv"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ds, err := LoadDataset(test.source)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, ds.Len())
			assert.Equal(t, 80.6, ds.Row(0).Temp)
		})
	}
}
