package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CleverKeyush/climatrail-core/internal/weather"
)

func TestNOAAFetchLive(t *testing.T) {
	var dataStart string
	mux := http.NewServeMux()
	mux.HandleFunc("/stations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("token"))
		assert.Equal(t, "GHCND", r.URL.Query().Get("datasetid"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": "GHCND:TEST0001"}]}`))
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GHCND:TEST0001", r.URL.Query().Get("stationid"))
		dataStart = r.URL.Query().Get("startdate")
		w.Header().Set("Content-Type", "application/json")
		// An out-of-range row and an unmapped datatype among real rows.
		w.Write([]byte(`{"results": [
			{"datatype": "TMAX", "value": 31.1},
			{"datatype": "TMIN", "value": 17.2},
			{"datatype": "PRCP", "value": 0.8},
			{"datatype": "AWND", "value": 3.0},
			{"datatype": "WT01", "value": 9999},
			{"datatype": "SNOW", "value": 0}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewNOAACDOProvider(srv.Client(), "test-token")
	p.baseURL = srv.URL

	date := time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC)
	res, err := p.Fetch(context.Background(), weather.Point{Lat: 40.71, Lon: -74.0}, date)
	require.NoError(t, err)

	assert.Equal(t, "2023-07-14", dataStart, "reads the prior year's record")
	assert.Equal(t, weather.SourceHistorical, res.SourceName)
	assert.True(t, res.Available)
	assert.False(t, res.Synthetic)

	require.NotNil(t, res.MaxTemp)
	assert.Equal(t, 31.1, *res.MaxTemp)
	require.NotNil(t, res.MinTemp)
	assert.Equal(t, 17.2, *res.MinTemp)
	require.NotNil(t, res.Precipitation)
	assert.Equal(t, 0.8, *res.Precipitation)
	require.NotNil(t, res.WindSpeed)
	assert.InDelta(t, 10.8, *res.WindSpeed, 1e-9)
	assert.Nil(t, res.Humidity, "GHCND carries no humidity")
}

func TestNOAAFallbackWithoutToken(t *testing.T) {
	p := NewNOAACDOProvider(http.DefaultClient, "")

	date := time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC)
	res, err := p.Fetch(context.Background(), weather.Point{Lat: 40.71, Lon: -74.0}, date)
	require.NoError(t, err, "historical adapter never errors")

	assert.True(t, res.Available)
	assert.True(t, res.Synthetic)
	require.NotNil(t, res.MaxTemp)
	assert.Equal(t, 24.0, *res.MaxTemp)
	require.NotNil(t, res.MinTemp)
	assert.Equal(t, 14.0, *res.MinTemp)
	require.NotNil(t, res.WindSpeed)
	assert.Equal(t, 12.0, *res.WindSpeed)
	require.NotNil(t, res.Precipitation)
	assert.Equal(t, 1.0, *res.Precipitation)
	require.NotNil(t, res.Humidity)
	assert.Equal(t, 55.0, *res.Humidity)
}

func TestNOAAFallbackWhenNoStation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/stations") {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": []}`))
			return
		}
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	p := NewNOAACDOProvider(srv.Client(), "test-token")
	p.baseURL = srv.URL

	date := time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC)
	res, err := p.Fetch(context.Background(), weather.Point{Lat: 0, Lon: 0}, date)
	require.NoError(t, err)
	assert.True(t, res.Synthetic)
}
