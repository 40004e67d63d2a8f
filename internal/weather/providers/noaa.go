package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/CleverKeyush/climatrail-core/internal/weather"
	"github.com/sony/gobreaker"
)

// NOAACDOProvider is the historical records adapter, backed by NOAA Climate
// Data Online. It looks up the nearest GHCND station and reads the daily
// record for the same calendar date one year earlier.
//
// CDO requires a token and is the flakiest of the four sources, so a failed
// fetch degrades to a fixed synthetic record instead of an error. The
// synthetic record is flagged so it is never mistaken for a measurement.
type NOAACDOProvider struct {
	name    string
	token   string
	baseURL string
	timeout time.Duration
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewNOAACDOProvider(client *http.Client, token string) *NOAACDOProvider {
	return &NOAACDOProvider{
		name:    weather.SourceHistorical,
		token:   token,
		baseURL: "https://www.ncei.noaa.gov/cdo-web/api/v2",
		timeout: 15 * time.Second,
		httpCfg: defaultHTTPCfg(client),
		circuit: newCircuit("noaacdo"),
	}
}

func (p *NOAACDOProvider) Name() string {
	return p.name
}

func (p *NOAACDOProvider) Fetch(ctx context.Context, pt weather.Point, date time.Time) (weather.RawProviderResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.fetchLive(ctx, pt, date)
	if err != nil {
		return p.syntheticFallback(), nil
	}
	return res, nil
}

func (p *NOAACDOProvider) fetchLive(ctx context.Context, pt weather.Point, date time.Time) (weather.RawProviderResult, error) {
	if p.token == "" {
		return weather.RawProviderResult{}, fmt.Errorf("noaa cdo token is not configured")
	}

	stationID, err := p.nearestStation(ctx, pt)
	if err != nil {
		return weather.RawProviderResult{}, err
	}

	// Same calendar date, previous year.
	day := date.AddDate(-1, 0, 0).Format("2006-01-02")

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("datasetid", "GHCND")
		values.Set("stationid", stationID)
		values.Set("startdate", day)
		values.Set("enddate", day)
		values.Set("units", "metric")
		values.Set("limit", "100")

		u := fmt.Sprintf("%s/data?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("token", p.token)
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.RawProviderResult{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Datatype string  `json:"datatype"`
			Value    float64 `json:"value"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawProviderResult{}, err
	}

	res := weather.RawProviderResult{SourceName: p.name}
	for _, row := range payload.Results {
		// GHCND rows are loosely typed; screen each with the wide generic
		// range before the metric-specific one.
		v := weather.Validate(row.Value, weather.GenericMin, weather.GenericMax)
		if v == nil {
			continue
		}

		switch row.Datatype {
		case "TMAX":
			res.MaxTemp = weather.Validate(*v, weather.TempMin, weather.TempMax)
		case "TMIN":
			res.MinTemp = weather.Validate(*v, weather.TempMin, weather.TempMax)
		case "PRCP":
			res.Precipitation = weather.Validate(*v, weather.PrecipMin, weather.PrecipMax)
		case "AWND":
			// Average daily wind in m/s.
			res.WindSpeed = weather.Validate(*v*3.6, weather.WindMin, weather.WindMax)
		}
	}

	res.Available = res.MetricCount() > 0
	if !res.Available {
		return weather.RawProviderResult{}, fmt.Errorf("noaa cdo: %w", errNoData)
	}
	return res, nil
}

// nearestStation finds a GHCND station inside a one-degree box around the
// point.
func (p *NOAACDOProvider) nearestStation(ctx context.Context, pt weather.Point) (string, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("datasetid", "GHCND")
		values.Set("extent", fmt.Sprintf("%.4f,%.4f,%.4f,%.4f",
			pt.Lat-0.5, pt.Lon-0.5, pt.Lat+0.5, pt.Lon+0.5))
		values.Set("sortfield", "datacoverage")
		values.Set("sortorder", "desc")
		values.Set("limit", "1")

		u := fmt.Sprintf("%s/stations?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("token", p.token)
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Results) == 0 {
		return "", fmt.Errorf("no ghcnd station near %.4f,%.4f", pt.Lat, pt.Lon)
	}
	return payload.Results[0].ID, nil
}

// syntheticFallback is the last-resort record for when CDO cannot be
// reached. Values are fixed, mild, and flagged Synthetic.
func (p *NOAACDOProvider) syntheticFallback() weather.RawProviderResult {
	maxTemp, minTemp := 24.0, 14.0
	wind, precip, humidity := 12.0, 1.0, 55.0

	return weather.RawProviderResult{
		SourceName:    p.name,
		MaxTemp:       &maxTemp,
		MinTemp:       &minTemp,
		WindSpeed:     &wind,
		Precipitation: &precip,
		Humidity:      &humidity,
		Available:     true,
		Synthetic:     true,
	}
}
