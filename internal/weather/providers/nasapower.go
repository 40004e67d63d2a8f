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

// NASAPowerProvider is the satellite reanalysis adapter, backed by the NASA
// POWER daily point API. POWER reports -999 for missing values and wind in
// m/s at 2 m height.
type NASAPowerProvider struct {
	name    string
	baseURL string
	timeout time.Duration
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewNASAPowerProvider(client *http.Client) *NASAPowerProvider {
	return &NASAPowerProvider{
		name:    weather.SourceSatellite,
		baseURL: "https://power.larc.nasa.gov/api/temporal/daily/point",
		timeout: 20 * time.Second,
		httpCfg: defaultHTTPCfg(client),
		circuit: newCircuit("nasapower"),
	}
}

func (p *NASAPowerProvider) Name() string {
	return p.name
}

func (p *NASAPowerProvider) Fetch(ctx context.Context, pt weather.Point, date time.Time) (weather.RawProviderResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	day := date.Format("20060102")

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("parameters", "T2M_MAX,T2M_MIN,WS2M,PRECTOTCORR,RH2M")
		values.Set("community", "RE")
		values.Set("latitude", fmt.Sprintf("%.4f", pt.Lat))
		values.Set("longitude", fmt.Sprintf("%.4f", pt.Lon))
		values.Set("start", day)
		values.Set("end", day)
		values.Set("format", "JSON")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.RawProviderResult{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Properties struct {
			Parameter struct {
				T2MMax map[string]float64 `json:"T2M_MAX"`
				T2MMin map[string]float64 `json:"T2M_MIN"`
				WS2M   map[string]float64 `json:"WS2M"`
				Precip map[string]float64 `json:"PRECTOTCORR"`
				RH2M   map[string]float64 `json:"RH2M"`
			} `json:"parameter"`
		} `json:"properties"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawProviderResult{}, err
	}

	// Each parameter is keyed by yyyymmdd; a missing key means POWER has no
	// coverage for the date at all.
	at := func(m map[string]float64) any {
		v, ok := m[day]
		if !ok {
			return nil
		}
		return v
	}

	param := payload.Properties.Parameter
	res := weather.RawProviderResult{SourceName: p.name}

	res.MaxTemp = weather.Validate(at(param.T2MMax), weather.TempMin, weather.TempMax)
	res.MinTemp = weather.Validate(at(param.T2MMin), weather.TempMin, weather.TempMax)
	res.Precipitation = weather.Validate(at(param.Precip), weather.PrecipMin, weather.PrecipMax)
	res.Humidity = weather.Validate(at(param.RH2M), weather.HumidityMin, weather.HumidityMax)

	// Wind arrives in m/s. Screen the raw value first so the -999 fill is
	// caught before conversion disguises it.
	if ms := weather.Validate(at(param.WS2M), weather.WindMin, weather.WindMax); ms != nil {
		res.WindSpeed = weather.Validate(*ms*3.6, weather.WindMin, weather.WindMax)
	}

	res.Available = res.MetricCount() > 0
	if !res.Available {
		return weather.RawProviderResult{}, fmt.Errorf("nasa power: %w", errNoData)
	}
	return res, nil
}
