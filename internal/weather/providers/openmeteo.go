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

// openMeteoDaily is the response shape shared by the Open-Meteo forecast
// and archive endpoints. Series entries may be null for dates the endpoint
// does not cover.
type openMeteoDaily struct {
	Daily struct {
		Time             []string   `json:"time"`
		TemperatureMax   []*float64 `json:"temperature_2m_max"`
		TemperatureMin   []*float64 `json:"temperature_2m_min"`
		WindSpeedMax     []*float64 `json:"windspeed_10m_max"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
	Hourly struct {
		RelativeHumidity []*float64 `json:"relativehumidity_2m"`
	} `json:"hourly"`
}

// openMeteoQuery builds the query string both Open-Meteo endpoints accept:
// one daily row plus hourly humidity for the requested date.
func openMeteoQuery(pt weather.Point, date time.Time) url.Values {
	day := date.Format("2006-01-02")
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", pt.Lat))
	values.Set("longitude", fmt.Sprintf("%.4f", pt.Lon))
	values.Set("start_date", day)
	values.Set("end_date", day)
	values.Set("daily", "temperature_2m_max,temperature_2m_min,windspeed_10m_max,precipitation_sum")
	values.Set("hourly", "relativehumidity_2m")
	values.Set("timezone", "auto")
	return values
}

// normalizeOpenMeteo validates the first daily row into a provider result.
func normalizeOpenMeteo(source string, payload openMeteoDaily) weather.RawProviderResult {
	res := weather.RawProviderResult{SourceName: source}

	res.MaxTemp = weather.Validate(firstValue(payload.Daily.TemperatureMax), weather.TempMin, weather.TempMax)
	res.MinTemp = weather.Validate(firstValue(payload.Daily.TemperatureMin), weather.TempMin, weather.TempMax)
	res.WindSpeed = weather.Validate(firstValue(payload.Daily.WindSpeedMax), weather.WindMin, weather.WindMax)
	res.Precipitation = weather.Validate(firstValue(payload.Daily.PrecipitationSum), weather.PrecipMin, weather.PrecipMax)
	res.Humidity = weather.Validate(meanValue(payload.Hourly.RelativeHumidity), weather.HumidityMin, weather.HumidityMax)

	res.Available = res.MetricCount() > 0
	return res
}

// OpenMeteoProvider is the near-term forecast adapter, backed by the
// Open-Meteo forecast API. No API key required.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	timeout time.Duration
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    weather.SourceForecast,
		baseURL: "https://api.open-meteo.com/v1/forecast",
		timeout: 10 * time.Second,
		httpCfg: defaultHTTPCfg(client),
		circuit: newCircuit("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, pt weather.Point, date time.Time) (weather.RawProviderResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.baseURL, openMeteoQuery(pt, date).Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.RawProviderResult{}, err
	}
	defer resp.Body.Close()

	var payload openMeteoDaily
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawProviderResult{}, err
	}

	res := normalizeOpenMeteo(p.name, payload)
	if !res.Available {
		return weather.RawProviderResult{}, fmt.Errorf("openmeteo: %w", errNoData)
	}
	return res, nil
}
