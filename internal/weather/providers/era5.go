package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CleverKeyush/climatrail-core/internal/weather"
	"github.com/sony/gobreaker"
)

// ERA5Provider is the secondary reanalysis adapter, backed by the
// Open-Meteo ERA5 archive API. The archive lags the present by a few days,
// so for future dates it naturally yields no rows.
type ERA5Provider struct {
	name    string
	baseURL string
	timeout time.Duration
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewERA5Provider(client *http.Client) *ERA5Provider {
	return &ERA5Provider{
		name:    weather.SourceSecondary,
		baseURL: "https://archive-api.open-meteo.com/v1/archive",
		timeout: 12 * time.Second,
		httpCfg: defaultHTTPCfg(client),
		circuit: newCircuit("era5"),
	}
}

func (p *ERA5Provider) Name() string {
	return p.name
}

func (p *ERA5Provider) Fetch(ctx context.Context, pt weather.Point, date time.Time) (weather.RawProviderResult, error) {
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
		return weather.RawProviderResult{}, fmt.Errorf("era5: %w", errNoData)
	}
	return res, nil
}
