package weather

import (
	"context"
	"time"
)

// Source names as they appear in snapshot provenance and logs.
const (
	SourceSatellite  = "nasa-power"
	SourceSecondary  = "era5-archive"
	SourceForecast   = "open-meteo"
	SourceHistorical = "noaa-cdo"
)

// Adapter fetches raw conditions for a point and date from one upstream
// source. Implementations validate every metric before returning it; a
// metric that fails validation comes back nil. A non-nil error means the
// source contributed nothing this round.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, pt Point, date time.Time) (RawProviderResult, error)
}

// Store persists reconciled conditions for tracked locations.
type Store interface {
	Add(record ConditionsRecord)
	Latest(location string) (ConditionsRecord, error)
	Range(location string, from, to time.Time) ([]ConditionsRecord, error)
}

// LocationResolver turns coordinates into a human-readable place name.
// Implementations must always return something usable, falling back to a
// formatted coordinate pair when lookup fails.
type LocationResolver interface {
	Resolve(ctx context.Context, pt Point) string
}
