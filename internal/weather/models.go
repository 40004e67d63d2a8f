package weather

import (
	"time"
)

// Activity identifies the outdoor activity an analysis is tuned for.
type Activity string

const (
	ActivityHiking        Activity = "hiking"
	ActivityCamping       Activity = "camping"
	ActivityFishing       Activity = "fishing"
	ActivityCycling       Activity = "cycling"
	ActivityOutdoorEvents Activity = "outdoor_events"
)

// KnownActivity reports whether a is one of the supported activities.
func KnownActivity(a Activity) bool {
	switch a {
	case ActivityHiking, ActivityCamping, ActivityFishing, ActivityCycling, ActivityOutdoorEvents:
		return true
	}
	return false
}

// Display returns the human-readable form used in advice and summary text.
func (a Activity) Display() string {
	if a == ActivityOutdoorEvents {
		return "outdoor events"
	}
	return string(a)
}

// Metric names one of the five meteorological values the pipeline reconciles.
type Metric string

const (
	MetricMaxTemp       Metric = "maxTemp"
	MetricMinTemp       Metric = "minTemp"
	MetricWindSpeed     Metric = "windSpeed"
	MetricPrecipitation Metric = "precipitation"
	MetricHumidity      Metric = "humidity"
)

// Point is a geographic coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RawProviderResult is one provider's normalized contribution for a point and
// date. Every value has already passed through Validate; nil means the
// provider had no usable number for that metric.
type RawProviderResult struct {
	SourceName string

	MaxTemp       *float64
	MinTemp       *float64
	WindSpeed     *float64
	Precipitation *float64
	Humidity      *float64

	// Available is true only if at least one metric validated successfully.
	Available bool

	// Synthetic marks a last-resort fallback response carrying fixed
	// plausible values rather than observed data.
	Synthetic bool
}

// MetricCount returns how many metrics carry a validated value.
func (r RawProviderResult) MetricCount() int {
	n := 0
	for _, v := range []*float64{r.MaxTemp, r.MinTemp, r.WindSpeed, r.Precipitation, r.Humidity} {
		if v != nil {
			n++
		}
	}
	return n
}

// Unavailable builds the degraded result used when a provider fetch fails.
func Unavailable(source string) RawProviderResult {
	return RawProviderResult{SourceName: source}
}

// CanonicalSnapshot is the reconciled, authoritative set of meteorological
// values for one point and date. Every field is either a validated provider
// value or a documented default; never NaN and never a sentinel.
//
// MinTemp <= MaxTemp is not guaranteed: sources may disagree, and a violation
// is a data-quality signal rather than an error.
type CanonicalSnapshot struct {
	MaxTemp       float64 `json:"maxTempC"`
	MinTemp       float64 `json:"minTempC"`
	WindSpeed     float64 `json:"windSpeedKmh"`
	Precipitation float64 `json:"precipitationMm"`
	Humidity      float64 `json:"humidityPercent"`

	// Sources records which provider supplied which metrics.
	Sources []SourceContribution `json:"sources,omitempty"`
}

// SourceContribution describes the metrics a single provider contributed to a
// reconciled snapshot.
type SourceContribution struct {
	SourceName string   `json:"source"`
	Metrics    []Metric `json:"metrics"`
}

// HistoricalAverages carries long-term averages for the analysis date, used to
// phrase how the forecast compares to a typical year. All fields optional.
type HistoricalAverages struct {
	AvgMaxTemp *float64 `json:"avgMaxTemp,omitempty"`
	AvgWind    *float64 `json:"avgWind,omitempty"`
	AvgPrecip  *float64 `json:"avgPrecip,omitempty"`
}

// TrackedLocation is a named spot the scheduler keeps fresh conditions for.
type TrackedLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Key returns the canonical store key for this location.
func (l TrackedLocation) Key() string {
	return l.Name
}

// Point returns the location's coordinates.
func (l TrackedLocation) Point() Point {
	return Point{Lat: l.Lat, Lon: l.Lon}
}

// ConditionsRecord is one stored reconciliation outcome for a tracked
// location.
type ConditionsRecord struct {
	Location  TrackedLocation   `json:"location"`
	Date      time.Time         `json:"date"`
	Snapshot  CanonicalSnapshot `json:"snapshot"`
	FetchedAt time.Time         `json:"fetchedAt"` // always UTC
}

// AnalysisRequest is the engine's input: where, when, and what for.
type AnalysisRequest struct {
	Point    Point
	Date     time.Time // calendar date; only year/month/day are used
	Activity Activity
}

// AnalysisResult is the complete outcome of one analysis run.
type AnalysisResult struct {
	ID           string             `json:"id"`
	Point        Point              `json:"location"`
	LocationName string             `json:"locationName"`
	Date         time.Time          `json:"date"`
	Activity     Activity           `json:"activity"`
	Snapshot     CanonicalSnapshot  `json:"snapshot"`
	Hazards      []HazardAssessment `json:"hazards"`
	Alerts       []Alert            `json:"alerts"`
	Clothing     []ClothingItem     `json:"clothing"`
	Summary      string             `json:"summary"`
	GeneratedAt  time.Time          `json:"generatedAt"` // always UTC
}
