package weather

// Fixed defaults representing mild/unknown weather. They are applied as one
// tuple on the zero-data path so a synthetic number is never presented next
// to an unrelated real measurement.
const (
	DefaultMaxTemp       = 22.0
	DefaultMinTemp       = 15.0
	DefaultWindSpeed     = 10.0
	DefaultPrecipitation = 2.0
	DefaultHumidity      = 60.0
)

// DefaultsSourceName labels snapshot metrics that were filled from the fixed
// defaults rather than from a provider.
const DefaultsSourceName = "defaults"

// Reconcile merges provider results into a single CanonicalSnapshot.
//
// results must be ordered by descending source priority
// (satellite-reanalysis, secondary-reanalysis, near-term-forecast,
// historical-records). Each metric independently takes the first non-nil
// value in that order and is never overwritten once set.
//
// If no provider supplied maxTemp the whole snapshot falls back to the fixed
// default tuple; a metric that is individually missing falls back to its own
// default. The returned snapshot never contains a nil, NaN, or sentinel
// field.
func Reconcile(results []RawProviderResult) CanonicalSnapshot {
	var (
		snap    CanonicalSnapshot
		maxTemp *float64
		minTemp *float64
		wind    *float64
		precip  *float64
		humid   *float64
		sources []SourceContribution
	)

	for _, r := range results {
		if !r.Available {
			continue
		}

		var taken []Metric
		if maxTemp == nil && r.MaxTemp != nil {
			maxTemp = r.MaxTemp
			taken = append(taken, MetricMaxTemp)
		}
		if minTemp == nil && r.MinTemp != nil {
			minTemp = r.MinTemp
			taken = append(taken, MetricMinTemp)
		}
		if wind == nil && r.WindSpeed != nil {
			wind = r.WindSpeed
			taken = append(taken, MetricWindSpeed)
		}
		if precip == nil && r.Precipitation != nil {
			precip = r.Precipitation
			taken = append(taken, MetricPrecipitation)
		}
		if humid == nil && r.Humidity != nil {
			humid = r.Humidity
			taken = append(taken, MetricHumidity)
		}

		if len(taken) > 0 {
			sources = append(sources, SourceContribution{
				SourceName: r.SourceName,
				Metrics:    taken,
			})
		}
	}

	// Zero-data path: without a usable maxTemp the snapshot is synthetic as
	// a whole.
	if maxTemp == nil {
		return CanonicalSnapshot{
			MaxTemp:       DefaultMaxTemp,
			MinTemp:       DefaultMinTemp,
			WindSpeed:     DefaultWindSpeed,
			Precipitation: DefaultPrecipitation,
			Humidity:      DefaultHumidity,
			Sources: []SourceContribution{{
				SourceName: DefaultsSourceName,
				Metrics: []Metric{
					MetricMaxTemp, MetricMinTemp, MetricWindSpeed,
					MetricPrecipitation, MetricHumidity,
				},
			}},
		}
	}

	snap.MaxTemp = *maxTemp

	var defaulted []Metric
	if minTemp != nil {
		snap.MinTemp = *minTemp
	} else {
		snap.MinTemp = DefaultMinTemp
		defaulted = append(defaulted, MetricMinTemp)
	}
	if wind != nil {
		snap.WindSpeed = *wind
	} else {
		snap.WindSpeed = DefaultWindSpeed
		defaulted = append(defaulted, MetricWindSpeed)
	}
	if precip != nil {
		snap.Precipitation = *precip
	} else {
		snap.Precipitation = DefaultPrecipitation
		defaulted = append(defaulted, MetricPrecipitation)
	}
	if humid != nil {
		snap.Humidity = *humid
	} else {
		snap.Humidity = DefaultHumidity
		defaulted = append(defaulted, MetricHumidity)
	}

	if len(defaulted) > 0 {
		sources = append(sources, SourceContribution{
			SourceName: DefaultsSourceName,
			Metrics:    defaulted,
		})
	}
	snap.Sources = sources

	return snap
}
