package weather

import (
	"encoding/json"
	"math"
	"strconv"
)

// Validation ranges per metric. Providers must not hand any number to the
// reconciler that has not passed Validate with the matching range.
const (
	TempMin     = -50.0
	TempMax     = 60.0
	WindMin     = 0.0
	WindMax     = 200.0
	PrecipMin   = 0.0
	PrecipMax   = 500.0
	HumidityMin = 0.0
	HumidityMax = 100.0

	// GenericMin/GenericMax bound the historical-records provider's
	// per-row values, whose datatype varies row by row.
	GenericMin = -100.0
	GenericMax = 100.0
)

// missingSentinels are the "no data" placeholders used across the provider
// ecosystems this pipeline reads from. A measurement numerically equal to any
// of them is never a real value.
var missingSentinels = []float64{-9999, -999.9, -99.9, -999}

// Validate coerces an untrusted provider value to a float64 and checks it
// against [min, max]. It returns nil for null values, values that are not
// finite numbers, recognized missing-data sentinels, and values outside the
// range. Accepted inputs are numeric types, numeric strings, json.Number, and
// *float64; anything else is rejected.
func Validate(value any, min, max float64) *float64 {
	f, ok := coerce(value)
	if !ok {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	for _, s := range missingSentinels {
		if f == s {
			return nil
		}
	}
	if f < min || f > max {
		return nil
	}
	return &f
}

func coerce(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
