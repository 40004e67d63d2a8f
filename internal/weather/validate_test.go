package weather

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsSentinels(t *testing.T) {
	sentinels := []float64{-9999, -999.9, -99.9, -999}

	for _, s := range sentinels {
		// Sentinels are rejected even when the accepted range would
		// technically contain them.
		assert.Nil(t, Validate(s, -100000, 100000), "sentinel %v must be rejected", s)
		assert.Nil(t, Validate(s, TempMin, TempMax), "sentinel %v must be rejected", s)
	}

	// A nearby non-sentinel value passes.
	got := Validate(-999.8, -100000, 100000)
	require.NotNil(t, got)
	assert.Equal(t, -999.8, *got)
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		min   float64
		max   float64
		want  *float64
	}{
		{"below min", -51, TempMin, TempMax, nil},
		{"at min", -50, TempMin, TempMax, ptr(-50.0)},
		{"inside", 21.5, TempMin, TempMax, ptr(21.5)},
		{"at max", 60, TempMin, TempMax, ptr(60.0)},
		{"above max", 60.1, TempMin, TempMax, nil},
		{"humidity over 100", 101, HumidityMin, HumidityMax, nil},
		{"negative precipitation", -0.1, PrecipMin, PrecipMax, nil},
		{"zero precipitation", 0, PrecipMin, PrecipMax, ptr(0.0)},
		{"wind at cap", 200, WindMin, WindMax, ptr(200.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.value, tt.min, tt.max)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestValidateNonNumeric(t *testing.T) {
	assert.Nil(t, Validate(nil, TempMin, TempMax))
	assert.Nil(t, Validate("not a number", TempMin, TempMax))
	assert.Nil(t, Validate(math.NaN(), TempMin, TempMax))
	assert.Nil(t, Validate(math.Inf(1), WindMin, WindMax))
	assert.Nil(t, Validate(math.Inf(-1), TempMin, TempMax))

	var null *float64
	assert.Nil(t, Validate(null, TempMin, TempMax))
}

func TestValidateCoercion(t *testing.T) {
	got := Validate("23.4", TempMin, TempMax)
	require.NotNil(t, got)
	assert.Equal(t, 23.4, *got)

	got = Validate(json.Number("18"), TempMin, TempMax)
	require.NotNil(t, got)
	assert.Equal(t, 18.0, *got)

	got = Validate(int(7), WindMin, WindMax)
	require.NotNil(t, got)
	assert.Equal(t, 7.0, *got)

	got = Validate(float32(12.5), WindMin, WindMax)
	require.NotNil(t, got)
	assert.Equal(t, 12.5, *got)

	v := 42.0
	got = Validate(&v, WindMin, WindMax)
	require.NotNil(t, got)
	assert.Equal(t, 42.0, *got)

	// The returned pointer is a copy, never the caller's pointer.
	assert.NotSame(t, &v, got)
}

func ptr(v float64) *float64 { return &v }
