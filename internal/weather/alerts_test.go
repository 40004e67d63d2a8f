package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findAlert(alerts []Alert, id string) (Alert, bool) {
	for _, a := range alerts {
		if a.ID == id {
			return a, true
		}
	}
	return Alert{}, false
}

func TestGenerateAlertsSortedByPriority(t *testing.T) {
	// Heavy rain, heat, and a dry-season rule all at once.
	snap := CanonicalSnapshot{MaxTemp: 36, MinTemp: 22, WindSpeed: 32, Precipitation: 18, Humidity: 60}
	date := time.Date(2024, time.July, 14, 0, 0, 0, 0, time.UTC)

	alerts := GenerateAlerts(snap, ActivityHiking, date, date)
	require.NotEmpty(t, alerts)

	for i := 1; i < len(alerts); i++ {
		assert.GreaterOrEqual(t, alerts[i-1].Priority, alerts[i].Priority,
			"alerts out of order at %d: %s before %s", i, alerts[i-1].ID, alerts[i].ID)
	}

	_, ok := findAlert(alerts, "heavy-rain")
	assert.True(t, ok)
	_, ok = findAlert(alerts, "extreme-heat")
	assert.True(t, ok)
}

func TestFrostAlertBands(t *testing.T) {
	date := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	snap := CanonicalSnapshot{MaxTemp: 4, MinTemp: 0, WindSpeed: 5, Precipitation: 0, Humidity: 60}
	alerts := GenerateAlerts(snap, ActivityHiking, date, date)

	frost, ok := findAlert(alerts, "frost")
	require.True(t, ok)
	assert.Equal(t, PriorityHigh, frost.Priority)
	_, ok = findAlert(alerts, "hard-frost")
	assert.False(t, ok)

	snap.MinTemp = -6
	alerts = GenerateAlerts(snap, ActivityHiking, date, date)

	hard, ok := findAlert(alerts, "hard-frost")
	require.True(t, ok)
	assert.Equal(t, PriorityExtreme, hard.Priority)
	_, ok = findAlert(alerts, "frost")
	assert.False(t, ok)
}

func TestFogAlertNeedsStillSaturatedAir(t *testing.T) {
	date := time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC)
	snap := CanonicalSnapshot{MaxTemp: 14, MinTemp: 9, WindSpeed: 5, Precipitation: 0, Humidity: 95}

	_, ok := findAlert(GenerateAlerts(snap, ActivityFishing, date, date), "morning-fog")
	assert.True(t, ok)

	snap.WindSpeed = 15
	_, ok = findAlert(GenerateAlerts(snap, ActivityFishing, date, date), "morning-fog")
	assert.False(t, ok, "wind should clear the fog risk")
}

func TestPollenAlertSeasonal(t *testing.T) {
	snap := CanonicalSnapshot{MaxTemp: 20, MinTemp: 10, WindSpeed: 15, Precipitation: 0, Humidity: 50}

	april := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	_, ok := findAlert(GenerateAlerts(snap, ActivityCycling, april, april), "pollen-high")
	assert.True(t, ok)

	august := time.Date(2024, time.August, 20, 0, 0, 0, 0, time.UTC)
	_, ok = findAlert(GenerateAlerts(snap, ActivityCycling, august, august), "pollen-high")
	assert.False(t, ok, "no pollen rule outside the season")
}

func TestLaundryAlertNeedsDryAir(t *testing.T) {
	date := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)

	snap := CanonicalSnapshot{MaxTemp: 22, MinTemp: 12, WindSpeed: 10, Precipitation: 0, Humidity: 55}
	_, ok := findAlert(GenerateAlerts(snap, ActivityCamping, date, date), "laundry-day")
	assert.True(t, ok)

	snap.Humidity = 80
	_, ok = findAlert(GenerateAlerts(snap, ActivityCamping, date, date), "laundry-day")
	assert.False(t, ok)
}

func TestExerciseAlertTimingUsesClock(t *testing.T) {
	date := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	snap := CanonicalSnapshot{MaxTemp: 29, MinTemp: 18, WindSpeed: 5, Precipitation: 0, Humidity: 50}

	morning := time.Date(2024, time.June, 12, 7, 0, 0, 0, time.UTC)
	a, ok := findAlert(GenerateAlerts(snap, ActivityCycling, date, morning), "exercise-early")
	require.True(t, ok)
	assert.Equal(t, "before 9am", a.Timing)
	assert.Contains(t, a.Message, "cycling")

	evening := time.Date(2024, time.June, 12, 20, 0, 0, 0, time.UTC)
	a, ok = findAlert(GenerateAlerts(snap, ActivityCycling, date, evening), "exercise-early")
	require.True(t, ok)
	assert.Equal(t, "tomorrow before 9am", a.Timing)
}

func TestDefaultSnapshotAlerts(t *testing.T) {
	// The mild-default tuple only trips the light-showers rule.
	snap := CanonicalSnapshot{
		MaxTemp:       DefaultMaxTemp,
		MinTemp:       DefaultMinTemp,
		WindSpeed:     DefaultWindSpeed,
		Precipitation: DefaultPrecipitation,
		Humidity:      DefaultHumidity,
	}
	date := time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)

	alerts := GenerateAlerts(snap, ActivityOutdoorEvents, date, date)
	require.Len(t, alerts, 1)
	assert.Equal(t, "light-showers", alerts[0].ID)
	assert.Equal(t, PriorityMedium, alerts[0].Priority)
}

func TestAlertPriorityJSON(t *testing.T) {
	b, err := PriorityExtreme.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"EXTREME"`, string(b))
	assert.Equal(t, "LOW", PriorityLow.String())
}
