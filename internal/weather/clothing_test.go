package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findItem(items []ClothingItem, name string) (ClothingItem, bool) {
	for _, it := range items {
		if it.Item == name {
			return it, true
		}
	}
	return ClothingItem{}, false
}

func TestClothingRainBands(t *testing.T) {
	snap := CanonicalSnapshot{MaxTemp: 18, MinTemp: 12, WindSpeed: 10, Precipitation: 20, Humidity: 80}
	it, ok := findItem(RecommendClothing(snap, ActivityHiking), "Full waterproof shell and pack cover")
	require.True(t, ok)
	assert.Equal(t, ClothingEssential, it.Priority)

	snap.Precipitation = 6
	it, ok = findItem(RecommendClothing(snap, ActivityHiking), "Rain jacket")
	require.True(t, ok)
	assert.Equal(t, ClothingEssential, it.Priority)

	snap.Precipitation = 1
	it, ok = findItem(RecommendClothing(snap, ActivityHiking), "Packable rain layer")
	require.True(t, ok)
	assert.Equal(t, ClothingImportant, it.Priority)
}

func TestClothingAlwaysIncludesBaseLayerAndFootwear(t *testing.T) {
	snaps := []CanonicalSnapshot{
		{MaxTemp: 35, MinTemp: 22, WindSpeed: 5, Precipitation: 0, Humidity: 40},
		{MaxTemp: 15, MinTemp: 8, WindSpeed: 25, Precipitation: 3, Humidity: 70},
		{MaxTemp: 2, MinTemp: -8, WindSpeed: 40, Precipitation: 12, Humidity: 90},
	}

	for _, snap := range snaps {
		for _, activity := range allActivities {
			items := RecommendClothing(snap, activity)

			base := 0
			footwear := 0
			for _, it := range items {
				switch it.Item {
				case "Moisture-wicking base layer", "Light long-sleeve base layer", "Thermal base layer":
					base++
				}
				if it.Priority == ClothingActivitySpecific {
					footwear++
				}
			}
			assert.Equal(t, 1, base, "%s %+v", activity, snap)
			assert.Equal(t, 1, footwear, "%s %+v", activity, snap)
		}
	}
}

func TestFootwearByActivityAndRain(t *testing.T) {
	dry := CanonicalSnapshot{MaxTemp: 20, MinTemp: 12, WindSpeed: 5, Precipitation: 0, Humidity: 50}
	wet := dry
	wet.Precipitation = 4

	_, ok := findItem(RecommendClothing(dry, ActivityHiking), "Trail shoes")
	assert.True(t, ok)
	_, ok = findItem(RecommendClothing(wet, ActivityHiking), "Waterproof hiking boots")
	assert.True(t, ok)

	_, ok = findItem(RecommendClothing(wet, ActivityCycling), "Cycling shoes with overshoes")
	assert.True(t, ok)

	// Fishing footwear does not depend on rain.
	_, ok = findItem(RecommendClothing(dry, ActivityFishing), "Rubber boots or waders")
	assert.True(t, ok)
	_, ok = findItem(RecommendClothing(wet, ActivityFishing), "Rubber boots or waders")
	assert.True(t, ok)
}

func TestClothingColdBands(t *testing.T) {
	snap := CanonicalSnapshot{MaxTemp: 5, MinTemp: -3, WindSpeed: 10, Precipitation: 0, Humidity: 60}
	it, ok := findItem(RecommendClothing(snap, ActivityCamping), "Insulated jacket, gloves, and warm hat")
	require.True(t, ok)
	assert.Equal(t, ClothingEssential, it.Priority)

	snap.MinTemp = 3
	_, ok = findItem(RecommendClothing(snap, ActivityCamping), "Warm jacket and gloves")
	assert.True(t, ok)

	snap.MinTemp = 8
	_, ok = findItem(RecommendClothing(snap, ActivityCamping), "Warm mid-layer")
	assert.True(t, ok)
}

func TestUmbrellaFutureRule(t *testing.T) {
	snap := CanonicalSnapshot{MaxTemp: 24, MinTemp: 16, WindSpeed: 8, Precipitation: 0, Humidity: 90}
	it, ok := findItem(RecommendClothing(snap, ActivityOutdoorEvents), "Compact umbrella")
	require.True(t, ok)
	assert.Equal(t, ClothingFuture, it.Priority)

	// Once rain is already in the snapshot the rain rules own the advice.
	snap.Precipitation = 2
	_, ok = findItem(RecommendClothing(snap, ActivityOutdoorEvents), "Compact umbrella")
	assert.False(t, ok)
}
