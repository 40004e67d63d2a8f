package weather

import "fmt"

// ClothingPriority classes a recommendation by how strongly it applies.
// "future" marks items worth packing for conditions that may develop later.
type ClothingPriority string

const (
	ClothingEssential        ClothingPriority = "essential"
	ClothingImportant        ClothingPriority = "important"
	ClothingActivitySpecific ClothingPriority = "activity_specific"
	ClothingHelpful          ClothingPriority = "helpful"
	ClothingFuture           ClothingPriority = "future"
)

// ClothingItem is one gear or clothing recommendation.
type ClothingItem struct {
	Item     string           `json:"item"`
	Reason   string           `json:"reason"`
	Priority ClothingPriority `json:"priority"`
}

// RecommendClothing derives clothing and gear guidance from a reconciled
// snapshot. Rules fire independently per condition band, followed by a base
// layer keyed on temperature, footwear keyed on activity and rain, and
// forward-looking extras.
func RecommendClothing(snap CanonicalSnapshot, activity Activity) []ClothingItem {
	var items []ClothingItem
	add := func(item, reason string, prio ClothingPriority) {
		items = append(items, ClothingItem{Item: item, Reason: reason, Priority: prio})
	}

	switch {
	case snap.Precipitation > 15:
		add("Full waterproof shell and pack cover",
			fmt.Sprintf("Heavy rain, around %.0f mm expected", snap.Precipitation),
			ClothingEssential)
	case snap.Precipitation > 5:
		add("Rain jacket", "Sustained rain through the day", ClothingEssential)
	case snap.Precipitation > 0.5:
		add("Packable rain layer", "Passing showers possible", ClothingImportant)
	}

	switch {
	case snap.MaxTemp > 35:
		add("Wide-brim hat and UV-rated shirt",
			fmt.Sprintf("Extreme heat, highs near %.0f°C", snap.MaxTemp),
			ClothingEssential)
	case snap.MaxTemp > 30:
		add("Sun hat and sunscreen", "Strong sun and hot afternoon", ClothingImportant)
	case snap.MaxTemp > 25:
		add("Light, breathable fabrics", "Warm conditions", ClothingHelpful)
	}

	switch {
	case snap.MinTemp < 0:
		add("Insulated jacket, gloves, and warm hat",
			fmt.Sprintf("Freezing low of %.0f°C", snap.MinTemp),
			ClothingEssential)
	case snap.MinTemp < 5:
		add("Warm jacket and gloves", "Cold mornings and evenings", ClothingImportant)
	case snap.MinTemp < 10:
		add("Warm mid-layer", "Cool start to the day", ClothingHelpful)
	}

	switch {
	case snap.WindSpeed > 35:
		add("Windproof shell", fmt.Sprintf("Strong winds near %.0f km/h", snap.WindSpeed), ClothingImportant)
	case snap.WindSpeed > 20:
		add("Windbreaker", "Breezy in the open", ClothingHelpful)
	}

	switch {
	case snap.MaxTemp > 25:
		add("Moisture-wicking base layer", "Keeps sweat off the skin in the heat", ClothingImportant)
	case snap.MaxTemp >= 10:
		add("Light long-sleeve base layer", "Mild conditions", ClothingImportant)
	default:
		add("Thermal base layer", "Cold conditions", ClothingImportant)
	}

	items = append(items, footwearFor(activity, snap.Precipitation))

	// Saturated air with no rain yet in the data often turns showery.
	if snap.Humidity > 85 && snap.Precipitation <= 0.5 {
		add("Compact umbrella", "Very humid air can turn to rain later", ClothingFuture)
	}

	return items
}

func footwearFor(activity Activity, precipitation float64) ClothingItem {
	wet := precipitation > 0.5

	switch activity {
	case ActivityHiking:
		if wet {
			return ClothingItem{Item: "Waterproof hiking boots", Reason: "Wet, slippery trails", Priority: ClothingActivitySpecific}
		}
		return ClothingItem{Item: "Trail shoes", Reason: "Dry trail conditions", Priority: ClothingActivitySpecific}
	case ActivityCycling:
		if wet {
			return ClothingItem{Item: "Cycling shoes with overshoes", Reason: "Rain spray off the road", Priority: ClothingActivitySpecific}
		}
		return ClothingItem{Item: "Stiff-soled cycling shoes", Reason: "Efficient pedaling", Priority: ClothingActivitySpecific}
	case ActivityFishing:
		return ClothingItem{Item: "Rubber boots or waders", Reason: "Wet banks and shallows", Priority: ClothingActivitySpecific}
	case ActivityCamping:
		return ClothingItem{Item: "Sturdy camp boots", Reason: "Uneven ground around the site", Priority: ClothingActivitySpecific}
	default:
		if wet {
			return ClothingItem{Item: "Waterproof closed shoes", Reason: "Wet ground underfoot", Priority: ClothingActivitySpecific}
		}
		return ClothingItem{Item: "Comfortable closed shoes", Reason: "Long periods on your feet", Priority: ClothingActivitySpecific}
	}
}
