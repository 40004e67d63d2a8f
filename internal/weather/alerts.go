package weather

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// AlertPriority orders situational alerts. Higher values are more urgent.
type AlertPriority int

const (
	PriorityLow AlertPriority = iota
	PriorityMedium
	PriorityHigh
	PriorityExtreme
)

func (p AlertPriority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityExtreme:
		return "EXTREME"
	default:
		return fmt.Sprintf("AlertPriority(%d)", int(p))
	}
}

func (p AlertPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *AlertPriority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "LOW":
		*p = PriorityLow
	case "MEDIUM":
		*p = PriorityMedium
	case "HIGH":
		*p = PriorityHigh
	case "EXTREME":
		*p = PriorityExtreme
	default:
		return fmt.Errorf("unknown alert priority %q", name)
	}
	return nil
}

// Alert is one situational advisory derived from the snapshot. ID is the
// rule identifier, stable across runs.
type Alert struct {
	ID       string        `json:"id"`
	Priority AlertPriority `json:"priority"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Action   string        `json:"action"`
	Timing   string        `json:"timing"`
	Category string        `json:"category"`
}

// GenerateAlerts applies the situational rule table to a reconciled
// snapshot. date is the analyzed calendar date (seasonal rules), now is the
// caller's current time (timing hints). Each rule fires independently; the
// result is sorted by priority, most urgent first, with rule order as the
// tiebreaker.
func GenerateAlerts(snap CanonicalSnapshot, activity Activity, date time.Time, now time.Time) []Alert {
	var alerts []Alert

	switch {
	case snap.Precipitation > 15:
		alerts = append(alerts, Alert{
			ID:       "heavy-rain",
			Priority: PriorityExtreme,
			Title:    "Heavy rain expected",
			Message:  fmt.Sprintf("Around %.0f mm of rain is forecast. Low-lying paths and roads may flood.", snap.Precipitation),
			Action:   "Postpone non-essential travel and keep drains clear",
			Timing:   "all day",
			Category: "rain",
		})
	case snap.Precipitation > 5:
		alerts = append(alerts, Alert{
			ID:       "steady-rain",
			Priority: PriorityHigh,
			Title:    "Sustained rain expected",
			Message:  fmt.Sprintf("Expect about %.0f mm through the day.", snap.Precipitation),
			Action:   "Carry waterproofs and plan covered routes",
			Timing:   "all day",
			Category: "rain",
		})
	case snap.Precipitation > 0.5:
		alerts = append(alerts, Alert{
			ID:       "light-showers",
			Priority: PriorityMedium,
			Title:    "Passing showers possible",
			Message:  "Light rain on and off. Surfaces may stay damp.",
			Action:   "Pack a light rain layer",
			Timing:   "intermittent",
			Category: "rain",
		})
	}

	if snap.Precipitation <= 0.5 && snap.Humidity < 70 {
		alerts = append(alerts, Alert{
			ID:       "laundry-day",
			Priority: PriorityLow,
			Title:    "Good drying conditions",
			Message:  "Dry air and little rain. Washing hung outside will dry well.",
			Action:   "Hang laundry out in the morning",
			Timing:   "morning onwards",
			Category: "laundry",
		})
	}

	switch {
	case snap.MaxTemp > 35:
		alerts = append(alerts, Alert{
			ID:       "extreme-heat",
			Priority: PriorityExtreme,
			Title:    "Extreme heat",
			Message:  fmt.Sprintf("Highs near %.0f°C. Heat illness risk is significant during exertion.", snap.MaxTemp),
			Action:   "Stay out of the midday sun and drink water hourly",
			Timing:   "11am-5pm",
			Category: "heat",
		})
	case snap.MaxTemp > 30:
		alerts = append(alerts, Alert{
			ID:       "high-heat",
			Priority: PriorityHigh,
			Title:    "Hot afternoon ahead",
			Message:  fmt.Sprintf("Highs near %.0f°C.", snap.MaxTemp),
			Action:   "Keep water on hand and seek shade at midday",
			Timing:   "afternoon",
			Category: "heat",
		})
	}

	if snap.MaxTemp > 28 {
		alerts = append(alerts, Alert{
			ID:       "pet-paws",
			Priority: PriorityMedium,
			Title:    "Hot ground for pets",
			Message:  "Pavement in direct sun can burn paws at these temperatures.",
			Action:   "Walk pets early or late and carry water for them",
			Timing:   "midday",
			Category: "pets",
		})
	} else if snap.MinTemp < 0 {
		alerts = append(alerts, Alert{
			ID:       "pet-cold",
			Priority: PriorityMedium,
			Title:    "Cold night for pets",
			Message:  "Sub-zero overnight temperatures are unsafe for animals left outside.",
			Action:   "Bring outdoor pets in overnight",
			Timing:   "overnight",
			Category: "pets",
		})
	}

	switch {
	case snap.WindSpeed > 45:
		alerts = append(alerts, Alert{
			ID:       "damaging-wind",
			Priority: PriorityExtreme,
			Title:    "Damaging winds possible",
			Message:  fmt.Sprintf("Gusts near %.0f km/h can bring down branches and unsecured structures.", snap.WindSpeed),
			Action:   "Secure garden furniture and avoid parking under trees",
			Timing:   "all day",
			Category: "wind",
		})
	case snap.WindSpeed > 30:
		alerts = append(alerts, Alert{
			ID:       "strong-wind",
			Priority: PriorityHigh,
			Title:    "Strong winds",
			Message:  fmt.Sprintf("Sustained winds around %.0f km/h.", snap.WindSpeed),
			Action:   "Secure loose items and take care in exposed areas",
			Timing:   "all day",
			Category: "wind",
		})
	}

	// Still, saturated air reads as fog risk around dawn.
	if snap.Humidity > 92 && snap.WindSpeed < 12 {
		alerts = append(alerts, Alert{
			ID:       "morning-fog",
			Priority: PriorityMedium,
			Title:    "Fog likely around dawn",
			Message:  "Saturated, still air. Visibility may drop sharply on early journeys.",
			Action:   "Allow extra travel time and use low-beam headlights",
			Timing:   "early morning",
			Category: "fog",
		})
	}

	// Dry, breezy days in the growing season move the most pollen.
	if m := date.Month(); m >= time.March && m <= time.June &&
		snap.Precipitation < 1 && snap.WindSpeed > 10 {
		alerts = append(alerts, Alert{
			ID:       "pollen-high",
			Priority: PriorityMedium,
			Title:    "High pollen conditions",
			Message:  "Dry and breezy during pollen season. Allergy symptoms may flare.",
			Action:   "Take antihistamines before heading out if you are sensitive",
			Timing:   "morning and evening peaks",
			Category: "pollen",
		})
	}

	switch {
	case snap.MinTemp <= -5:
		alerts = append(alerts, Alert{
			ID:       "hard-frost",
			Priority: PriorityExtreme,
			Title:    "Hard freeze overnight",
			Message:  fmt.Sprintf("Lows near %.0f°C. Pipes and tender plants are at risk.", snap.MinTemp),
			Action:   "Insulate exposed pipes and move sensitive plants indoors",
			Timing:   "overnight",
			Category: "frost",
		})
	case snap.MinTemp <= 0:
		alerts = append(alerts, Alert{
			ID:       "frost",
			Priority: PriorityHigh,
			Title:    "Frost expected overnight",
			Message:  "Temperatures dip below freezing. Expect icy surfaces early.",
			Action:   "Cover plants and allow time to de-ice in the morning",
			Timing:   "overnight and early morning",
			Category: "frost",
		})
	}

	if snap.MaxTemp > 26 {
		timing := "before 9am"
		if now.Hour() >= 18 {
			timing = "tomorrow before 9am"
		}
		alerts = append(alerts, Alert{
			ID:       "exercise-early",
			Priority: PriorityLow,
			Title:    "Beat the heat",
			Message:  fmt.Sprintf("Best conditions for %s come early, before the day heats up.", activity.Display()),
			Action:   "Schedule exertion for the cool morning hours",
			Timing:   timing,
			Category: "exercise",
		})
	}

	if snap.Precipitation < 1 && snap.MaxTemp > 24 {
		alerts = append(alerts, Alert{
			ID:       "garden-watering",
			Priority: PriorityLow,
			Title:    "Gardens will need water",
			Message:  "A warm, dry day with little rain in the snapshot.",
			Action:   "Water in the evening to limit evaporation",
			Timing:   "evening",
			Category: "garden",
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority > alerts[j].Priority
	})

	return alerts
}
