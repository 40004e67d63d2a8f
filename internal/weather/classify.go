package weather

import (
	"encoding/json"
	"fmt"
	"math"
)

// Severity is an ordered hazard tier. Higher values are worse.
type Severity int

const (
	SeveritySafe Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityExtreme
)

func (s Severity) String() string {
	switch s {
	case SeveritySafe:
		return "Safe"
	case SeverityModerate:
		return "Moderate"
	case SeverityHigh:
		return "High"
	case SeverityExtreme:
		return "Extreme"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// DisplayColor maps a tier to the color the client renders it with. The
// mapping is part of the API contract.
func (s Severity) DisplayColor() string {
	switch s {
	case SeverityModerate:
		return "yellow"
	case SeverityHigh:
		return "orange"
	case SeverityExtreme:
		return "red"
	default:
		return "green"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "Safe":
		*s = SeveritySafe
	case "Moderate":
		*s = SeverityModerate
	case "High":
		*s = SeverityHigh
	case "Extreme":
		*s = SeverityExtreme
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// HazardCategory identifies one of the five fixed risk dimensions.
type HazardCategory string

const (
	HazardVeryHot       HazardCategory = "very_hot"
	HazardVeryCold      HazardCategory = "very_cold"
	HazardVeryWindy     HazardCategory = "very_windy"
	HazardVeryWet       HazardCategory = "very_wet"
	HazardUncomfortable HazardCategory = "uncomfortable"
)

// HazardAssessment is one classified risk entry. Every analysis carries
// exactly five, one per category, including the safe ones.
type HazardAssessment struct {
	Category     HazardCategory `json:"category"`
	SeverityTier Severity       `json:"severityTier"`
	Likelihood   int            `json:"likelihoodPercent"`
	Advice       string         `json:"adviceText"`
	DisplayColor string         `json:"displayColor"`
}

// activityProfile holds the per-activity hazard thresholds. maxTemp above
// Hot, minTemp below Cold, windSpeed above Wind, and precipitation above Wet
// leave the safe tier.
type activityProfile struct {
	Hot  float64
	Cold float64
	Wind float64
	Wet  float64
}

var defaultProfile = activityProfile{Hot: 30, Cold: 0, Wind: 25, Wet: 10}

// Loaded once, static thereafter. Unlisted fields fall back to the default
// profile values.
var activityProfiles = map[Activity]activityProfile{
	ActivityHiking:        {Hot: 30, Cold: 0, Wind: 25, Wet: 15},
	ActivityCamping:       {Hot: 30, Cold: 5, Wind: 25, Wet: 10},
	ActivityFishing:       {Hot: 30, Cold: 10, Wind: 20, Wet: 10},
	ActivityCycling:       {Hot: 28, Cold: 0, Wind: 20, Wet: 10},
	ActivityOutdoorEvents: {Hot: 30, Cold: 0, Wind: 25, Wet: 5},
}

func profileFor(activity Activity) activityProfile {
	if p, ok := activityProfiles[activity]; ok {
		return p
	}
	return defaultProfile
}

// HeatIndex is the derived comfort metric combining temperature and
// humidity.
func HeatIndex(maxTemp, humidity float64) float64 {
	return maxTemp + 0.5*(humidity-50)
}

// likelihood rounds and clamps a raw percentage into the reported [5, 95]
// band. The clamp keeps the UI from ever showing certainty in either
// direction.
func likelihood(raw float64) int {
	n := int(math.Round(raw))
	if n < 5 {
		return 5
	}
	if n > 95 {
		return 95
	}
	return n
}

// Classify derives the five hazard assessments for a reconciled snapshot.
// It is a pure function: same snapshot, activity, and averages always
// produce the same five entries, in category order very_hot, very_cold,
// very_windy, very_wet, uncomfortable.
//
// averages may be nil; when present it only augments the very_hot advice
// text, never the tier or likelihood.
func Classify(snap CanonicalSnapshot, activity Activity, averages *HistoricalAverages) []HazardAssessment {
	p := profileFor(activity)

	return []HazardAssessment{
		classifyHot(snap, activity, p, averages),
		classifyCold(snap, activity, p),
		classifyWindy(snap, activity, p),
		classifyWet(snap, activity, p),
		classifyDiscomfort(snap, activity),
	}
}

func classifyHot(snap CanonicalSnapshot, activity Activity, p activityProfile, averages *HistoricalAverages) HazardAssessment {
	tier := SeveritySafe
	switch {
	case snap.MaxTemp > 35:
		tier = SeverityExtreme
	case snap.MaxTemp > 32:
		tier = SeverityHigh
	case snap.MaxTemp > p.Hot:
		tier = SeverityModerate
	}

	advice := fmt.Sprintf("Expected high of %.1f°C. %s",
		snap.MaxTemp, adviceFor(activity, HazardVeryHot, tier))
	if averages != nil && averages.AvgMaxTemp != nil {
		advice += " " + temperatureComparison(snap.MaxTemp, *averages.AvgMaxTemp)
	}

	return assessment(HazardVeryHot, tier, likelihood(snap.MaxTemp/p.Hot*50), advice)
}

// temperatureComparison phrases the forecast high against the historical
// average for the date.
func temperatureComparison(maxTemp, avgMaxTemp float64) string {
	delta := maxTemp - avgMaxTemp
	switch {
	case delta > 5:
		return "This is much hotter than average for the date."
	case delta > 2:
		return "This is hotter than average for the date."
	case delta < -2:
		return "This is cooler than average for the date."
	default:
		return "This is near average for the date."
	}
}

func classifyCold(snap CanonicalSnapshot, activity Activity, p activityProfile) HazardAssessment {
	tier := SeveritySafe
	switch {
	case snap.MinTemp < p.Cold-10:
		tier = SeverityExtreme
	case snap.MinTemp < p.Cold-5:
		tier = SeverityHigh
	case snap.MinTemp < p.Cold:
		tier = SeverityModerate
	}

	return assessment(HazardVeryCold, tier,
		likelihood((p.Cold-snap.MinTemp+10)*5),
		adviceFor(activity, HazardVeryCold, tier))
}

func classifyWindy(snap CanonicalSnapshot, activity Activity, p activityProfile) HazardAssessment {
	tier := SeveritySafe
	switch {
	case snap.WindSpeed > p.Wind+20:
		tier = SeverityExtreme
	case snap.WindSpeed > p.Wind+10:
		tier = SeverityHigh
	case snap.WindSpeed > p.Wind:
		tier = SeverityModerate
	}

	return assessment(HazardVeryWindy, tier,
		likelihood(snap.WindSpeed/p.Wind*50),
		adviceFor(activity, HazardVeryWindy, tier))
}

func classifyWet(snap CanonicalSnapshot, activity Activity, p activityProfile) HazardAssessment {
	tier := SeveritySafe
	switch {
	case snap.Precipitation > p.Wet+15:
		tier = SeverityExtreme
	case snap.Precipitation > p.Wet+5:
		tier = SeverityHigh
	case snap.Precipitation > p.Wet:
		tier = SeverityModerate
	}

	return assessment(HazardVeryWet, tier,
		likelihood(snap.Precipitation/p.Wet*50),
		adviceFor(activity, HazardVeryWet, tier))
}

func classifyDiscomfort(snap CanonicalSnapshot, activity Activity) HazardAssessment {
	tier := SeveritySafe
	switch {
	case snap.Humidity > 80 && snap.MaxTemp > 25:
		tier = SeverityExtreme
	case snap.Humidity > 70 && snap.MaxTemp > 25:
		tier = SeverityHigh
	case snap.Humidity > 60 && snap.MaxTemp > 28:
		tier = SeverityModerate
	}

	return assessment(HazardUncomfortable, tier,
		likelihood(HeatIndex(snap.MaxTemp, snap.Humidity)/32*50),
		adviceFor(activity, HazardUncomfortable, tier))
}

func assessment(cat HazardCategory, tier Severity, pct int, advice string) HazardAssessment {
	return HazardAssessment{
		Category:     cat,
		SeverityTier: tier,
		Likelihood:   pct,
		Advice:       advice,
		DisplayColor: tier.DisplayColor(),
	}
}
