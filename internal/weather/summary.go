package weather

import "fmt"

// Summarize reduces the five hazard assessments to the one-line outing
// recommendation. Heat, rain, and discomfort outrank wind, which outranks
// cold; anything below the High tier only softens the verdict.
func Summarize(hazards []HazardAssessment, activity Activity) string {
	tiers := make(map[HazardCategory]Severity, len(hazards))
	allSafe := true
	for _, h := range hazards {
		tiers[h.Category] = h.SeverityTier
		if h.SeverityTier != SeveritySafe {
			allSafe = false
		}
	}

	name := activity.Display()

	switch {
	case allSafe:
		return fmt.Sprintf("Great day for %s!", name)
	case tiers[HazardVeryHot] >= SeverityHigh,
		tiers[HazardVeryWet] >= SeverityHigh,
		tiers[HazardUncomfortable] >= SeverityHigh:
		return fmt.Sprintf("This day looks uncomfortable for %s. Best to plan indoors.", name)
	case tiers[HazardVeryWindy] >= SeverityHigh:
		return fmt.Sprintf("Windy conditions. Caution advised for %s.", name)
	case tiers[HazardVeryCold] >= SeverityHigh:
		return fmt.Sprintf("Dress warmly for %s.", name)
	default:
		return "Check conditions before heading out."
	}
}
