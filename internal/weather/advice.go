package weather

// adviceKey addresses the advice table. A zero Activity selects the
// category-level entries shared by all activities.
type adviceKey struct {
	Activity Activity
	Category HazardCategory
	Tier     Severity
}

const genericAdvice = "Conditions are manageable. Check the latest forecast before heading out."

// categoryAdvice covers every category and tier; activityAdvice overrides it
// where an activity needs sharper wording. Lookup order is activity entry,
// category entry, generic.
var categoryAdvice = map[adviceKey]string{
	{Category: HazardVeryHot, Tier: SeveritySafe}:     "Heat is not a concern for this day.",
	{Category: HazardVeryHot, Tier: SeverityModerate}: "Warm conditions. Carry water and use sunscreen.",
	{Category: HazardVeryHot, Tier: SeverityHigh}:     "Pack extra water and sunscreen. Plan shade breaks.",
	{Category: HazardVeryHot, Tier: SeverityExtreme}:  "Dangerous heat. Pack extra water and sunscreen, and stay out of the midday sun.",

	{Category: HazardVeryCold, Tier: SeveritySafe}:     "Temperatures stay comfortable for this activity.",
	{Category: HazardVeryCold, Tier: SeverityModerate}: "Chilly spells expected. Bring an extra layer.",
	{Category: HazardVeryCold, Tier: SeverityHigh}:     "Dress warmly and watch for ice.",
	{Category: HazardVeryCold, Tier: SeverityExtreme}:  "Severe cold. Limit exposure and cover all skin.",

	{Category: HazardVeryWindy, Tier: SeveritySafe}:     "Winds stay light.",
	{Category: HazardVeryWindy, Tier: SeverityModerate}: "Breezy. Expect gusts in open terrain.",
	{Category: HazardVeryWindy, Tier: SeverityHigh}:     "Secure loose items and avoid open areas.",
	{Category: HazardVeryWindy, Tier: SeverityExtreme}:  "Damaging gusts possible. Stay away from exposed ridges and tall trees.",

	{Category: HazardVeryWet, Tier: SeveritySafe}:     "Little to no rain expected.",
	{Category: HazardVeryWet, Tier: SeverityModerate}: "Showers likely. Pack a rain layer.",
	{Category: HazardVeryWet, Tier: SeverityHigh}:     "Bring rain gear and waterproof shoes.",
	{Category: HazardVeryWet, Tier: SeverityExtreme}:  "Heavy rain expected. Low areas may flood.",

	{Category: HazardUncomfortable, Tier: SeveritySafe}:     "Comfortable conditions overall.",
	{Category: HazardUncomfortable, Tier: SeverityModerate}: "Muggy at times. Pace yourself.",
	{Category: HazardUncomfortable, Tier: SeverityHigh}:     "Stay hydrated and take breaks.",
	{Category: HazardUncomfortable, Tier: SeverityExtreme}:  "Oppressive heat and humidity. Keep exertion short and rest often.",
}

var activityAdvice = map[adviceKey]string{
	{Activity: ActivityHiking, Category: HazardVeryHot, Tier: SeverityExtreme}:  "Trail heat is dangerous. Start before dawn, double your usual water, and turn back by midday.",
	{Activity: ActivityHiking, Category: HazardVeryWet, Tier: SeverityHigh}:     "Trails will be muddy and slick. Waterproof boots and trekking poles recommended.",
	{Activity: ActivityHiking, Category: HazardVeryWindy, Tier: SeverityHigh}:   "Stay off exposed ridgelines and watch for falling branches.",
	{Activity: ActivityCamping, Category: HazardVeryCold, Tier: SeverityHigh}:   "Overnight cold at this level needs a four-season bag and an insulated pad.",
	{Activity: ActivityCamping, Category: HazardVeryWindy, Tier: SeverityHigh}:  "Pitch in shelter, guy out the tent fully, and skip the campfire.",
	{Activity: ActivityCamping, Category: HazardVeryWet, Tier: SeverityExtreme}: "Campsites may flood. Pick high ground or postpone the trip.",
	{Activity: ActivityFishing, Category: HazardVeryCold, Tier: SeverityModerate}: "Fish go sluggish in this cold. Slow your presentation and dress in layers.",
	{Activity: ActivityFishing, Category: HazardVeryWindy, Tier: SeverityHigh}:    "Casting will be difficult and small craft should stay ashore.",
	{Activity: ActivityCycling, Category: HazardVeryHot, Tier: SeverityHigh}:      "Heat builds fast on the saddle. Ride early and refill bottles at every stop.",
	{Activity: ActivityCycling, Category: HazardVeryWindy, Tier: SeverityExtreme}: "Crosswinds at this strength are dangerous on open roads. Consider an indoor ride.",
	{Activity: ActivityCycling, Category: HazardVeryWet, Tier: SeverityHigh}:      "Braking distances grow and painted lines turn slick. Fit lights and slow down.",
	{Activity: ActivityOutdoorEvents, Category: HazardVeryWet, Tier: SeverityModerate}: "Even light rain disrupts open-air setups. Have a covered backup ready.",
	{Activity: ActivityOutdoorEvents, Category: HazardVeryWindy, Tier: SeverityHigh}:   "Weigh down canopies and staging. Unsecured structures become hazards.",
	{Activity: ActivityOutdoorEvents, Category: HazardVeryHot, Tier: SeverityExtreme}:  "Provide shade and water stations for guests, and shift the schedule off midday.",
}

// adviceFor resolves guidance text for one hazard entry, most specific
// match first.
func adviceFor(activity Activity, category HazardCategory, tier Severity) string {
	if text, ok := activityAdvice[adviceKey{Activity: activity, Category: category, Tier: tier}]; ok {
		return text
	}
	if text, ok := categoryAdvice[adviceKey{Category: category, Tier: tier}]; ok {
		return text
	}
	return genericAdvice
}
