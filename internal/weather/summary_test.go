package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkHazards(tiers map[HazardCategory]Severity) []HazardAssessment {
	cats := []HazardCategory{
		HazardVeryHot, HazardVeryCold, HazardVeryWindy, HazardVeryWet, HazardUncomfortable,
	}
	hazards := make([]HazardAssessment, 0, len(cats))
	for _, cat := range cats {
		hazards = append(hazards, assessment(cat, tiers[cat], 5, "x"))
	}
	return hazards
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		tiers    map[HazardCategory]Severity
		activity Activity
		want     string
	}{
		{
			name:     "all safe",
			tiers:    map[HazardCategory]Severity{},
			activity: ActivityHiking,
			want:     "Great day for hiking!",
		},
		{
			name:     "extreme heat plans indoors",
			tiers:    map[HazardCategory]Severity{HazardVeryHot: SeverityExtreme},
			activity: ActivityHiking,
			want:     "This day looks uncomfortable for hiking. Best to plan indoors.",
		},
		{
			name:     "high wet plans indoors",
			tiers:    map[HazardCategory]Severity{HazardVeryWet: SeverityHigh},
			activity: ActivityOutdoorEvents,
			want:     "This day looks uncomfortable for outdoor events. Best to plan indoors.",
		},
		{
			name:     "wind outranks cold",
			tiers:    map[HazardCategory]Severity{HazardVeryWindy: SeverityHigh, HazardVeryCold: SeverityHigh},
			activity: ActivityCamping,
			want:     "Windy conditions. Caution advised for camping.",
		},
		{
			name:     "cold alone",
			tiers:    map[HazardCategory]Severity{HazardVeryCold: SeverityExtreme},
			activity: ActivityFishing,
			want:     "Dress warmly for fishing.",
		},
		{
			name:     "moderate only",
			tiers:    map[HazardCategory]Severity{HazardVeryWindy: SeverityModerate},
			activity: ActivityCycling,
			want:     "Check conditions before heading out.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(mkHazards(tt.tiers), tt.activity))
		})
	}
}
