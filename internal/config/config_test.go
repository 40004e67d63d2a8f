package config

import (
	"testing"
)

func TestParseTrackedLocations(t *testing.T) {
	locs, err := parseTrackedLocations("Chamonix:45.92:6.87, Lofoten:68.21:13.61")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locs))
	}
	if locs[0].Name != "Chamonix" || locs[0].Lat != 45.92 || locs[0].Lon != 6.87 {
		t.Errorf("unexpected first location: %+v", locs[0])
	}
	if locs[1].Name != "Lofoten" {
		t.Errorf("unexpected second location: %+v", locs[1])
	}
}

func TestParseTrackedLocationsEmpty(t *testing.T) {
	locs, err := parseTrackedLocations("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locs != nil {
		t.Errorf("expected no locations, got %+v", locs)
	}
}

func TestParseTrackedLocationsInvalid(t *testing.T) {
	bad := []string{
		"Chamonix:45.92",          // missing longitude
		":45.92:6.87",             // empty name
		"Chamonix:north:6.87",     // non-numeric latitude
		"Chamonix:95:6.87",        // latitude out of range
		"Chamonix:45.92:-190.0",   // longitude out of range
		"Chamonix:45.92:6.87:8km", // extra field
	}
	for _, raw := range bad {
		if _, err := parseTrackedLocations(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
