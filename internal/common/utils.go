package common

import "fmt"

// FormatCoords renders a coordinate pair the way it is shown when no place
// name is available, e.g. "48.85, 2.35". Callers rely on this exact shape
// as both display fallback and cache key, so keep the precision stable.
func FormatCoords(lat, lon float64) string {
	return fmt.Sprintf("%.2f, %.2f", lat, lon)
}
