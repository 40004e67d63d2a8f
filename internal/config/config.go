package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/CleverKeyush/climatrail-core/internal/weather"
)

type AppConfig struct {
	// NOAACDOToken authenticates against the NOAA Climate Data Online API.
	// Empty is fine; the adapter then serves its synthetic fallback.
	NOAACDOToken string

	// GeocoderAPIKey enables reverse-geocoded location names. Empty means
	// coordinates are shown instead.
	GeocoderAPIKey string

	// HTTPTimeout is the shared outbound client timeout; individual
	// adapters apply their own tighter per-call deadlines under it.
	HTTPTimeout time.Duration

	// GeocodeCacheTTL controls how long resolved place names are reused.
	GeocodeCacheTTL time.Duration

	// RefreshInterval controls how often tracked locations are refreshed.
	RefreshInterval time.Duration

	// Tracked locations the scheduler keeps current conditions for.
	Locations []weather.TrackedLocation

	// In-memory store retention.
	StoreMaxHistory int           // max number of records per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of records (0 = unlimited)

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.NOAACDOToken = os.Getenv("NOAA_CDO_TOKEN")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "25s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	ttlStr := getenvDefault("GEOCODE_CACHE_TTL", "12h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODE_CACHE_TTL: %w", err)
	}
	cfg.GeocodeCacheTTL = ttl

	// Scheduler interval: default 30 minutes.
	intervalStr := getenvDefault("FETCH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 48) // 24h at 30-minute intervals

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge
	cfg.Port = getenvDefault("PORT", "8080")

	locs, err := parseTrackedLocations(os.Getenv("TRACKED_LOCATIONS"))
	if err != nil {
		return nil, err
	}
	cfg.Locations = locs

	return cfg, nil
}

// parseTrackedLocations reads the comma-separated Name:lat:lon list, e.g.
// "Chamonix:45.92:6.87,Lofoten:68.21:13.61". An empty value disables the
// tracked-location monitor entirely.
func parseTrackedLocations(raw string) ([]weather.TrackedLocation, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var locs []weather.TrackedLocation
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid TRACKED_LOCATIONS entry %q; want Name:lat:lon", entry)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in TRACKED_LOCATIONS entry %q: %w", entry, err)
		}
		lon, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in TRACKED_LOCATIONS entry %q: %w", entry, err)
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("coordinates out of range in TRACKED_LOCATIONS entry %q", entry)
		}
		locs = append(locs, weather.TrackedLocation{Name: parts[0], Lat: lat, Lon: lon})
	}

	return locs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
