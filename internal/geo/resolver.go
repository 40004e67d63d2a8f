package geo

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/maypok86/otter/v2"

	"github.com/CleverKeyush/climatrail-core/internal/common"
	"github.com/CleverKeyush/climatrail-core/internal/weather"
)

// Resolver turns coordinates into display names via reverse geocoding,
// caching results so repeated analyses of the same spot stay off the
// geocoding API. Resolution never fails: with no key, a lookup error, or an
// empty answer the formatted coordinates serve as the name.
type Resolver struct {
	apiKey string
	cache  *otter.Cache[string, string]
}

// NewResolver configures the geocoding backend. apiKey may be empty, in
// which case every lookup falls back to coordinates.
func NewResolver(apiKey string, ttl time.Duration) *Resolver {
	// The geocoder package keeps its key in package state.
	geocoder.ApiKey = apiKey

	cache := otter.Must(&otter.Options[string, string]{
		MaximumSize:      4_096,
		InitialCapacity:  64,
		ExpiryCalculator: otter.ExpiryWriting[string, string](ttl),
	})

	return &Resolver{apiKey: apiKey, cache: cache}
}

// Resolve implements weather.LocationResolver.
func (r *Resolver) Resolve(ctx context.Context, pt weather.Point) string {
	// The coordinate string is both the cache key and the fallback name.
	key := common.FormatCoords(pt.Lat, pt.Lon)

	if name, ok := r.cache.GetIfPresent(key); ok {
		return name
	}
	if r.apiKey == "" || ctx.Err() != nil {
		return key
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  pt.Lat,
		Longitude: pt.Lon,
	})
	if err != nil || len(addresses) == 0 {
		log.Printf("reverse geocode failed for %s: %v", key, err)
		return key
	}

	name := displayName(addresses[0])
	if name == "" {
		return key
	}

	r.cache.Set(key, name)
	return name
}

// displayName prefers the compact "City, Country" form and falls back to
// whatever the geocoder can assemble.
func displayName(addr geocoder.Address) string {
	if addr.City != "" && addr.Country != "" {
		return addr.City + ", " + addr.Country
	}
	if addr.FormattedAddress != "" {
		return addr.FormattedAddress
	}
	return strings.TrimSpace(addr.FormatAddress())
}
