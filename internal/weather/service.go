package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/CleverKeyush/climatrail-core/internal/common"
)

// ErrInvalidRequest marks caller-input failures, the only error Analyze can
// return. Everything past input validation degrades instead of failing.
var ErrInvalidRequest = errors.New("invalid analysis request")

// Service orchestrates the provider fan-out, reconciliation, and
// classification for analysis requests, and refreshes tracked locations
// into the store.
type Service struct {
	adapters []Adapter
	store    Store
	resolver LocationResolver
}

// NewService creates a Service. adapters must be ordered by descending
// source priority; that order is what the reconciler's cascade follows.
// store and resolver may be nil when monitoring or geocoding is not wired.
func NewService(adapters []Adapter, store Store, resolver LocationResolver) *Service {
	return &Service{
		adapters: adapters,
		store:    store,
		resolver: resolver,
	}
}

// Analyze runs the full pipeline for one (point, date, activity) request:
// validate input, fetch all providers concurrently, reconcile, classify,
// and derive advisories. After validation it cannot fail; missing data
// degrades to defaults.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	log.Printf("DEBUG: analyze %s on %s for %s",
		common.FormatCoords(req.Point.Lat, req.Point.Lon),
		req.Date.Format("2006-01-02"), req.Activity)

	results, locationName := s.collect(ctx, req.Point, req.Date)

	snap := Reconcile(results)
	hazards := Classify(snap, req.Activity, historicalAverages(results))

	now := time.Now()
	alerts := GenerateAlerts(snap, req.Activity, req.Date, now)
	clothing := RecommendClothing(snap, req.Activity)

	return &AnalysisResult{
		ID:           uuid.NewString(),
		Point:        req.Point,
		LocationName: locationName,
		Date:         req.Date,
		Activity:     req.Activity,
		Snapshot:     snap,
		Hazards:      hazards,
		Alerts:       alerts,
		Clothing:     clothing,
		Summary:      Summarize(hazards, req.Activity),
		GeneratedAt:  now.UTC(),
	}, nil
}

func validateRequest(req AnalysisRequest) error {
	if req.Point.Lat < -90 || req.Point.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidRequest, req.Point.Lat)
	}
	if req.Point.Lon < -180 || req.Point.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidRequest, req.Point.Lon)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if !KnownActivity(req.Activity) {
		return fmt.Errorf("%w: unknown activity %q", ErrInvalidRequest, req.Activity)
	}
	return nil
}

// collect fans out to every adapter plus the location resolver and waits
// for all branches to settle. A failed adapter degrades to an unavailable
// result; nothing here cancels anything else.
func (s *Service) collect(ctx context.Context, pt Point, date time.Time) ([]RawProviderResult, string) {
	results := make([]RawProviderResult, len(s.adapters))
	locationName := common.FormatCoords(pt.Lat, pt.Lon)

	g, gctx := errgroup.WithContext(ctx)

	for i, a := range s.adapters {
		i, a := i, a
		g.Go(func() error {
			r, err := a.Fetch(gctx, pt, date)
			if err != nil {
				log.Printf("provider %s fetch failed for %s: %v",
					a.Name(), common.FormatCoords(pt.Lat, pt.Lon), err)
				results[i] = Unavailable(a.Name())
				return nil // don't fail the group
			}
			results[i] = r
			return nil
		})
	}

	if s.resolver != nil {
		g.Go(func() error {
			locationName = s.resolver.Resolve(gctx, pt)
			return nil
		})
	}

	// Branches always return nil; Wait is just the join point.
	_ = g.Wait()

	return results, locationName
}

// historicalAverages extracts the optional classifier averages from the
// historical provider's result. Synthetic fallback values are never treated
// as averages.
func historicalAverages(results []RawProviderResult) *HistoricalAverages {
	for _, r := range results {
		if r.SourceName != SourceHistorical || !r.Available || r.Synthetic {
			continue
		}
		if r.MaxTemp == nil && r.WindSpeed == nil && r.Precipitation == nil {
			return nil
		}
		return &HistoricalAverages{
			AvgMaxTemp: r.MaxTemp,
			AvgWind:    r.WindSpeed,
			AvgPrecip:  r.Precipitation,
		}
	}
	return nil
}

// RefreshTracked fetches and reconciles today's conditions for a tracked
// location and appends the record to the store. When every source comes
// back empty the last stored record is kept instead of being buried under
// defaults.
func (s *Service) RefreshTracked(ctx context.Context, loc TrackedLocation) error {
	if s.store == nil {
		return fmt.Errorf("no store configured")
	}

	now := time.Now().UTC()
	results, _ := s.collect(ctx, loc.Point(), now)

	anyAvailable := false
	for _, r := range results {
		if r.Available {
			anyAvailable = true
			break
		}
	}
	if !anyAvailable {
		log.Printf("no successful provider results for %s; keeping last record if any", loc.Key())
		return nil
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	s.store.Add(ConditionsRecord{
		Location:  loc,
		Date:      day,
		Snapshot:  Reconcile(results),
		FetchedAt: now,
	})
	return nil
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(location string) (ConditionsRecord, error) {
	if s.store == nil {
		return ConditionsRecord{}, fmt.Errorf("no store configured")
	}
	return s.store.Latest(location)
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(location string, from, to time.Time) ([]ConditionsRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no store configured")
	}
	return s.store.Range(location, from, to)
}
