package store

import (
	"errors"
	"sync"
	"time"

	"github.com/CleverKeyush/climatrail-core/internal/weather"
)

var (
	// ErrNotFound is returned when no records exist for a location.
	ErrNotFound = errors.New("no conditions for location")
)

// recordHistory holds a time-ordered list of condition records for one
// tracked location.
type recordHistory struct {
	Records []weather.ConditionsRecord
}

// MemoryStore is a concurrency-safe in-memory implementation of the
// conditions store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: history
	data map[string]*recordHistory

	// retention configuration
	maxHistory int           // max number of records per location
	maxAge     time.Duration // optional max age for records
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*recordHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// Add appends a new record for its location and enforces retention.
func (s *MemoryStore) Add(record weather.ConditionsRecord) {
	key := record.Location.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &recordHistory{}
		s.data[key] = history
	}

	history.Records = append(history.Records, record)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Records) > s.maxHistory {
		over := len(history.Records) - s.maxHistory
		history.Records = history.Records[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Records); i++ {
			if !history.Records[i].FetchedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.Records) {
			history.Records = history.Records[i:]
		}
	}
}

// Latest returns the most recent record for a location.
func (s *MemoryStore) Latest(location string) (weather.ConditionsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[location]
	if !ok || len(history.Records) == 0 {
		return weather.ConditionsRecord{}, ErrNotFound
	}
	return history.Records[len(history.Records)-1], nil
}

// Range returns all records for a location fetched between from and to
// (inclusive).
func (s *MemoryStore) Range(location string, from, to time.Time) ([]weather.ConditionsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[location]
	if !ok || len(history.Records) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.ConditionsRecord
	for _, rec := range history.Records {
		if !rec.FetchedAt.Before(from) && !rec.FetchedAt.After(to) {
			result = append(result, rec)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
