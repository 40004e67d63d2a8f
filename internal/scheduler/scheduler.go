package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/CleverKeyush/climatrail-core/internal/weather"
)

// Scheduler periodically refreshes current conditions for tracked locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	locations []weather.TrackedLocation
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []weather.TrackedLocation, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no tracked locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running conditions refresh job")

		var wg sync.WaitGroup
		for _, loc := range s.locations {
			loc := loc
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()

				if err := s.service.RefreshTracked(ctx, loc); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", loc.Key(), err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed conditions refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
