package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"kindle-weather/internal/weather"
)

// Scheduler periodically refreshes the snapshot cache so requests rarely
// pay for an upstream fetch. Disabled when the interval is zero; the
// on-demand refresh in the weather service stays authoritative either
// way.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *weather.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: prefetch disabled; cache refreshes on demand")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.service.Refresh(ctx); err != nil {
			log.Printf("scheduler: cache refresh failed: %v", err)
			return
		}
		log.Println("scheduler: cache refreshed")
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
