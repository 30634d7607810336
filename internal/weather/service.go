package weather

import (
	"context"
	"log"
	"time"
)

// Fetcher fetches a fresh snapshot from the upstream provider. A single
// attempt is made per invocation; retrying is not this layer's job.
type Fetcher interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// Cache is the single-slot store the service drives.
type Cache interface {
	Get() (*Snapshot, bool)
	GetAny() (*Snapshot, time.Time, bool)
	Set(*Snapshot)
}

// Service orchestrates the cache, the upstream fetcher and the forecast
// selection for the dashboard.
type Service struct {
	cache   Cache
	fetcher Fetcher
	clock   Clock
	mode    AggregationMode
	zone    *time.Location
}

// NewService creates a new Service. zone is the display time zone used
// for day selection and aggregation.
func NewService(cache Cache, fetcher Fetcher, clock Clock, mode AggregationMode, zone *time.Location) *Service {
	return &Service{
		cache:   cache,
		fetcher: fetcher,
		clock:   clock,
		mode:    mode,
		zone:    zone,
	}
}

// Snapshot returns the cached snapshot while it is fresh, otherwise
// fetches a new one. On a failed fetch the last known snapshot is served
// regardless of age; the error only propagates when no snapshot has ever
// been obtained.
//
// The cache slot is not locked across the fetch: two requests racing
// past the freshness check may both fetch and overwrite the slot.
// Last-write-wins is fine since both fetched the same coordinates.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		return snap, nil
	}

	snap, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if stale, fetchedAt, ok := s.cache.GetAny(); ok {
			age := s.clock.Now().Sub(fetchedAt).Round(time.Second)
			log.Printf("serving stale snapshot (age %s) after fetch error: %v", age, err)
			return stale, nil
		}
		return nil, err
	}

	s.cache.Set(snap)
	return snap, nil
}

// Refresh fetches unconditionally and stores the result. Used by the
// background prefetch job to keep the cache warm.
func (s *Service) Refresh(ctx context.Context) error {
	snap, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	s.cache.Set(snap)
	return nil
}

// Dashboard is the selected and aggregated view the presentation layer
// renders.
type Dashboard struct {
	Current CurrentReading
	Daily   DailyReading
	High    float64
	Low     float64

	// GeneratedAt is the request time in the display time zone.
	GeneratedAt time.Time
}

// Dashboard resolves the snapshot, picks the target day and computes the
// displayed high/low. When hourly aggregation yields no samples in the
// daytime window (or hourly data was excluded from the fetch), the
// provider's daily envelope is used instead.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().In(s.zone)
	day := SelectTargetDay(now)

	if len(snap.Daily) == 0 {
		return nil, ErrNoDailyData
	}
	if day >= len(snap.Daily) {
		// Provider returned fewer daily entries than expected.
		day = len(snap.Daily) - 1
	}
	daily := snap.Daily[day]

	high, low := daily.Temp.Max, daily.Temp.Min
	if s.mode == ModeHourly {
		if peak, min, ok := AggregatePeakMin(snap.Hourly, day, now); ok {
			high, low = peak, min
		}
	}

	return &Dashboard{
		Current:     snap.Current,
		Daily:       daily,
		High:        high,
		Low:         low,
		GeneratedAt: now,
	}, nil
}
