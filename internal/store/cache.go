package store

import (
	"sync"
	"time"

	"kindle-weather/internal/weather"
)

// SnapshotCache is a process-wide single-slot cache for the last
// successfully fetched weather snapshot. It only stores and reads the
// slot; the decision to refresh and the stale-if-error fallback live in
// the weather service. The slot is replaced wholesale on every Set, no
// history is kept.
type SnapshotCache struct {
	mu    sync.RWMutex
	clock weather.Clock
	ttl   time.Duration

	snapshot  *weather.Snapshot
	fetchedAt time.Time
}

// NewSnapshotCache creates an empty cache. The clock is owned by the
// cache so freshness can be tested without real waits.
func NewSnapshotCache(ttl time.Duration, clock weather.Clock) *SnapshotCache {
	return &SnapshotCache{
		clock: clock,
		ttl:   ttl,
	}
}

// Get returns the cached snapshot only while it is younger than the TTL.
func (c *SnapshotCache) Get() (*weather.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil || c.clock.Now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// GetAny returns the cached snapshot regardless of age, along with its
// fetch time. Used for the stale-if-error fallback.
func (c *SnapshotCache) GetAny() (*weather.Snapshot, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return nil, time.Time{}, false
	}
	return c.snapshot, c.fetchedAt, true
}

// Set replaces the slot with a freshly fetched snapshot.
func (c *SnapshotCache) Set(snapshot *weather.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	c.fetchedAt = c.clock.Now()
}
