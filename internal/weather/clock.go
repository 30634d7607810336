package weather

import "time"

// Clock abstracts wall-clock reads so TTL and day-selection behaviour can
// be tested with fixed instants.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
