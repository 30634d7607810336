package weather

import "time"

const (
	// After this local hour the dashboard switches to tomorrow's forecast.
	eveningSwitchHour = 20

	// Daytime window (inclusive, local hours) for the displayed high/low.
	windowStartHour = 8
	windowEndHour   = 22
)

// SelectTargetDay returns the daily forecast index to display: 1
// (tomorrow) when the local hour of now is 20 or later, otherwise 0
// (today).
func SelectTargetDay(now time.Time) int {
	if now.Hour() >= eveningSwitchHour {
		return 1
	}
	return 0
}

// AggregatePeakMin computes the peak and minimum temperature over the
// hourly readings that fall on the target calendar day (now plus
// dayOffset days, in now's time zone) and inside the 08:00-22:00 local
// window. The day bound and the hour-of-day bound are applied as two
// separate filters.
//
// ok is false when no reading survives both filters, including when
// hourly is empty; callers then fall back to the provider's daily
// envelope.
func AggregatePeakMin(hourly []HourlyReading, dayOffset int, now time.Time) (peak, min float64, ok bool) {
	loc := now.Location()

	target := now.AddDate(0, 0, dayOffset)
	dayStart := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

	startTS := dayStart.Unix()
	endTS := dayEnd.Unix()

	for _, h := range hourly {
		if h.Dt < startTS || h.Dt > endTS {
			continue
		}
		hour := time.Unix(h.Dt, 0).In(loc).Hour()
		if hour < windowStartHour || hour > windowEndHour {
			continue
		}
		if !ok {
			peak, min = h.Temp, h.Temp
			ok = true
			continue
		}
		if h.Temp > peak {
			peak = h.Temp
		}
		if h.Temp < min {
			min = h.Temp
		}
	}
	return peak, min, ok
}
