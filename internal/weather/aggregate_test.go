package weather

import (
	"testing"
	"time"
)

func TestSelectTargetDay(t *testing.T) {
	cases := []struct {
		hour int
		want int
	}{
		{0, 0},
		{8, 0},
		{19, 0},
		{20, 1}, // boundary: switches exactly at 20:00
		{23, 1},
	}

	for _, tc := range cases {
		now := time.Date(2024, 6, 1, tc.hour, 30, 0, 0, time.UTC)
		if got := SelectTargetDay(now); got != tc.want {
			t.Errorf("SelectTargetDay(hour=%d) = %d, want %d", tc.hour, got, tc.want)
		}
	}
}

func TestAggregatePeakMin_EmptyHourly(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if _, _, ok := AggregatePeakMin(nil, 0, now); ok {
		t.Fatal("expected ok=false for nil hourly readings")
	}
	if _, _, ok := AggregatePeakMin([]HourlyReading{}, 0, now); ok {
		t.Fatal("expected ok=false for empty hourly readings")
	}
}

func TestAggregatePeakMin_DaytimeWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	day := func(hour int) int64 {
		return time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC).Unix()
	}

	hourly := []HourlyReading{
		{Dt: day(8), Temp: 10},
		{Dt: day(14), Temp: 22},
		{Dt: day(23), Temp: 5}, // outside the 8-22 window
	}

	peak, min, ok := AggregatePeakMin(hourly, 0, now)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if peak != 22 {
		t.Errorf("peak = %v, want 22", peak)
	}
	if min != 10 {
		t.Errorf("min = %v, want 10", min)
	}
}

func TestAggregatePeakMin_TargetDayBounds(t *testing.T) {
	now := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)

	hourly := []HourlyReading{
		// Remaining hours of today fall outside the daytime window.
		{Dt: time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC).Unix(), Temp: 15},
		{Dt: time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC).Unix(), Temp: 14},
		// Tomorrow's daytime samples.
		{Dt: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC).Unix(), Temp: 11},
		{Dt: time.Date(2024, 6, 2, 15, 0, 0, 0, time.UTC).Unix(), Temp: 19},
	}

	peak, min, ok := AggregatePeakMin(hourly, 1, now)
	if !ok {
		t.Fatal("expected ok=true for tomorrow")
	}
	if peak != 19 || min != 11 {
		t.Errorf("got peak=%v min=%v, want 19/11", peak, min)
	}

	// Today's samples at 22:00 are inside the hour window but the 23:00
	// one is not; offset 0 must not see tomorrow's readings.
	peak, min, ok = AggregatePeakMin(hourly, 0, now)
	if !ok {
		t.Fatal("expected ok=true for today")
	}
	if peak != 15 || min != 15 {
		t.Errorf("got peak=%v min=%v, want 15/15", peak, min)
	}
}

func TestAggregatePeakMin_OnlyNighttimeSamples(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	hourly := []HourlyReading{
		{Dt: time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC).Unix(), Temp: 4},
		{Dt: time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC).Unix(), Temp: 6},
	}

	if _, _, ok := AggregatePeakMin(hourly, 0, now); ok {
		t.Fatal("expected ok=false when no sample falls in the daytime window")
	}
}
