package render

import (
	"math"
	"strconv"
	"time"
)

// FormatTemperature rounds to the nearest integer, halves away from
// zero, so 21.6 becomes 22 and -0.4 becomes 0.
func FormatTemperature(temp float64) int {
	return int(math.Round(temp))
}

// FormatWindSpeed rounds to the nearest integer.
func FormatWindSpeed(speed float64) int {
	return int(math.Round(speed))
}

// FormatUVIndex rounds to one decimal place without a trailing zero, so
// 3.47 renders as "3.5" and 3.04 as "3".
func FormatUVIndex(uvi float64) string {
	return strconv.FormatFloat(math.Round(uvi*10)/10, 'f', -1, 64)
}

// FormatTime renders a unix timestamp as 24-hour HH:MM in zone.
func FormatTime(ts int64, zone *time.Location) string {
	return time.Unix(ts, 0).In(zone).Format("15:04")
}

// FormatDate renders a unix timestamp as full weekday, day-of-month and
// full month name, e.g. "Thursday 28 August".
func FormatDate(ts int64, zone *time.Location) string {
	return time.Unix(ts, 0).In(zone).Format("Monday 2 January")
}

// WeatherIcon maps a condition code to a display glyph. E-ink has no
// emoji font, so every code renders as the same placeholder dash.
func WeatherIcon(code string) string {
	return "-"
}
