package render

import (
	"strconv"
	"time"

	"kindle-weather/internal/weather"
)

// BuildContext turns a dashboard view into the full set of display
// values. Every known field is populated; numbers are already formatted
// as strings here so the renderer only deals in text.
func BuildContext(d *weather.Dashboard, locationName string, zone *time.Location) Context {
	current := d.Current
	daily := d.Daily

	return Context{
		FieldLocation:           locationName,
		FieldCurrentDate:        FormatDate(current.Dt, zone),
		FieldCurrentTime:        FormatTime(current.Dt, zone),
		FieldCurrentTemp:        strconv.Itoa(FormatTemperature(current.Temp)),
		FieldCurrentFeelsLike:   strconv.Itoa(FormatTemperature(current.FeelsLike)),
		FieldCurrentHumidity:    strconv.Itoa(current.Humidity),
		FieldCurrentWindSpeed:   strconv.Itoa(FormatWindSpeed(current.WindSpeed)),
		FieldCurrentWeatherIcon: WeatherIcon(current.Condition().Icon),
		FieldCurrentWeatherDesc: current.Condition().Description,
		FieldDailyHigh:          strconv.Itoa(FormatTemperature(d.High)),
		FieldDailyLow:           strconv.Itoa(FormatTemperature(d.Low)),
		FieldDailyWeatherIcon:   WeatherIcon(daily.Condition().Icon),
		FieldDailyWeatherDesc:   daily.Condition().Description,
		FieldDailyHumidity:      strconv.Itoa(daily.Humidity),
		FieldDailyWindSpeed:     strconv.Itoa(FormatWindSpeed(daily.WindSpeed)),
		FieldDailyUVIndex:       FormatUVIndex(daily.UVIndex),
		FieldSunrise:            FormatTime(daily.Sunrise, zone),
		FieldSunset:             FormatTime(daily.Sunset, zone),
		FieldLastUpdated:        d.GeneratedAt.Format("15:04"),
	}
}
