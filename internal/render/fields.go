package render

// Field names the template placeholders the dashboard knows about. The
// set is closed: context construction only ever produces these keys.
type Field string

const (
	FieldLocation           Field = "location"
	FieldCurrentDate        Field = "currentDate"
	FieldCurrentTime        Field = "currentTime"
	FieldCurrentTemp        Field = "currentTemp"
	FieldCurrentFeelsLike   Field = "currentFeelsLike"
	FieldCurrentHumidity    Field = "currentHumidity"
	FieldCurrentWindSpeed   Field = "currentWindSpeed"
	FieldCurrentWeatherIcon Field = "currentWeatherIcon"
	FieldCurrentWeatherDesc Field = "currentWeatherDesc"
	FieldDailyHigh          Field = "dailyHigh"
	FieldDailyLow           Field = "dailyLow"
	FieldDailyWeatherIcon   Field = "dailyWeatherIcon"
	FieldDailyWeatherDesc   Field = "dailyWeatherDesc"
	FieldDailyHumidity      Field = "dailyHumidity"
	FieldDailyWindSpeed     Field = "dailyWindSpeed"
	FieldDailyUVIndex       Field = "dailyUvi"
	FieldSunrise            Field = "sunrise"
	FieldSunset             Field = "sunset"
	FieldLastUpdated        Field = "lastUpdated"
)

// knownFields is the authoritative field set used to validate a built
// context before it reaches the renderer.
var knownFields = map[Field]struct{}{
	FieldLocation:           {},
	FieldCurrentDate:        {},
	FieldCurrentTime:        {},
	FieldCurrentTemp:        {},
	FieldCurrentFeelsLike:   {},
	FieldCurrentHumidity:    {},
	FieldCurrentWindSpeed:   {},
	FieldCurrentWeatherIcon: {},
	FieldCurrentWeatherDesc: {},
	FieldDailyHigh:          {},
	FieldDailyLow:           {},
	FieldDailyWeatherIcon:   {},
	FieldDailyWeatherDesc:   {},
	FieldDailyHumidity:      {},
	FieldDailyWindSpeed:     {},
	FieldDailyUVIndex:       {},
	FieldSunrise:            {},
	FieldSunset:             {},
	FieldLastUpdated:        {},
}
