package weather

// AggregationMode selects how the displayed daily high/low is computed.
// In ModeHourly the high/low comes from hourly readings inside the
// 08:00-22:00 window when available; in ModeDaily the provider's daily
// envelope is used directly and hourly data is not even requested.
type AggregationMode string

const (
	ModeHourly AggregationMode = "hourly"
	ModeDaily  AggregationMode = "daily"
)

// ConditionDescriptor is a single weather condition entry as returned by
// the One Call API (icon code plus human-readable text).
type ConditionDescriptor struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CurrentReading holds the current conditions at the fetch moment.
type CurrentReading struct {
	Dt        int64                 `json:"dt"`
	Temp      float64               `json:"temp"`
	FeelsLike float64               `json:"feels_like"`
	Humidity  int                   `json:"humidity"`
	WindSpeed float64               `json:"wind_speed"`
	Weather   []ConditionDescriptor `json:"weather"`
}

// Condition returns the first condition descriptor, or a zero value when
// the provider omitted the weather array.
func (r CurrentReading) Condition() ConditionDescriptor {
	if len(r.Weather) == 0 {
		return ConditionDescriptor{}
	}
	return r.Weather[0]
}

// HourlyReading is a single hourly temperature sample.
type HourlyReading struct {
	Dt   int64   `json:"dt"`
	Temp float64 `json:"temp"`
}

// TempRange is the provider's min/max envelope for one day.
type TempRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DailyReading holds one day of forecast data. Index 0 of Snapshot.Daily
// is today, index 1 tomorrow.
type DailyReading struct {
	Dt        int64                 `json:"dt"`
	Sunrise   int64                 `json:"sunrise"`
	Sunset    int64                 `json:"sunset"`
	Temp      TempRange             `json:"temp"`
	Humidity  int                   `json:"humidity"`
	WindSpeed float64               `json:"wind_speed"`
	UVIndex   float64               `json:"uvi"`
	Weather   []ConditionDescriptor `json:"weather"`
}

// Condition returns the first condition descriptor, or a zero value when
// the provider omitted the weather array.
func (r DailyReading) Condition() ConditionDescriptor {
	if len(r.Weather) == 0 {
		return ConditionDescriptor{}
	}
	return r.Weather[0]
}

// Snapshot is one fetched One Call response. Immutable once fetched:
// the cache hands out the same value until it is replaced wholesale.
type Snapshot struct {
	Current CurrentReading  `json:"current"`
	Hourly  []HourlyReading `json:"hourly,omitempty"`
	Daily   []DailyReading  `json:"daily"`
}
