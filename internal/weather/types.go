package weather

// Raw provider responses for the four feeds. Field names follow the wire
// format; aggregation into the domain snapshot happens in Aggregate.

// Condition describes one weather condition entry.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Readings carries the main thermal readings of an entry.
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// Wind carries the wind readings of the current conditions.
type Wind struct {
	Speed float64 `json:"speed"`
}

// SunCycle carries sunrise/sunset as unix timestamps.
type SunCycle struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

// CurrentResponse is the raw current conditions feed.
type CurrentResponse struct {
	Weather  []Condition `json:"weather"`
	Main     Readings    `json:"main"`
	Wind     Wind        `json:"wind"`
	Sys      SunCycle    `json:"sys"`
	Timezone int         `json:"timezone"`
	Name     string      `json:"name"`
}

// HourlyItem is one entry of the hourly forecast feed.
type HourlyItem struct {
	Dt      int64       `json:"dt"`
	Main    Readings    `json:"main"`
	Weather []Condition `json:"weather"`
}

// HourlyResponse is the raw hourly forecast feed.
type HourlyResponse struct {
	List []HourlyItem `json:"list"`
}

// DailyTemp carries the day's temperature extremes.
type DailyTemp struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DailyItem is one entry of the daily forecast feed.
type DailyItem struct {
	Dt       int64       `json:"dt"`
	Temp     DailyTemp   `json:"temp"`
	Weather  []Condition `json:"weather"`
	Humidity int         `json:"humidity"`
	Sunrise  int64       `json:"sunrise"`
	Sunset   int64       `json:"sunset"`
}

// DailyResponse is the raw daily forecast feed.
type DailyResponse struct {
	List []DailyItem `json:"list"`
}

// AirQualityResponse is the raw air pollution feed.
type AirQualityResponse struct {
	List []AirQualityItem `json:"list"`
}

// AirQualityItem is one sample of the air pollution feed.
type AirQualityItem struct {
	Main AirQualityIndex `json:"main"`
}

// AirQualityIndex carries the 1..5 ordinal index.
type AirQualityIndex struct {
	AQI int `json:"aqi"`
}

// Bundle joins the four raw feeds for one coordinate. It exists only as a
// complete set: a failed feed fails the whole fetch.
type Bundle struct {
	Current CurrentResponse
	Hourly  HourlyResponse
	Daily   DailyResponse
	Air     AirQualityResponse
}
