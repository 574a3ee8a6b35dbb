package model

import "time"

// HourlyForecast is one entry of the 24-hour forecast, in provider order.
type HourlyForecast struct {
	Time        time.Time `json:"time"`
	Icon        int       `json:"icon"`
	Temperature int       `json:"temperature"`
	Humidity    int       `json:"humidity"`
}

// DailyForecast is one entry of the 10-day forecast, in provider order.
type DailyForecast struct {
	Time     time.Time `json:"time"`
	Humidity int       `json:"humidity"`
	Icon     int       `json:"icon"`
	MaxTemp  int       `json:"maxTemp"`
	MinTemp  int       `json:"minTemp"`
	Sunrise  time.Time `json:"sunrise"`
	Sunset   time.Time `json:"sunset"`
}

// CurrentWeather is the aggregate snapshot for one location. It is built
// atomically from the four provider feeds and replaces any prior snapshot
// wholesale; it is never partially populated.
type CurrentWeather struct {
	Address        Location         `json:"address"`
	Temperature    int              `json:"temperature"`
	MaxTemp        int              `json:"maxTemp"`
	MinTemp        int              `json:"minTemp"`
	FeelsLikeTemp  int              `json:"feelsLikeTemp"`
	Description    string           `json:"description"`
	Icon           int              `json:"icon"`
	HourlyForecast []HourlyForecast `json:"hourlyForecast"`
	DailyForecast  []DailyForecast  `json:"dailyForecast"`
	Humidity       int              `json:"humidity"`
	WindSpeed      int              `json:"windSpeed"`
	AirQuality     AirQuality       `json:"airQuality"`
	Sunrise        time.Time        `json:"sunrise"`
	Sunset         time.Time        `json:"sunset"`
	TimezoneOffset int              `json:"timezoneOffset"` // seconds east of UTC
}

// IsDay reports whether t falls within the current day's sunrise/sunset,
// bounds inclusive.
func (w CurrentWeather) IsDay(t time.Time) bool {
	return !t.Before(w.Sunrise) && !t.After(w.Sunset)
}

// IsDayAt evaluates t against the matching daily forecast entry's sun cycle
// when one covers t's local date, falling back to the current day's bounds.
// Used when iterating hourly entries that spill into the next day.
func (w CurrentWeather) IsDayAt(t time.Time) bool {
	zone := time.FixedZone("local", w.TimezoneOffset)
	y, m, d := t.In(zone).Date()
	for _, day := range w.DailyForecast {
		dy, dm, dd := day.Time.In(zone).Date()
		if dy == y && dm == m && dd == d {
			return !t.Before(day.Sunrise) && !t.After(day.Sunset)
		}
	}
	return w.IsDay(t)
}

// BackgroundStyle returns the gradient theme for the snapshot at time now.
func (w CurrentWeather) BackgroundStyle(now time.Time) GradientStyle {
	return StyleFor(w.Icon, w.IsDay(now))
}
