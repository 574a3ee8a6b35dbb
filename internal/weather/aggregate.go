package weather

import (
	"math"
	"time"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// Defaults for malformed optional feed fields.
const (
	defaultIcon        = 800 // clear sky
	defaultDescription = "clear sky"
)

// Aggregate joins the four raw feeds plus the originating location into one
// snapshot. Pure and total: malformed optional fields take documented
// defaults, temperatures round half away from zero, humidity and air quality
// pass through.
func Aggregate(address model.Location, b Bundle) model.CurrentWeather {
	condition := firstCondition(b.Current.Weather)

	hourly := make([]model.HourlyForecast, 0, len(b.Hourly.List))
	for _, item := range b.Hourly.List {
		hourly = append(hourly, model.HourlyForecast{
			Time:        time.Unix(item.Dt, 0).UTC(),
			Icon:        firstCondition(item.Weather).ID,
			Temperature: roundTemp(item.Main.Temp),
			Humidity:    item.Main.Humidity,
		})
	}

	daily := make([]model.DailyForecast, 0, len(b.Daily.List))
	for _, item := range b.Daily.List {
		daily = append(daily, model.DailyForecast{
			Time:     time.Unix(item.Dt, 0).UTC(),
			Humidity: item.Humidity,
			Icon:     firstCondition(item.Weather).ID,
			MaxTemp:  roundTemp(item.Temp.Max),
			MinTemp:  roundTemp(item.Temp.Min),
			Sunrise:  time.Unix(item.Sunrise, 0).UTC(),
			Sunset:   time.Unix(item.Sunset, 0).UTC(),
		})
	}

	aqi := 1
	if len(b.Air.List) > 0 {
		aqi = b.Air.List[0].Main.AQI
	}

	return model.CurrentWeather{
		Address:        address,
		Temperature:    roundTemp(b.Current.Main.Temp),
		MaxTemp:        roundTemp(b.Current.Main.TempMax),
		MinTemp:        roundTemp(b.Current.Main.TempMin),
		FeelsLikeTemp:  roundTemp(b.Current.Main.FeelsLike),
		Description:    condition.Description,
		Icon:           condition.ID,
		HourlyForecast: hourly,
		DailyForecast:  daily,
		Humidity:       b.Current.Main.Humidity,
		WindSpeed:      roundTemp(b.Current.Wind.Speed),
		AirQuality:     model.AirQualityFromIndex(aqi),
		Sunrise:        time.Unix(b.Current.Sys.Sunrise, 0).UTC(),
		Sunset:         time.Unix(b.Current.Sys.Sunset, 0).UTC(),
		TimezoneOffset: b.Current.Timezone,
	}
}

func firstCondition(conditions []Condition) Condition {
	if len(conditions) == 0 {
		return Condition{ID: defaultIcon, Description: defaultDescription}
	}
	return conditions[0]
}

// roundTemp rounds half away from zero, matching the provider's display
// convention.
func roundTemp(v float64) int {
	return int(math.Round(v))
}
