package model

// GradientStyle is a weather-mood theme keyed by condition and day/night.
type GradientStyle string

const (
	StyleClearDay     GradientStyle = "clearDay"
	StyleClearNight   GradientStyle = "clearNight"
	StyleCloudyDay    GradientStyle = "cloudyDay"
	StyleCloudyNight  GradientStyle = "cloudyNight"
	StyleRainyDay     GradientStyle = "rainyDay"
	StyleRainyNight   GradientStyle = "rainyNight"
	StyleSnowyDay     GradientStyle = "snowyDay"
	StyleSnowyNight   GradientStyle = "snowyNight"
	StyleThunderDay   GradientStyle = "thunderDay"
	StyleThunderNight GradientStyle = "thunderNight"
	StyleUnknown      GradientStyle = "unknown"
)

// StyleFor maps a provider condition code to a theme. Total over all ints:
// unrecognized codes map to StyleUnknown.
func StyleFor(icon int, isDay bool) GradientStyle {
	pick := func(day, night GradientStyle) GradientStyle {
		if isDay {
			return day
		}
		return night
	}
	switch {
	case icon >= 200 && icon <= 232:
		return pick(StyleThunderDay, StyleThunderNight)
	case icon >= 300 && icon <= 321, icon >= 500 && icon <= 531:
		return pick(StyleRainyDay, StyleRainyNight)
	case icon >= 600 && icon <= 622:
		return pick(StyleSnowyDay, StyleSnowyNight)
	case icon >= 700 && icon <= 781, icon >= 801 && icon <= 804:
		return pick(StyleCloudyDay, StyleCloudyNight)
	case icon == 800:
		return pick(StyleClearDay, StyleClearNight)
	default:
		return StyleUnknown
	}
}
