package model

// Coordinate is a WGS84 position.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether the coordinate is unset. The zero value doubles as
// the "no coordinate" marker throughout the module; the exact point (0, 0) is
// open ocean and never a real place here.
func (c Coordinate) IsZero() bool {
	return c == Coordinate{}
}

// Location is a display-friendly place: a short title, a broader subtitle
// (district, region) and the full address, plus the coordinate it stands for.
type Location struct {
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	FullAddress string     `json:"fullAddress"`
	Coordinate  Coordinate `json:"coordinate"`
}

// Equal compares the text fields only. Two locations with identical text but
// different coordinates compare equal; persisted search history de-duplicates
// on this, so the coordinate stays out of the comparison.
func (l Location) Equal(other Location) bool {
	return l.Title == other.Title &&
		l.Subtitle == other.Subtitle &&
		l.FullAddress == other.FullAddress
}

// TemperatureUnit selects the provider unit system.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "metric"
	Fahrenheit TemperatureUnit = "imperial"
)

// Symbol returns the display symbol for the unit.
func (u TemperatureUnit) Symbol() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Toggle flips between celsius and fahrenheit.
func (u TemperatureUnit) Toggle() TemperatureUnit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// Valid reports whether u is one of the known unit systems.
func (u TemperatureUnit) Valid() bool {
	return u == Celsius || u == Fahrenheit
}

// AirQuality is the provider's 5-level ordinal air quality index.
type AirQuality int

const (
	AirQualityGood AirQuality = iota + 1
	AirQualityFair
	AirQualityModerate
	AirQualityPoor
	AirQualityVeryPoor
)

// AirQualityFromIndex maps a raw provider index to an AirQuality.
// Out-of-range values fall back to good, matching the provider default.
func AirQualityFromIndex(i int) AirQuality {
	if i < int(AirQualityGood) || i > int(AirQualityVeryPoor) {
		return AirQualityGood
	}
	return AirQuality(i)
}

func (a AirQuality) String() string {
	switch a {
	case AirQualityGood:
		return "good"
	case AirQualityFair:
		return "fair"
	case AirQualityModerate:
		return "moderate"
	case AirQualityPoor:
		return "poor"
	case AirQualityVeryPoor:
		return "very poor"
	default:
		return "unknown"
	}
}
