package model

import "testing"

func TestTemperatureUnit_Symbol(t *testing.T) {
	tests := []struct {
		name string
		unit TemperatureUnit
		want string
	}{
		{name: "celsius", unit: Celsius, want: "C"},
		{name: "fahrenheit", unit: Fahrenheit, want: "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Symbol(); got != tt.want {
				t.Errorf("Symbol() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTemperatureUnit_Toggle(t *testing.T) {
	if got := Celsius.Toggle(); got != Fahrenheit {
		t.Errorf("Toggle() = %v, want %v", got, Fahrenheit)
	}
	if got := Fahrenheit.Toggle(); got != Celsius {
		t.Errorf("Toggle() = %v, want %v", got, Celsius)
	}
}

func TestCoordinate_IsZero(t *testing.T) {
	if !(Coordinate{}).IsZero() {
		t.Error("expected the zero coordinate to report unset")
	}
	if (Coordinate{Latitude: 0.0001}).IsZero() {
		t.Error("expected a near-zero coordinate to report set")
	}
	if (Coordinate{Latitude: 37.5665, Longitude: 126.978}).IsZero() {
		t.Error("expected a real coordinate to report set")
	}
}

func TestLocation_Equal_IgnoresCoordinate(t *testing.T) {
	a := Location{
		Title:       "Sajik-dong",
		Subtitle:    "Jongno-gu",
		FullAddress: "Jongno-gu Sajik-dong",
		Coordinate:  Coordinate{Latitude: 37.5760, Longitude: 126.9690},
	}
	b := a
	b.Coordinate = Coordinate{Latitude: 35.1796, Longitude: 129.0756}

	if !a.Equal(b) {
		t.Error("expected locations with identical text to compare equal regardless of coordinate")
	}

	b.Subtitle = "Dongnae-gu"
	if a.Equal(b) {
		t.Error("expected locations with different subtitles to compare unequal")
	}
}

func TestAirQualityFromIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  AirQuality
	}{
		{name: "good", index: 1, want: AirQualityGood},
		{name: "very poor", index: 5, want: AirQualityVeryPoor},
		{name: "below range falls back to good", index: 0, want: AirQualityGood},
		{name: "above range falls back to good", index: 6, want: AirQualityGood},
		{name: "negative falls back to good", index: -3, want: AirQualityGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AirQualityFromIndex(tt.index); got != tt.want {
				t.Errorf("AirQualityFromIndex(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}
