// Package geocode converts raw coordinates into display-friendly places.
// Geocoding is cosmetic: every path returns a usable Location, so a label
// failure can never block weather delivery.
package geocode

import (
	"context"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// FallbackLabel names a place the provider could not describe.
const FallbackLabel = "Current location"

// Geocoder resolves a coordinate to a place. Implementations never fail;
// they degrade to Fallback instead.
type Geocoder interface {
	Resolve(ctx context.Context, coord model.Coordinate) model.Location
}

// Fallback is the generic location carrying the original coordinate.
func Fallback(coord model.Coordinate) model.Location {
	return model.Location{
		Title:       FallbackLabel,
		Subtitle:    FallbackLabel,
		FullAddress: FallbackLabel,
		Coordinate:  coord,
	}
}
