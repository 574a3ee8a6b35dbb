// Package prefs persists user preferences: the temperature unit, the
// recent-search history and the saved-location list. Screens treat writes as
// best-effort; a failed write never sinks an action.
package prefs

import (
	"context"

	"github.com/google/uuid"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// MaxRecentSearches caps the history, most recent first.
const MaxRecentSearches = 10

// SavedLocation is a user-pinned place shown on the list screen.
type SavedLocation struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Coordinate model.Coordinate `json:"coordinate"`
}

// Location renders the pin as a displayable location.
func (l SavedLocation) Location() model.Location {
	return model.Location{
		Title:       l.Name,
		Subtitle:    l.Name,
		FullAddress: l.Name,
		Coordinate:  l.Coordinate,
	}
}

// Store is the preference persistence boundary. Reads of an unset
// temperature unit return celsius.
type Store interface {
	TemperatureUnit(ctx context.Context) (model.TemperatureUnit, error)
	SetTemperatureUnit(ctx context.Context, unit model.TemperatureUnit) error

	// RecentSearches returns the history most recent first. AddRecentSearch
	// de-duplicates by displayed address (Location.Equal) and trims the
	// history to MaxRecentSearches.
	RecentSearches(ctx context.Context) ([]model.Location, error)
	AddRecentSearch(ctx context.Context, loc model.Location) error

	// SavedLocations returns pinned places in insertion order.
	// AddSavedLocation skips names that are already pinned.
	SavedLocations(ctx context.Context) ([]SavedLocation, error)
	AddSavedLocation(ctx context.Context, loc SavedLocation) error
	RemoveSavedLocation(ctx context.Context, id uuid.UUID) error
}
