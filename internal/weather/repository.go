package weather

import (
	"context"
	"fmt"
	"sync"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// Provider retrieves the four raw feeds for a coordinate.
type Provider interface {
	FetchAll(ctx context.Context, coord model.Coordinate, unit model.TemperatureUnit) (Bundle, error)
}

// Repository binds the session's temperature unit to fetch + aggregate. The
// unit is mutable session state: the screen layer reads it, the user toggle
// writes it.
type Repository struct {
	provider Provider

	mu   sync.RWMutex
	unit model.TemperatureUnit
}

// NewRepository creates a repository starting in the given unit.
func NewRepository(provider Provider, unit model.TemperatureUnit) *Repository {
	if !unit.Valid() {
		unit = model.Celsius
	}
	return &Repository{provider: provider, unit: unit}
}

// TemperatureUnit returns the active unit.
func (r *Repository) TemperatureUnit() model.TemperatureUnit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unit
}

// SetTemperatureUnit switches the active unit for subsequent fetches.
func (r *Repository) SetTemperatureUnit(unit model.TemperatureUnit) {
	if !unit.Valid() {
		return
	}
	r.mu.Lock()
	r.unit = unit
	r.mu.Unlock()
}

// GetCurrentWeather fetches and aggregates a snapshot for the location in
// the active unit.
func (r *Repository) GetCurrentWeather(ctx context.Context, loc model.Location) (model.CurrentWeather, error) {
	bundle, err := r.provider.FetchAll(ctx, loc.Coordinate, r.TemperatureUnit())
	if err != nil {
		return model.CurrentWeather{}, fmt.Errorf("get current weather: %w", err)
	}
	return Aggregate(loc, bundle), nil
}
