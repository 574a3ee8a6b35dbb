// Package detail drives the weather detail screen: resolve a location
// (explicit selection wins over the live fix), fetch a snapshot, surface
// failures as one-shot pulses.
package detail

import (
	"context"

	"github.com/sajaweather/sajaweather-go/internal/geocode"
	"github.com/sajaweather/sajaweather-go/internal/model"
	"github.com/sajaweather/sajaweather-go/internal/reactor"
)

// Action is the detail screen's action surface.
type Action interface{ isAction() }

// RequestLocation acquires the device fix.
type RequestLocation struct{}

// RequestWeather resolves the target location and fetches a snapshot.
type RequestWeather struct{}

// SelectLocation pins an explicitly chosen place; it takes priority over the
// live fix on the next RequestWeather.
type SelectLocation struct {
	Location model.Location
}

func (RequestLocation) isAction() {}
func (RequestWeather) isAction()  {}
func (SelectLocation) isAction()  {}

// A newer request supersedes an older in-flight one; a stale slow result
// must never overwrite newer state.
func (RequestLocation) SupersedeKey() string { return "request-location" }
func (RequestWeather) SupersedeKey() string  { return "request-weather" }

// Mutation is the detail screen's internal state-change vocabulary.
type Mutation interface{ isMutation() }

type setFix struct{ fix model.Coordinate }
type setSelected struct{ location model.Location }
type setWeather struct{ weather model.CurrentWeather }
type setLoading struct{ loading bool }
type setError struct{ err error }
type clearError struct{}

func (setFix) isMutation()      {}
func (setSelected) isMutation() {}
func (setWeather) isMutation()  {}
func (setLoading) isMutation()  {}
func (setError) isMutation()    {}
func (clearError) isMutation()  {}

// State is the detail screen's immutable snapshot.
type State struct {
	Fix            *model.Coordinate
	Selected       *model.Location
	CurrentWeather *model.CurrentWeather
	IsLoading      bool
	Err            reactor.Pulse[error]
}

// LocationResolver acquires the device position.
type LocationResolver interface {
	Resolve(ctx context.Context) (model.Coordinate, error)
}

// WeatherGetter fetches an aggregated snapshot for a location.
type WeatherGetter interface {
	GetCurrentWeather(ctx context.Context, loc model.Location) (model.CurrentWeather, error)
}

// Reactor implements the detail screen state machine.
type Reactor struct {
	locations LocationResolver
	geocoder  geocode.Geocoder
	weather   WeatherGetter
}

func New(locations LocationResolver, geocoder geocode.Geocoder, weather WeatherGetter) *Reactor {
	return &Reactor{locations: locations, geocoder: geocoder, weather: weather}
}

// NewEngine wires the reactor into a running engine.
func NewEngine(locations LocationResolver, geocoder geocode.Geocoder, weather WeatherGetter) *reactor.Engine[Action, Mutation, State] {
	return reactor.NewEngine[Action, Mutation, State](New(locations, geocoder, weather))
}

func (r *Reactor) InitialState() State { return State{} }

func (r *Reactor) Mutate(ctx context.Context, action Action, state State) <-chan Mutation {
	ch := make(chan Mutation, 8)

	switch a := action.(type) {
	case SelectLocation:
		ch <- setSelected{location: a.Location}
		close(ch)

	case RequestLocation:
		go func() {
			defer close(ch)
			fix, err := r.locations.Resolve(ctx)
			if err != nil {
				emit(ctx, ch, setError{err: err})
				return
			}
			emit(ctx, ch, setFix{fix: fix})
		}()

	case RequestWeather:
		go func() {
			defer close(ch)
			emit(ctx, ch, clearError{})
			emit(ctx, ch, setLoading{loading: true})

			loc, err := r.resolveTarget(ctx, state)
			if err == nil {
				var w model.CurrentWeather
				if w, err = r.weather.GetCurrentWeather(ctx, loc); err == nil {
					emit(ctx, ch, setWeather{weather: w})
				}
			}
			if err != nil && ctx.Err() == nil {
				emit(ctx, ch, setError{err: err})
			}
			emit(ctx, ch, setLoading{loading: false})
		}()

	default:
		close(ch)
	}

	return ch
}

// resolveTarget picks the location to fetch for: an explicit selection first,
// then a reverse-geocoded known fix, then a fresh fix.
func (r *Reactor) resolveTarget(ctx context.Context, state State) (model.Location, error) {
	if state.Selected != nil {
		return *state.Selected, nil
	}
	if state.Fix != nil {
		return r.geocoder.Resolve(ctx, *state.Fix), nil
	}
	fix, err := r.locations.Resolve(ctx)
	if err != nil {
		return model.Location{}, err
	}
	return r.geocoder.Resolve(ctx, fix), nil
}

func (r *Reactor) Reduce(state State, m Mutation) State {
	switch m := m.(type) {
	case setFix:
		fix := m.fix
		state.Fix = &fix
	case setSelected:
		loc := m.location
		state.Selected = &loc
	case setWeather:
		w := m.weather
		state.CurrentWeather = &w
	case setLoading:
		state.IsLoading = m.loading
	case setError:
		state.Err = reactor.NewPulse(m.err)
		state.IsLoading = false
	case clearError:
		state.Err = reactor.Pulse[error]{}
	}
	return state
}

func emit(ctx context.Context, ch chan<- Mutation, m Mutation) {
	select {
	case ch <- m:
	case <-ctx.Done():
	}
}
