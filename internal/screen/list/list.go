// Package list drives the saved-locations overview: one weather card per
// saved place, a grid/list layout toggle, and the shared temperature unit.
package list

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sajaweather/sajaweather-go/internal/model"
	"github.com/sajaweather/sajaweather-go/internal/prefs"
	"github.com/sajaweather/sajaweather-go/internal/reactor"
)

// LayoutType selects how the cards render.
type LayoutType string

const (
	LayoutGrid LayoutType = "grid"
	LayoutList LayoutType = "list"
)

// Toggle flips between the two layouts.
func (l LayoutType) Toggle() LayoutType {
	if l == LayoutGrid {
		return LayoutList
	}
	return LayoutGrid
}

// ErrNoWeather reports that every saved location failed to load.
var ErrNoWeather = errors.New("no weather available for saved locations")

// seoul is the default card when nothing has been saved yet.
var seoul = prefs.SavedLocation{
	Name:       "Seoul",
	Coordinate: model.Coordinate{Latitude: 37.5665, Longitude: 126.978},
}

// Action is the list screen's action surface.
type Action interface{ isAction() }

// LoadWeather refreshes every card.
type LoadWeather struct{}

// ToggleLayout flips between grid and list.
type ToggleLayout struct{}

// ToggleTempUnit flips the unit, persists the choice once, and reloads.
type ToggleTempUnit struct{}

// ChangeBackgroundStyle overrides the screen background.
type ChangeBackgroundStyle struct {
	Style model.GradientStyle
}

func (LoadWeather) isAction()           {}
func (ToggleLayout) isAction()          {}
func (ToggleTempUnit) isAction()        {}
func (ChangeBackgroundStyle) isAction() {}

// Both refresh paths share one key: a unit toggle's reload supersedes any
// plain refresh still in flight, and vice versa.
func (LoadWeather) SupersedeKey() string    { return "load-weather" }
func (ToggleTempUnit) SupersedeKey() string { return "load-weather" }

// Mutation is the list screen's internal state-change vocabulary.
type Mutation interface{ isMutation() }

type setLayout struct{ layout LayoutType }
type setTempUnit struct{ unit model.TemperatureUnit }
type setItems struct{ items []model.CurrentWeather }
type setBackground struct{ style model.GradientStyle }
type setLoading struct{ loading bool }
type setError struct{ err error }

func (setLayout) isMutation()     {}
func (setTempUnit) isMutation()   {}
func (setItems) isMutation()      {}
func (setBackground) isMutation() {}
func (setLoading) isMutation()    {}
func (setError) isMutation()      {}

// State is the list screen's immutable snapshot.
type State struct {
	Layout       LayoutType
	TempUnit     model.TemperatureUnit
	WeatherItems []model.CurrentWeather
	Background   model.GradientStyle
	IsLoading    bool
	Err          reactor.Pulse[error]
}

// WeatherRepository is the slice of the weather layer the list screen needs.
type WeatherRepository interface {
	GetCurrentWeather(ctx context.Context, loc model.Location) (model.CurrentWeather, error)
	SetTemperatureUnit(unit model.TemperatureUnit)
}

// Reactor implements the list screen state machine.
type Reactor struct {
	weather WeatherRepository
	store   prefs.Store
	now     func() time.Time
	unit    model.TemperatureUnit
}

// Option configures a Reactor.
type Option func(*Reactor)

// WithClock injects the time source used for day/night backgrounds.
func WithClock(now func() time.Time) Option {
	return func(r *Reactor) { r.now = now }
}

// New builds the reactor, loading the persisted unit so the first render
// already shows the user's choice.
func New(ctx context.Context, weather WeatherRepository, store prefs.Store, opts ...Option) *Reactor {
	unit, err := store.TemperatureUnit(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load temperature unit, defaulting to celsius", "error", err)
		unit = model.Celsius
	}
	weather.SetTemperatureUnit(unit)

	r := &Reactor{weather: weather, store: store, now: time.Now, unit: unit}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewEngine wires the reactor into a running engine.
func NewEngine(ctx context.Context, weather WeatherRepository, store prefs.Store, opts ...Option) *reactor.Engine[Action, Mutation, State] {
	return reactor.NewEngine[Action, Mutation, State](New(ctx, weather, store, opts...))
}

func (r *Reactor) InitialState() State {
	return State{
		Layout:     LayoutGrid,
		TempUnit:   r.unit,
		Background: model.StyleUnknown,
	}
}

func (r *Reactor) Mutate(ctx context.Context, action Action, state State) <-chan Mutation {
	ch := make(chan Mutation, 8)

	switch a := action.(type) {
	case LoadWeather:
		go func() {
			defer close(ch)
			r.load(ctx, ch)
		}()

	case ToggleLayout:
		ch <- setLayout{layout: state.Layout.Toggle()}
		close(ch)

	case ToggleTempUnit:
		// Flip and persist synchronously so a second toggle sees the new unit
		// and writes land in dispatch order. One toggle, one write.
		next := state.TempUnit.Toggle()
		r.weather.SetTemperatureUnit(next)
		if err := r.store.SetTemperatureUnit(ctx, next); err != nil {
			slog.WarnContext(ctx, "failed to persist temperature unit", "unit", next, "error", err)
		}
		ch <- setTempUnit{unit: next}
		go func() {
			defer close(ch)
			r.load(ctx, ch)
		}()

	case ChangeBackgroundStyle:
		ch <- setBackground{style: a.Style}
		close(ch)

	default:
		close(ch)
	}

	return ch
}

// load fetches every saved location concurrently. A failing location is
// dropped from the result rather than sinking the whole list; order follows
// the saved order.
func (r *Reactor) load(ctx context.Context, ch chan<- Mutation) {
	emit(ctx, ch, setLoading{loading: true})
	defer emit(ctx, ch, setLoading{loading: false})

	saved, err := r.store.SavedLocations(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load saved locations", "error", err)
	}
	if len(saved) == 0 {
		saved = []prefs.SavedLocation{seoul}
	}

	results := make([]*model.CurrentWeather, len(saved))
	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range saved {
		g.Go(func() error {
			w, err := r.weather.GetCurrentWeather(gctx, loc.Location())
			if err != nil {
				slog.WarnContext(gctx, "weather fetch failed for saved location",
					"location", loc.Name, "error", err)
				return nil
			}
			results[i] = &w
			return nil
		})
	}
	g.Wait()
	if ctx.Err() != nil {
		return
	}

	items := make([]model.CurrentWeather, 0, len(results))
	for _, w := range results {
		if w != nil {
			items = append(items, *w)
		}
	}
	if len(items) == 0 {
		emit(ctx, ch, setError{err: ErrNoWeather})
		return
	}
	emit(ctx, ch, setItems{items: items})
}

func (r *Reactor) Reduce(state State, m Mutation) State {
	switch m := m.(type) {
	case setLayout:
		state.Layout = m.layout
		state.Background = r.backgroundFor(state)
	case setTempUnit:
		state.TempUnit = m.unit
	case setItems:
		state.WeatherItems = m.items
		state.Background = r.backgroundFor(state)
	case setBackground:
		state.Background = m.style
	case setLoading:
		state.IsLoading = m.loading
	case setError:
		state.Err = reactor.NewPulse(m.err)
		state.IsLoading = false
	}
	return state
}

// backgroundFor derives the screen background: in grid layout the first
// card's gradient, otherwise none.
func (r *Reactor) backgroundFor(state State) model.GradientStyle {
	if state.Layout == LayoutGrid && len(state.WeatherItems) > 0 {
		return state.WeatherItems[0].BackgroundStyle(r.now())
	}
	return model.StyleUnknown
}

func emit(ctx context.Context, ch chan<- Mutation, m Mutation) {
	select {
	case ch <- m:
	case <-ctx.Done():
	}
}
