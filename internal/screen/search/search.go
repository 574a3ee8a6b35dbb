// Package search drives the place-search screen: live suggestions while
// typing, recent-search history, and handing a picked location back to the
// caller.
package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sajaweather/sajaweather-go/internal/model"
	"github.com/sajaweather/sajaweather-go/internal/prefs"
	"github.com/sajaweather/sajaweather-go/internal/reactor"
	"github.com/sajaweather/sajaweather-go/internal/search"
)

// Action is the search screen's action surface.
type Action interface{ isAction() }

// ViewDidLoad loads the recent-search history.
type ViewDidLoad struct{}

// SearchTextChanged fires on every keystroke; newer queries supersede older
// in-flight ones.
type SearchTextChanged struct {
	Text string
}

// SelectLocation picks a suggestion: its coordinate is resolved and the pick
// is recorded in the history.
type SelectLocation struct {
	Location model.Location
}

// SelectRecentSearch picks a history entry; it already has a coordinate.
type SelectRecentSearch struct {
	Location model.Location
}

// Cancel clears the query and dismisses the screen.
type Cancel struct{}

func (ViewDidLoad) isAction()        {}
func (SearchTextChanged) isAction()  {}
func (SelectLocation) isAction()     {}
func (SelectRecentSearch) isAction() {}
func (Cancel) isAction()             {}

func (SearchTextChanged) SupersedeKey() string { return "search" }

// Mutation is the search screen's internal state-change vocabulary.
type Mutation interface{ isMutation() }

type setSearchText struct{ text string }
type setRecentSearches struct{ locations []model.Location }
type setSearchResults struct{ locations []model.Location }
type setLoading struct{ loading bool }
type setSelected struct{ location model.Location }
type setShouldDismiss struct{}

func (setSearchText) isMutation()     {}
func (setRecentSearches) isMutation() {}
func (setSearchResults) isMutation()  {}
func (setLoading) isMutation()        {}
func (setSelected) isMutation()       {}
func (setShouldDismiss) isMutation()  {}

// State is the search screen's immutable snapshot.
type State struct {
	SearchText     string
	RecentSearches []model.Location
	SearchResults  []model.Location
	IsLoading      bool
	Selected       *model.Location
	ShouldDismiss  bool
}

// ShowsSuggestions reports whether the suggestion list is visible.
func (s State) ShowsSuggestions() bool {
	return s.SearchText != "" && len(s.SearchResults) > 0
}

// ShowsRecentSearches reports whether the history is visible instead.
func (s State) ShowsRecentSearches() bool {
	return s.SearchText == "" && len(s.RecentSearches) > 0
}

// ShowsEmptyState reports whether a finished query matched nothing.
func (s State) ShowsEmptyState() bool {
	return s.SearchText != "" && !s.IsLoading && len(s.SearchResults) == 0
}

// Reactor implements the search screen state machine.
type Reactor struct {
	service search.Service
	store   prefs.Store
}

func New(service search.Service, store prefs.Store) *Reactor {
	return &Reactor{service: service, store: store}
}

// NewEngine wires the reactor into a running engine.
func NewEngine(service search.Service, store prefs.Store) *reactor.Engine[Action, Mutation, State] {
	return reactor.NewEngine[Action, Mutation, State](New(service, store))
}

func (r *Reactor) InitialState() State { return State{} }

func (r *Reactor) Mutate(ctx context.Context, action Action, state State) <-chan Mutation {
	ch := make(chan Mutation, 8)

	switch a := action.(type) {
	case ViewDidLoad:
		go func() {
			defer close(ch)
			recents, err := r.store.RecentSearches(ctx)
			if err != nil {
				slog.WarnContext(ctx, "failed to load recent searches", "error", err)
				return
			}
			emit(ctx, ch, setRecentSearches{locations: recents})
		}()

	case SearchTextChanged:
		query := strings.TrimSpace(a.Text)
		if query == "" {
			// Clearing the field resets results without touching the network.
			ch <- setSearchText{}
			close(ch)
			break
		}
		go func() {
			defer close(ch)
			emit(ctx, ch, setSearchText{text: query})
			emit(ctx, ch, setLoading{loading: true})

			results, err := r.service.Autocomplete(ctx, query)
			if err != nil {
				// A failed lookup reads as "no matches", not as a fault.
				slog.WarnContext(ctx, "autocomplete failed", "query", query, "error", err)
				results = nil
			}
			emit(ctx, ch, setSearchResults{locations: results})
			emit(ctx, ch, setLoading{loading: false})
		}()

	case SelectLocation:
		go func() {
			defer close(ch)
			resolved, err := r.service.Detail(ctx, a.Location)
			if err != nil {
				slog.WarnContext(ctx, "detail lookup failed, using suggestion as-is",
					"location", a.Location.FullAddress, "error", err)
				resolved = a.Location
			}
			if err := r.store.AddRecentSearch(ctx, resolved); err != nil {
				slog.WarnContext(ctx, "failed to record recent search", "error", err)
			}
			emit(ctx, ch, setSelected{location: resolved})
		}()

	case SelectRecentSearch:
		ch <- setSelected{location: a.Location}
		close(ch)

	case Cancel:
		ch <- setSearchText{}
		ch <- setShouldDismiss{}
		close(ch)

	default:
		close(ch)
	}

	return ch
}

func (r *Reactor) Reduce(state State, m Mutation) State {
	switch m := m.(type) {
	case setSearchText:
		state.SearchText = m.text
		if m.text == "" {
			state.SearchResults = nil
			state.IsLoading = false
		}
	case setRecentSearches:
		state.RecentSearches = m.locations
	case setSearchResults:
		state.SearchResults = m.locations
	case setLoading:
		state.IsLoading = m.loading
	case setSelected:
		loc := m.location
		state.Selected = &loc
		state.ShouldDismiss = true
	case setShouldDismiss:
		state.ShouldDismiss = true
	}
	return state
}

func emit(ctx context.Context, ch chan<- Mutation, m Mutation) {
	select {
	case ch <- m:
	case <-ctx.Done():
	}
}
