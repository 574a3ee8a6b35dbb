package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajaweather/sajaweather-go/internal/model"
	"github.com/sajaweather/sajaweather-go/internal/prefs"
)

func place(title string) model.Location {
	return model.Location{
		Title:       title,
		Subtitle:    "Seoul",
		FullAddress: "Seoul " + title,
		Coordinate:  model.Coordinate{Latitude: 37.5, Longitude: 127.0},
	}
}

type stubService struct {
	mu                sync.Mutex
	autocompleteCalls int
	detailCalls       int

	autocomplete func(ctx context.Context, query string) ([]model.Location, error)
	detail       func(ctx context.Context, loc model.Location) (model.Location, error)
}

func (s *stubService) Autocomplete(ctx context.Context, query string) ([]model.Location, error) {
	s.mu.Lock()
	s.autocompleteCalls++
	fn := s.autocomplete
	s.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, query)
}

func (s *stubService) Detail(ctx context.Context, loc model.Location) (model.Location, error) {
	s.mu.Lock()
	s.detailCalls++
	fn := s.detail
	s.mu.Unlock()
	if fn == nil {
		return loc, nil
	}
	return fn(ctx, loc)
}

func (s *stubService) counts() (autocomplete, detail int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autocompleteCalls, s.detailCalls
}

func TestSearch_ViewDidLoad_LoadsHistory(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.AddRecentSearch(context.Background(), place("Hongdae")))

	engine := NewEngine(&stubService{}, store)
	defer engine.Close()

	engine.Send(ViewDidLoad{})
	engine.Drain()

	state := engine.State()
	require.Len(t, state.RecentSearches, 1)
	assert.Equal(t, "Hongdae", state.RecentSearches[0].Title)
	assert.True(t, state.ShowsRecentSearches())
}

func TestSearch_TextChanged_ShowsSuggestions(t *testing.T) {
	service := &stubService{
		autocomplete: func(ctx context.Context, query string) ([]model.Location, error) {
			return []model.Location{place("Sajik-dong")}, nil
		},
	}
	engine := NewEngine(service, prefs.NewMemoryStore())
	defer engine.Close()

	engine.Send(SearchTextChanged{Text: "  sajik "})
	engine.Drain()

	state := engine.State()
	assert.Equal(t, "sajik", state.SearchText)
	require.Len(t, state.SearchResults, 1)
	assert.True(t, state.ShowsSuggestions())
	assert.False(t, state.IsLoading)
}

func TestSearch_TextCleared_NoNetworkCall(t *testing.T) {
	service := &stubService{
		autocomplete: func(ctx context.Context, query string) ([]model.Location, error) {
			return []model.Location{place("Sajik-dong")}, nil
		},
	}
	engine := NewEngine(service, prefs.NewMemoryStore())
	defer engine.Close()

	engine.Send(SearchTextChanged{Text: "sajik"})
	engine.Drain()
	require.NotEmpty(t, engine.State().SearchResults)

	engine.Send(SearchTextChanged{Text: "   "})
	engine.Drain()

	state := engine.State()
	assert.Empty(t, state.SearchText)
	assert.Empty(t, state.SearchResults)
	autocomplete, _ := service.counts()
	assert.Equal(t, 1, autocomplete, "a blank query never hits the provider")
}

func TestSearch_AutocompleteFailure_ReadsAsNoMatches(t *testing.T) {
	service := &stubService{
		autocomplete: func(ctx context.Context, query string) ([]model.Location, error) {
			return nil, errors.New("provider unavailable")
		},
	}
	engine := NewEngine(service, prefs.NewMemoryStore())
	defer engine.Close()

	engine.Send(SearchTextChanged{Text: "sajik"})
	engine.Drain()

	state := engine.State()
	assert.Empty(t, state.SearchResults)
	assert.False(t, state.IsLoading)
	assert.True(t, state.ShowsEmptyState())
}

func TestSearch_TextChanged_LatestQueryWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	service := &stubService{}
	service.autocomplete = func(ctx context.Context, query string) ([]model.Location, error) {
		if query == "se" {
			close(started)
			select {
			case <-release:
			case <-ctx.Done():
			}
			return []model.Location{place("Stale")}, nil
		}
		return []model.Location{place("Seoul")}, nil
	}
	engine := NewEngine(service, prefs.NewMemoryStore())
	defer engine.Close()

	engine.Send(SearchTextChanged{Text: "se"})
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first query never started")
	}
	engine.Send(SearchTextChanged{Text: "seoul"})
	close(release)
	engine.Drain()

	state := engine.State()
	require.Len(t, state.SearchResults, 1)
	assert.Equal(t, "Seoul", state.SearchResults[0].Title)
	assert.Equal(t, "seoul", state.SearchText)
}

func TestSearch_SelectLocation_ResolvesAndRecords(t *testing.T) {
	resolved := place("Sajik-dong")
	resolved.Coordinate = model.Coordinate{Latitude: 37.5759, Longitude: 126.9693}
	service := &stubService{
		detail: func(ctx context.Context, loc model.Location) (model.Location, error) {
			return resolved, nil
		},
	}
	store := prefs.NewMemoryStore()
	engine := NewEngine(service, store)
	defer engine.Close()

	suggestion := place("Sajik-dong")
	suggestion.Coordinate = model.Coordinate{}
	engine.Send(SelectLocation{Location: suggestion})
	engine.Drain()

	state := engine.State()
	require.NotNil(t, state.Selected)
	assert.Equal(t, 37.5759, state.Selected.Coordinate.Latitude)
	assert.True(t, state.ShouldDismiss)

	history, err := store.RecentSearches(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Sajik-dong", history[0].Title)
}

func TestSearch_SelectLocation_DetailFailureKeepsSuggestion(t *testing.T) {
	service := &stubService{
		detail: func(ctx context.Context, loc model.Location) (model.Location, error) {
			return model.Location{}, errors.New("provider unavailable")
		},
	}
	store := prefs.NewMemoryStore()
	engine := NewEngine(service, store)
	defer engine.Close()

	engine.Send(SelectLocation{Location: place("Hongdae")})
	engine.Drain()

	state := engine.State()
	require.NotNil(t, state.Selected)
	assert.Equal(t, "Hongdae", state.Selected.Title)

	history, err := store.RecentSearches(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSearch_SelectRecentSearch(t *testing.T) {
	service := &stubService{}
	engine := NewEngine(service, prefs.NewMemoryStore())
	defer engine.Close()

	engine.Send(SelectRecentSearch{Location: place("Hongdae")})
	engine.Drain()

	state := engine.State()
	require.NotNil(t, state.Selected)
	assert.Equal(t, "Hongdae", state.Selected.Title)
	assert.True(t, state.ShouldDismiss)
	_, detail := service.counts()
	assert.Equal(t, 0, detail, "history entries already carry a coordinate")
}

func TestSearch_Cancel(t *testing.T) {
	engine := NewEngine(&stubService{}, prefs.NewMemoryStore())
	defer engine.Close()

	engine.Send(SearchTextChanged{Text: "sajik"})
	engine.Drain()
	engine.Send(Cancel{})
	engine.Drain()

	state := engine.State()
	assert.Empty(t, state.SearchText)
	assert.Empty(t, state.SearchResults)
	assert.True(t, state.ShouldDismiss)
}
