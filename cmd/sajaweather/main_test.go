package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sajaweather/sajaweather-go/internal/exitcode"
	"github.com/sajaweather/sajaweather-go/internal/location"
	"github.com/sajaweather/sajaweather-go/internal/model"
	"github.com/sajaweather/sajaweather-go/internal/prefs"
	"github.com/sajaweather/sajaweather-go/internal/search"
	"github.com/sajaweather/sajaweather-go/internal/weather"
)

type stubResolver struct {
	fix model.Coordinate
	err error
}

func (s stubResolver) Resolve(ctx context.Context) (model.Coordinate, error) {
	return s.fix, s.err
}

type stubGeocoder struct{}

func (stubGeocoder) Resolve(ctx context.Context, coord model.Coordinate) model.Location {
	return model.Location{Title: "Seoul", Subtitle: "Seoul", FullAddress: "Seoul", Coordinate: coord}
}

type stubWeather struct {
	err error
}

func (s stubWeather) GetCurrentWeather(ctx context.Context, loc model.Location) (model.CurrentWeather, error) {
	if s.err != nil {
		return model.CurrentWeather{}, s.err
	}
	return model.CurrentWeather{Address: loc, Temperature: 21, Icon: 800, Description: "clear sky"}, nil
}

type stubSearcher struct {
	results []model.Location
}

func (s stubSearcher) Autocomplete(ctx context.Context, query string) ([]model.Location, error) {
	return s.results, nil
}

func (s stubSearcher) Detail(ctx context.Context, loc model.Location) (model.Location, error) {
	return loc, nil
}

func TestRun_PrintsSnapshot(t *testing.T) {
	var out bytes.Buffer
	opts := runOptions{
		resolver: stubResolver{fix: model.Coordinate{Latitude: 37.5665, Longitude: 126.978}},
		geocoder: stubGeocoder{},
		weather:  stubWeather{},
		store:    prefs.NewMemoryStore(),
	}

	if err := run(context.Background(), &out, opts); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), `"Seoul"`) {
		t.Errorf("snapshot output missing address: %s", out.String())
	}
}

func TestRun_QueryRecordsHistory(t *testing.T) {
	store := prefs.NewMemoryStore()
	busan := model.Location{Title: "Busan", Subtitle: "Busan", FullAddress: "Busan",
		Coordinate: model.Coordinate{Latitude: 35.1796, Longitude: 129.0756}}
	opts := runOptions{
		query:    "busan",
		resolver: stubResolver{err: location.ErrFetchFailed},
		geocoder: stubGeocoder{},
		searcher: stubSearcher{results: []model.Location{busan}},
		weather:  stubWeather{},
		store:    store,
	}

	var out bytes.Buffer
	if err := run(context.Background(), &out, opts); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	history, err := store.RecentSearches(context.Background())
	if err != nil {
		t.Fatalf("RecentSearches() error = %v", err)
	}
	if len(history) != 1 || history[0].Title != "Busan" {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestRun_QueryWithoutMatches(t *testing.T) {
	opts := runOptions{
		query:    "nowhere",
		resolver: stubResolver{},
		geocoder: stubGeocoder{},
		searcher: stubSearcher{},
		weather:  stubWeather{},
		store:    prefs.NewMemoryStore(),
	}

	err := run(context.Background(), &bytes.Buffer{}, opts)
	if !errors.Is(err, search.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestRun_SurfacesPipelineError(t *testing.T) {
	opts := runOptions{
		resolver: stubResolver{err: location.ErrAuthorizationDenied},
		geocoder: stubGeocoder{},
		weather:  stubWeather{},
		store:    prefs.NewMemoryStore(),
	}

	err := run(context.Background(), &bytes.Buffer{}, opts)
	if !errors.Is(err, location.ErrAuthorizationDenied) {
		t.Fatalf("expected denied error, got %v", err)
	}
}

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"denied", location.ErrAuthorizationDenied, exitcode.LocationError},
		{"timeout", location.ErrTimeout, exitcode.LocationError},
		{"api", &weather.APIError{StatusCode: 429, Path: "/weather"}, exitcode.APIError},
		{"no results", search.ErrNoResults, exitcode.DataError},
		{"other", errors.New("connection reset"), exitcode.NetworkError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCodeFor(tc.err); got != tc.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
