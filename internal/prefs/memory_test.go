package prefs

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

func testLocation(title string) model.Location {
	return model.Location{
		Title:       title,
		Subtitle:    "Seoul",
		FullAddress: "Seoul " + title,
		Coordinate:  model.Coordinate{Latitude: 37.5, Longitude: 127.0},
	}
}

func TestMemoryStore_TemperatureUnitDefaultsToCelsius(t *testing.T) {
	s := NewMemoryStore()

	unit, err := s.TemperatureUnit(context.Background())
	if err != nil {
		t.Fatalf("TemperatureUnit() error = %v", err)
	}
	if unit != model.Celsius {
		t.Errorf("TemperatureUnit() = %v, want celsius", unit)
	}

	if err := s.SetTemperatureUnit(context.Background(), model.Fahrenheit); err != nil {
		t.Fatalf("SetTemperatureUnit() error = %v", err)
	}
	unit, _ = s.TemperatureUnit(context.Background())
	if unit != model.Fahrenheit {
		t.Errorf("TemperatureUnit() = %v, want fahrenheit", unit)
	}
}

func TestMemoryStore_RecentSearches_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.AddRecentSearch(ctx, testLocation("first"))
	s.AddRecentSearch(ctx, testLocation("second"))

	got, err := s.RecentSearches(ctx)
	if err != nil {
		t.Fatalf("RecentSearches() error = %v", err)
	}
	if len(got) != 2 || got[0].Title != "second" || got[1].Title != "first" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestMemoryStore_RecentSearches_DedupeByDisplayedAddress(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.AddRecentSearch(ctx, testLocation("Sajik-dong"))
	s.AddRecentSearch(ctx, testLocation("Hongdae"))

	// Same text, different coordinate: still a duplicate.
	dup := testLocation("Sajik-dong")
	dup.Coordinate = model.Coordinate{Latitude: 35.1, Longitude: 129.0}
	s.AddRecentSearch(ctx, dup)

	got, _ := s.RecentSearches(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", len(got))
	}
	if got[0].Title != "Sajik-dong" {
		t.Errorf("re-added entry must move to the front, got %+v", got)
	}
}

func TestMemoryStore_RecentSearches_Cap(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < MaxRecentSearches+5; i++ {
		s.AddRecentSearch(ctx, testLocation(fmt.Sprintf("place-%d", i)))
	}

	got, _ := s.RecentSearches(ctx)
	if len(got) != MaxRecentSearches {
		t.Fatalf("expected history capped at %d, got %d", MaxRecentSearches, len(got))
	}
	if got[0].Title != fmt.Sprintf("place-%d", MaxRecentSearches+4) {
		t.Errorf("newest entry must survive the trim, got %q", got[0].Title)
	}
}

func TestMemoryStore_SavedLocations(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.AddSavedLocation(ctx, SavedLocation{Name: "Seoul"}); err != nil {
		t.Fatalf("AddSavedLocation() error = %v", err)
	}
	s.AddSavedLocation(ctx, SavedLocation{Name: "Busan"})
	// Duplicate names are skipped.
	s.AddSavedLocation(ctx, SavedLocation{Name: "Seoul"})

	got, err := s.SavedLocations(ctx)
	if err != nil {
		t.Fatalf("SavedLocations() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 saved locations, got %d", len(got))
	}
	for _, loc := range got {
		if loc.ID == uuid.Nil {
			t.Errorf("saved location %q must get an ID", loc.Name)
		}
	}

	if err := s.RemoveSavedLocation(ctx, got[0].ID); err != nil {
		t.Fatalf("RemoveSavedLocation() error = %v", err)
	}
	got, _ = s.SavedLocations(ctx)
	if len(got) != 1 || got[0].Name != "Busan" {
		t.Errorf("unexpected remainder: %+v", got)
	}
}
