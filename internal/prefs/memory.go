package prefs

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// MemoryStore is an ephemeral Store for tests and runs without a database.
type MemoryStore struct {
	mu     sync.Mutex
	unit   model.TemperatureUnit
	recent []model.Location
	saved  []SavedLocation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{unit: model.Celsius}
}

func (s *MemoryStore) TemperatureUnit(ctx context.Context) (model.TemperatureUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unit.Valid() {
		return model.Celsius, nil
	}
	return s.unit, nil
}

func (s *MemoryStore) SetTemperatureUnit(ctx context.Context, unit model.TemperatureUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unit = unit
	return nil
}

func (s *MemoryStore) RecentSearches(ctx context.Context) ([]model.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Location, len(s.recent))
	copy(out, s.recent)
	return out, nil
}

func (s *MemoryStore) AddRecentSearch(ctx context.Context, loc model.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.Location, 0, len(s.recent)+1)
	kept = append(kept, loc)
	for _, existing := range s.recent {
		if !existing.Equal(loc) {
			kept = append(kept, existing)
		}
	}
	if len(kept) > MaxRecentSearches {
		kept = kept[:MaxRecentSearches]
	}
	s.recent = kept
	return nil
}

func (s *MemoryStore) SavedLocations(ctx context.Context) ([]SavedLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SavedLocation, len(s.saved))
	copy(out, s.saved)
	return out, nil
}

func (s *MemoryStore) AddSavedLocation(ctx context.Context, loc SavedLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.saved {
		if existing.Name == loc.Name {
			return nil
		}
	}
	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	s.saved = append(s.saved, loc)
	return nil
}

func (s *MemoryStore) RemoveSavedLocation(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.saved[:0]
	for _, existing := range s.saved {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.saved = kept
	return nil
}
