package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

const settingTemperatureUnit = "temperature_unit"

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS recent_searches (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	subtitle     TEXT NOT NULL,
	full_address TEXT NOT NULL,
	latitude     REAL NOT NULL,
	longitude    REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS saved_locations (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	latitude  REAL NOT NULL,
	longitude REAL NOT NULL
);
`

// SQLiteStore persists preferences in a single-file database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and bootstraps the
// schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap preferences schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an existing database handle. The schema must already
// be in place; used by tests that inject a mock handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) TemperatureUnit(ctx context.Context) (model.TemperatureUnit, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", settingTemperatureUnit).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Celsius, nil
	}
	if err != nil {
		return model.Celsius, fmt.Errorf("load temperature unit: %w", err)
	}

	unit := model.TemperatureUnit(value)
	if !unit.Valid() {
		return model.Celsius, nil
	}
	return unit, nil
}

func (s *SQLiteStore) SetTemperatureUnit(ctx context.Context, unit model.TemperatureUnit) error {
	if !unit.Valid() {
		return fmt.Errorf("invalid temperature unit %q", unit)
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		settingTemperatureUnit, string(unit))
	if err != nil {
		return fmt.Errorf("save temperature unit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RecentSearches(ctx context.Context) ([]model.Location, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT title, subtitle, full_address, latitude, longitude FROM recent_searches ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var loc model.Location
		if err := rows.Scan(&loc.Title, &loc.Subtitle, &loc.FullAddress,
			&loc.Coordinate.Latitude, &loc.Coordinate.Longitude); err != nil {
			return nil, fmt.Errorf("scan recent search: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (s *SQLiteStore) AddRecentSearch(ctx context.Context, loc model.Location) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("add recent search: %w", err)
	}
	defer tx.Rollback()

	// De-duplicate by displayed address, then trim to the cap.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM recent_searches WHERE title = ? AND subtitle = ? AND full_address = ?",
		loc.Title, loc.Subtitle, loc.FullAddress); err != nil {
		return fmt.Errorf("dedupe recent search: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO recent_searches (title, subtitle, full_address, latitude, longitude) VALUES (?, ?, ?, ?, ?)",
		loc.Title, loc.Subtitle, loc.FullAddress,
		loc.Coordinate.Latitude, loc.Coordinate.Longitude); err != nil {
		return fmt.Errorf("insert recent search: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM recent_searches WHERE id NOT IN (SELECT id FROM recent_searches ORDER BY id DESC LIMIT ?)",
		MaxRecentSearches); err != nil {
		return fmt.Errorf("trim recent searches: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) SavedLocations(ctx context.Context) ([]SavedLocation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, latitude, longitude FROM saved_locations ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("load saved locations: %w", err)
	}
	defer rows.Close()

	var locations []SavedLocation
	for rows.Next() {
		var (
			loc SavedLocation
			id  string
		)
		if err := rows.Scan(&id, &loc.Name, &loc.Coordinate.Latitude, &loc.Coordinate.Longitude); err != nil {
			return nil, fmt.Errorf("scan saved location: %w", err)
		}
		if loc.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse saved location id %q: %w", id, err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (s *SQLiteStore) AddSavedLocation(ctx context.Context, loc SavedLocation) error {
	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO saved_locations (id, name, latitude, longitude) SELECT ?, ?, ?, ? WHERE NOT EXISTS (SELECT 1 FROM saved_locations WHERE name = ?)",
		loc.ID.String(), loc.Name, loc.Coordinate.Latitude, loc.Coordinate.Longitude, loc.Name)
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RemoveSavedLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM saved_locations WHERE id = ?", id.String()); err != nil {
		return fmt.Errorf("remove saved location: %w", err)
	}
	return nil
}
