package config

import (
	"fmt"
	"os"
)

// Config holds application configuration.
// Add fields as needed throughout the project.
type Config struct {
	OWMAPIKey  string
	OWMBaseURL string
	OWMGeoURL  string
	GeoIPURL   string
	DBPath     string
	Lang       string
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

// Load reads configuration from environment variables.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	config := Config{}
	config.OWMAPIKey = os.Getenv("OWM_API_KEY")
	if config.OWMAPIKey == "" {
		return nil, &ErrMissingRequiredEnvVar{Name: "OWM_API_KEY"}
	}
	config.OWMBaseURL = getenvDefault("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5")
	config.OWMGeoURL = getenvDefault("OWM_GEO_URL", "https://api.openweathermap.org/geo/1.0")
	config.GeoIPURL = getenvDefault("GEOIP_URL", "http://ip-api.com")
	config.DBPath = getenvDefault("DB_PATH", "sajaweather.db")
	config.Lang = getenvDefault("OWM_LANG", "en")

	return &config, nil
}

func getenvDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
