package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sajaweather/sajaweather-go/internal/config"
	"github.com/sajaweather/sajaweather-go/internal/exitcode"
	"github.com/sajaweather/sajaweather-go/internal/geocode"
	"github.com/sajaweather/sajaweather-go/internal/location"
	"github.com/sajaweather/sajaweather-go/internal/model"
	"github.com/sajaweather/sajaweather-go/internal/prefs"
	"github.com/sajaweather/sajaweather-go/internal/screen/detail"
	"github.com/sajaweather/sajaweather-go/internal/search"
	"github.com/sajaweather/sajaweather-go/internal/weather"
)

func main() {
	// Configure the global logger
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Parse CLI flags
	query := flag.String("query", "", "Place name to search for; empty uses the device position")
	lat := flag.Float64("lat", 0, "Explicit latitude (with -lon)")
	lon := flag.Float64("lon", 0, "Explicit longitude (with -lat)")
	unitStr := flag.String("unit", "", "Temperature unit override: metric or imperial")
	flag.Parse()

	// Ensure environment variables are loaded
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load env vars", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	// Create a cancellable context (for graceful shutdown)
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := prefs.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open preferences db", "path", cfg.DBPath, "error", err)
		os.Exit(exitcode.ConfigError)
	}
	defer store.Close()

	unit, err := store.TemperatureUnit(ctx)
	if err != nil {
		slog.Warn("failed to load temperature unit, defaulting to celsius", "error", err)
		unit = model.Celsius
	}
	if *unitStr != "" {
		override := model.TemperatureUnit(*unitStr)
		if !override.Valid() {
			slog.Error("invalid unit", "unit", *unitStr)
			fmt.Fprintf(os.Stderr, "Usage: unit must be metric or imperial\n")
			os.Exit(exitcode.ConfigError)
		}
		unit = override
		if err := store.SetTemperatureUnit(ctx, unit); err != nil {
			slog.Warn("failed to persist temperature unit", "error", err)
		}
	}

	var coord *model.Coordinate
	if *lat != 0 || *lon != 0 {
		coord = &model.Coordinate{Latitude: *lat, Longitude: *lon}
	}

	opts := runOptions{
		query:    *query,
		coord:    coord,
		resolver: location.NewResolver(location.NewIPSource(cfg.GeoIPURL)),
		geocoder: geocode.NewClient(cfg.OWMGeoURL, cfg.OWMAPIKey),
		searcher: search.NewClient(cfg.OWMGeoURL, cfg.OWMAPIKey),
		weather:  weather.NewRepository(weather.NewClient(cfg.OWMBaseURL, cfg.OWMAPIKey, cfg.Lang), unit),
		store:    store,
	}

	if err := run(ctx, os.Stdout, opts); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(exitCodeFor(err))
	}
}

type runOptions struct {
	query    string
	coord    *model.Coordinate
	resolver detail.LocationResolver
	geocoder geocode.Geocoder
	searcher search.Service
	weather  detail.WeatherGetter
	store    prefs.Store
}

// run drives the detail state machine once and prints the snapshot as JSON.
func run(ctx context.Context, out io.Writer, opts runOptions) error {
	engine := detail.NewEngine(opts.resolver, opts.geocoder, opts.weather)
	defer engine.Close()

	switch {
	case opts.query != "":
		results, err := opts.searcher.Autocomplete(ctx, opts.query)
		if err != nil {
			return fmt.Errorf("search %q: %w", opts.query, err)
		}
		if len(results) == 0 {
			return fmt.Errorf("search %q: %w", opts.query, search.ErrNoResults)
		}
		selected, err := opts.searcher.Detail(ctx, results[0])
		if err != nil {
			return fmt.Errorf("resolve %q: %w", results[0].FullAddress, err)
		}
		if err := opts.store.AddRecentSearch(ctx, selected); err != nil {
			slog.WarnContext(ctx, "failed to record recent search", "error", err)
		}
		engine.Send(detail.SelectLocation{Location: selected})

	case opts.coord != nil:
		engine.Send(detail.SelectLocation{Location: opts.geocoder.Resolve(ctx, *opts.coord)})
	}

	engine.Send(detail.RequestWeather{})
	engine.Drain()

	state := engine.State()
	if err, armed := state.Err.Take(); armed {
		return err
	}
	if state.CurrentWeather == nil {
		return errors.New("no weather snapshot produced")
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(state.CurrentWeather)
}

func exitCodeFor(err error) int {
	var apiErr *weather.APIError
	switch {
	case errors.Is(err, location.ErrAuthorizationDenied),
		errors.Is(err, location.ErrAuthorizationRestricted),
		errors.Is(err, location.ErrServicesDisabled),
		errors.Is(err, location.ErrTimeout),
		errors.Is(err, location.ErrFetchFailed),
		errors.Is(err, location.ErrUnknown):
		return exitcode.LocationError
	case errors.As(err, &apiErr):
		return exitcode.APIError
	case errors.Is(err, search.ErrNoResults):
		return exitcode.DataError
	default:
		return exitcode.NetworkError
	}
}
