// Package weather fetches and aggregates the provider's four feeds into one
// immutable snapshot.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

const (
	hourlyCount = 24
	dailyCount  = 10
)

// Client issues the provider requests. The four feeds of one fetch run
// concurrently and join all-or-fail: partial weather is never returned,
// since the snapshot depends on every field.
type Client struct {
	baseURL    string
	apiKey     string
	lang       string
	httpClient *http.Client
}

// NewClient creates a provider client.
func NewClient(baseURL, apiKey, lang string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		lang:    lang,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchAll retrieves current conditions, hourly and daily forecasts and air
// quality for the coordinate. Any single failed feed fails the whole fetch.
func (c *Client) FetchAll(ctx context.Context, coord model.Coordinate, unit model.TemperatureUnit) (Bundle, error) {
	var b Bundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.get(ctx, "/weather", c.params(coord, unit, 0), &b.Current)
	})
	g.Go(func() error {
		return c.get(ctx, "/forecast/hourly", c.params(coord, unit, hourlyCount), &b.Hourly)
	})
	g.Go(func() error {
		return c.get(ctx, "/forecast/daily", c.params(coord, unit, dailyCount), &b.Daily)
	})
	g.Go(func() error {
		// The air quality scale is fixed 1..5; the unit system does not apply.
		return c.get(ctx, "/air_pollution", c.params(coord, "", 0), &b.Air)
	})

	if err := g.Wait(); err != nil {
		return Bundle{}, fmt.Errorf("fetch weather: %w", err)
	}

	slog.DebugContext(ctx, "weather feeds fetched",
		"lat", coord.Latitude, "lon", coord.Longitude,
		"hourly", len(b.Hourly.List), "daily", len(b.Daily.List))
	return b, nil
}

func (c *Client) params(coord model.Coordinate, unit model.TemperatureUnit, count int) url.Values {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	query.Set("appid", c.apiKey)
	query.Set("lang", c.lang)
	if unit != "" {
		query.Set("units", string(unit))
	}
	if count > 0 {
		query.Set("cnt", strconv.Itoa(count))
	}
	return query
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
