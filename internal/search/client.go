package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// ErrNoResults is returned by Detail when the provider finds no match.
var ErrNoResults = errors.New("no search results")

const (
	maxSuggestions = 10
	queryTimeout   = 5 * time.Second
)

// Client implements Service against the provider's direct geocoding
// endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a place search client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: queryTimeout,
		},
	}
}

// placeResponse is one raw direct geocoding result.
type placeResponse struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (p placeResponse) location() model.Location {
	subtitle := p.State
	if subtitle == "" {
		subtitle = p.Country
	}
	full := strings.TrimSpace(subtitle + " " + p.Name)
	return model.Location{
		Title:       p.Name,
		Subtitle:    subtitle,
		FullAddress: full,
		Coordinate:  model.Coordinate{Latitude: p.Lat, Longitude: p.Lon},
	}
}

// Autocomplete suggests up to ten places for the query fragment. The lookup
// is bounded by a 5 s timeout.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]model.Location, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	places, err := c.direct(ctx, trimmed, maxSuggestions)
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", trimmed, err)
	}

	locations := make([]model.Location, 0, len(places))
	for _, p := range places {
		locations = append(locations, p.location())
	}
	return locations, nil
}

// Detail resolves a suggestion to its precise coordinate. Suggestions from
// Autocomplete already carry one; a zero coordinate marks a text-only entry
// and goes through a single-result lookup on the full address.
func (c *Client) Detail(ctx context.Context, loc model.Location) (model.Location, error) {
	if !loc.Coordinate.IsZero() {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	places, err := c.direct(ctx, loc.FullAddress, 1)
	if err != nil {
		return model.Location{}, fmt.Errorf("detail lookup %q: %w", loc.FullAddress, err)
	}
	if len(places) == 0 {
		return model.Location{}, ErrNoResults
	}

	resolved := places[0].location()
	// Keep the text the user selected; only the coordinate comes from the
	// lookup.
	resolved.Title = loc.Title
	resolved.Subtitle = loc.Subtitle
	resolved.FullAddress = loc.FullAddress
	return resolved, nil
}

func (c *Client) direct(ctx context.Context, query string, limit int) ([]placeResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/direct?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var places []placeResponse
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, err
	}
	return places, nil
}
