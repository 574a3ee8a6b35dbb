package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// Client reverse-geocodes against the provider's geocoding endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a reverse geocoding client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// placeResponse is one raw reverse geocoding result.
type placeResponse struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Resolve builds a Location from the most specific fields the provider
// returns. Any failure or empty result degrades to the generic fallback
// carrying the input coordinate.
func (c *Client) Resolve(ctx context.Context, coord model.Coordinate) model.Location {
	places, err := c.reverse(ctx, coord)
	if err != nil {
		slog.WarnContext(ctx, "reverse geocoding failed, using fallback", "error", err)
		return Fallback(coord)
	}
	if len(places) == 0 {
		return Fallback(coord)
	}

	place := places[0]
	if place.Name == "" {
		return Fallback(coord)
	}

	subtitle := place.State
	if subtitle == "" {
		subtitle = place.Country
	}
	if subtitle == "" {
		subtitle = place.Name
	}

	full := strings.TrimSpace(strings.Join(nonEmpty(place.State, place.Name), " "))
	if full == "" {
		full = FallbackLabel
	}

	return model.Location{
		Title:       place.Name,
		Subtitle:    subtitle,
		FullAddress: full,
		Coordinate:  coord,
	}
}

func (c *Client) reverse(ctx context.Context, coord model.Coordinate) ([]placeResponse, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", coord.Latitude))
	query.Set("lon", fmt.Sprintf("%f", coord.Longitude))
	query.Set("limit", "1")
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var places []placeResponse
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, err
	}
	return places, nil
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
