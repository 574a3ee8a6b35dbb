package location

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// IPSource approximates the device position from its public IP address.
// Network positioning needs no user grant, so authorization is always
// when-in-use and RequestAuthorization resolves immediately.
type IPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPSource creates a source against an ip-api.com style endpoint.
func NewIPSource(baseURL string) *IPSource {
	return &IPSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *IPSource) ServicesEnabled(ctx context.Context) bool { return true }

func (s *IPSource) AuthorizationStatus(ctx context.Context) AuthorizationStatus {
	return AuthorizationWhenInUse
}

func (s *IPSource) RequestAuthorization(ctx context.Context) (AuthorizationStatus, error) {
	return AuthorizationWhenInUse, nil
}

// ipResponse is the raw geolocation API response.
type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// StartUpdates performs one lookup and delivers it as a single fix. The stop
// function cancels an in-flight lookup and is safe to call more than once.
func (s *IPSource) StartUpdates(ctx context.Context) (<-chan model.Coordinate, func(), error) {
	streamCtx, stop := context.WithCancel(ctx)
	fixes := make(chan model.Coordinate, 1)

	go func() {
		defer close(fixes)
		fix, err := s.lookup(streamCtx)
		if err != nil {
			slog.WarnContext(streamCtx, "ip geolocation lookup failed", "error", err)
			return
		}
		select {
		case fixes <- fix:
		case <-streamCtx.Done():
		}
	}()

	return fixes, stop, nil
}

func (s *IPSource) lookup(ctx context.Context) (model.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/json", nil)
	if err != nil {
		return model.Coordinate{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return model.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinate{}, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var body ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Coordinate{}, err
	}
	if body.Status != "success" {
		return model.Coordinate{}, fmt.Errorf("geolocation API failed: %s", body.Message)
	}

	return model.Coordinate{Latitude: body.Lat, Longitude: body.Lon}, nil
}
