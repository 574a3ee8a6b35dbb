package location

import (
	"context"
	"time"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// StubSource is a deterministic Source for tests and offline runs. Set
// Status (and Decision for the undetermined path) explicitly; an unset Fix
// defaults to Seoul City Hall.
type StubSource struct {
	// Status is returned by AuthorizationStatus; Decision by
	// RequestAuthorization when Status is undetermined.
	Status   AuthorizationStatus
	Decision AuthorizationStatus

	// Fix is delivered after Delay. When NeverFix is set no fix is ever
	// delivered, which exercises the resolver timeout.
	Fix      model.Coordinate
	Delay    time.Duration
	NeverFix bool

	// Disabled reports location services as switched off.
	Disabled bool

	// StartErr is returned by StartUpdates.
	StartErr error

	// Stopped counts stop calls so tests can assert stream release.
	Stopped int
}

// DefaultStubFix is Seoul City Hall.
var DefaultStubFix = model.Coordinate{Latitude: 37.5665, Longitude: 126.9780}

func (s *StubSource) ServicesEnabled(ctx context.Context) bool { return !s.Disabled }

func (s *StubSource) AuthorizationStatus(ctx context.Context) AuthorizationStatus {
	return s.Status
}

func (s *StubSource) RequestAuthorization(ctx context.Context) (AuthorizationStatus, error) {
	return s.Decision, nil
}

func (s *StubSource) StartUpdates(ctx context.Context) (<-chan model.Coordinate, func(), error) {
	if s.StartErr != nil {
		return nil, func() {}, s.StartErr
	}

	fixes := make(chan model.Coordinate, 1)
	go func() {
		defer close(fixes)
		if s.NeverFix {
			<-ctx.Done()
			return
		}
		if s.Delay > 0 {
			select {
			case <-time.After(s.Delay):
			case <-ctx.Done():
				return
			}
		}
		fix := s.Fix
		if fix.IsZero() {
			fix = DefaultStubFix
		}
		select {
		case fixes <- fix:
		case <-ctx.Done():
		}
	}()

	stop := func() { s.Stopped++ }
	return fixes, stop, nil
}
