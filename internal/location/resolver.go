// Package location resolves the device position under permission constraints.
// The platform service sits behind the Source interface; the resolver turns
// its permission/fix callbacks into one bounded asynchronous operation.
package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// AuthorizationStatus mirrors the platform permission states.
type AuthorizationStatus int

const (
	AuthorizationUndetermined AuthorizationStatus = iota
	AuthorizationDenied
	AuthorizationRestricted
	AuthorizationWhenInUse
	AuthorizationAlways
)

// Source abstracts the platform location service. One production
// implementation (IPSource) and one deterministic stub (StubSource) exist;
// the resolver takes whichever it is given.
type Source interface {
	// ServicesEnabled reports whether positioning is available at all.
	ServicesEnabled(ctx context.Context) bool

	// AuthorizationStatus returns the current permission state without
	// prompting.
	AuthorizationStatus(ctx context.Context) AuthorizationStatus

	// RequestAuthorization prompts for permission and blocks until exactly
	// one decision leaves the undetermined state.
	RequestAuthorization(ctx context.Context) (AuthorizationStatus, error)

	// StartUpdates begins delivering fixes on the returned channel. The stop
	// function releases the underlying stream and must be safe to call on
	// every exit path.
	StartUpdates(ctx context.Context) (<-chan model.Coordinate, func(), error)
}

const defaultFixTimeout = 10 * time.Second

// Resolver acquires a single fix with a bounded wait.
type Resolver struct {
	source     Source
	fixTimeout time.Duration
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFixTimeout overrides the default 10 s fix acquisition timeout.
func WithFixTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.fixTimeout = d }
}

func NewResolver(source Source, opts ...Option) *Resolver {
	r := &Resolver{source: source, fixTimeout: defaultFixTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve checks permission (requesting it when undetermined), takes the
// first reported fix and stops the update stream. The caller never hangs:
// fix acquisition is bounded by the resolver's timeout.
func (r *Resolver) Resolve(ctx context.Context) (model.Coordinate, error) {
	if !r.source.ServicesEnabled(ctx) {
		return model.Coordinate{}, ErrServicesDisabled
	}

	status := r.source.AuthorizationStatus(ctx)
	if status == AuthorizationUndetermined {
		decided, err := r.source.RequestAuthorization(ctx)
		if err != nil {
			return model.Coordinate{}, fmt.Errorf("%w: %v", ErrUnknown, err)
		}
		status = decided
	}

	switch status {
	case AuthorizationWhenInUse, AuthorizationAlways:
	case AuthorizationDenied:
		return model.Coordinate{}, ErrAuthorizationDenied
	case AuthorizationRestricted:
		return model.Coordinate{}, ErrAuthorizationRestricted
	default:
		return model.Coordinate{}, ErrUnknown
	}

	fixCtx, cancel := context.WithTimeout(ctx, r.fixTimeout)
	defer cancel()

	fixes, stop, err := r.source.StartUpdates(fixCtx)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	// The stream must be released on success, error and cancellation alike.
	defer stop()

	select {
	case fix, ok := <-fixes:
		if !ok {
			return model.Coordinate{}, ErrFetchFailed
		}
		return fix, nil
	case <-fixCtx.Done():
		if errors.Is(fixCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return model.Coordinate{}, ErrTimeout
		}
		return model.Coordinate{}, fixCtx.Err()
	}
}
