package location

import "errors"

// Closed error taxonomy for location resolution. Screens match on these with
// errors.Is; nothing else escapes the resolver.
var (
	ErrAuthorizationDenied     = errors.New("location authorization denied")
	ErrAuthorizationRestricted = errors.New("location authorization restricted")
	ErrServicesDisabled        = errors.New("location services disabled")
	ErrFetchFailed             = errors.New("unable to fetch location")
	ErrTimeout                 = errors.New("location request timed out")
	ErrUnknown                 = errors.New("unknown location error")
)
