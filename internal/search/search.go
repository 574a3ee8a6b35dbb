// Package search provides free-text place autocomplete and detail lookup.
package search

import (
	"context"

	"github.com/sajaweather/sajaweather-go/internal/model"
)

// Service suggests places for a query fragment and resolves a suggestion to
// a precise coordinate.
type Service interface {
	// Autocomplete returns place suggestions for a free-text query. An empty
	// or whitespace query returns no results without a network call.
	Autocomplete(ctx context.Context, query string) ([]model.Location, error)

	// Detail resolves a suggestion to a location with a precise coordinate.
	Detail(ctx context.Context, loc model.Location) (model.Location, error)
}
