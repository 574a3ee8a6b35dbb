package weather

import "fmt"

// APIError is a non-200 answer from the weather provider.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather api: %s returned status %d", e.Path, e.StatusCode)
}
