package exitcode

// Exit codes for the weather CLI.
// Wrapping scripts can use these to decide retry strategy.
const (
	// Success - snapshot delivered
	Success = 0

	// ConfigError - missing or invalid configuration
	// Don't retry: fix the config first
	ConfigError = 1

	// LocationError - no usable location (permission denied, no fix)
	// Don't retry: needs user action
	LocationError = 2

	// NetworkError - transient network failure (API timeout, DNS, etc.)
	// Retry with backoff
	NetworkError = 3

	// APIError - remote API returned an error (rate limit, auth, bad request)
	// Check logs, may need manual intervention
	APIError = 4

	// DataError - received invalid/unparseable data from a provider feed
	// Don't retry: investigate the data
	DataError = 5
)
