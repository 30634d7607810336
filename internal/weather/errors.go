package weather

import (
	"errors"
	"fmt"
)

// ErrAPIKeyMissing is returned before any network call when no API
// credential is configured. No fallback is possible for a fresh process
// since nothing could ever have been cached.
var ErrAPIKeyMissing = errors.New("openweather api key is not configured")

// ErrNoDailyData is returned when the provider response carries no daily
// forecast entries at all.
var ErrNoDailyData = errors.New("provider response has no daily forecast")

// ProviderError reports a non-success HTTP status from the upstream
// weather API.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather api returned status %d", e.StatusCode)
}

// TransportError reports a network-level failure reaching the upstream
// API (DNS, connection, timeout) or an open circuit.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("weather api request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
