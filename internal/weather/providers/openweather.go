package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"kindle-weather/internal/weather"
)

// OneCallClient fetches current and forecast weather for a fixed
// coordinate from the OpenWeatherMap One Call API.
type OneCallClient struct {
	name     string
	apiKey   string
	baseURL  string
	lat, lon float64
	mode     weather.AggregationMode
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

var _ weather.Fetcher = (*OneCallClient)(nil)

// NewOneCallClient creates a client for the given coordinate. baseURL is
// configurable so tests can point it at a local server.
func NewOneCallClient(client *http.Client, baseURL, apiKey string, lat, lon float64, mode weather.AggregationMode) *OneCallClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OneCallClient{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		lat:     lat,
		lon:     lon,
		mode:    mode,
		client:  client,
		circuit: cb,
	}
}

// Name returns the provider name.
func (c *OneCallClient) Name() string {
	return c.name
}

// Fetch issues one request to the One Call endpoint and decodes the
// response into a Snapshot. The credential check happens before any
// network I/O. Hourly data is excluded from the request entirely when
// the daily aggregation mode is configured.
func (c *OneCallClient) Fetch(ctx context.Context) (*weather.Snapshot, error) {
	if c.apiKey == "" {
		return nil, weather.ErrAPIKeyMissing
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", c.lat))
	values.Set("lon", fmt.Sprintf("%f", c.lon))
	values.Set("exclude", c.excludeParam())
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(ctx, c.client, c.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var snap weather.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode one call response: %w", err)
	}

	return &snap, nil
}

func (c *OneCallClient) excludeParam() string {
	if c.mode == weather.ModeDaily {
		return "minutely,alerts,hourly"
	}
	return "minutely,alerts"
}
