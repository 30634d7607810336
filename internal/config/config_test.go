package config

import (
	"testing"
	"time"

	"kindle-weather/internal/weather"
)

// clearEnv blanks every variable Load reads so tests see defaults
// regardless of the host environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENWEATHER_API_KEY", "WEATHER_LAT", "WEATHER_LON",
		"LOCATION_NAME", "GEOCODER_API_KEY", "TIMEZONE",
		"CACHE_TTL", "AGGREGATION_MODE", "PORT", "TEMPLATE_PATH",
		"STATIC_DIR", "ONECALL_BASE_URL", "HTTP_TIMEOUT",
		"PREFETCH_INTERVAL", "SERVERLESS", "VERCEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Errorf("CacheTTL = %s, want 15m", cfg.CacheTTL)
	}
	if cfg.AggregationMode != weather.ModeHourly {
		t.Errorf("AggregationMode = %q, want hourly", cfg.AggregationMode)
	}
	if cfg.Latitude != 52.2053 || cfg.Longitude != 0.1218 {
		t.Errorf("coordinate = %f,%f, want 52.2053,0.1218", cfg.Latitude, cfg.Longitude)
	}
	if cfg.LocationName != "Cambridge, UK" {
		t.Errorf("LocationName = %q, want Cambridge, UK", cfg.LocationName)
	}
	if cfg.Zone.String() != "Europe/London" {
		t.Errorf("Zone = %s, want Europe/London", cfg.Zone)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %s, want 10s", cfg.HTTPTimeout)
	}
	if cfg.PrefetchInterval != 0 {
		t.Errorf("PrefetchInterval = %s, want 0", cfg.PrefetchInterval)
	}
	if cfg.Serverless {
		t.Error("Serverless = true, want false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_LAT", "48.8566")
	t.Setenv("WEATHER_LON", "2.3522")
	t.Setenv("LOCATION_NAME", "Paris, FR")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("AGGREGATION_MODE", "daily")
	t.Setenv("PORT", "8080")
	t.Setenv("PREFETCH_INTERVAL", "10m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Latitude != 48.8566 || cfg.Longitude != 2.3522 {
		t.Errorf("coordinate = %f,%f, want 48.8566,2.3522", cfg.Latitude, cfg.Longitude)
	}
	if cfg.LocationName != "Paris, FR" {
		t.Errorf("LocationName = %q, want Paris, FR", cfg.LocationName)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %s, want 5m", cfg.CacheTTL)
	}
	if cfg.AggregationMode != weather.ModeDaily {
		t.Errorf("AggregationMode = %q, want daily", cfg.AggregationMode)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PrefetchInterval != 10*time.Minute {
		t.Errorf("PrefetchInterval = %s, want 10m", cfg.PrefetchInterval)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown aggregation mode", "AGGREGATION_MODE", "weekly"},
		{"latitude out of range", "WEATHER_LAT", "123.45"},
		{"unparseable latitude", "WEATHER_LAT", "north"},
		{"unparseable ttl", "CACHE_TTL", "soon"},
		{"unknown time zone", "TIMEZONE", "Mars/Olympus"},
		{"relative base url", "ONECALL_BASE_URL", "not-a-url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_ServerlessFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVERLESS", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Serverless {
		t.Error("SERVERLESS=true should enable serverless mode")
	}

	clearEnv(t)
	t.Setenv("VERCEL", "1")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Serverless {
		t.Error("VERCEL env should enable serverless mode")
	}
}
