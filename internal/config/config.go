package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelvins/geocoder"

	"kindle-weather/internal/weather"
)

var validate = validator.New()

// AppConfig holds everything resolved from the process environment.
type AppConfig struct {
	// OpenWeatherAPIKey may be empty; the weather client reports the
	// missing credential per request so /health keeps working.
	OpenWeatherAPIKey string

	// Fixed coordinate the dashboard is built for.
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`

	// LocationName is the label shown on the dashboard.
	LocationName   string
	GeocoderAPIKey string

	// Zone is the display time zone used for day selection, aggregation
	// and all rendered times.
	Zone *time.Location

	CacheTTL        time.Duration
	AggregationMode weather.AggregationMode `validate:"oneof=hourly daily"`

	Port           string
	TemplatePath   string
	StaticDir      string
	OneCallBaseURL string `validate:"url"`
	HTTPTimeout    time.Duration

	// PrefetchInterval > 0 enables the background cache refresh job.
	PrefetchInterval time.Duration

	// Serverless skips self-binding a listening socket, for hosting
	// behind an external invoker.
	Serverless bool
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	// Cambridge, UK by default, like the dashboard this serves.
	lat, err := getenvFloat("WEATHER_LAT", 52.2053)
	if err != nil {
		return nil, err
	}
	lon, err := getenvFloat("WEATHER_LON", 0.1218)
	if err != nil {
		return nil, err
	}
	cfg.Latitude = lat
	cfg.Longitude = lon

	cfg.LocationName = os.Getenv("LOCATION_NAME")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	zone, err := time.LoadLocation(getenvDefault("TIMEZONE", "Europe/London"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Zone = zone

	ttl, err := getenvDuration("CACHE_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ttl

	cfg.AggregationMode = weather.AggregationMode(getenvDefault("AGGREGATION_MODE", string(weather.ModeHourly)))

	cfg.Port = getenvDefault("PORT", "3000")
	cfg.TemplatePath = getenvDefault("TEMPLATE_PATH", "web/index.html")
	cfg.StaticDir = getenvDefault("STATIC_DIR", "web")
	cfg.OneCallBaseURL = getenvDefault("ONECALL_BASE_URL", "https://api.openweathermap.org/data/3.0/onecall")

	timeout, err := getenvDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	prefetch, err := getenvDuration("PREFETCH_INTERVAL", 0)
	if err != nil {
		return nil, err
	}
	cfg.PrefetchInterval = prefetch

	cfg.Serverless = getenvBool("SERVERLESS") || os.Getenv("VERCEL") != ""

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.LocationName = resolveLocationName(cfg)

	return cfg, nil
}

// resolveLocationName falls back to reverse geocoding when no explicit
// label is configured and a geocoder key is available, and to the
// default label otherwise.
func resolveLocationName(cfg *AppConfig) string {
	if cfg.LocationName != "" {
		return cfg.LocationName
	}

	if cfg.GeocoderAPIKey != "" {
		geocoder.ApiKey = cfg.GeocoderAPIKey
		addresses, err := geocoder.GeocodingReverse(geocoder.Location{
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
		})
		if err != nil {
			log.Printf("reverse geocoding failed, using default location label: %v", err)
		} else if len(addresses) > 0 && addresses[0].City != "" {
			addr := addresses[0]
			if addr.Country != "" {
				return fmt.Sprintf("%s, %s", addr.City, addr.Country)
			}
			return addr.City
		}
	}

	return "Cambridge, UK"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
