package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "kindle-weather/internal/api/http"
	"kindle-weather/internal/config"
	"kindle-weather/internal/scheduler"
	"kindle-weather/internal/store"
	"kindle-weather/internal/weather"
	"kindle-weather/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	clock := weather.RealClock{}

	client := providers.NewOneCallClient(
		httpClient,
		cfg.OneCallBaseURL,
		cfg.OpenWeatherAPIKey,
		cfg.Latitude,
		cfg.Longitude,
		cfg.AggregationMode,
	)

	// Single-slot snapshot cache with the configured TTL.
	cache := store.NewSnapshotCache(cfg.CacheTTL, clock)

	service := weather.NewService(cache, client, clock, cfg.AggregationMode, cfg.Zone)

	// Optional background job keeping the cache warm.
	sched := scheduler.New(cfg.PrefetchInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	handler := httpapi.NewHandler(service, clock, cfg.LocationName, cfg.Zone, cfg.TemplatePath, cfg.StaticDir)
	app := httpapi.NewApp(handler)

	if !cfg.Serverless {
		go func() {
			log.Printf("weather dashboard listening on port %s", cfg.Port)
			if err := app.Listen(":" + cfg.Port); err != nil {
				log.Printf("fiber server stopped: %v", err)
			}
		}()
	} else {
		log.Println("serverless mode: not binding a listening socket")
	}

	// Wait for termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
