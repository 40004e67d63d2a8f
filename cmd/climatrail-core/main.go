package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/CleverKeyush/climatrail-core/internal/api/http"
	"github.com/CleverKeyush/climatrail-core/internal/config"
	"github.com/CleverKeyush/climatrail-core/internal/geo"
	"github.com/CleverKeyush/climatrail-core/internal/scheduler"
	"github.com/CleverKeyush/climatrail-core/internal/store"
	"github.com/CleverKeyush/climatrail-core/internal/weather"
	"github.com/CleverKeyush/climatrail-core/internal/weather/providers"
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

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Adapters in descending source priority; the reconciler's cascade
	// follows this order.
	adapters := []weather.Adapter{
		providers.NewNASAPowerProvider(httpClient),
		providers.NewERA5Provider(httpClient),
		providers.NewOpenMeteoProvider(httpClient),
		providers.NewNOAACDOProvider(httpClient, cfg.NOAACDOToken),
	}

	// Reverse-geocoded place names; with no key this falls back to
	// formatted coordinates.
	resolver := geo.NewResolver(cfg.GeocoderAPIKey, cfg.GeocodeCacheTTL)

	// Core service orchestrating adapters, store, and resolver.
	service := weather.NewService(adapters, memStore, resolver)

	// Scheduler that periodically refreshes tracked locations.
	sched := scheduler.New(cfg.Locations, cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "climatrail-core",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "climatrail-core",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
