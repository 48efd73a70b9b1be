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
	"go.uber.org/zap"

	httpapi "weathercast/internal/api/http"
	"weathercast/internal/config"
	"weathercast/internal/location"
	"weathercast/internal/notify"
	"weathercast/internal/prefs"
	"weathercast/internal/presenter"
	"weathercast/internal/refresh"
	"weathercast/internal/repository"
	"weathercast/internal/weatherapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Preference store survives restarts; best-effort location cache.
	store, err := prefs.Open(cfg.PrefsPath, zlog)
	if err != nil {
		zlog.Fatal("failed to open preference store", zap.Error(err))
	}
	defer store.Close()

	apiClient := weatherapi.NewClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, httpClient)
	repo := repository.New(apiClient, zlog)

	var source location.Source
	if cfg.LocationMode == "static" {
		source = location.NewStaticSource(location.Coordinates{Lat: cfg.StaticLat, Lon: cfg.StaticLon})
	} else {
		source = location.NewIPSource(httpClient, "", cfg.LocationPollInterval, cfg.LocationConsent, zlog)
	}

	pres := presenter.New(repo, source, store, cfg.ForecastDays, cfg.SearchDebounce, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pres.Start(ctx)

	// Background refresh posts the weather summary notification.
	notifier := notify.NewWebhookNotifier(cfg.NotifyWebhookURL, cfg.NotificationsEnabled, httpClient, zlog)
	worker := refresh.New(repo, store, notifier, cfg.RefreshInterval, cfg.DeepLinkBase, nil, zlog)
	if err := worker.Start(); err != nil {
		zlog.Fatal("failed to start background refresh", zap.Error(err))
	}
	defer worker.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weathercast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
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

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weathercast",
		})
	})

	var geo location.Geocoder
	if cfg.GeocoderAPIKey != "" {
		geo = location.NewGoogleGeocoder(cfg.GeocoderAPIKey, zlog)
	}

	httpapi.RegisterRoutes(app, pres, repo, geo, cfg.ForecastDays)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Error("fiber server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Error("error during shutdown", zap.Error(err))
	}
}
