package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the composition root needs to wire the app.
type AppConfig struct {
	WeatherAPIKey  string
	WeatherBaseURL string
	HTTPTimeout    time.Duration

	ForecastDays   int
	SearchDebounce time.Duration

	// Location acquisition.
	LocationMode         string // "ip" or "static"
	LocationPollInterval time.Duration
	LocationConsent      bool
	StaticLat            float64
	StaticLon            float64
	GeocoderAPIKey       string

	// Background refresh + notifications.
	RefreshInterval      time.Duration
	NotificationsEnabled bool
	NotifyWebhookURL     string
	DeepLinkBase         string

	PrefsPath string
	Port      string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WEATHERAPI_API_KEY is required")
	}
	cfg.WeatherBaseURL = getenvDefault("WEATHERAPI_BASE_URL", "https://api.weatherapi.com/v1")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 1)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 14 {
		return nil, fmt.Errorf("FORECAST_DAYS must be between 1 and 14")
	}
	if cfg.SearchDebounce, err = getenvDuration("SEARCH_DEBOUNCE", 300*time.Millisecond); err != nil {
		return nil, err
	}

	cfg.LocationMode = getenvDefault("LOCATION_MODE", "ip")
	if cfg.LocationMode != "ip" && cfg.LocationMode != "static" {
		return nil, fmt.Errorf("LOCATION_MODE must be \"ip\" or \"static\"")
	}
	if cfg.LocationPollInterval, err = getenvDuration("LOCATION_POLL_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	cfg.LocationConsent = getenvBool("LOCATION_CONSENT", true)
	if cfg.StaticLat, err = getenvFloat("STATIC_LAT", 0); err != nil {
		return nil, err
	}
	if cfg.StaticLon, err = getenvFloat("STATIC_LON", 0); err != nil {
		return nil, err
	}
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", 12*time.Hour); err != nil {
		return nil, err
	}
	cfg.NotificationsEnabled = getenvBool("NOTIFICATIONS_ENABLED", true)
	cfg.NotifyWebhookURL = os.Getenv("NOTIFY_WEBHOOK_URL")
	cfg.DeepLinkBase = getenvDefault("DEEP_LINK_BASE", "https://weathercast.example.com")

	cfg.PrefsPath = getenvDefault("PREFS_PATH", "weathercast.db")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
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
