package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("WEATHERAPI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WEATHERAPI_API_KEY is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WEATHERAPI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WeatherBaseURL != "https://api.weatherapi.com/v1" {
		t.Errorf("base url = %q", cfg.WeatherBaseURL)
	}
	if cfg.ForecastDays != 1 {
		t.Errorf("forecast days = %d, want 1", cfg.ForecastDays)
	}
	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Errorf("search debounce = %v, want 300ms", cfg.SearchDebounce)
	}
	if cfg.RefreshInterval != 12*time.Hour {
		t.Errorf("refresh interval = %v, want 12h", cfg.RefreshInterval)
	}
	if cfg.LocationMode != "ip" {
		t.Errorf("location mode = %q, want ip", cfg.LocationMode)
	}
	if !cfg.NotificationsEnabled {
		t.Errorf("notifications should default to enabled")
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEATHERAPI_API_KEY", "test-key")
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("SEARCH_DEBOUNCE", "50ms")
	t.Setenv("LOCATION_MODE", "static")
	t.Setenv("STATIC_LAT", "51.52")
	t.Setenv("STATIC_LON", "-0.11")
	t.Setenv("REFRESH_INTERVAL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ForecastDays != 3 {
		t.Errorf("forecast days = %d, want 3", cfg.ForecastDays)
	}
	if cfg.SearchDebounce != 50*time.Millisecond {
		t.Errorf("search debounce = %v, want 50ms", cfg.SearchDebounce)
	}
	if cfg.LocationMode != "static" {
		t.Errorf("location mode = %q, want static", cfg.LocationMode)
	}
	if cfg.StaticLat != 51.52 || cfg.StaticLon != -0.11 {
		t.Errorf("static coords = %v/%v", cfg.StaticLat, cfg.StaticLon)
	}
	if cfg.RefreshInterval != time.Hour {
		t.Errorf("refresh interval = %v, want 1h", cfg.RefreshInterval)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("WEATHERAPI_API_KEY", "test-key")

	tests := []struct {
		key, value string
	}{
		{"FORECAST_DAYS", "0"},
		{"FORECAST_DAYS", "15"},
		{"LOCATION_MODE", "gps"},
		{"STATIC_LAT", "not-a-number"},
		{"REFRESH_INTERVAL", "soon"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
