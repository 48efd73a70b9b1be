package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestForecastDeepLink(t *testing.T) {
	tests := []struct {
		base, city, want string
	}{
		{"https://weathercast.example.com", "London", "https://weathercast.example.com/forecast/London"},
		{"https://weathercast.example.com/", "London", "https://weathercast.example.com/forecast/London"},
		{"https://weathercast.example.com", "San Francisco", "https://weathercast.example.com/forecast/San%20Francisco"},
	}
	for _, tc := range tests {
		if got := ForecastDeepLink(tc.base, tc.city); got != tc.want {
			t.Errorf("ForecastDeepLink(%q, %q) = %q, want %q", tc.base, tc.city, got, tc.want)
		}
	}
}

func TestWebhookPost(t *testing.T) {
	var gotTitle, gotClick, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.Header.Get("X-Title")
		gotClick = r.Header.Get("X-Click")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, true, srv.Client(), nil)
	err := n.Post(context.Background(), "London", "21°, Sunny", "https://weathercast.example.com/forecast/London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotTitle != "London" {
		t.Errorf("title header = %q, want London", gotTitle)
	}
	if gotClick != "https://weathercast.example.com/forecast/London" {
		t.Errorf("click header = %q", gotClick)
	}
	if gotBody != "21°, Sunny" {
		t.Errorf("body = %q, want 21°, Sunny", gotBody)
	}
}

func TestWebhookPostDisabled(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, false, srv.Client(), nil)
	if err := n.Post(context.Background(), "London", "21°, Sunny", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("disabled notifier must not call the webhook")
	}
	if n.Enabled() {
		t.Errorf("Enabled() = true, want false")
	}
}

func TestWebhookPostServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, true, srv.Client(), nil)
	if err := n.Post(context.Background(), "London", "21°, Sunny", ""); err == nil {
		t.Fatalf("expected error on non-2xx webhook response")
	}
}
