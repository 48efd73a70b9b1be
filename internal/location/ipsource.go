package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const DefaultLookupURL = "http://ip-api.com/json"

// IPSource derives coordinates from the host's public IP address via an
// IP-geolocation REST endpoint. Lookups are polled on a fixed interval and
// guarded by a circuit breaker so a flapping endpoint is not hammered.
type IPSource struct {
	lookupURL string
	httpc     *http.Client
	interval  time.Duration
	consent   bool
	circuit   *gobreaker.CircuitBreaker
	log       *zap.Logger

	mu        sync.Mutex
	lastKnown *Coordinates
}

// NewIPSource creates an IPSource. consent mirrors the user's geolocation
// opt-in; when false, HasPermission reports false and callers are expected
// to skip fetches.
func NewIPSource(httpc *http.Client, lookupURL string, interval time.Duration, consent bool, log *zap.Logger) *IPSource {
	if lookupURL == "" {
		lookupURL = DefaultLookupURL
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ip-geolocation",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &IPSource{
		lookupURL: lookupURL,
		httpc:     httpc,
		interval:  interval,
		consent:   consent,
		circuit:   cb,
		log:       log,
	}
}

// Updates emits a fix per successful lookup, starting immediately.
func (s *IPSource) Updates(ctx context.Context) <-chan Coordinates {
	out := make(chan Coordinates)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			if coords, err := s.lookup(ctx); err != nil {
				s.log.Warn("ip geolocation lookup failed", zap.Error(err))
			} else {
				select {
				case out <- coords:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// LastKnown returns the most recent successful fix, or attempts a fresh
// lookup when none is cached yet. A nil result means no fix is available.
func (s *IPSource) LastKnown(ctx context.Context) (*Coordinates, error) {
	s.mu.Lock()
	cached := s.lastKnown
	s.mu.Unlock()
	if cached != nil {
		c := *cached
		return &c, nil
	}

	coords, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}
	return &coords, nil
}

// EnabledUpdates reports whether the geolocation endpoint is reachable,
// probing on the same interval as Updates.
func (s *IPSource) EnabledUpdates(ctx context.Context) <-chan bool {
	out := make(chan bool)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			_, err := s.lookup(ctx)
			select {
			case out <- err == nil:
			case <-ctx.Done():
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (s *IPSource) HasPermission() bool {
	return s.consent
}

func (s *IPSource) lookup(ctx context.Context) (Coordinates, error) {
	result, err := s.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.lookupURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("ip geolocation returned status %d", resp.StatusCode)
		}

		var payload struct {
			Status string  `json:"status"`
			Lat    float64 `json:"lat"`
			Lon    float64 `json:"lon"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, err
		}
		if payload.Status != "" && payload.Status != "success" {
			return nil, fmt.Errorf("ip geolocation status %q", payload.Status)
		}

		return Coordinates{Lat: payload.Lat, Lon: payload.Lon}, nil
	})
	if err != nil {
		return Coordinates{}, err
	}

	coords := result.(Coordinates)
	s.mu.Lock()
	c := coords
	s.lastKnown = &c
	s.mu.Unlock()
	return coords, nil
}
