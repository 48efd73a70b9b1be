// Package weatherapi is a thin transport client for api.weatherapi.com.
// It builds and executes requests but leaves status interpretation and
// payload decoding to the caller.
package weatherapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const DefaultBaseURL = "https://api.weatherapi.com/v1"

// Client issues read requests against the weather API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// apiKeyTransport appends the API key to every outbound request as the
// fixed "key" query parameter.
type apiKeyTransport struct {
	key  string
	next http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}

	u := *req.URL
	q := u.Query()
	q.Set("key", t.key)
	u.RawQuery = q.Encode()

	clone := req.Clone(req.Context())
	clone.URL = &u
	return next.RoundTrip(clone)
}

// NewClient creates a Client. The API key is injected once here and attached
// to every request; callers never pass it again.
func NewClient(baseURL, apiKey string, httpc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpc == nil {
		httpc = &http.Client{}
	}

	// Wrap the client's transport so the key travels with every call.
	wrapped := *httpc
	wrapped.Transport = &apiKeyTransport{key: apiKey, next: httpc.Transport}

	return &Client{
		baseURL: baseURL,
		httpc:   &wrapped,
	}
}

// CurrentWeather requests current conditions for a "lat,lon" or city query.
func (c *Client) CurrentWeather(ctx context.Context, q string) (*http.Response, error) {
	values := url.Values{}
	values.Set("q", q)
	return c.get(ctx, "current.json", values)
}

// Forecast requests an N-day forecast for a "lat,lon" or city query.
func (c *Client) Forecast(ctx context.Context, q string, days int) (*http.Response, error) {
	values := url.Values{}
	values.Set("q", q)
	values.Set("days", strconv.Itoa(days))
	values.Set("aqi", "no")
	values.Set("alerts", "no")
	return c.get(ctx, "forecast.json", values)
}

// SearchCity requests candidate locations for a free-text city query.
func (c *Client) SearchCity(ctx context.Context, q string) (*http.Response, error) {
	values := url.Values{}
	values.Set("q", q)
	return c.get(ctx, "search.json", values)
}

func (c *Client) get(ctx context.Context, endpoint string, values url.Values) (*http.Response, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.httpc.Do(req)
}
