// Package repository translates weather API responses into domain models,
// classifying every outcome into a small error taxonomy. Exactly one network
// attempt is made per call; retries are the caller's decision.
package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"weathercast/internal/weather"
)

// Repository wraps the transport client for current weather, forecast and
// city search reads.
type Repository struct {
	client Client
	log    *zap.Logger
}

// Client is the transport contract the repository consumes.
type Client interface {
	CurrentWeather(ctx context.Context, q string) (*http.Response, error)
	Forecast(ctx context.Context, q string, days int) (*http.Response, error)
	SearchCity(ctx context.Context, q string) (*http.Response, error)
}

func New(client Client, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{client: client, log: log}
}

// CurrentWeather fetches and converts current conditions for q.
func (r *Repository) CurrentWeather(ctx context.Context, q string) (weather.CurrentWeather, error) {
	resp, err := r.client.CurrentWeather(ctx, q)
	if err != nil {
		return weather.CurrentWeather{}, &UnknownError{Cause: err}
	}

	var dto weather.CurrentWeatherDTO
	if err := r.decode(resp, &dto); err != nil {
		return weather.CurrentWeather{}, err
	}

	cw, err := weather.CurrentWeatherFromDTO(&dto)
	if err != nil {
		r.log.Warn("current weather payload failed conversion", zap.String("query", q), zap.Error(err))
		return weather.CurrentWeather{}, &MappingError{Cause: err}
	}
	return cw, nil
}

// Forecast fetches and converts a days-long forecast for q.
func (r *Repository) Forecast(ctx context.Context, q string, days int) (weather.Forecast, error) {
	resp, err := r.client.Forecast(ctx, q, days)
	if err != nil {
		return weather.Forecast{}, &UnknownError{Cause: err}
	}

	var dto weather.ForecastDTO
	if err := r.decode(resp, &dto); err != nil {
		return weather.Forecast{}, err
	}

	fc, err := weather.ForecastFromDTO(&dto)
	if err != nil {
		r.log.Warn("forecast payload failed conversion", zap.String("query", q), zap.Error(err))
		return weather.Forecast{}, &MappingError{Cause: err}
	}
	return fc, nil
}

// SearchCity fetches candidate locations for a free-text query.
func (r *Repository) SearchCity(ctx context.Context, q string) ([]weather.SearchResult, error) {
	resp, err := r.client.SearchCity(ctx, q)
	if err != nil {
		return nil, &UnknownError{Cause: err}
	}

	var dtos []weather.SearchDTO
	if err := r.decode(resp, &dtos); err != nil {
		return nil, err
	}
	return weather.SearchResultsFromDTO(dtos), nil
}

// decode drains the response body and classifies the transport outcome:
// non-2xx status, empty body, or a body that is not valid JSON.
func (r *Repository) decode(resp *http.Response, v any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnknownError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(body)),
		}
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return &NoDataError{Reason: "empty response body"}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &MappingError{Cause: err}
	}
	return nil
}
