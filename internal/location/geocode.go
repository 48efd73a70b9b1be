package location

import (
	"context"
	"strings"

	"github.com/kelvins/geocoder"
	"go.uber.org/zap"
)

// GoogleGeocoder resolves city names through the Google geocoding API.
type GoogleGeocoder struct {
	log *zap.Logger
}

// NewGoogleGeocoder configures the shared geocoder API key and returns a
// resolver. The kelvins/geocoder package holds the key in package state, so
// only one key per process is supported.
func NewGoogleGeocoder(apiKey string, log *zap.Logger) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	if log == nil {
		log = zap.NewNop()
	}
	return &GoogleGeocoder{log: log}
}

// CityToCoordinates resolves a free-text city name. A nil result without an
// error means the name did not match any place.
func (g *GoogleGeocoder) CityToCoordinates(ctx context.Context, city string) (*Coordinates, error) {
	loc, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		if isNoMatch(err) {
			return nil, nil
		}
		return nil, err
	}
	return &Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}

// CityName reverse-geocodes coordinates to a city name. An empty name
// without an error means no locality was found.
func (g *GoogleGeocoder) CityName(ctx context.Context, c Coordinates) (string, error) {
	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  c.Lat,
		Longitude: c.Lon,
	})
	if err != nil {
		if isNoMatch(err) {
			return "", nil
		}
		return "", err
	}

	for _, a := range addresses {
		if a.City != "" {
			return a.City, nil
		}
	}
	return "", nil
}

func isNoMatch(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "zero_results") || strings.Contains(msg, "no results")
}
