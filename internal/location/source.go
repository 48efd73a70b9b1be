// Package location abstracts where the device (or host) currently is:
// a push stream of coordinates, a last-known query, an availability stream
// and a consent check, plus city-name resolution.
package location

import (
	"context"
	"strconv"
)

// Coordinates is a single geographic fix.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query renders the coordinates as the "lat,lon" string the weather API expects.
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// Source produces device coordinates and availability signals.
//
// Updates and EnabledUpdates are infinite streams; the returned channels are
// closed when ctx is cancelled. LastKnown is a one-shot read that may return
// nil when no fix has been obtained yet. HasPermission reports whether the
// user consented to geolocation at all.
type Source interface {
	Updates(ctx context.Context) <-chan Coordinates
	LastKnown(ctx context.Context) (*Coordinates, error)
	EnabledUpdates(ctx context.Context) <-chan bool
	HasPermission() bool
}

// Geocoder resolves between free-text city names and coordinates.
//
// A "no match" outcome is a nil result (or empty name) without an error;
// errors are reserved for hard I/O failures.
type Geocoder interface {
	CityToCoordinates(ctx context.Context, city string) (*Coordinates, error)
	CityName(ctx context.Context, c Coordinates) (string, error)
}
