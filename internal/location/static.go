package location

import "context"

// StaticSource serves a fixed set of coordinates from configuration. It is
// the fallback for installs that opt out of IP geolocation.
type StaticSource struct {
	coords Coordinates
}

func NewStaticSource(coords Coordinates) *StaticSource {
	return &StaticSource{coords: coords}
}

// Updates emits the configured coordinates once, then idles until cancelled.
func (s *StaticSource) Updates(ctx context.Context) <-chan Coordinates {
	out := make(chan Coordinates)
	go func() {
		defer close(out)
		select {
		case out <- s.coords:
		case <-ctx.Done():
			return
		}
		<-ctx.Done()
	}()
	return out
}

func (s *StaticSource) LastKnown(ctx context.Context) (*Coordinates, error) {
	c := s.coords
	return &c, nil
}

// EnabledUpdates reports true once; configured coordinates never go away.
func (s *StaticSource) EnabledUpdates(ctx context.Context) <-chan bool {
	out := make(chan bool)
	go func() {
		defer close(out)
		select {
		case out <- true:
		case <-ctx.Done():
			return
		}
		<-ctx.Done()
	}()
	return out
}

func (s *StaticSource) HasPermission() bool {
	return true
}
