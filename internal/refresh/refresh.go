// Package refresh runs the fetch-and-notify sequence on a fixed periodic
// schedule, independent of any UI reader. Failures are left to the next
// scheduled tick; there is no immediate retry.
package refresh

import (
	"context"
	"fmt"
	"math"
	"net"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"weathercast/internal/notify"
	"weathercast/internal/prefs"
	"weathercast/internal/weather"
)

const (
	defaultInterval  = 12 * time.Hour
	defaultProbeAddr = "api.weatherapi.com:443"
	runTimeout       = 30 * time.Second
)

// Fetcher is the slice of the repository the worker needs.
type Fetcher interface {
	CurrentWeather(ctx context.Context, q string) (weather.CurrentWeather, error)
}

// PrefReader reads the stored user coordinates.
type PrefReader interface {
	Snapshot(ctx context.Context) (prefs.Snapshot, error)
}

// Connectivity reports whether the network constraint is satisfied.
type Connectivity func(ctx context.Context) bool

// DialProbe returns a Connectivity check that dials addr over TCP.
func DialProbe(addr string) Connectivity {
	if addr == "" {
		addr = defaultProbeAddr
	}
	return func(ctx context.Context) bool {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}
}

// Worker schedules the periodic background refresh.
type Worker struct {
	scheduler    *gocron.Scheduler
	fetcher      Fetcher
	store        PrefReader
	notifier     notify.Notifier
	interval     time.Duration
	deepLinkBase string
	connected    Connectivity
	log          *zap.Logger
}

func New(fetcher Fetcher, store PrefReader, notifier notify.Notifier, interval time.Duration, deepLinkBase string, connected Connectivity, log *zap.Logger) *Worker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if connected == nil {
		connected = DialProbe("")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{
		scheduler:    gocron.NewScheduler(time.UTC),
		fetcher:      fetcher,
		store:        store,
		notifier:     notifier,
		interval:     interval,
		deepLinkBase: deepLinkBase,
		connected:    connected,
		log:          log,
	}
}

// Start schedules the periodic job. When notifications are disabled the
// worker does not schedule anything at all.
func (w *Worker) Start() error {
	if !w.notifier.Enabled() {
		w.log.Info("notifications disabled; background refresh not scheduled")
		return nil
	}

	minutes := int(w.interval.Minutes())
	if minutes <= 0 {
		minutes = int(defaultInterval.Minutes())
	}

	_, err := w.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := w.RunOnce(ctx); err != nil {
			w.log.Warn("background refresh failed; waiting for next tick", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop cancels all scheduled refreshes.
func (w *Worker) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}

// RunOnce performs a single fetch-and-notify cycle: connectivity constraint,
// stored coordinates, one weather fetch, one notification.
func (w *Worker) RunOnce(ctx context.Context) error {
	if !w.connected(ctx) {
		return fmt.Errorf("network constraint not satisfied")
	}

	snap, err := w.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read stored coordinates: %w", err)
	}
	if snap.Coordinates == nil {
		return fmt.Errorf("no user coordinates stored")
	}

	cw, err := w.fetcher.CurrentWeather(ctx, snap.Coordinates.Query())
	if err != nil {
		return err
	}

	city := cw.Location.Name
	summary := fmt.Sprintf("%d°, %s", int(math.Round(cw.Current.TempC)), cw.Current.Condition.Text)

	if err := w.notifier.Post(ctx, city, summary, notify.ForecastDeepLink(w.deepLinkBase, city)); err != nil {
		return fmt.Errorf("post notification: %w", err)
	}

	w.log.Info("background refresh complete", zap.String("city", city), zap.String("summary", summary))
	return nil
}
