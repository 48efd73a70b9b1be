// Package presenter sequences permission check, location acquisition and the
// paired current+forecast fetch, exposing the outcome as a single observable
// state. All retries are user-initiated; there is no automatic backoff.
package presenter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weathercast/internal/location"
	"weathercast/internal/weather"
)

const (
	defaultForecastDays   = 1
	defaultSearchDebounce = 300 * time.Millisecond
	firstFixTimeout       = 15 * time.Second
)

// Fetcher is the slice of the weather repository the presenter consumes.
type Fetcher interface {
	CurrentWeather(ctx context.Context, q string) (weather.CurrentWeather, error)
	Forecast(ctx context.Context, q string, days int) (weather.Forecast, error)
	SearchCity(ctx context.Context, q string) ([]weather.SearchResult, error)
}

// PrefWriter persists the last fetched coordinates and city. Writes are
// best-effort; failures never affect presentation state.
type PrefWriter interface {
	SaveCoordinates(ctx context.Context, c location.Coordinates) error
	SaveCity(ctx context.Context, city string) error
}

// Presenter is the fetch-orchestration state machine. It is the single
// writer of its State; readers observe snapshots via State and Subscribe.
type Presenter struct {
	fetcher  Fetcher
	source   location.Source
	prefs    PrefWriter
	days     int
	debounce time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	state   State
	subs    map[chan State]struct{}
	fetched bool

	permissionGranted bool
	serviceEnabled    bool

	searchSeq   int
	searchTimer *time.Timer
}

// New creates a Presenter. prefs may be nil when persistence is not wanted.
func New(fetcher Fetcher, source location.Source, prefs PrefWriter, days int, debounce time.Duration, log *zap.Logger) *Presenter {
	if days <= 0 {
		days = defaultForecastDays
	}
	if debounce <= 0 {
		debounce = defaultSearchDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{
		fetcher:  fetcher,
		source:   source,
		prefs:    prefs,
		days:     days,
		debounce: debounce,
		log:      log,
		state:    State{Phase: PhaseIdle},
		subs:     make(map[chan State]struct{}),
	}
}

// Start begins observing the location-enabled stream and checks permission.
// When both signals are positive a fetch is triggered. Observers live until
// ctx is cancelled.
func (p *Presenter) Start(ctx context.Context) {
	go func() {
		for enabled := range p.source.EnabledUpdates(ctx) {
			p.onServiceEnabled(ctx, enabled)
		}
	}()
	p.CheckPermission(ctx)
}

// CheckPermission reads the permission state and either flags the UI to
// request permissions or, if location is already usable, triggers a fetch.
func (p *Presenter) CheckPermission(ctx context.Context) {
	granted := p.source.HasPermission()

	p.mu.Lock()
	p.permissionGranted = granted
	if !granted {
		p.state.RequestPermission = true
		p.setErrorLocked(ErrorLocationPermissionDenied, 0, "Location permissions denied.")
		p.mu.Unlock()
		return
	}
	shouldFetch := p.serviceEnabled
	p.mu.Unlock()

	if shouldFetch {
		p.Fetch(ctx, "")
	}
}

// OnPermissionGranted acknowledges the platform permission-flow callback.
func (p *Presenter) OnPermissionGranted(ctx context.Context) {
	p.mu.Lock()
	p.permissionGranted = true
	p.state.RequestPermission = false
	shouldFetch := p.serviceEnabled
	p.publishLocked()
	p.mu.Unlock()

	if shouldFetch {
		p.Fetch(ctx, "")
	}
}

// PermissionRequestHandled clears the request-permission flag.
func (p *Presenter) PermissionRequestHandled() {
	p.mu.Lock()
	p.state.RequestPermission = false
	p.publishLocked()
	p.mu.Unlock()
}

func (p *Presenter) onServiceEnabled(ctx context.Context, enabled bool) {
	p.mu.Lock()
	p.serviceEnabled = enabled
	if !enabled {
		// Previously displayed weather stays in place; only refreshes stop.
		p.setErrorLocked(ErrorLocationServicesDisabled, 0, "Location services are disabled.")
		p.mu.Unlock()
		return
	}
	shouldFetch := p.permissionGranted
	p.mu.Unlock()

	if shouldFetch {
		p.Fetch(ctx, "")
	}
}

// Fetch resolves a location query (override wins over the device stream),
// issues the current-weather and forecast fetches concurrently, joins both
// and transitions to Success only when both succeed. Guarded so at most one
// cycle is in flight and repeat signals do not refetch.
func (p *Presenter) Fetch(ctx context.Context, override string) {
	p.mu.Lock()
	if p.fetched || p.state.Phase == PhaseLoading {
		p.mu.Unlock()
		return
	}
	p.fetched = true
	cycle := uuid.New()
	p.state.Phase = PhaseLoading
	p.state.CycleID = cycle
	p.state.ErrorKind = ErrorNone
	p.state.ErrorCode = 0
	p.state.ErrorMessage = ""
	p.publishLocked()
	p.mu.Unlock()

	query := override
	if query == "" {
		q, err := p.resolveLocation(ctx)
		if err != nil {
			p.fail(cycle, ErrorUnknown, 0, "Could not get current or last known location. "+err.Error())
			return
		}
		query = q
	}

	var (
		wg       sync.WaitGroup
		current  weather.CurrentWeather
		forecast weather.Forecast
		curErr   error
		fcErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, curErr = p.fetcher.CurrentWeather(ctx, query)
	}()
	go func() {
		defer wg.Done()
		forecast, fcErr = p.fetcher.Forecast(ctx, query, p.days)
	}()
	wg.Wait()

	if curErr != nil {
		kind, code, msg := classify(curErr)
		p.log.Warn("current weather fetch failed", zap.String("query", query), zap.Error(curErr))
		p.fail(cycle, kind, code, msg)
		return
	}
	if fcErr != nil {
		kind, code, msg := classify(fcErr)
		p.log.Warn("forecast fetch failed", zap.String("query", query), zap.Error(fcErr))
		p.fail(cycle, kind, code, msg)
		return
	}

	theme := ThemeForCondition(current.Current.Condition.Text)

	p.mu.Lock()
	if p.state.CycleID != cycle {
		p.mu.Unlock()
		return
	}
	cw := current
	fc := forecast
	p.state.Phase = PhaseSuccess
	p.state.Query = query
	p.state.Current = &cw
	p.state.Forecast = &fc
	p.state.Theme = theme
	p.publishLocked()
	p.mu.Unlock()

	p.persist(current)
}

// Retry resets to the un-fetched Idle state and re-invokes the fetch.
func (p *Presenter) Retry(ctx context.Context) {
	p.mu.Lock()
	if p.state.Phase == PhaseLoading {
		p.mu.Unlock()
		return
	}
	p.fetched = false
	p.state = State{Phase: PhaseIdle, Suggestions: p.state.Suggestions}
	p.publishLocked()
	p.mu.Unlock()

	p.Fetch(ctx, "")
}

// Search schedules a debounced city search; rapid successive calls collapse
// into a single API call for the latest query.
func (p *Presenter) Search(ctx context.Context, query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.searchSeq++
	seq := p.searchSeq
	if p.searchTimer != nil {
		p.searchTimer.Stop()
	}
	p.searchTimer = time.AfterFunc(p.debounce, func() {
		p.mu.Lock()
		stale := seq != p.searchSeq
		p.mu.Unlock()
		if stale {
			return
		}
		p.doSearch(ctx, query)
	})
}

func (p *Presenter) doSearch(ctx context.Context, query string) {
	results, err := p.fetcher.SearchCity(ctx, query)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.log.Warn("city search failed", zap.String("query", query), zap.Error(err))
		p.state.Suggestions = nil
	} else {
		// An empty result clears previously shown suggestions.
		p.state.Suggestions = results
	}
	p.publishLocked()
}

// SelectResult feeds a chosen search candidate into the fetch sequence,
// bypassing device location.
func (p *Presenter) SelectResult(ctx context.Context, result weather.SearchResult) {
	override := result.Name
	if override == "" {
		override = location.Coordinates{Lat: result.Lat, Lon: result.Lon}.Query()
	}

	p.mu.Lock()
	p.state.Suggestions = nil
	if p.state.Phase == PhaseLoading {
		p.publishLocked()
		p.mu.Unlock()
		return
	}
	p.fetched = false
	p.publishLocked()
	p.mu.Unlock()

	p.Fetch(ctx, override)
}

// State returns the current state snapshot.
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe delivers a state snapshot per transition until ctx is cancelled.
// Slow consumers miss intermediate states rather than blocking the writer.
func (p *Presenter) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 8)

	p.mu.Lock()
	p.subs[ch] = struct{}{}
	ch <- p.state
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.subs, ch)
		p.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (p *Presenter) resolveLocation(ctx context.Context) (string, error) {
	firstCtx, cancel := context.WithTimeout(ctx, firstFixTimeout)
	defer cancel()

	select {
	case coords, ok := <-p.source.Updates(firstCtx):
		if ok {
			return coords.Query(), nil
		}
	case <-firstCtx.Done():
	}

	last, err := p.source.LastKnown(ctx)
	if err != nil {
		return "", err
	}
	if last == nil {
		return "", fmt.Errorf("no location fix available")
	}
	return last.Query(), nil
}

func (p *Presenter) fail(cycle uuid.UUID, kind ErrorKind, code int, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.CycleID != cycle {
		return
	}
	p.setErrorLocked(kind, code, msg)
}

// setErrorLocked transitions to Error while retaining any previously
// displayed weather. Callers hold p.mu.
func (p *Presenter) setErrorLocked(kind ErrorKind, code int, msg string) {
	p.state.Phase = PhaseError
	p.state.ErrorKind = kind
	p.state.ErrorCode = code
	p.state.ErrorMessage = msg
	p.publishLocked()
}

func (p *Presenter) publishLocked() {
	for ch := range p.subs {
		select {
		case ch <- p.state:
		default:
		}
	}
}

func (p *Presenter) persist(cw weather.CurrentWeather) {
	if p.prefs == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		coords := location.Coordinates{Lat: cw.Location.Lat, Lon: cw.Location.Lon}
		if err := p.prefs.SaveCoordinates(ctx, coords); err != nil {
			p.log.Warn("saving coordinates failed", zap.Error(err))
		}
		if cw.Location.Name != "" {
			if err := p.prefs.SaveCity(ctx, cw.Location.Name); err != nil {
				p.log.Warn("saving city failed", zap.Error(err))
			}
		}
	}()
}
