package refresh

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"weathercast/internal/location"
	"weathercast/internal/prefs"
	"weathercast/internal/weather"
)

type stubFetcher struct {
	mu    sync.Mutex
	calls int
	cw    weather.CurrentWeather
	err   error
}

func (f *stubFetcher) CurrentWeather(ctx context.Context, q string) (weather.CurrentWeather, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.cw, f.err
}

type stubPrefs struct {
	snap prefs.Snapshot
	err  error
}

func (s *stubPrefs) Snapshot(ctx context.Context) (prefs.Snapshot, error) {
	return s.snap, s.err
}

type recordingNotifier struct {
	mu      sync.Mutex
	enabled bool
	posts   []postedNotification
}

type postedNotification struct {
	title, body, link string
}

func (n *recordingNotifier) Post(ctx context.Context, title, body, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posts = append(n.posts, postedNotification{title, body, link})
	return nil
}

func (n *recordingNotifier) Cancel(ctx context.Context) error { return nil }

func (n *recordingNotifier) Enabled() bool { return n.enabled }

func londonSnapshot() prefs.Snapshot {
	return prefs.Snapshot{
		Coordinates: &location.Coordinates{Lat: 51.52, Lon: -0.11},
		City:        "London",
	}
}

func TestRunOncePostsSummaryWithDeepLink(t *testing.T) {
	fetcher := &stubFetcher{cw: weather.CurrentWeather{
		Location: weather.Location{Name: "London"},
		Current:  weather.Current{TempC: 21.3, Condition: weather.Condition{Text: "Sunny"}},
	}}
	notifier := &recordingNotifier{enabled: true}
	w := New(fetcher, &stubPrefs{snap: londonSnapshot()}, notifier, time.Hour, "https://weathercast.example.com", func(context.Context) bool { return true }, nil)

	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.posts) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.posts))
	}
	post := notifier.posts[0]
	if post.title != "London" {
		t.Errorf("title = %q, want London", post.title)
	}
	if post.body != "21°, Sunny" {
		t.Errorf("body = %q, want 21°, Sunny", post.body)
	}
	if !strings.HasSuffix(post.link, "/forecast/London") {
		t.Errorf("deep link = %q, want /forecast/London suffix", post.link)
	}
}

func TestRunOnceNoStoredCoordinates(t *testing.T) {
	fetcher := &stubFetcher{}
	notifier := &recordingNotifier{enabled: true}
	w := New(fetcher, &stubPrefs{snap: prefs.Snapshot{}}, notifier, time.Hour, "", func(context.Context) bool { return true }, nil)

	if err := w.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected error when no coordinates are stored")
	}
	if fetcher.calls != 0 {
		t.Errorf("weather fetched %d times, want 0", fetcher.calls)
	}
	if len(notifier.posts) != 0 {
		t.Errorf("nothing should be posted without coordinates")
	}
}

func TestRunOnceConnectivityConstraint(t *testing.T) {
	fetcher := &stubFetcher{}
	notifier := &recordingNotifier{enabled: true}
	w := New(fetcher, &stubPrefs{snap: londonSnapshot()}, notifier, time.Hour, "", func(context.Context) bool { return false }, nil)

	if err := w.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected error when the network constraint is not satisfied")
	}
	if fetcher.calls != 0 {
		t.Errorf("weather fetched %d times, want 0", fetcher.calls)
	}
}

func TestRunOnceFetchFailureSkipsNotification(t *testing.T) {
	fetcher := &stubFetcher{err: fmt.Errorf("upstream down")}
	notifier := &recordingNotifier{enabled: true}
	w := New(fetcher, &stubPrefs{snap: londonSnapshot()}, notifier, time.Hour, "", func(context.Context) bool { return true }, nil)

	if err := w.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
	if len(notifier.posts) != 0 {
		t.Errorf("nothing should be posted after a failed fetch")
	}
}

func TestStartDisabledNotifierSchedulesNothing(t *testing.T) {
	notifier := &recordingNotifier{enabled: false}
	w := New(&stubFetcher{}, &stubPrefs{}, notifier, time.Hour, "", func(context.Context) bool { return true }, nil)

	if err := w.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	if jobs := len(w.scheduler.Jobs()); jobs != 0 {
		t.Fatalf("expected no scheduled jobs, got %d", jobs)
	}
}
