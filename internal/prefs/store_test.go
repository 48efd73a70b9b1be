package prefs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"weathercast/internal/location"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"), nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshotEmptyStore(t *testing.T) {
	store := newTestStore(t)

	snap, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Coordinates != nil {
		t.Errorf("coordinates should be nil before any save, got %+v", snap.Coordinates)
	}
	if snap.City != "" {
		t.Errorf("city should be empty before any save, got %q", snap.City)
	}
}

func TestSaveAndReadBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveCoordinates(ctx, location.Coordinates{Lat: 51.52, Lon: -0.11}); err != nil {
		t.Fatalf("save coordinates: %v", err)
	}
	if err := store.SaveCity(ctx, "London"); err != nil {
		t.Fatalf("save city: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Coordinates == nil {
		t.Fatalf("coordinates missing after save")
	}
	if snap.Coordinates.Lat != 51.52 || snap.Coordinates.Lon != -0.11 {
		t.Errorf("coordinates = %+v, want 51.52/-0.11", snap.Coordinates)
	}
	if snap.City != "London" {
		t.Errorf("city = %q, want London", snap.City)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveCity(ctx, "London"); err != nil {
		t.Fatalf("save city: %v", err)
	}
	if err := store.SaveCity(ctx, "Paris"); err != nil {
		t.Fatalf("save city: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.City != "Paris" {
		t.Errorf("city = %q, want Paris", snap.City)
	}
}

func TestWatchDeliversUpdates(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := store.Watch(ctx)

	// Initial snapshot is delivered immediately.
	select {
	case snap := <-ch:
		if snap.Coordinates != nil {
			t.Errorf("initial snapshot should be empty, got %+v", snap.Coordinates)
		}
	case <-time.After(time.Second):
		t.Fatalf("no initial snapshot delivered")
	}

	if err := store.SaveCity(ctx, "London"); err != nil {
		t.Fatalf("save city: %v", err)
	}

	select {
	case snap := <-ch:
		if snap.City != "London" {
			t.Errorf("city = %q, want London", snap.City)
		}
	case <-time.After(time.Second):
		t.Fatalf("no update delivered after save")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch := store.Watch(ctx)
	<-ch // initial snapshot
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}
