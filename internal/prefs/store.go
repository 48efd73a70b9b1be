// Package prefs persists the last known user coordinates and city across
// process restarts. It is a best-effort cache: writes are fire-and-forget
// from the caller's perspective and reads never block on writers.
package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"weathercast/internal/location"
)

const (
	keyLatitude  = "user_latitude"
	keyLongitude = "user_longitude"
	keyCity      = "user_city"
)

// Snapshot is one consistent read of the stored preferences. Coordinates is
// nil until a fix has ever been saved.
type Snapshot struct {
	Coordinates *location.Coordinates
	City        string
}

// Store is a SQLite-backed key-value preference store with change
// notification for watchers.
type Store struct {
	db  *sql.DB
	log *zap.Logger

	mu   sync.Mutex
	subs map[chan Snapshot]struct{}
}

// Open opens (or creates) the preference database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init preference store: %w", err)
	}

	return &Store{
		db:   db,
		log:  log,
		subs: make(map[chan Snapshot]struct{}),
	}, nil
}

// Snapshot reads the stored preferences.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Snapshot{}, err
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{City: values[keyCity]}

	latStr, latOK := values[keyLatitude]
	lonStr, lonOK := values[keyLongitude]
	if latOK && lonOK {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr == nil && lonErr == nil {
			snap.Coordinates = &location.Coordinates{Lat: lat, Lon: lon}
		}
	}
	return snap, nil
}

// SaveCoordinates stores the last known fix and notifies watchers.
func (s *Store) SaveCoordinates(ctx context.Context, c location.Coordinates) error {
	if err := s.set(ctx, map[string]string{
		keyLatitude:  strconv.FormatFloat(c.Lat, 'f', -1, 64),
		keyLongitude: strconv.FormatFloat(c.Lon, 'f', -1, 64),
	}); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// SaveCity stores the last fetched city name and notifies watchers.
func (s *Store) SaveCity(ctx context.Context, city string) error {
	if err := s.set(ctx, map[string]string{keyCity: city}); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// Watch emits the current snapshot immediately and again after every save.
// The channel is closed when ctx is cancelled. Slow consumers miss updates
// rather than blocking writers.
func (s *Store) Watch(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	if snap, err := s.Snapshot(ctx); err == nil {
		ch <- snap
	}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) set(ctx context.Context, kv map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	for k, v := range kv {
		if _, err := tx.ExecContext(ctx, upsert, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) notify(ctx context.Context) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		s.log.Warn("preference snapshot after save failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// drop for slow consumers
		}
	}
}
