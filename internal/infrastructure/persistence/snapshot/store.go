// Package snapshot persists admin list caches across server restarts. Each
// content kind gets one row holding the serialized item list and its fetch
// timestamp; rows are cleared on mutation or manual refresh, mirroring the
// session-scoped cache the admin UI expects.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
)

// Store is a sqlite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS admin_snapshots (
		kind TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		fetched_at INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate snapshot db: %w", err)
	}

	return &Store{db: db}, nil
}

// Save stores the admin list for a kind, replacing any previous snapshot.
func (s *Store) Save(kind content.Kind, items []content.Item, fetchedAt time.Time) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot for %s: %w", kind, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO admin_snapshots (kind, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		string(kind), string(payload), fetchedAt.UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot for %s: %w", kind, err)
	}
	return nil
}

// Load returns the persisted snapshot for a kind, if one exists. The second
// return is the snapshot's fetch time; the third reports presence.
func (s *Store) Load(kind content.Kind) ([]content.Item, time.Time, bool, error) {
	var payload string
	var fetchedAt int64

	err := s.db.QueryRow(
		`SELECT payload, fetched_at FROM admin_snapshots WHERE kind = ?`, string(kind),
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("failed to load snapshot for %s: %w", kind, err)
	}

	var items []content.Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("corrupt snapshot for %s: %w", kind, err)
	}

	return items, time.Unix(fetchedAt, 0).UTC(), true, nil
}

// Clear removes the snapshot for a kind. Clearing a missing snapshot is a
// no-op.
func (s *Store) Clear(kind content.Kind) error {
	if _, err := s.db.Exec(`DELETE FROM admin_snapshots WHERE kind = ?`, string(kind)); err != nil {
		return fmt.Errorf("failed to clear snapshot for %s: %w", kind, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
