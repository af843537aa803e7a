package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mfortes/ponto/internal/model"
)

// profileKey is the single well-known key the whole profile lives under.
const profileKey = "profile"

const createKVTableSQL = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
`

var (
	// ErrUnavailable means durable local storage cannot be opened or
	// written. The caller must treat the user as unregistered until it is.
	ErrUnavailable = errors.New("local storage is unavailable")
	// ErrCorrupt means the stored profile cannot be decoded or fails
	// validation. The caller must offer the recovery choice (export the raw
	// data or discard it) before any further writes.
	ErrCorrupt = errors.New("stored profile data is corrupt")
)

// Store is the persistence gateway: a sqlite-backed key-value store holding
// the whole profile as one JSON value.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDir returns the data directory, honoring XDG_DATA_HOME and
// falling back to ~/.local/share/ponto.
func DefaultDir() (string, error) {
	if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
		return filepath.Join(dataDir, "ponto"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local/share", "ponto"), nil
}

// Open opens (creating if needed) the store in dir. An empty dir selects
// the default data directory. Failures are reported as ErrUnavailable.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrUnavailable, dir, err)
	}

	path := filepath.Join(dir, "ponto.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrUnavailable, path, err)
	}
	if _, err := db.Exec(createKVTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: initializing %s: %v", ErrUnavailable, path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Raw returns the stored profile bytes verbatim, for the recovery flow's
// manual-repair export. The second result is false when nothing is stored.
func (s *Store) Raw() ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, profileKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, s.path, err)
	}
	return []byte(value), true, nil
}

// Load reads the profile. An absent key yields the empty profile and
// found == false. Undecodable or invalid stored data is reported as
// ErrCorrupt, never silently healed.
func (s *Store) Load() (model.Profile, bool, error) {
	raw, found, err := s.Raw()
	if err != nil {
		return model.Empty(), false, err
	}
	if !found {
		return model.Empty(), false, nil
	}

	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Empty(), true, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !model.CheckRecords(p) {
		return model.Empty(), true, fmt.Errorf("%w: record data fails validation", ErrCorrupt)
	}
	return p, true, nil
}

// Save writes the whole profile as one value inside a transaction. Callers
// only save complete profiles; Save does not re-check that invariant.
func (s *Store) Save(p model.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		profileKey, string(raw),
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: writing %s: %v", ErrUnavailable, s.path, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}

// Clear deletes the stored profile.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, profileKey); err != nil {
		return fmt.Errorf("%w: clearing %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}
