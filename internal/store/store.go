// Package store persists user-created journal formats in a local SQLite
// database.
//
// The whole custom format list lives as one JSON array under a fixed key,
// matching the export format of the web edition of this tool. Individual
// row updates are not needed at this scale, and the single-value layout
// keeps Load and Save atomic.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	jfmt "github.com/alnah/go-jfmt"
)

// formatsKey is the fixed key the custom format list is stored under.
const formatsKey = "custom_journal_formats"

// Sentinel errors for store operations.
var (
	ErrOpenStore    = errors.New("failed to open format store")
	ErrCorruptValue = errors.New("stored formats are not valid JSON")
)

// Store is a SQLite-backed format store.
type Store struct {
	db *sql.DB
}

// Store satisfies the registry's persistence contract.
var _ jfmt.FormatStore = (*Store)(nil)

// DefaultPath returns the per-user location of the formats database.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenStore, err)
	}
	return filepath.Join(dir, "go-jfmt", "formats.db"), nil
}

// Open creates or opens the formats database at path, creating the
// parent directory and schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpenStore, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted custom formats. A database without the key
// yields an empty list.
func (s *Store) Load() ([]jfmt.JournalFormat, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, formatsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading formats: %w", err)
	}

	var formats []jfmt.JournalFormat
	if err := json.Unmarshal(value, &formats); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptValue, err)
	}
	return formats, nil
}

// Save replaces the persisted custom formats with the given list.
func (s *Store) Save(formats []jfmt.JournalFormat) error {
	value, err := json.Marshal(formats)
	if err != nil {
		return fmt.Errorf("encoding formats: %w", err)
	}

	upsert := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.Exec(upsert, formatsKey, value); err != nil {
		return fmt.Errorf("saving formats: %w", err)
	}
	return nil
}
