package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"shakecalc/internal/domain"
)

// SQLiteFileName is the default database file name.
const SQLiteFileName = "prefs.db"

// SQLiteStore keeps preferences in one table of a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes ordered and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS preferences (
		prefs_name TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (prefs_name, key)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}
	return nil
}

// PutString upserts value under key.
func (s *SQLiteStore) PutString(key domain.PreferenceKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO preferences (prefs_name, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (prefs_name, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		domain.PreferencesName, key.String(), value)
	if err != nil {
		return fmt.Errorf("failed to store preference %s: %w", key, err)
	}
	return nil
}

// GetString returns the value under key and whether it was present.
func (s *SQLiteStore) GetString(key domain.PreferenceKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow(
		`SELECT value FROM preferences WHERE prefs_name = ? AND key = ?`,
		domain.PreferencesName, key.String(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load preference %s: %w", key, err)
	}
	return value, true, nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ domain.PreferenceStore = (*SQLiteStore)(nil)
