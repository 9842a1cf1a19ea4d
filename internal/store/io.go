package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shakecalc/internal/domain"
)

// prefsMap is one preference set as stored on disk.
type prefsMap map[domain.PreferenceKey]string

// decodePrefs parses a preference set. Empty input is an empty set.
func decodePrefs(b []byte) (prefsMap, error) {
	prefs := prefsMap{}
	if len(b) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(b, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, nil
}

func encodePrefs(prefs prefsMap) ([]byte, error) {
	b, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	return append(b, '\n'), nil
}

// readPrefsFile returns the raw bytes at path, or nil when nothing has been
// saved yet.
func readPrefsFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	return b, nil
}

// replacePrefsFile swaps b in at path through a synced temp file in the same
// directory, so a reader sees either the old set or the new one.
func replacePrefsFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	err = errors.Join(writeAll(f, b), f.Close())
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func writeAll(f *os.File, b []byte) error {
	if err := f.Chmod(0o600); err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}
