package store

import (
	"sync"

	"shakecalc/internal/domain"
)

// PrefsFileName is the default file name for the JSON preference set.
const PrefsFileName = domain.PreferencesName + ".json"

// PrefsFileStore persists preferences as a JSON object on disk.
type PrefsFileStore struct {
	path string
	mu   sync.Mutex
}

// NewPrefsFileStore returns a store backed by the file at path, usually
// <home>/ShakeCalcPrefs.json.
func NewPrefsFileStore(path string) *PrefsFileStore {
	return &PrefsFileStore{path: path}
}

// Path returns the backing file.
func (s *PrefsFileStore) Path() string { return s.path }

// PutString stores value under key, replacing any previous value.
func (s *PrefsFileStore) PutString(key domain.PreferenceKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs[key] = value
	b, err := encodePrefs(prefs)
	if err != nil {
		return err
	}
	return replacePrefsFile(s.path, b)
}

// GetString returns the value under key and whether it was present.
func (s *PrefsFileStore) GetString(key domain.PreferenceKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := prefs[key]
	return v, ok, nil
}

func (s *PrefsFileStore) load() (prefsMap, error) {
	b, err := readPrefsFile(s.path)
	if err != nil {
		return nil, err
	}
	return decodePrefs(b)
}

// Compile-time assertion that PrefsFileStore implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*PrefsFileStore)(nil)
