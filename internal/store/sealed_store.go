package store

import (
	"fmt"
	"sync"

	"shakecalc/internal/domain"
)

// SealedFileName is the default file name for the sealed preference set.
const SealedFileName = domain.PreferencesName + ".sealed"

// SealedFileStore keeps the preference map encrypted under a passphrase.
// Every write re-seals the whole map with a fresh salt.
type SealedFileStore struct {
	path       string
	passphrase string
	params     ScryptParams
	mu         sync.Mutex
}

// NewSealedFileStore returns a sealed store backed by the file at path,
// usually <home>/ShakeCalcPrefs.sealed.
func NewSealedFileStore(path, passphrase string) *SealedFileStore {
	return &SealedFileStore{path: path, passphrase: passphrase, params: DefaultScryptParams}
}

// WithParams overrides the scrypt cost, mainly to keep tests fast.
func (s *SealedFileStore) WithParams(p ScryptParams) *SealedFileStore {
	s.params = p
	return s
}

// Path returns the backing file.
func (s *SealedFileStore) Path() string { return s.path }

// PutString stores value under key and re-seals the file.
func (s *SealedFileStore) PutString(key domain.PreferenceKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs[key] = value

	raw, err := encodePrefs(prefs)
	if err != nil {
		return err
	}
	sealed, err := seal(s.passphrase, raw, s.params)
	if err != nil {
		return fmt.Errorf("seal preferences: %w", err)
	}
	return replacePrefsFile(s.path, sealed)
}

// GetString returns the value under key and whether it was present.
func (s *SealedFileStore) GetString(key domain.PreferenceKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := prefs[key]
	return v, ok, nil
}

func (s *SealedFileStore) load() (prefsMap, error) {
	b, err := readPrefsFile(s.path)
	if err != nil || b == nil {
		return prefsMap{}, err
	}
	raw, err := open(s.passphrase, b)
	if err != nil {
		return nil, err
	}
	return decodePrefs(raw)
}

// Compile-time assertion that SealedFileStore implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*SealedFileStore)(nil)
