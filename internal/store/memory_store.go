package store

import (
	"sync"

	"shakecalc/internal/domain"
)

// MemoryStore keeps preferences in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	prefs map[domain.PreferenceKey]string
	puts  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[domain.PreferenceKey]string)}
}

func (s *MemoryStore) PutString(key domain.PreferenceKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[key] = value
	s.puts++
	return nil
}

func (s *MemoryStore) GetString(key domain.PreferenceKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.prefs[key]
	return v, ok, nil
}

// Puts returns how many writes the store has seen.
func (s *MemoryStore) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

var _ domain.PreferenceStore = (*MemoryStore)(nil)
