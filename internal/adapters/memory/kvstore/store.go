package kvstore

import "sync"

// Store is an in-memory implementation of kvstore.Store. It is safe for
// concurrent use and is the test substitute for the file-backed store.
type Store struct {
	mu      sync.RWMutex
	bools   map[string]bool
	strings map[string]string
}

func NewStore() *Store {
	return &Store{
		bools:   make(map[string]bool),
		strings: make(map[string]string),
	}
}

func (s *Store) PutBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools[key] = value
	return nil
}

func (s *Store) GetBool(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bools[key], nil
}

func (s *Store) PutString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings[key] = value
	return nil
}

func (s *Store) GetString(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.strings[key]
	return v, ok, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools = make(map[string]bool)
	s.strings = make(map[string]string)
	return nil
}
