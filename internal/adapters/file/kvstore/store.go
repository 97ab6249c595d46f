// Package kvstore implements the local key-value port on a single JSON file,
// giving the session slot durability across process restarts.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is a file-backed implementation of kvstore.Store. The whole store is
// one JSON object rewritten atomically (temp file + rename) on every put, so
// a crash mid-write leaves either the old or the new state, never a torn one.
// It is safe for concurrent use within one process; the file is private to
// this client install.
type Store struct {
	path string

	mu      sync.RWMutex
	bools   map[string]bool
	strings map[string]string
}

type fileState struct {
	Bools   map[string]bool   `json:"bools,omitempty"`
	Strings map[string]string `json:"strings,omitempty"`
}

// Open loads the store at path, creating parent directories as needed.
// A missing file is an empty store, not an error.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    path,
		bools:   make(map[string]bool),
		strings: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading kv store %s: %w", path, err)
	}

	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing kv store %s: %w", path, err)
	}
	if st.Bools != nil {
		s.bools = st.Bools
	}
	if st.Strings != nil {
		s.strings = st.Strings
	}
	return s, nil
}

func (s *Store) PutBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools[key] = value
	return s.flushLocked()
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
	return s.flushLocked()
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
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	data, err := json.Marshal(fileState{Bools: s.bools, Strings: s.strings})
	if err != nil {
		return fmt.Errorf("encoding kv store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating kv store dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing kv store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing kv store: %w", err)
	}
	return nil
}
