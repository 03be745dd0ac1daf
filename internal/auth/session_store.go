package auth

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// sessionKey is the fixed name the remembered identity is stored under,
// mirroring the single localStorage slot of the original dashboard.
const sessionKey = "user"

type SessionStore interface {
	Get() (Identity, bool)
	Set(identity Identity) error
	Clear() error
}

// fileSessionStore persists the remembered identity as a small JSON file.
// Get on a missing or unreadable file reports "no session" rather than an
// error; a stale slot must never block startup.
type fileSessionStore struct {
	path string
	mu   sync.Mutex
}

func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Get() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Identity{}, false
	}

	var slot map[string]Identity
	if err := json.Unmarshal(data, &slot); err != nil {
		return Identity{}, false
	}

	identity, ok := slot[sessionKey]
	return identity, ok
}

func (s *fileSessionStore) Set(identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(map[string]Identity{sessionKey: identity})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
