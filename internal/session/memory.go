package session

import (
	"sync"
	"time"
)

// MemoryStore keeps the session token in process memory.
// This is the default store for single-instance deployments and tests.
type MemoryStore struct {
	mu      sync.Mutex
	token   Token
	present bool

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now: time.Now,
	}
}

func (s *MemoryStore) Get() (Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.present
}

func (s *MemoryStore) Set(token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.present = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = Token{}
	s.present = false
	return nil
}

func (s *MemoryStore) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.present || s.token.AccessToken == "" {
		return false
	}

	return s.now().Before(s.token.ExpiresAt)
}
