package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process session store for dev deployments and tests.
// Sessions never expire; use the Redis store anywhere real.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string // token -> account id
}

// NewMemoryStore seeds the store with static token -> account id pairs
// (typically from the dev_sessions config block). seed may be nil.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	sessions := make(map[string]string, len(seed))
	for token, accountID := range seed {
		sessions[token] = accountID
	}
	return &MemoryStore{sessions: sessions}
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token], nil
}

// Mint creates a session for accountID and returns its token.
func (s *MemoryStore) Mint(accountID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = accountID
	s.mu.Unlock()
	return token
}
