package auth

import (
	"context"
	"sync"
)

// TokenStore is the set of currently valid session tokens. A token is
// either present (active) or absent (revoked); there is no expiry.
type TokenStore interface {
	Insert(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
}

// MemoryTokenStore keeps tokens in process memory. State does not
// survive a restart, which also revokes every outstanding session.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

func (s *MemoryTokenStore) Insert(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *MemoryTokenStore) Contains(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok, nil
}

// Remove is idempotent: removing an absent token is not an error.
func (s *MemoryTokenStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
