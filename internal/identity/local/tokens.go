package local

import (
	"context"
	"sync"
	"time"
)

// TokenStore keeps track of issued session tokens so a logout can revoke
// them before they expire.
type TokenStore interface {
	Store(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	Revoke(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type MemoryTokenStore struct {
	mu      sync.Mutex
	issued  map[string]time.Time
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		issued:  make(map[string]time.Time),
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryTokenStore) Store(_ context.Context, _ string, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.issued[tokenID] = s.now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, _ string, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.issued, tokenID)
	s.revoked[tokenID] = s.now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(_ context.Context, tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	return ok && s.now().Before(until)
}

// sweep drops expired entries. Caller holds mu.
func (s *MemoryTokenStore) sweep() {
	now := s.now()
	for id, exp := range s.issued {
		if !now.Before(exp) {
			delete(s.issued, id)
		}
	}
	for id, exp := range s.revoked {
		if !now.Before(exp) {
			delete(s.revoked, id)
		}
	}
}
