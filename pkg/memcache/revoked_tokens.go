package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers refresh token ids that were logged out until the
// token itself would have expired.
type RevokedTokenStore interface {
	Revoke(tokenID string, ttl time.Duration)
	IsRevoked(tokenID string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.data[tokenID] = s.now().Add(ttl)
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[tokenID]
	return ok && s.now().Before(expiresAt)
}

// purgeLocked drops entries whose tokens have expired anyway.
func (s *RevokedTokens) purgeLocked() {
	now := s.now()
	for id, expiresAt := range s.data {
		if !now.Before(expiresAt) {
			delete(s.data, id)
		}
	}
}
