package session

import (
	"context"
	"sync"
	"time"
)

// Revocations remembers access tokens invalidated by logout until they
// would have expired anyway.
type Revocations struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewRevocations() *Revocations {
	return &Revocations{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (r *Revocations) Revoke(jti string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[jti] = expiresAt
}

func (r *Revocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt, ok := r.tokens[jti]
	if !ok {
		return false, nil
	}
	if r.now().After(expiresAt) {
		delete(r.tokens, jti)
		return false, nil
	}
	return true, nil
}

// CleanupExpired drops entries whose tokens have expired and returns how
// many were removed.
func (r *Revocations) CleanupExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for jti, expiresAt := range r.tokens {
		if now.After(expiresAt) {
			delete(r.tokens, jti)
			removed++
		}
	}
	return removed
}

// RunCleanup calls CleanupExpired every interval until ctx is cancelled.
func (r *Revocations) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.CleanupExpired()
		}
	}
}
