package sessionregistry

import (
	"context"
	"sync"
	"time"

	"printmarket/internal/core/domain/model/kernel"
)

// InMemorySessionRegistry implements ports.SessionRegistry with a local map.
// Used when no Redis address is configured and in tests. Safe for concurrent
// use.
type InMemorySessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	participantID kernel.UUID
	expiresAt     time.Time
}

// NewInMemorySessionRegistry creates an empty in-memory session registry.
func NewInMemorySessionRegistry() *InMemorySessionRegistry {
	return &InMemorySessionRegistry{
		sessions: make(map[string]memorySession),
	}
}

// Register records a session with the token's remaining lifetime.
func (r *InMemorySessionRegistry) Register(
	_ context.Context,
	participantID kernel.UUID,
	tokenID string,
	ttl time.Duration,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[tokenID] = memorySession{
		participantID: participantID,
		expiresAt:     time.Now().Add(ttl),
	}
	return nil
}

// IsActive reports whether the session is still registered and not expired.
// Expired entries are removed lazily on lookup.
func (r *InMemorySessionRegistry) IsActive(_ context.Context, tokenID string) (bool, error) {
	r.mu.RLock()
	session, ok := r.sessions[tokenID]
	r.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if time.Now().After(session.expiresAt) {
		r.mu.Lock()
		delete(r.sessions, tokenID)
		r.mu.Unlock()
		return false, nil
	}

	return true, nil
}

// Revoke removes the session, invalidating its token immediately.
func (r *InMemorySessionRegistry) Revoke(_ context.Context, tokenID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, tokenID)
	return nil
}
