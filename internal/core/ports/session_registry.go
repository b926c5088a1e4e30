package ports

import (
	"context"
	"time"

	"printmarket/internal/core/domain/model/kernel"
)

// SessionRegistry tracks issued API sessions so tokens can be revoked
// before they expire. Implementations fall back gracefully: when the
// backing store is unavailable, tokens validate by signature alone.
type SessionRegistry interface {
	// Register records a session for the participant with the token's
	// remaining lifetime.
	Register(ctx context.Context, participantID kernel.UUID, tokenID string, ttl time.Duration) error

	// IsActive reports whether the session is still registered.
	IsActive(ctx context.Context, tokenID string) (bool, error)

	// Revoke removes the session, invalidating its token immediately.
	Revoke(ctx context.Context, tokenID string) error
}
