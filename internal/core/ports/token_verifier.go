package ports

import (
	"context"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
)

// Actor is the authenticated identity behind a request.
type Actor struct {
	ParticipantID kernel.UUID
	Role          participant.Role
	TokenID       string
}

// TokenVerifier turns a bearer token into an authenticated actor.
// Implementations return errors wrapping errs.ErrUnauthorized for invalid,
// expired or revoked tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Actor, error)
}
