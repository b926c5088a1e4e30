package ports

import (
	"context"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
)

// ParticipantRepository defines the persistence contract for participant
// aggregates. Provides methods for storing, retrieving and querying
// participants with their complete state including printers and supported
// materials.
type ParticipantRepository interface {
	// Add persists a new participant aggregate to storage.
	// The participant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *participant.Participant) error

	// Update persists changes to an existing participant aggregate,
	// including fulfillment counters, printers and supported materials.
	Update(ctx context.Context, aggregate *participant.Participant) error

	// Get retrieves a participant aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error)

	// GetByEmail retrieves a participant by email. Emails are unique.
	GetByEmail(ctx context.Context, email string) (*participant.Participant, error)

	// GetAllProducers retrieves every participant holding the producer
	// role, with printers and materials loaded. Used to build the
	// matching pool for new orders.
	GetAllProducers(ctx context.Context) ([]*participant.Participant, error)

	// GetAllAdmins retrieves every participant holding the admin role.
	// Used to fan out notifications that require an administrator to act.
	GetAllAdmins(ctx context.Context) ([]*participant.Participant, error)
}
