package commands

import (
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

// DefaultStaleOrderAge is how long an unpaid order may sit in pending or
// accepted before the cleanup job cancels it.
const DefaultStaleOrderAge = 30 * 24 * time.Hour

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CancelStaleOrdersCommand triggers cancellation of unpaid orders that have
// been waiting for payment longer than the given age. Job-driven.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	systemActorID kernel.UUID
	maxAge        time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale unpaid
// orders. The system actor is the platform account recorded in the audit
// trail for automatic cancellations.
func NewCancelStaleOrdersCommand(systemActorID kernel.UUID, maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staleCommand.setSystemActorID(systemActorID),
		staleCommand.setMaxAge(maxAge),
	); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// SystemActorID returns the platform account performing the cancellations.
func (c CancelStaleOrdersCommand) SystemActorID() kernel.UUID {
	return c.systemActorID
}

// MaxAge returns the stale threshold.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStaleOrdersCommand) setSystemActorID(systemActorID kernel.UUID) error {
	if err := systemActorID.Validate(); err != nil {
		return err
	}

	c.systemActorID = systemActorID
	return nil
}

func (c *CancelStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
