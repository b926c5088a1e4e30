package commands

import (
	"errors"
	"fmt"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand represents an admin settling an open dispute: in
// the producer's favor (confirmed), the customer's favor (refunded), or a
// split (partial refund of a supplied amount).
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	adminID      kernel.UUID
	resolution   order.DisputeResolution
	refundAmount float64
	reason       string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a dispute.
// The refund amount is only meaningful for a partial refund and must then be
// positive; full refunds take the order's frozen final price.
func NewResolveDisputeCommand(
	orderID kernel.UUID,
	adminID kernel.UUID,
	resolution order.DisputeResolution,
	refundAmount float64,
	reason string,
) (ResolveDisputeCommand, error) {
	resolveCommand := ResolveDisputeCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resolveCommand.setOrderID(orderID),
		resolveCommand.setAdminID(adminID),
		resolveCommand.setResolution(resolution, refundAmount),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c ResolveDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AdminID returns the resolving admin.
func (c ResolveDisputeCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Resolution returns the chosen outcome.
func (c ResolveDisputeCommand) Resolution() order.DisputeResolution {
	return c.resolution
}

// RefundAmount returns the partial refund amount, zero otherwise.
func (c ResolveDisputeCommand) RefundAmount() float64 {
	return c.refundAmount
}

// Reason returns the resolution justification.
func (c ResolveDisputeCommand) Reason() string {
	return c.reason
}

func (c *ResolveDisputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveDisputeCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *ResolveDisputeCommand) setResolution(resolution order.DisputeResolution, refundAmount float64) error {
	if err := resolution.Validate(); err != nil {
		return err
	}
	if resolution == order.ResolutionPartialRefund && refundAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("refundAmount",
			fmt.Errorf("%f is not a valid partial refund amount", refundAmount))
	}

	c.resolution = resolution
	c.refundAmount = refundAmount
	return nil
}
