package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a confirmed payment, normally triggered by
// the payment provider's callback. Moves accepted→paid and flips the payment
// status.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	paymentReference string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command recording a completed payment.
// The payment reference is the provider's transaction id, kept in the audit
// trail.
func NewMarkOrderPaidCommand(orderID kernel.UUID, paymentReference string) (MarkOrderPaidCommand, error) {
	paidCommand := MarkOrderPaidCommand{
		paymentReference: paymentReference,
		guard:            guard.NewConstructorGuard(),
	}

	if err := paidCommand.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return paidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the paid order.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentReference returns the provider transaction id.
func (c MarkOrderPaidCommand) PaymentReference() string {
	return c.paymentReference
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
