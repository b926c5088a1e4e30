package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// RejectOrderCommand represents a producer declining a pending order with a
// reason the customer will see.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	producerID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject a pending order.
// The reason is mandatory: a rejection without explanation is not actionable
// for the customer.
func NewRejectOrderCommand(orderID kernel.UUID, producerID kernel.UUID, reason string) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setProducerID(producerID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order being rejected.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProducerID returns the rejecting producer.
func (c RejectOrderCommand) ProducerID() kernel.UUID {
	return c.producerID
}

// Reason returns the rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return err
	}

	c.producerID = producerID
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
