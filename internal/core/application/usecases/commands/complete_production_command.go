package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var ErrCompleteProductionCommandIsNotConstructed = errors.New(
	"CompleteProductionCommand must be created via NewCompleteProductionCommand constructor",
)

// CompleteProductionCommand represents the producer declaring the print
// finished. Requires at least one after photo as delivery evidence.
type CompleteProductionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	producerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteProductionCommand creates a command to mark production complete.
func NewCompleteProductionCommand(orderID kernel.UUID, producerID kernel.UUID) (CompleteProductionCommand, error) {
	completeCommand := CompleteProductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setProducerID(producerID),
	); err != nil {
		return CompleteProductionCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProductionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProductionCommandIsNotConstructed)
}

// OrderID returns the finished order.
func (c CompleteProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProducerID returns the completing producer.
func (c CompleteProductionCommand) ProducerID() kernel.UUID {
	return c.producerID
}

func (c *CompleteProductionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteProductionCommand) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return err
	}

	c.producerID = producerID
	return nil
}
