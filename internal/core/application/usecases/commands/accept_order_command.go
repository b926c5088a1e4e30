package commands

import (
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrDeliveryEstimateIsInvalid = errors.New("delivery estimate must be in the future")
)

// AcceptOrderCommand represents a producer claiming a pending order from the
// pool. Exactly one of N concurrent accepts wins; the rest fail with a
// transition conflict.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	producerID        kernel.UUID
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a producer to accept an order,
// committing to the given delivery estimate.
func NewAcceptOrderCommand(orderID kernel.UUID, producerID kernel.UUID, estimatedDelivery time.Time) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setProducerID(producerID),
		acceptCommand.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProducerID returns the accepting producer.
func (c AcceptOrderCommand) ProducerID() kernel.UUID {
	return c.producerID
}

// EstimatedDelivery returns the producer's committed delivery estimate.
func (c AcceptOrderCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return err
	}

	c.producerID = producerID
	return nil
}

func (c *AcceptOrderCommand) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if !estimatedDelivery.After(time.Now()) {
		return ErrDeliveryEstimateIsInvalid
	}

	c.estimatedDelivery = estimatedDelivery
	return nil
}
