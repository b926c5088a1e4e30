package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var (
	ErrSetTrackingCommandIsNotConstructed = errors.New(
		"SetTrackingCommand must be created via NewSetTrackingCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// SetTrackingCommand represents the producer recording the shipment's
// tracking reference, marking the order as shipped.
type SetTrackingCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	producerID     kernel.UUID
	trackingNumber string
	carrier        string

	guard guard.ConstructorGuard
}

// NewSetTrackingCommand creates a command to record tracking details.
func NewSetTrackingCommand(
	orderID kernel.UUID,
	producerID kernel.UUID,
	trackingNumber string,
	carrier string,
) (SetTrackingCommand, error) {
	trackingCommand := SetTrackingCommand{
		carrier: carrier,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackingCommand.setOrderID(orderID),
		trackingCommand.setProducerID(producerID),
		trackingCommand.setTrackingNumber(trackingNumber),
	); err != nil {
		return SetTrackingCommand{}, err
	}

	return trackingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSetTrackingCommandIsNotConstructed)
}

// OrderID returns the shipped order.
func (c SetTrackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProducerID returns the shipping producer.
func (c SetTrackingCommand) ProducerID() kernel.UUID {
	return c.producerID
}

// TrackingNumber returns the carrier tracking number.
func (c SetTrackingCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Carrier returns the shipping carrier.
func (c SetTrackingCommand) Carrier() string {
	return c.carrier
}

func (c *SetTrackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetTrackingCommand) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return err
	}

	c.producerID = producerID
	return nil
}

func (c *SetTrackingCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
