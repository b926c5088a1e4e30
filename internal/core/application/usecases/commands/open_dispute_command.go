package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand represents the customer contesting a completed order
// within the dispute window.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a command to open a dispute. The reason is
// mandatory: admins resolve disputes based on it.
func NewOpenDisputeCommand(orderID kernel.UUID, customerID kernel.UUID, reason string) (OpenDisputeCommand, error) {
	disputeCommand := OpenDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		disputeCommand.setOrderID(orderID),
		disputeCommand.setCustomerID(customerID),
		disputeCommand.setReason(reason),
	); err != nil {
		return OpenDisputeCommand{}, err
	}

	return disputeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c OpenDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the disputing customer.
func (c OpenDisputeCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Reason returns the dispute reason.
func (c OpenDisputeCommand) Reason() string {
	return c.reason
}

func (c *OpenDisputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OpenDisputeCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *OpenDisputeCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
