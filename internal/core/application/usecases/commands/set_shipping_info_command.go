package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var (
	ErrSetShippingInfoCommandIsNotConstructed = errors.New(
		"SetShippingInfoCommand must be created via NewSetShippingInfoCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// SetShippingInfoCommand represents the customer providing or changing the
// delivery address for an order. A narrow field update, no status change.
type SetShippingInfoCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	address    string
	method     string
	fee        float64

	guard guard.ConstructorGuard
}

// NewSetShippingInfoCommand creates a command to set shipping details.
func NewSetShippingInfoCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	address string,
	method string,
	fee float64,
) (SetShippingInfoCommand, error) {
	shippingCommand := SetShippingInfoCommand{
		method: method,
		fee:    fee,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shippingCommand.setOrderID(orderID),
		shippingCommand.setCustomerID(customerID),
		shippingCommand.setAddress(address),
	); err != nil {
		return SetShippingInfoCommand{}, err
	}

	return shippingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShippingInfoCommand) Validate() error {
	return c.guard.Validate(ErrSetShippingInfoCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c SetShippingInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer.
func (c SetShippingInfoCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery address.
func (c SetShippingInfoCommand) Address() string {
	return c.address
}

// Method returns the shipping method.
func (c SetShippingInfoCommand) Method() string {
	return c.method
}

// Fee returns the shipping fee.
func (c SetShippingInfoCommand) Fee() float64 {
	return c.fee
}

func (c *SetShippingInfoCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetShippingInfoCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SetShippingInfoCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
