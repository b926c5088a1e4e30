package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrMaterialNameIsRequired = errors.New("material name is required")
)

// CreateOrderCommand represents a request to order a fabrication of an
// uploaded model. The handler resolves the product and material, computes
// the frozen pricing snapshot and submits the order to the producer pool.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, productID, "PLA", 0.2, false, "black", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	productID       kernel.UUID
	materialName    string
	infillDensity   float64
	supportRequired bool
	color           string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers and the material name; production options are taken
// as-is because the pricing engine clamps raw values itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	materialName string,
	infillDensity float64,
	supportRequired bool,
	color string,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		infillDensity:   infillDensity,
		supportRequired: supportRequired,
		color:           color,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setProductID(productID),
		orderCommand.setMaterialName(materialName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the model being fabricated.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// MaterialName returns the requested material.
func (c CreateOrderCommand) MaterialName() string {
	return c.materialName
}

// InfillDensity returns the requested infill, raw as entered.
func (c CreateOrderCommand) InfillDensity() float64 {
	return c.infillDensity
}

// SupportRequired reports whether support structures were requested.
func (c CreateOrderCommand) SupportRequired() bool {
	return c.supportRequired
}

// Color returns the requested color.
func (c CreateOrderCommand) Color() string {
	return c.color
}

// Notes returns free-form production notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setMaterialName(materialName string) error {
	if materialName == "" {
		return ErrMaterialNameIsRequired
	}

	c.materialName = materialName
	return nil
}
