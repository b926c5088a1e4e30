package commands

import (
	"errors"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the customer accepting the delivered
// print, optionally leaving a rating and review. Confirmation is terminal
// and triggers the producer payout.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	review     string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery.
// A zero rating means no review is left; otherwise the rating must be within
// the allowed range.
func NewConfirmDeliveryCommand(orderID kernel.UUID, customerID kernel.UUID, rating int, review string) (ConfirmDeliveryCommand, error) {
	confirmCommand := ConfirmDeliveryCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setCustomerID(customerID),
		confirmCommand.setRating(rating),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the confirmed order.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the confirming customer.
func (c ConfirmDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the review rating, zero when no review was left.
func (c ConfirmDeliveryCommand) Rating() int {
	return c.rating
}

// Review returns the review text.
func (c ConfirmDeliveryCommand) Review() string {
	return c.review
}

// HasReview reports whether the customer left a review.
func (c ConfirmDeliveryCommand) HasReview() bool {
	return c.rating != 0
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ConfirmDeliveryCommand) setRating(rating int) error {
	if rating != 0 && (rating < order.RatingMin || rating > order.RatingMax) {
		return errors.New("rating must be between 1 and 5")
	}

	c.rating = rating
	return nil
}
