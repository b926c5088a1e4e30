package commands

import (
	"context"
	"time"

	"printmarket/internal/pkg/errs"
)

// SetShippingInfoCommandHandler handles shipping detail updates by the
// ordering customer.
type SetShippingInfoCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetShippingInfoCommandHandler creates a handler for shipping updates.
func NewSetShippingInfoCommandHandler(uowFactory OrderUoWFactory) SetShippingInfoCommandHandler {
	return SetShippingInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping update command.
func (h SetShippingInfoCommandHandler) Handle(ctx context.Context, cmd SetShippingInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shippedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !shippedOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("set shipping info")
	}
	if shippedOrder.Status().IsTerminal() {
		return errs.NewPreconditionFailedError("shipping info cannot change on a closed order")
	}

	if err = shippedOrder.SetShippingInfo(cmd.Address(), cmd.Method(), cmd.Fee(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, shippedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
