package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
)

var ErrCancelStaleOrdersCommandHandlerIsNotConstructed = errors.New(
	"CancelStaleOrdersCommandHandler must be created via NewCancelStaleOrdersCommandHandler constructor",
)

// CancelStaleOrdersCommandHandler cancels unpaid orders older than the
// command's age threshold. Each order is cancelled in its own transaction
// so a conflict on one does not block the rest of the sweep.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     zerolog.Logger
}

func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger zerolog.Logger,
) (CancelStaleOrdersCommandHandler, error) {
	if uowFactory == nil {
		return CancelStaleOrdersCommandHandler{}, errors.New("uowFactory must not be nil")
	}

	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}, nil
}

// Handle cancels every unpaid order that has been waiting for payment
// longer than the command's max age. Returns the number of orders
// cancelled.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now()
	cutoff := now.Add(-cmd.MaxAge())

	staleOrders, err := h.listStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0

	for _, staleOrder := range staleOrders {
		if err = h.cancelOne(ctx, cmd, staleOrder, now); err != nil {
			// A concurrent payment or acceptance may have moved the order
			// on. Log and continue with the rest of the sweep.
			h.logger.Warn().
				Err(err).
				Str("order_id", staleOrder.ID().String()).
				Msg("failed to cancel stale order")

			continue
		}

		cancelled++
	}

	return cancelled, nil
}

func (h CancelStaleOrdersCommandHandler) listStale(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().GetStaleUnpaid(ctx, cutoff)
}

func (h CancelStaleOrdersCommandHandler) cancelOne(
	ctx context.Context,
	cmd CancelStaleOrdersCommand,
	staleOrder *order.Order,
	now time.Time,
) error {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() { _ = uow.Rollback(ctx) }()

	observed := staleOrder.Status()

	record, err := staleOrder.ApplyTransition(order.Cancelled, cmd.SystemActorID(), "payment timeout", now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateStatus(ctx, staleOrder, observed); err != nil {
		return err
	}

	if err = uow.OrderRepository().AppendHistory(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
