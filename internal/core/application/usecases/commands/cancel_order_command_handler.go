package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated cancellation.
// Only the ordering customer may cancel; the lifecycle table restricts
// cancellation to draft, pending and accepted orders.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger zerolog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !cancelledOrder.CustomerID().IsEqual(cmd.ActorID()) {
		return errs.NewUnauthorizedError("cancel order")
	}

	observed := cancelledOrder.Status()
	record, err := cancelledOrder.ApplyTransition(order.Cancelled, cmd.ActorID(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, cancelledOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if producerID := cancelledOrder.ProducerID(); producerID != nil {
		err = h.notifier.Publish(ctx, ports.Notification{
			Kind:        ports.NotificationOrderCancelled,
			OrderID:     cancelledOrder.ID(),
			RecipientID: *producerID,
			Status:      cancelledOrder.Status(),
			Message:     cmd.Reason(),
		})
		if err != nil {
			h.logger.Warn().Err(err).
				Str("order_id", cancelledOrder.ID().String()).
				Msg("failed to notify producer about cancellation")
		}
	}

	return nil
}
