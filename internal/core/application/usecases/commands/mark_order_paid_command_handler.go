package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
)

// MarkOrderPaidCommandHandler handles the payment provider callback.
// The conditional status write makes duplicate callbacks harmless: the
// second one observes paid and fails with a transition conflict.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewMarkOrderPaidCommandHandler creates a handler for payment callbacks.
func NewMarkOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger zerolog.Logger,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the payment confirmation.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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
	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	reason := "payment received"
	if cmd.PaymentReference() != "" {
		reason = fmt.Sprintf("payment received (ref %s)", cmd.PaymentReference())
	}

	observed := paidOrder.Status()
	record, err := paidOrder.ApplyTransition(order.Paid, paidOrder.CustomerID(), reason, time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, paidOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if producerID := paidOrder.ProducerID(); producerID != nil {
		err = h.notifier.Publish(ctx, ports.Notification{
			Kind:        ports.NotificationOrderPaid,
			OrderID:     paidOrder.ID(),
			RecipientID: *producerID,
			Status:      paidOrder.Status(),
			Message:     "order paid, production can start",
		})
		if err != nil {
			h.logger.Warn().Err(err).
				Str("order_id", paidOrder.ID().String()).
				Msg("failed to notify producer about payment")
		}
	}

	return nil
}
