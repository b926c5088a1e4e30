package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// RejectOrderCommandHandler handles a producer declining a pending order.
// The rejection is terminal; the customer is notified post-commit.
type RejectOrderCommandHandler struct {
	uowFactory AcceptUoWFactory
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(
	uowFactory AcceptUoWFactory,
	notifier ports.Notifier,
	logger zerolog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order rejection command.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	producer, err := uow.ParticipantRepository().Get(ctx, cmd.ProducerID())
	if err != nil {
		return err
	}
	if !producer.IsProducer() && !producer.IsAdmin() {
		return errs.NewUnauthorizedError("reject order")
	}

	orderRepo := uow.OrderRepository()
	rejectedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observed := rejectedOrder.Status()
	record, err := rejectedOrder.ApplyTransition(order.Rejected, cmd.ProducerID(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, rejectedOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	err = h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationOrderRejected,
		OrderID:     rejectedOrder.ID(),
		RecipientID: rejectedOrder.CustomerID(),
		Status:      rejectedOrder.Status(),
		Message:     cmd.Reason(),
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", rejectedOrder.ID().String()).
			Msg("failed to notify customer about rejection")
	}

	return nil
}
