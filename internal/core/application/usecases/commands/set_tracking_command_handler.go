package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// SetTrackingCommandHandler handles tracking updates by the assigned
// producer. The customer is notified post-commit.
type SetTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewSetTrackingCommandHandler creates a handler for tracking updates.
func NewSetTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger zerolog.Logger,
) SetTrackingCommandHandler {
	return SetTrackingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the tracking update command.
func (h SetTrackingCommandHandler) Handle(ctx context.Context, cmd SetTrackingCommand) error {
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

	producerID := shippedOrder.ProducerID()
	if producerID == nil || !producerID.IsEqual(cmd.ProducerID()) {
		return errs.NewUnauthorizedError("set tracking")
	}

	if err = shippedOrder.SetTracking(cmd.TrackingNumber(), cmd.Carrier(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, shippedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	err = h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationShippingUpdated,
		OrderID:     shippedOrder.ID(),
		RecipientID: shippedOrder.CustomerID(),
		Status:      shippedOrder.Status(),
		Message:     fmt.Sprintf("shipped via %s, tracking %s", cmd.Carrier(), cmd.TrackingNumber()),
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", shippedOrder.ID().String()).
			Msg("failed to notify customer about shipment")
	}

	return nil
}
