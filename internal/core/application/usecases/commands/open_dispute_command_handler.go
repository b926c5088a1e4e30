package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// ErrDisputeWindowExpired is returned when the customer tries to dispute an
// order after the window measured from completion has passed.
var ErrDisputeWindowExpired = errs.NewPreconditionFailedError(
	"dispute window has expired",
)

// OpenDisputeCommandHandler handles dispute opening. Customer-only, and only
// within the dispute window measured from confirmation or completion.
// Administrators are the party that resolves disputes, so every admin is
// notified post-commit, along with the assigned producer.
type OpenDisputeCommandHandler struct {
	uowFactory    AcceptUoWFactory
	notifier      ports.Notifier
	disputeWindow time.Duration
	logger        zerolog.Logger
}

// NewOpenDisputeCommandHandler creates a handler for dispute opening. A
// non-positive disputeWindow falls back to order.DefaultDisputeWindow.
func NewOpenDisputeCommandHandler(
	uowFactory AcceptUoWFactory,
	notifier ports.Notifier,
	disputeWindow time.Duration,
	logger zerolog.Logger,
) OpenDisputeCommandHandler {
	if disputeWindow <= 0 {
		disputeWindow = order.DefaultDisputeWindow
	}

	return OpenDisputeCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		disputeWindow: disputeWindow,
		logger:        logger,
	}
}

// Handle processes the dispute opening command.
func (h OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) error {
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
	disputedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !disputedOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("open dispute")
	}
	// State first: an order that was never completed is a transition
	// conflict, not an expired window.
	if !disputedOrder.Status().CanTransitionTo(order.DisputeOpen) {
		return errs.NewInvalidTransitionError(
			disputedOrder.Status().String(), order.DisputeOpen.String())
	}
	if !disputedOrder.WithinDisputeWindow(time.Now(), h.disputeWindow) {
		return ErrDisputeWindowExpired
	}

	observed := disputedOrder.Status()
	record, err := disputedOrder.ApplyTransition(order.DisputeOpen, cmd.CustomerID(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, disputedOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	admins, err := uow.ParticipantRepository().GetAllAdmins(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, admin := range admins {
		h.publishDispute(ctx, disputedOrder, admin.ID(), cmd.Reason())
	}
	if producerID := disputedOrder.ProducerID(); producerID != nil {
		h.publishDispute(ctx, disputedOrder, *producerID, cmd.Reason())
	}

	return nil
}

func (h OpenDisputeCommandHandler) publishDispute(
	ctx context.Context,
	disputedOrder *order.Order,
	recipientID kernel.UUID,
	reason string,
) {
	err := h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationDisputeOpened,
		OrderID:     disputedOrder.ID(),
		RecipientID: recipientID,
		Status:      disputedOrder.Status(),
		Message:     reason,
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", disputedOrder.ID().String()).
			Str("recipient_id", recipientID.String()).
			Msg("failed to notify about dispute")
	}
}
