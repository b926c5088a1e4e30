package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles a producer claiming a pending order.
//
// The pending→accepted transition is written conditionally on the observed
// status, so when several producers race for the same order exactly one
// commit succeeds and the others fail with errs.ErrInvalidTransition.
//
// Post-commit, a payment link is requested from the gateway and persisted in
// a follow-up transaction. A gateway failure is logged, not propagated: the
// accepted state stands and the link can be recreated later.
type AcceptOrderCommandHandler struct {
	uowFactory AcceptUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory AcceptUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	logger zerolog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order acceptance command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	if !producer.IsProducer() {
		return errs.NewUnauthorizedError("accept order")
	}

	orderRepo := uow.OrderRepository()
	claimedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !producer.SupportsMaterial(claimedOrder.MaterialName()) {
		return errs.NewPreconditionFailedError("producer does not support the order's material")
	}

	observed := claimedOrder.Status()
	now := time.Now()
	record, err := claimedOrder.ApplyTransition(order.Accepted, cmd.ProducerID(), "accepted by producer", now)
	if err != nil {
		return err
	}
	if err = claimedOrder.AssignProducer(cmd.ProducerID(), cmd.EstimatedDelivery()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, claimedOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.attachPaymentLink(ctx, claimedOrder)
	h.notifyCustomer(ctx, claimedOrder)

	return nil
}

// attachPaymentLink requests a checkout link and persists it outside the
// acceptance transaction. Failures leave the order accepted without a link.
func (h AcceptOrderCommandHandler) attachPaymentLink(ctx context.Context, acceptedOrder *order.Order) {
	link, err := h.gateway.CreatePaymentLink(ctx, acceptedOrder.ID(), acceptedOrder.Quote().FinalPrice)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", acceptedOrder.ID().String()).
			Msg("failed to create payment link, order stays accepted without one")
		return
	}

	if err = acceptedOrder.SetPaymentLink(link.URL, link.ExpiresAt, time.Now()); err != nil {
		h.logger.Error().Err(err).
			Str("order_id", acceptedOrder.ID().String()).
			Msg("payment link rejected by order")
		return
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.logger.Error().Err(err).Msg("failed to open transaction for payment link")
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, acceptedOrder); err != nil {
		h.logger.Error().Err(err).
			Str("order_id", acceptedOrder.ID().String()).
			Msg("failed to persist payment link")
		return
	}
	if err = uow.Commit(ctx); err != nil {
		h.logger.Error().Err(err).
			Str("order_id", acceptedOrder.ID().String()).
			Msg("failed to commit payment link")
	}
}

func (h AcceptOrderCommandHandler) notifyCustomer(ctx context.Context, acceptedOrder *order.Order) {
	err := h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationOrderAccepted,
		OrderID:     acceptedOrder.ID(),
		RecipientID: acceptedOrder.CustomerID(),
		Status:      acceptedOrder.Status(),
		Message:     "a producer accepted your order",
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", acceptedOrder.ID().String()).
			Msg("failed to notify customer about acceptance")
	}
}
