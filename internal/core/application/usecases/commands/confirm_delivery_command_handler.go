package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler handles delivery confirmation and the payout
// it triggers.
//
// One transaction carries the whole settlement: the conditional status write,
// the history record, the payout computed from the frozen final price minus
// any refunds, and the producer's fulfillment counters. Re-confirming fails
// on the conditional write and schedules no second payout.
type ConfirmDeliveryCommandHandler struct {
	uowFactory  SettlementUoWFactory
	notifier    ports.Notifier
	payoutDelay time.Duration
	logger      zerolog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation. A non-positive payoutDelay falls back to
// billing.DefaultPayoutDelay.
func NewConfirmDeliveryCommandHandler(
	uowFactory SettlementUoWFactory,
	notifier ports.Notifier,
	payoutDelay time.Duration,
	logger zerolog.Logger,
) ConfirmDeliveryCommandHandler {
	if payoutDelay <= 0 {
		payoutDelay = billing.DefaultPayoutDelay
	}

	return ConfirmDeliveryCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		payoutDelay: payoutDelay,
		logger:      logger,
	}
}

// Handle processes the confirmation command.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	confirmedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !confirmedOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("confirm delivery")
	}

	now := time.Now()
	observed := confirmedOrder.Status()
	record, err := confirmedOrder.ApplyTransition(order.Confirmed, cmd.CustomerID(), "delivery confirmed", now)
	if err != nil {
		return err
	}

	if cmd.HasReview() {
		if err = confirmedOrder.SetReview(cmd.Rating(), cmd.Review(), now); err != nil {
			return err
		}
	}

	if err = orderRepo.UpdateStatus(ctx, confirmedOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	payout, err := h.settle(ctx, uow, confirmedOrder, now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyProducer(ctx, confirmedOrder, payout)

	return nil
}

// settle computes and persists the payout bundle within the caller's
// transaction: the payout row and the producer counters.
func (h ConfirmDeliveryCommandHandler) settle(
	ctx context.Context,
	uow SettlementUoW,
	confirmedOrder *order.Order,
	now time.Time,
) (*billing.Payout, error) {
	producerID := confirmedOrder.ProducerID()
	if producerID == nil {
		return nil, errs.NewPreconditionFailedError("order has no producer to pay out")
	}

	billingRepo := uow.BillingRepository()
	refunds, err := billingRepo.GetRefundsByOrder(ctx, confirmedOrder.ID())
	if err != nil {
		return nil, err
	}

	var totalRefunded float64
	for _, refund := range refunds {
		totalRefunded += refund.Amount()
	}

	quote := confirmedOrder.Quote()
	amounts := billing.ComputeAmounts(quote.FinalPrice, totalRefunded, quote.CommissionRate)

	payout, err := billing.NewPayout(
		kernel.NewUUID(),
		confirmedOrder.ID(),
		*producerID,
		amounts,
		now.Add(h.payoutDelay),
		now,
	)
	if err != nil {
		return nil, err
	}
	if err = billingRepo.AddPayout(ctx, payout); err != nil {
		return nil, err
	}

	participantRepo := uow.ParticipantRepository()
	producer, err := participantRepo.Get(ctx, *producerID)
	if err != nil {
		return nil, err
	}
	producer.RecordConfirmedOrder()
	if err = participantRepo.Update(ctx, producer); err != nil {
		return nil, err
	}

	return payout, nil
}

func (h ConfirmDeliveryCommandHandler) notifyProducer(ctx context.Context, confirmedOrder *order.Order, payout *billing.Payout) {
	err := h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationPayoutScheduled,
		OrderID:     confirmedOrder.ID(),
		RecipientID: payout.ProducerID(),
		Status:      confirmedOrder.Status(),
		Message:     "delivery confirmed, payout scheduled",
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", confirmedOrder.ID().String()).
			Msg("failed to notify producer about confirmation")
	}
}
