package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// ResolveDisputeCommandHandler handles admin dispute resolution.
//
// A resolution in the producer's favor confirms the order and triggers the
// same payout bundle as a customer confirmation. Refund outcomes write a
// Refund row in the resolution transaction; the money movement itself is
// requested from the gateway post-commit and retried by operations if it
// fails, so the recorded state is the source of truth.
type ResolveDisputeCommandHandler struct {
	uowFactory  SettlementUoWFactory
	gateway     ports.PaymentGateway
	notifier    ports.Notifier
	payoutDelay time.Duration
	logger      zerolog.Logger
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
// A non-positive payoutDelay falls back to billing.DefaultPayoutDelay.
func NewResolveDisputeCommandHandler(
	uowFactory SettlementUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	payoutDelay time.Duration,
	logger zerolog.Logger,
) ResolveDisputeCommandHandler {
	if payoutDelay <= 0 {
		payoutDelay = billing.DefaultPayoutDelay
	}

	return ResolveDisputeCommandHandler{
		uowFactory:  uowFactory,
		gateway:     gateway,
		notifier:    notifier,
		payoutDelay: payoutDelay,
		logger:      logger,
	}
}

// Handle processes the dispute resolution command.
func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
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

	admin, err := uow.ParticipantRepository().Get(ctx, cmd.AdminID())
	if err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return errs.NewUnauthorizedError("resolve dispute")
	}

	orderRepo := uow.OrderRepository()
	disputedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	target, err := cmd.Resolution().TargetStatus()
	if err != nil {
		return err
	}

	now := time.Now()
	observed := disputedOrder.Status()
	record, err := disputedOrder.ApplyTransition(target, cmd.AdminID(), cmd.Reason(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, disputedOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	refundAmount, err := h.applyOutcome(ctx, uow, disputedOrder, cmd, now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if refundAmount > 0 {
		if err = h.gateway.IssueRefund(ctx, disputedOrder.ID(), refundAmount); err != nil {
			h.logger.Error().Err(err).
				Str("order_id", disputedOrder.ID().String()).
				Float64("amount", refundAmount).
				Msg("refund recorded but gateway call failed, needs operator retry")
		}
	}

	h.notifyParties(ctx, disputedOrder, cmd)

	return nil
}

// applyOutcome writes the settlement rows for the chosen resolution inside
// the caller's transaction and returns the amount to refund via the gateway.
func (h ResolveDisputeCommandHandler) applyOutcome(
	ctx context.Context,
	uow SettlementUoW,
	disputedOrder *order.Order,
	cmd ResolveDisputeCommand,
	now time.Time,
) (float64, error) {
	switch cmd.Resolution() {
	case order.ResolutionConfirm:
		return 0, h.settleConfirmed(ctx, uow, disputedOrder, now)

	case order.ResolutionRefund:
		return h.recordRefund(ctx, uow, disputedOrder, disputedOrder.Quote().FinalPrice, cmd.Reason(), now)

	case order.ResolutionPartialRefund:
		return h.recordRefund(ctx, uow, disputedOrder, cmd.RefundAmount(), cmd.Reason(), now)

	default:
		return 0, cmd.Resolution().Validate()
	}
}

func (h ResolveDisputeCommandHandler) recordRefund(
	ctx context.Context,
	uow SettlementUoW,
	disputedOrder *order.Order,
	amount float64,
	reason string,
	now time.Time,
) (float64, error) {
	refund, err := billing.NewRefund(kernel.NewUUID(), disputedOrder.ID(), amount, reason, now)
	if err != nil {
		return 0, err
	}
	if err = uow.BillingRepository().AddRefund(ctx, refund); err != nil {
		return 0, err
	}
	return refund.Amount(), nil
}

// settleConfirmed mirrors the confirmation payout bundle for disputes closed
// in the producer's favor.
func (h ResolveDisputeCommandHandler) settleConfirmed(
	ctx context.Context,
	uow SettlementUoW,
	disputedOrder *order.Order,
	now time.Time,
) error {
	producerID := disputedOrder.ProducerID()
	if producerID == nil {
		return errs.NewPreconditionFailedError("order has no producer to pay out")
	}

	billingRepo := uow.BillingRepository()
	refunds, err := billingRepo.GetRefundsByOrder(ctx, disputedOrder.ID())
	if err != nil {
		return err
	}

	var totalRefunded float64
	for _, refund := range refunds {
		totalRefunded += refund.Amount()
	}

	quote := disputedOrder.Quote()
	amounts := billing.ComputeAmounts(quote.FinalPrice, totalRefunded, quote.CommissionRate)

	payout, err := billing.NewPayout(
		kernel.NewUUID(),
		disputedOrder.ID(),
		*producerID,
		amounts,
		now.Add(h.payoutDelay),
		now,
	)
	if err != nil {
		return err
	}
	if err = billingRepo.AddPayout(ctx, payout); err != nil {
		return err
	}

	participantRepo := uow.ParticipantRepository()
	producer, err := participantRepo.Get(ctx, *producerID)
	if err != nil {
		return err
	}
	producer.RecordConfirmedOrder()

	return participantRepo.Update(ctx, producer)
}

func (h ResolveDisputeCommandHandler) notifyParties(ctx context.Context, disputedOrder *order.Order, cmd ResolveDisputeCommand) {
	message := fmt.Sprintf("dispute resolved: %s", cmd.Resolution())

	recipients := []kernel.UUID{disputedOrder.CustomerID()}
	if producerID := disputedOrder.ProducerID(); producerID != nil {
		recipients = append(recipients, *producerID)
	}

	for _, recipient := range recipients {
		err := h.notifier.Publish(ctx, ports.Notification{
			Kind:        ports.NotificationDisputeResolved,
			OrderID:     disputedOrder.ID(),
			RecipientID: recipient,
			Status:      disputedOrder.Status(),
			Message:     message,
		})
		if err != nil {
			h.logger.Warn().Err(err).
				Str("order_id", disputedOrder.ID().String()).
				Msg("failed to notify about dispute resolution")
		}
	}
}
