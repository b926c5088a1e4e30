package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// CompleteProductionCommandHandler handles the in_production→
// completed_by_producer transition. The move requires at least one after
// photo: the customer decides on confirmation or dispute based on it, so a
// completion without evidence is rejected.
type CompleteProductionCommandHandler struct {
	uowFactory PhotoUoWFactory
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewCompleteProductionCommandHandler creates a handler for production completion.
func NewCompleteProductionCommandHandler(
	uowFactory PhotoUoWFactory,
	notifier ports.Notifier,
	logger zerolog.Logger,
) CompleteProductionCommandHandler {
	return CompleteProductionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the completion command.
func (h CompleteProductionCommandHandler) Handle(ctx context.Context, cmd CompleteProductionCommand) error {
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
	finishedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	producerID := finishedOrder.ProducerID()
	if producerID == nil || !producerID.IsEqual(cmd.ProducerID()) {
		return errs.NewUnauthorizedError("complete production")
	}

	afterPhotos, err := uow.PhotoRepository().CountByOrderAndType(ctx, cmd.OrderID(), order.PhotoTypeAfter)
	if err != nil {
		return err
	}
	if afterPhotos == 0 {
		return errs.NewPreconditionFailedError("at least one after photo is required to complete production")
	}

	observed := finishedOrder.Status()
	record, err := finishedOrder.ApplyTransition(
		order.CompletedByProducer, cmd.ProducerID(), "production completed", time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, finishedOrder, observed); err != nil {
		return err
	}
	if err = orderRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	err = h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationOrderCompleted,
		OrderID:     finishedOrder.ID(),
		RecipientID: finishedOrder.CustomerID(),
		Status:      finishedOrder.Status(),
		Message:     "your order is ready, confirm delivery or open a dispute",
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", finishedOrder.ID().String()).
			Msg("failed to notify customer about completion")
	}

	return nil
}
