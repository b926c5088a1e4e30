package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

// AttachPhotoCommandHandler handles photo attachment.
//
// Preconditions follow the photo type: before/after photos come from the
// assigned producer while the order is paid or in production, evidence
// photos come from the customer once production completed. A before photo
// on a paid order starts production, moving the order to in_production in
// the same transaction.
type AttachPhotoCommandHandler struct {
	uowFactory PhotoUoWFactory
	store      ports.ObjectStore
	notifier   ports.Notifier
	logger     zerolog.Logger
}

// NewAttachPhotoCommandHandler creates a handler for photo attachment.
func NewAttachPhotoCommandHandler(
	uowFactory PhotoUoWFactory,
	store ports.ObjectStore,
	notifier ports.Notifier,
	logger zerolog.Logger,
) AttachPhotoCommandHandler {
	return AttachPhotoCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the photo attachment command.
func (h AttachPhotoCommandHandler) Handle(ctx context.Context, cmd AttachPhotoCommand) error {
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
	photographedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorizeUploader(photographedOrder, cmd); err != nil {
		return err
	}

	if !cmd.PhotoType().CanAttachAt(photographedOrder.Status()) {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"%s photo cannot be attached while the order is %s",
			cmd.PhotoType(), photographedOrder.Status()))
	}

	storageRef, err := h.store.Put(ctx, "photos", cmd.File())
	if err != nil {
		return err
	}

	now := time.Now()
	photo, err := order.NewPhoto(
		cmd.PhotoID(),
		cmd.OrderID(),
		cmd.UploaderID(),
		cmd.PhotoType(),
		storageRef,
		cmd.Caption(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.PhotoRepository().Add(ctx, photo); err != nil {
		return err
	}

	// The first before photo on a paid order marks the start of production.
	if cmd.PhotoType() == order.PhotoTypeBefore && photographedOrder.Status() == order.Paid {
		observed := photographedOrder.Status()
		record, transitionErr := photographedOrder.ApplyTransition(
			order.InProduction, cmd.UploaderID(), "production started", now)
		if transitionErr != nil {
			return transitionErr
		}
		if err = orderRepo.UpdateStatus(ctx, photographedOrder, observed); err != nil {
			return err
		}
		if err = orderRepo.AppendHistory(ctx, record); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	err = h.notifier.Publish(ctx, ports.Notification{
		Kind:        ports.NotificationPhotoAttached,
		OrderID:     photographedOrder.ID(),
		RecipientID: photographedOrder.CustomerID(),
		Status:      photographedOrder.Status(),
		Message:     fmt.Sprintf("%s photo attached", cmd.PhotoType()),
	})
	if err != nil {
		h.logger.Warn().Err(err).
			Str("order_id", photographedOrder.ID().String()).
			Msg("failed to notify about photo attachment")
	}

	return nil
}

func (h AttachPhotoCommandHandler) authorizeUploader(photographedOrder *order.Order, cmd AttachPhotoCommand) error {
	switch cmd.PhotoType() {
	case order.PhotoTypeBefore, order.PhotoTypeAfter:
		producerID := photographedOrder.ProducerID()
		if producerID == nil || !producerID.IsEqual(cmd.UploaderID()) {
			return errs.NewUnauthorizedError("attach production photo")
		}
	case order.PhotoTypeEvidence:
		if !photographedOrder.CustomerID().IsEqual(cmd.UploaderID()) {
			return errs.NewUnauthorizedError("attach evidence photo")
		}
	default:
	}
	return nil
}
