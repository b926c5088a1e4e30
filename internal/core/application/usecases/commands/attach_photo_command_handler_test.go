package commands_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/errs"
)

func TestAttachPhotoCommandHandler_Handle_BeforePhotoStartsProduction(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()

	paidOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, paidOrder, producerID, order.Paid)

	cmd, err := commands.NewAttachPhotoCommand(
		kernel.NewUUID(), paidOrder.ID(), producerID, order.PhotoTypeBefore,
		"bed prepared", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	photoRepo := new(MockPhotoRepository)
	store := new(MockObjectStore)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, paidOrder.ID()).Return(paidOrder, nil).Once(),
		store.On("Put", ctx, "photos", mock.Anything).Return("photos/abc", nil).Once(),
		uow.On("PhotoRepository").Return(photoRepo).Once(),
		photoRepo.On("Add", ctx, mock.AnythingOfType("*order.Photo")).Return(nil).Once(),
		orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*order.Order"), order.Paid).Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPhotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	handler := commands.NewAttachPhotoCommandHandler(factory, store, notifier, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProduction, paidOrder.Status())

	addedPhoto := photoRepo.Calls[0].Arguments[1].(*order.Photo)
	assert.Equal(t, order.PhotoTypeBefore, addedPhoto.Type())
	assert.Equal(t, "photos/abc", addedPhoto.StorageRef())
	assert.Equal(t, "bed prepared", addedPhoto.Caption())

	orderRepo.AssertExpectations(t)
	photoRepo.AssertExpectations(t)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAttachPhotoCommandHandler_Handle_AfterPhotoDoesNotChangeStatus(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()

	activeOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, activeOrder, producerID, order.InProduction)

	cmd, err := commands.NewAttachPhotoCommand(
		kernel.NewUUID(), activeOrder.ID(), producerID, order.PhotoTypeAfter,
		"", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	photoRepo := new(MockPhotoRepository)
	store := new(MockObjectStore)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, activeOrder.ID()).Return(activeOrder, nil).Once(),
		store.On("Put", ctx, "photos", mock.Anything).Return("photos/def", nil).Once(),
		uow.On("PhotoRepository").Return(photoRepo).Once(),
		photoRepo.On("Add", ctx, mock.AnythingOfType("*order.Photo")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPhotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	handler := commands.NewAttachPhotoCommandHandler(factory, store, notifier, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProduction, activeOrder.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
}

func TestAttachPhotoCommandHandler_Handle_EvidenceFromProducerIsRejected(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()

	completedOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, completedOrder, producerID, order.CompletedByProducer)

	cmd, err := commands.NewAttachPhotoCommand(
		kernel.NewUUID(), completedOrder.ID(), producerID, order.PhotoTypeEvidence,
		"", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	store := new(MockObjectStore)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, completedOrder.ID()).Return(completedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPhotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachPhotoCommandHandler(factory, store, new(MockNotifier), zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	store.AssertNotCalled(t, "Put", ctx, mock.Anything, mock.Anything)
}

func TestAttachPhotoCommandHandler_Handle_BeforePhotoOnUnpaidOrderIsRejected(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()

	pendingOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, pendingOrder, producerID, order.Accepted)

	cmd, err := commands.NewAttachPhotoCommand(
		kernel.NewUUID(), pendingOrder.ID(), producerID, order.PhotoTypeBefore,
		"", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	store := new(MockObjectStore)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPhotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachPhotoCommandHandler(factory, store, new(MockNotifier), zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	store.AssertNotCalled(t, "Put", ctx, mock.Anything, mock.Anything)
}

func TestAttachPhotoCommandHandler_Handle_ProductionPhotoFromStrangerIsRejected(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()

	paidOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, paidOrder, producerID, order.Paid)

	cmd, err := commands.NewAttachPhotoCommand(
		kernel.NewUUID(), paidOrder.ID(), kernel.NewUUID(), order.PhotoTypeBefore,
		"", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, paidOrder.ID()).Return(paidOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPhotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachPhotoCommandHandler(
		factory, new(MockObjectStore), new(MockNotifier), zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
