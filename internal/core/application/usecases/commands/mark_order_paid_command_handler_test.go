package commands_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	acceptedOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, acceptedOrder, producerID, order.Accepted)

	cmd, err := commands.NewMarkOrderPaidCommand(acceptedOrder.ID(), "pay_123")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, acceptedOrder.ID()).Return(acceptedOrder, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*order.Order"), order.Accepted).
			Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationOrderPaid && n.RecipientID.IsEqual(producerID)
	})).Return(nil).Once()

	handler := commands.NewMarkOrderPaidCommandHandler(factory, notifier, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, acceptedOrder.Status())
	assert.Contains(t, acceptedOrder.StatusReason(), "pay_123")

	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_DuplicateCallbackConflicts(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	paidOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, paidOrder, kernel.NewUUID(), order.Paid)

	cmd, err := commands.NewMarkOrderPaidCommand(paidOrder.ID(), "pay_123")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, paidOrder.ID()).Return(paidOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	handler := commands.NewMarkOrderPaidCommandHandler(factory, notifier, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Publish", ctx, mock.Anything)
}
