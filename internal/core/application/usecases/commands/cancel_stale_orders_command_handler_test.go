package commands_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/errs"
)

func TestCancelStaleOrdersCommandHandler_Handle_CancelsEveryStaleOrder(t *testing.T) {
	ctx := t.Context()

	systemActorID := kernel.NewUUID()
	cmd, err := commands.NewCancelStaleOrdersCommand(systemActorID, commands.DefaultStaleOrderAge)
	require.NoError(t, err)

	first := newTestOrder(t, kernel.NewUUID())
	advanceOrderTo(t, first, kernel.NewUUID(), order.Pending)
	second := newTestOrder(t, kernel.NewUUID())
	advanceOrderTo(t, second, kernel.NewUUID(), order.Pending)
	staleOrders := []*order.Order{first, second}

	listOrderRepo := new(MockOrderRepository)
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("OrderRepository").Return(listOrderRepo).Once()
	listOrderRepo.On("GetStaleUnpaid", ctx, mock.AnythingOfType("time.Time")).Return(staleOrders, nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()

	firstRepo := new(MockOrderRepository)
	firstUoW := new(MockUoW)
	firstUoW.On("Begin", ctx).Return(nil).Once()
	firstUoW.On("OrderRepository").Return(firstRepo).Twice()
	firstRepo.On("UpdateStatus", ctx, first, order.Pending).Return(nil).Once()
	firstRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once()
	firstUoW.On("Commit", ctx).Return(nil).Once()
	firstUoW.On("Rollback", ctx).Return(nil).Once()

	secondRepo := new(MockOrderRepository)
	secondUoW := new(MockUoW)
	secondUoW.On("Begin", ctx).Return(nil).Once()
	secondUoW.On("OrderRepository").Return(secondRepo).Twice()
	secondRepo.On("UpdateStatus", ctx, second, order.Pending).Return(nil).Once()
	secondRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once()
	secondUoW.On("Commit", ctx).Return(nil).Once()
	secondUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	handler, err := commands.NewCancelStaleOrdersCommandHandler(factory, zerolog.Nop())
	require.NoError(t, err)

	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	assert.Equal(t, "payment timeout", first.StatusReason())

	factory.AssertExpectations(t)
	firstUoW.AssertExpectations(t)
	secondUoW.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_ConflictSkipsTheOrder(t *testing.T) {
	ctx := t.Context()

	systemActorID := kernel.NewUUID()
	cmd, err := commands.NewCancelStaleOrdersCommand(systemActorID, commands.DefaultStaleOrderAge)
	require.NoError(t, err)

	contested := newTestOrder(t, kernel.NewUUID())
	advanceOrderTo(t, contested, kernel.NewUUID(), order.Pending)
	stale := newTestOrder(t, kernel.NewUUID())
	advanceOrderTo(t, stale, kernel.NewUUID(), order.Pending)

	listOrderRepo := new(MockOrderRepository)
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("OrderRepository").Return(listOrderRepo).Once()
	listOrderRepo.On("GetStaleUnpaid", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{contested, stale}, nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()

	// A producer accepted the first order between the sweep's read and write.
	conflictRepo := new(MockOrderRepository)
	conflictUoW := new(MockUoW)
	conflictUoW.On("Begin", ctx).Return(nil).Once()
	conflictUoW.On("OrderRepository").Return(conflictRepo).Once()
	conflictRepo.On("UpdateStatus", ctx, contested, order.Pending).
		Return(errs.NewInvalidTransitionError("pending", "cancelled")).Once()
	conflictUoW.On("Rollback", ctx).Return(nil).Once()

	staleRepo := new(MockOrderRepository)
	staleUoW := new(MockUoW)
	staleUoW.On("Begin", ctx).Return(nil).Once()
	staleUoW.On("OrderRepository").Return(staleRepo).Twice()
	staleRepo.On("UpdateStatus", ctx, stale, order.Pending).Return(nil).Once()
	staleRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once()
	staleUoW.On("Commit", ctx).Return(nil).Once()
	staleUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(conflictUoW).Once()
	factory.On("Create").Return(staleUoW).Once()

	handler, err := commands.NewCancelStaleOrdersCommandHandler(factory, zerolog.Nop())
	require.NoError(t, err)

	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
	assert.Equal(t, order.Cancelled, stale.Status())

	conflictUoW.AssertNotCalled(t, "Commit", ctx)
	factory.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(kernel.NewUUID(), commands.DefaultStaleOrderAge)
	require.NoError(t, err)

	listOrderRepo := new(MockOrderRepository)
	listUoW := new(MockUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("OrderRepository").Return(listOrderRepo).Once()
	listOrderRepo.On("GetStaleUnpaid", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()

	handler, err := commands.NewCancelStaleOrdersCommandHandler(factory, zerolog.Nop())
	require.NoError(t, err)

	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, cancelled)
	factory.AssertExpectations(t)
}

func TestNewCancelStaleOrdersCommand_Validation(t *testing.T) {
	t.Run("zero_max_age_is_rejected", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, commands.ErrMaxAgeIsInvalid)
	})

	t.Run("empty_actor_is_rejected", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(kernel.UUID{}, time.Hour)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		cmd := commands.CancelStaleOrdersCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	})
}
