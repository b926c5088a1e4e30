package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"
)

func newTestAdminWithID(t *testing.T, adminID kernel.UUID) *participant.Participant {
	t.Helper()

	admin, err := participant.NewParticipant(
		adminID, "admin@example.com", "Platform Admin", participant.RoleAdmin, time.Now())
	require.NoError(t, err)

	return admin
}

func newDisputedOrder(t *testing.T, customerID kernel.UUID, producerID kernel.UUID) *order.Order {
	t.Helper()

	disputedOrder := newTestOrder(t, customerID)
	advanceOrderTo(t, disputedOrder, producerID, order.CompletedByProducer)
	_, err := disputedOrder.ApplyTransition(order.DisputeOpen, customerID, "wrong color", time.Now())
	require.NoError(t, err)

	return disputedOrder
}

func TestResolveDisputeCommandHandler_Handle_FullRefund(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	admin := newTestAdminWithID(t, adminID)
	disputedOrder := newDisputedOrder(t, customerID, producerID)

	cmd, err := commands.NewResolveDisputeCommand(
		disputedOrder.ID(), adminID, order.ResolutionRefund, 0, "print unusable")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billingRepo := new(MockBillingRepository)
	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, disputedOrder.ID()).Return(disputedOrder, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*order.Order"), order.DisputeOpen).
			Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("AddRefund", ctx, mock.AnythingOfType("*billing.Refund")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	finalPrice := disputedOrder.Quote().FinalPrice

	gateway := new(MockPaymentGateway)
	gateway.On("IssueRefund", ctx, disputedOrder.ID(), mock.AnythingOfType("float64")).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Twice()

	handler := commands.NewResolveDisputeCommandHandler(factory, gateway, notifier, 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Refunded, disputedOrder.Status())

	recordedRefund := billingRepo.Calls[0].Arguments[1].(*billing.Refund)
	assert.InDelta(t, finalPrice, recordedRefund.Amount(), 0.01)

	orderRepo.AssertExpectations(t)
	billingRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_PartialRefund(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	admin := newTestAdminWithID(t, adminID)
	disputedOrder := newDisputedOrder(t, customerID, producerID)

	cmd, err := commands.NewResolveDisputeCommand(
		disputedOrder.ID(), adminID, order.ResolutionPartialRefund, 7.5, "minor blemish")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billingRepo := new(MockBillingRepository)
	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, disputedOrder.ID()).Return(disputedOrder, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*order.Order"), order.DisputeOpen).
			Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("AddRefund", ctx, mock.AnythingOfType("*billing.Refund")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("IssueRefund", ctx, disputedOrder.ID(), 7.5).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Twice()

	handler := commands.NewResolveDisputeCommandHandler(factory, gateway, notifier, 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PartialRefund, disputedOrder.Status())
	gateway.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_ConfirmPaysTheProducer(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	admin := newTestAdminWithID(t, adminID)
	producer := newTestProducer(t, producerID, "PLA")
	disputedOrder := newDisputedOrder(t, customerID, producerID)

	cmd, err := commands.NewResolveDisputeCommand(
		disputedOrder.ID(), adminID, order.ResolutionConfirm, 0, "print matches the model")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billingRepo := new(MockBillingRepository)
	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, disputedOrder.ID()).Return(disputedOrder, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*order.Order"), order.DisputeOpen).
			Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("GetRefundsByOrder", ctx, disputedOrder.ID()).Return([]*billing.Refund{}, nil).Once(),
		billingRepo.On("AddPayout", ctx, mock.AnythingOfType("*billing.Payout")).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("Get", ctx, producerID).Return(producer, nil).Once(),
		participantRepo.On("Update", ctx, mock.AnythingOfType("*participant.Participant")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockPaymentGateway)

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Twice()

	handler := commands.NewResolveDisputeCommandHandler(factory, gateway, notifier, 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, disputedOrder.Status())
	assert.Equal(t, 1, producer.CompletedOrders())
	gateway.AssertNotCalled(t, "IssueRefund", ctx, mock.Anything, mock.Anything)
	billingRepo.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_NonAdminIsRejected(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	producerActor := newTestProducer(t, actorID, "PLA")
	disputedOrder := newDisputedOrder(t, customerID, producerID)

	cmd, err := commands.NewResolveDisputeCommand(
		disputedOrder.ID(), actorID, order.ResolutionRefund, 0, "in my own favor")
	require.NoError(t, err)

	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("Get", ctx, actorID).Return(producerActor, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDisputeCommandHandler(
		factory, new(MockPaymentGateway), new(MockNotifier), 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestResolveDisputeCommandHandler_Handle_GatewayFailureKeepsTheRecord(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	admin := newTestAdminWithID(t, adminID)
	disputedOrder := newDisputedOrder(t, customerID, producerID)

	cmd, err := commands.NewResolveDisputeCommand(
		disputedOrder.ID(), adminID, order.ResolutionPartialRefund, 3, "small defect")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billingRepo := new(MockBillingRepository)
	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("Get", ctx, adminID).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, disputedOrder.ID()).Return(disputedOrder, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*order.Order"), order.DisputeOpen).
			Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("AddRefund", ctx, mock.AnythingOfType("*billing.Refund")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("IssueRefund", ctx, disputedOrder.ID(), 3.0).
		Return(errors.New("provider unreachable")).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Twice()

	handler := commands.NewResolveDisputeCommandHandler(factory, gateway, notifier, 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PartialRefund, disputedOrder.Status())
	gateway.AssertExpectations(t)
}
