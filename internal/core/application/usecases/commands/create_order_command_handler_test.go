package commands_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/material"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/core/domain/services"
	"printmarket/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	testProduct := newTestProduct(t, customerID)
	testMaterial, err := material.NewMaterial(kernel.NewUUID(), "PLA", 0.08, 1.24)
	require.NoError(t, err)
	producers := []*participant.Participant{newTestProducer(t, producerID, "PLA")}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, testProduct.ID(), "PLA", 0.2, false, "black", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	participantRepo := new(MockParticipantRepository)
	productRepo := new(MockProductRepository)
	materialRepo := new(MockMaterialRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("GetByName", ctx, "PLA").Return(testMaterial, nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("GetAllProducers", ctx).Return(producers, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), notifier, 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, addedOrder.Status())
	assert.Equal(t, customerID, addedOrder.CustomerID())
	assert.Equal(t, "PLA", addedOrder.MaterialName())
	assert.Positive(t, addedOrder.Quote().FinalPrice)
	assert.Nil(t, addedOrder.ProducerID())

	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ConfiguredCommissionFreezesIntoQuote(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	producerID := kernel.NewUUID()
	testProduct := newTestProduct(t, customerID)
	testMaterial, err := material.NewMaterial(kernel.NewUUID(), "PLA", 0.08, 1.24)
	require.NoError(t, err)
	producers := []*participant.Participant{newTestProducer(t, producerID, "PLA")}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, testProduct.ID(), "PLA", 0.2, false, "black", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	participantRepo := new(MockParticipantRepository)
	productRepo := new(MockProductRepository)
	materialRepo := new(MockMaterialRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("GetByName", ctx, "PLA").Return(testMaterial, nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("GetAllProducers", ctx).Return(producers, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), notifier, 0.05, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.InDelta(t, 0.05, addedOrder.Quote().CommissionRate, 1e-9)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockCreateOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), new(MockNotifier), 0, zerolog.Nop())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, productID, "PLA", 0.2, false, "black", "")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), new(MockNotifier), 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_InactiveMaterial(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testProduct := newTestProduct(t, customerID)
	retiredMaterial, err := material.RestoreMaterial(kernel.NewUUID(), "PLA", 0.08, 1.24, false)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, testProduct.ID(), "PLA", 0.2, false, "black", "")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	materialRepo := new(MockMaterialRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("GetByName", ctx, "PLA").Return(retiredMaterial, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), new(MockNotifier), 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_NoProducerAvailable(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testProduct := newTestProduct(t, customerID)
	testMaterial, err := material.NewMaterial(kernel.NewUUID(), "PLA", 0.08, 1.24)
	require.NoError(t, err)

	// The only producer in the pool prints a different material.
	producers := []*participant.Participant{newTestProducer(t, kernel.NewUUID(), "PETG")}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, testProduct.ID(), "PLA", 0.2, false, "black", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	participantRepo := new(MockParticipantRepository)
	productRepo := new(MockProductRepository)
	materialRepo := new(MockMaterialRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("GetByName", ctx, "PLA").Return(testMaterial, nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("GetAllProducers", ctx).Return(producers, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), new(MockNotifier), 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoProducerAvailable)
	orderRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_NotifyFailureDoesNotFailCommand(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	testProduct := newTestProduct(t, customerID)
	testMaterial, err := material.NewMaterial(kernel.NewUUID(), "PLA", 0.08, 1.24)
	require.NoError(t, err)
	producers := []*participant.Participant{newTestProducer(t, kernel.NewUUID(), "PLA")}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, testProduct.ID(), "PLA", 0.2, false, "black", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	participantRepo := new(MockParticipantRepository)
	productRepo := new(MockProductRepository)
	materialRepo := new(MockMaterialRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		materialRepo.On("GetByName", ctx, "PLA").Return(testMaterial, nil).Once(),
		uow.On("ParticipantRepository").Return(participantRepo).Once(),
		participantRepo.On("GetAllProducers", ctx).Return(producers, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*order.HistoryRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).
		Return(errors.New("broker unavailable")).Once()

	handler := commands.NewCreateOrderCommandHandler(
		factory, services.NewProducerMatcher(), notifier, 0, zerolog.Nop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
