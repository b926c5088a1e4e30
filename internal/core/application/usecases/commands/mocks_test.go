package commands_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"printmarket/internal/core/application/usecases/commands"
	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/material"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/core/domain/model/product"
	"printmarket/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByProducer(ctx context.Context, producerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStaleUnpaid(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AppendHistory(ctx context.Context, record *order.HistoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrderRepository) GetHistory(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.HistoryRecord), args.Error(1)
}

type MockParticipantRepository struct{ mock.Mock }

func (m *MockParticipantRepository) Add(ctx context.Context, aggregate *participant.Participant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParticipantRepository) Update(ctx context.Context, aggregate *participant.Participant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParticipantRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GetByEmail(ctx context.Context, email string) (*participant.Participant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GetAllProducers(ctx context.Context) ([]*participant.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participant.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GetAllAdmins(ctx context.Context) ([]*participant.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*participant.Participant), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetByName(ctx context.Context, name string) (*material.Material, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetAllActive(ctx context.Context) ([]*material.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*material.Material), args.Error(1)
}

type MockBillingRepository struct{ mock.Mock }

func (m *MockBillingRepository) AddPayout(ctx context.Context, payout *billing.Payout) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

func (m *MockBillingRepository) GetPayoutByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Payout, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payout), args.Error(1)
}

func (m *MockBillingRepository) GetPayoutsByProducer(ctx context.Context, producerID kernel.UUID) ([]*billing.Payout, error) {
	args := m.Called(ctx, producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Payout), args.Error(1)
}

func (m *MockBillingRepository) AddRefund(ctx context.Context, refund *billing.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockBillingRepository) GetRefundsByOrder(ctx context.Context, orderID kernel.UUID) ([]*billing.Refund, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Refund), args.Error(1)
}

type MockPhotoRepository struct{ mock.Mock }

func (m *MockPhotoRepository) Add(ctx context.Context, photo *order.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) Update(ctx context.Context, photo *order.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Photo, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Photo), args.Error(1)
}

func (m *MockPhotoRepository) CountByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	photoType order.PhotoType,
) (int, error) {
	args := m.Called(ctx, orderID, photoType)
	return args.Int(0), args.Error(1)
}

func (m *MockPhotoRepository) GetUploadedBefore(ctx context.Context, cutoff time.Time) ([]*order.Photo, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Photo), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ParticipantRepository() ports.ParticipantRepository {
	args := m.Called()
	return args.Get(0).(ports.ParticipantRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

func (m *MockUoW) BillingRepository() ports.BillingRepository {
	args := m.Called()
	return args.Get(0).(ports.BillingRepository)
}

func (m *MockUoW) PhotoRepository() ports.PhotoRepository {
	args := m.Called()
	return args.Get(0).(ports.PhotoRepository)
}

type MockParticipantUoWFactory struct{ mock.Mock }

func (m *MockParticipantUoWFactory) Create() commands.ParticipantUoW {
	args := m.Called()
	return args.Get(0).(commands.ParticipantUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockAcceptUoWFactory struct{ mock.Mock }

func (m *MockAcceptUoWFactory) Create() commands.AcceptUoW {
	args := m.Called()
	return args.Get(0).(commands.AcceptUoW)
}

type MockPhotoUoWFactory struct{ mock.Mock }

func (m *MockPhotoUoWFactory) Create() commands.PhotoUoW {
	args := m.Called()
	return args.Get(0).(commands.PhotoUoW)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockObjectStore struct{ mock.Mock }

func (m *MockObjectStore) Put(ctx context.Context, prefix string, reader io.Reader) (string, error) {
	args := m.Called(ctx, prefix, reader)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePaymentLink(
	ctx context.Context,
	orderID kernel.UUID,
	amount float64,
) (ports.PaymentLink, error) {
	args := m.Called(ctx, orderID, amount)
	return args.Get(0).(ports.PaymentLink), args.Error(1)
}

func (m *MockPaymentGateway) IssueRefund(ctx context.Context, orderID kernel.UUID, amount float64) error {
	args := m.Called(ctx, orderID, amount)
	return args.Error(0)
}
