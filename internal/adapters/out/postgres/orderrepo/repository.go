package orderrepo

import (
	"context"
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database without status conditions.
// Status transitions must go through UpdateStatus instead.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus writes the aggregate conditionally on the stored status still
// being the expected one. When another transition landed first no row matches
// and the conflict surfaces as an invalid transition error, so exactly one of
// N concurrent transitions wins.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidTransitionError(expected.String(), aggregate.Status().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all orders placed by the customer, newest first.
func (r *GormOrderRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByProducer retrieves all orders assigned to the producer, newest first.
func (r *GormOrderRepository) GetByProducer(
	ctx context.Context,
	producerID kernel.UUID,
) ([]*order.Order, error) {
	if err := producerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "producer_id = ?", producerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStaleUnpaid retrieves unpaid pending or accepted orders whose last
// status change happened before the cutoff.
func (r *GormOrderRepository) GetStaleUnpaid(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{order.Pending.String(), order.Accepted.String()}).
		Where("payment_status = ?", order.PaymentUnpaid.String()).
		Where("status_changed_at < ?", cutoff).
		Order("status_changed_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AppendHistory persists one audit record of a status transition.
func (r *GormOrderRepository) AppendHistory(ctx context.Context, record *order.HistoryRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHistory retrieves the full transition history of an order in
// chronological order.
func (r *GormOrderRepository) GetHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.HistoryRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*order.HistoryRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := historyToDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
