package billingrepo

import (
	"context"
	"errors"

	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBillingRepository implements BillingRepository using GORM. Payouts and
// refunds are append-mostly: amounts never change once written.
type GormBillingRepository struct {
	db *gorm.DB
}

// NewGormBillingRepository creates a new GORM billing repository.
func NewGormBillingRepository(db *gorm.DB) *GormBillingRepository {
	return &GormBillingRepository{db: db}
}

// AddPayout persists a newly scheduled payout.
func (r *GormBillingRepository) AddPayout(ctx context.Context, payout *billing.Payout) error {
	if err := payout.Validate(); err != nil {
		return err
	}

	dto := payoutFromDomain(payout)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPayoutByOrder retrieves the payout scheduled for an order.
func (r *GormBillingRepository) GetPayoutByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Payout, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PayoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout", orderID.String())
		}
		return nil, err
	}

	return payoutToDomain(dto)
}

// GetPayoutsByProducer retrieves all payouts for a producer, newest first.
func (r *GormBillingRepository) GetPayoutsByProducer(ctx context.Context, producerID kernel.UUID) ([]*billing.Payout, error) {
	if err := producerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PayoutDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "producer_id = ?", producerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	payouts := make([]*billing.Payout, 0, len(dtos))
	for _, dto := range dtos {
		payout, payoutErr := payoutToDomain(dto)
		if payoutErr != nil {
			return nil, payoutErr
		}
		payouts = append(payouts, payout)
	}

	return payouts, nil
}

// AddRefund persists a newly issued refund.
func (r *GormBillingRepository) AddRefund(ctx context.Context, refund *billing.Refund) error {
	if err := refund.Validate(); err != nil {
		return err
	}

	dto := refundFromDomain(refund)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRefundsByOrder retrieves every refund issued against the order, oldest
// first.
func (r *GormBillingRepository) GetRefundsByOrder(ctx context.Context, orderID kernel.UUID) ([]*billing.Refund, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RefundDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	refunds := make([]*billing.Refund, 0, len(dtos))
	for _, dto := range dtos {
		refund, refundErr := refundToDomain(dto)
		if refundErr != nil {
			return nil, refundErr
		}
		refunds = append(refunds, refund)
	}

	return refunds, nil
}
