// Package billingrepo provides data transfer objects and mapping functions
// for payout and refund persistence.
package billingrepo

import (
	"time"

	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PayoutDTO represents the database structure for persisting payouts.
type PayoutDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	ProducerID       uuid.UUID `gorm:"type:uuid;index"`
	Amount           float64   `gorm:"not null"`
	CommissionAmount float64   `gorm:"not null"`
	RefundDeduction  float64   `gorm:"not null"`
	Status           string    `gorm:"type:varchar(32);not null"`
	ScheduledDate    time.Time
	CreatedAt        time.Time
}

// TableName specifies the database table name for payout entities.
func (PayoutDTO) TableName() string {
	return "payouts"
}

// RefundDTO represents the database structure for persisting refunds.
type RefundDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64   `gorm:"not null"`
	Reason    string
	Status    string `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for refund entities.
func (RefundDTO) TableName() string {
	return "refunds"
}

// payoutFromDomain converts a payout domain entity to its database
// representation.
func payoutFromDomain(payout *billing.Payout) PayoutDTO {
	return PayoutDTO{
		ID:               payout.ID().Bytes(),
		OrderID:          payout.OrderID().Bytes(),
		ProducerID:       payout.ProducerID().Bytes(),
		Amount:           payout.Amount(),
		CommissionAmount: payout.CommissionAmount(),
		RefundDeduction:  payout.RefundDeduction(),
		Status:           payout.Status().String(),
		ScheduledDate:    payout.ScheduledDate(),
		CreatedAt:        payout.CreatedAt(),
	}
}

// payoutToDomain converts a database DTO to a payout domain entity.
func payoutToDomain(dto PayoutDTO) (*billing.Payout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	producerID, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	status, err := billing.PayoutStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return billing.RestorePayout(
		id,
		orderID,
		producerID,
		dto.Amount,
		dto.CommissionAmount,
		dto.RefundDeduction,
		status,
		dto.ScheduledDate,
		dto.CreatedAt,
	)
}

// refundFromDomain converts a refund domain entity to its database
// representation.
func refundFromDomain(refund *billing.Refund) RefundDTO {
	return RefundDTO{
		ID:        refund.ID().Bytes(),
		OrderID:   refund.OrderID().Bytes(),
		Amount:    refund.Amount(),
		Reason:    refund.Reason(),
		Status:    refund.Status().String(),
		CreatedAt: refund.CreatedAt(),
	}
}

// refundToDomain converts a database DTO to a refund domain entity.
func refundToDomain(dto RefundDTO) (*billing.Refund, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := billing.RefundStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return billing.RestoreRefund(id, orderID, dto.Amount, dto.Reason, status, dto.CreatedAt)
}
