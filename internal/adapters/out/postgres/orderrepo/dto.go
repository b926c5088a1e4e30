// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string form so rows stay readable and the
// reporting queries can filter without mapping integers.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	ProducerID *uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID  `gorm:"type:uuid"`
	MaterialID uuid.UUID  `gorm:"type:uuid"`

	MaterialName    string
	InfillDensity   float64
	SupportRequired bool
	Color           string
	Notes           string

	Quote QuoteDTO `gorm:"embedded"`

	Status        string `gorm:"index"`
	PaymentStatus string

	StatusChangedAt time.Time
	StatusChangedBy uuid.UUID `gorm:"type:uuid"`
	StatusReason    string

	PaidAt          *time.Time
	CompletedAt     *time.Time
	DisputeOpenedAt *time.Time
	ConfirmedAt     *time.Time

	PaymentLinkURL       string
	PaymentLinkExpiresAt *time.Time

	ShippingAddress string
	ShippingMethod  string
	ShippingFee     float64
	TrackingNumber  string
	Carrier         string
	ShippedAt       *time.Time

	EstimatedDeliveryAt *time.Time

	Rating *int
	Review string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// QuoteDTO is the pricing snapshot embedded in the order row.
type QuoteDTO struct {
	FinalPrice       float64
	ProducerEarnings float64
	CommissionAmount float64
	PaymentFee       float64
	CommissionRate   float64

	MaterialCost     float64
	TimeCost         float64
	SupportCost      float64
	ProducerBaseCost float64
	ProducerMargin   float64
	ProducerSubtotal float64
}

// HistoryDTO represents one append-only status transition record.
type HistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus string
	ToStatus   string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Reason     string
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for history records.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var producerID *uuid.UUID
	if id := aggregate.ProducerID(); id != nil {
		raw := id.Bytes()
		producerID = &raw
	}

	quote := aggregate.Quote()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		ProducerID: producerID,
		ProductID:  aggregate.ProductID().Bytes(),
		MaterialID: aggregate.MaterialID().Bytes(),

		MaterialName:    aggregate.MaterialName(),
		InfillDensity:   aggregate.InfillDensity(),
		SupportRequired: aggregate.SupportRequired(),
		Color:           aggregate.Color(),
		Notes:           aggregate.Notes(),

		Quote: QuoteDTO{
			FinalPrice:       quote.FinalPrice,
			ProducerEarnings: quote.ProducerEarnings,
			CommissionAmount: quote.CommissionAmount,
			PaymentFee:       quote.PaymentFee,
			CommissionRate:   quote.CommissionRate,

			MaterialCost:     quote.Breakdown.MaterialCost,
			TimeCost:         quote.Breakdown.TimeCost,
			SupportCost:      quote.Breakdown.SupportCost,
			ProducerBaseCost: quote.Breakdown.ProducerBaseCost,
			ProducerMargin:   quote.Breakdown.ProducerMargin,
			ProducerSubtotal: quote.Breakdown.ProducerSubtotal,
		},

		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),

		StatusChangedAt: aggregate.StatusChangedAt(),
		StatusChangedBy: aggregate.StatusChangedBy().Bytes(),
		StatusReason:    aggregate.StatusReason(),

		PaidAt:          aggregate.PaidAt(),
		CompletedAt:     aggregate.CompletedAt(),
		DisputeOpenedAt: aggregate.DisputeOpenedAt(),
		ConfirmedAt:     aggregate.ConfirmedAt(),

		PaymentLinkURL:       aggregate.PaymentLinkURL(),
		PaymentLinkExpiresAt: aggregate.PaymentLinkExpiresAt(),

		ShippingAddress: aggregate.ShippingAddress(),
		ShippingMethod:  aggregate.ShippingMethod(),
		ShippingFee:     aggregate.ShippingFee(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Carrier:         aggregate.TrackingCarrier(),
		ShippedAt:       aggregate.ShippedAt(),

		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),

		Rating: aggregate.Rating(),
		Review: aggregate.Review(),

		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var producerID *kernel.UUID
	if dto.ProducerID != nil {
		pID, producerErr := kernel.UUIDFromBytes((*dto.ProducerID)[:])
		if producerErr != nil {
			return nil, producerErr
		}
		producerID = &pID
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	materialID, err := kernel.UUIDFromBytes(dto.MaterialID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	statusChangedBy, err := kernel.UUIDFromBytes(dto.StatusChangedBy[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:         id,
		CustomerID: customerID,
		ProducerID: producerID,

		EstimatedDeliveryAt: dto.EstimatedDeliveryAt,

		ProductID:    productID,
		MaterialID:   materialID,
		MaterialName: dto.MaterialName,

		InfillDensity:   dto.InfillDensity,
		SupportRequired: dto.SupportRequired,
		Color:           dto.Color,
		Notes:           dto.Notes,

		Quote: order.Quote{
			FinalPrice:       dto.Quote.FinalPrice,
			ProducerEarnings: dto.Quote.ProducerEarnings,
			CommissionAmount: dto.Quote.CommissionAmount,
			PaymentFee:       dto.Quote.PaymentFee,
			CommissionRate:   dto.Quote.CommissionRate,
			Breakdown: pricing.Breakdown{
				MaterialCost:     dto.Quote.MaterialCost,
				TimeCost:         dto.Quote.TimeCost,
				SupportCost:      dto.Quote.SupportCost,
				ProducerBaseCost: dto.Quote.ProducerBaseCost,
				ProducerMargin:   dto.Quote.ProducerMargin,
				ProducerSubtotal: dto.Quote.ProducerSubtotal,
			},
		},

		Status:        status,
		PaymentStatus: paymentStatus,

		StatusChangedAt: dto.StatusChangedAt,
		StatusChangedBy: statusChangedBy,
		StatusReason:    dto.StatusReason,

		PaidAt:          dto.PaidAt,
		CompletedAt:     dto.CompletedAt,
		DisputeOpenedAt: dto.DisputeOpenedAt,
		ConfirmedAt:     dto.ConfirmedAt,

		PaymentLinkURL:       dto.PaymentLinkURL,
		PaymentLinkExpiresAt: dto.PaymentLinkExpiresAt,

		ShippingAddress: dto.ShippingAddress,
		ShippingMethod:  dto.ShippingMethod,
		ShippingFee:     dto.ShippingFee,
		TrackingNumber:  dto.TrackingNumber,
		TrackingCarrier: dto.Carrier,
		ShippedAt:       dto.ShippedAt,

		Rating: dto.Rating,
		Review: dto.Review,

		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}

// historyFromDomain converts a history record to its database representation.
func historyFromDomain(record *order.HistoryRecord) HistoryDTO {
	return HistoryDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.OrderID().Bytes(),
		FromStatus: record.FromStatus().String(),
		ToStatus:   record.ToStatus().String(),
		ActorID:    record.ActorID().Bytes(),
		Reason:     record.Reason(),
		CreatedAt:  record.CreatedAt(),
	}
}

// historyToDomain converts a database DTO to a history record.
func historyToDomain(dto HistoryDTO) (*order.HistoryRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	fromStatus, err := order.StatusFromString(dto.FromStatus)
	if err != nil {
		return nil, err
	}

	toStatus, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryRecord(id, orderID, fromStatus, toStatus, actorID, dto.Reason, dto.CreatedAt)
}
