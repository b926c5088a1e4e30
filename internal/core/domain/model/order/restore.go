package order

import (
	"time"

	"printmarket/internal/core/domain/model/kernel"
)

// RestoreOrderParams carries every persisted field of an order for
// reconstruction from storage. It exists only for the persistence layer.
type RestoreOrderParams struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	ProducerID *kernel.UUID

	EstimatedDeliveryAt *time.Time

	ProductID    kernel.UUID
	MaterialID   kernel.UUID
	MaterialName string

	InfillDensity   float64
	SupportRequired bool
	Color           string
	Notes           string

	Quote Quote

	Status        Status
	PaymentStatus PaymentStatus

	StatusChangedAt time.Time
	StatusChangedBy kernel.UUID
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
	TrackingCarrier string
	ShippedAt       *time.Time

	Rating *int
	Review string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder reconstructs an Order from persisted state without reapplying
// creation-time rules. The identifier and status are still validated, so a
// corrupted row surfaces as an error instead of an invalid aggregate.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if err := params.CustomerID.Validate(); err != nil {
		return nil, err
	}
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                   params.ID,
		customerID:           params.CustomerID,
		producerID:           params.ProducerID,
		estimatedDeliveryAt:  params.EstimatedDeliveryAt,
		productID:            params.ProductID,
		materialID:           params.MaterialID,
		materialName:         params.MaterialName,
		infillDensity:        params.InfillDensity,
		supportRequired:      params.SupportRequired,
		color:                params.Color,
		notes:                params.Notes,
		quote:                params.Quote,
		status:               params.Status,
		paymentStatus:        params.PaymentStatus,
		statusChangedAt:      params.StatusChangedAt,
		statusChangedBy:      params.StatusChangedBy,
		statusReason:         params.StatusReason,
		paidAt:               params.PaidAt,
		completedAt:          params.CompletedAt,
		disputeOpenedAt:      params.DisputeOpenedAt,
		confirmedAt:          params.ConfirmedAt,
		paymentLinkURL:       params.PaymentLinkURL,
		paymentLinkExpiresAt: params.PaymentLinkExpiresAt,
		shippingAddress:      params.ShippingAddress,
		shippingMethod:       params.ShippingMethod,
		shippingFee:          params.ShippingFee,
		trackingNumber:       params.TrackingNumber,
		trackingCarrier:      params.TrackingCarrier,
		shippedAt:            params.ShippedAt,
		rating:               params.Rating,
		review:               params.Review,
		createdAt:            params.CreatedAt,
		updatedAt:            params.UpdatedAt,
		isConstructed:        true,
	}, nil
}
