package queries

import (
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its status history and photos.
// Only the order's customer, its assigned producer, and platform admins may
// view it.
type GetOrderQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order viewed by the actor.
func NewGetOrderQuery(orderID kernel.UUID, actorID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the participant requesting the order.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetOrderQueryHistoryEntry is one recorded status transition.
type GetOrderQueryHistoryEntry struct {
	FromStatus string
	ToStatus   string
	ActorID    kernel.UUID
	Reason     string
	CreatedAt  time.Time
}

// GetOrderQueryPhotoEntry is one photo attached to the order.
type GetOrderQueryPhotoEntry struct {
	ID         kernel.UUID
	UploaderID kernel.UUID
	Type       string
	StorageRef string
	Caption    string
	UploadedAt time.Time
	Archived   bool
}

// GetOrderQueryResponse is the full order view.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	ProducerID          *kernel.UUID
	ProductID           kernel.UUID
	MaterialName        string
	Color               string
	InfillDensity       float64
	SupportRequired     bool
	Notes               string
	Status              string
	PaymentStatus       string
	StatusReason        string
	PaymentLinkURL      string
	EstimatedDeliveryAt *time.Time
	TrackingNumber      string
	Carrier             string
	Rating              *int
	Review              string
	FinalPrice          float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	History             []GetOrderQueryHistoryEntry
	Photos              []GetOrderQueryPhotoEntry
}
