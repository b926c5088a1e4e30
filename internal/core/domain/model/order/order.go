package order

import (
	"errors"
	"fmt"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// DefaultDisputeWindow is how long after completion (or confirmation) a
// customer may still open a dispute.
const DefaultDisputeWindow = 7 * 24 * time.Hour

// Rating bounds for the customer review left at confirmation.
const (
	RatingMin = 1
	RatingMax = 5
)

// Order represents a fabrication order in the marketplace. It is the aggregate
// root that manages the order lifecycle from draft through the producer pool,
// payment, production and confirmation or dispute.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, product and material
//   - The pricing snapshot is frozen at creation time and never recomputed
//   - Status changes only through ApplyTransition, which enforces the
//     lifecycle table and records an audit history entry
//   - Orders are never deleted; cancellation and refunds are terminal
//     statuses, not removals
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// producerID is the fulfilling producer (nil until a producer accepts).
	producerID *kernel.UUID

	// estimatedDeliveryAt is the ETA the producer committed to at accept.
	estimatedDeliveryAt *time.Time

	productID    kernel.UUID
	materialID   kernel.UUID
	materialName string

	infillDensity   float64
	supportRequired bool
	color           string
	notes           string

	// quote is the pricing snapshot frozen at creation time.
	quote Quote

	status        Status
	paymentStatus PaymentStatus

	statusChangedAt time.Time
	statusChangedBy kernel.UUID
	statusReason    string

	paidAt          *time.Time
	completedAt     *time.Time
	disputeOpenedAt *time.Time
	confirmedAt     *time.Time

	paymentLinkURL       string
	paymentLinkExpiresAt *time.Time

	shippingAddress string
	shippingMethod  string
	shippingFee     float64
	trackingNumber  string
	trackingCarrier string
	shippedAt       *time.Time

	// rating and review are left by the customer at confirmation.
	rating *int
	review string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Draft status with validation. This is the
// only way to create a valid new Order, ensuring all business invariants are
// maintained. The caller submits the order to the pool via ApplyTransition to
// Pending.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the ordering customer
//   - productID: the uploaded model this order fabricates
//   - materialID, materialName: the chosen material reference
//   - infillDensity: requested infill, raw value as quoted
//   - supportRequired: whether support structures were quoted
//   - color, notes: free-form production wishes
//   - quote: the frozen pricing snapshot
//   - now: creation timestamp
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	materialID kernel.UUID,
	materialName string,
	infillDensity float64,
	supportRequired bool,
	color string,
	notes string,
	quote Quote,
	now time.Time,
) (*Order, error) {
	order := &Order{
		materialName:    materialName,
		infillDensity:   infillDensity,
		supportRequired: supportRequired,
		color:           color,
		notes:           notes,
		quote:           quote,
		status:          Draft,
		paymentStatus:   PaymentUnpaid,
		statusChangedAt: now,
		statusChangedBy: customerID,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setProductID(productID),
		order.setMaterialID(materialID),
	); err != nil {
		return nil, err
	}

	if quote.FinalPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quote",
			fmt.Errorf("final price %f is negative", quote.FinalPrice))
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ProducerID returns the fulfilling producer's identifier.
// Returns nil while the order sits unclaimed in the pool.
func (o *Order) ProducerID() *kernel.UUID {
	return o.producerID
}

// ProductID returns the identifier of the uploaded model being fabricated.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// MaterialID returns the chosen material's identifier.
func (o *Order) MaterialID() kernel.UUID {
	return o.materialID
}

// MaterialName returns the chosen material's display name, denormalized for
// pool matching.
func (o *Order) MaterialName() string {
	return o.materialName
}

// InfillDensity returns the requested infill density as quoted.
func (o *Order) InfillDensity() float64 {
	return o.infillDensity
}

// SupportRequired reports whether support structures were quoted.
func (o *Order) SupportRequired() bool {
	return o.supportRequired
}

// Color returns the requested print color.
func (o *Order) Color() string {
	return o.color
}

// Notes returns the customer's free-form production notes.
func (o *Order) Notes() string {
	return o.notes
}

// Quote returns the pricing snapshot frozen at creation time.
func (o *Order) Quote() Quote {
	return o.quote
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// StatusChangedAt returns when the last transition was applied.
func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// StatusChangedBy returns the actor of the last transition.
func (o *Order) StatusChangedBy() kernel.UUID {
	return o.statusChangedBy
}

// StatusReason returns the free-form reason of the last transition, if any.
func (o *Order) StatusReason() string {
	return o.statusReason
}

// PaidAt returns when payment was received, nil before that.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// CompletedAt returns when the producer reported completion, nil before that.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// DisputeOpenedAt returns when a dispute was opened, nil if none was.
func (o *Order) DisputeOpenedAt() *time.Time {
	return o.disputeOpenedAt
}

// ConfirmedAt returns when the customer confirmed delivery, nil before that.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// PaymentLinkURL returns the payment link handed to the customer, if any.
func (o *Order) PaymentLinkURL() string {
	return o.paymentLinkURL
}

// PaymentLinkExpiresAt returns the payment link expiry, nil if no link exists.
func (o *Order) PaymentLinkExpiresAt() *time.Time {
	return o.paymentLinkExpiresAt
}

// ShippingAddress returns the delivery address, empty until set.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// ShippingMethod returns the chosen shipping method, empty until set.
func (o *Order) ShippingMethod() string {
	return o.shippingMethod
}

// EstimatedDeliveryAt returns the producer's delivery estimate, nil until a
// producer accepts.
func (o *Order) EstimatedDeliveryAt() *time.Time {
	return o.estimatedDeliveryAt
}

// ShippingFee returns the shipping fee, zero until set.
func (o *Order) ShippingFee() float64 {
	return o.shippingFee
}

// TrackingNumber returns the carrier tracking number, empty until set.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// TrackingCarrier returns the shipping carrier, empty until set.
func (o *Order) TrackingCarrier() string {
	return o.trackingCarrier
}

// ShippedAt returns when tracking was recorded, nil until the producer ships.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// Rating returns the customer rating, nil until a review is left.
func (o *Order) Rating() *int {
	return o.rating
}

// Review returns the customer review text, empty until a review is left.
func (o *Order) Review() string {
	return o.review
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignProducer records the producer claiming this order and the delivery
// estimate they committed to. It does not change status; callers pair it with
// an ApplyTransition to Accepted.
func (o *Order) AssignProducer(producerID kernel.UUID, estimatedDelivery time.Time) error {
	if err := producerID.Validate(); err != nil {
		return err
	}
	o.producerID = &producerID
	eta := estimatedDelivery
	o.estimatedDeliveryAt = &eta
	return nil
}

// ApplyTransition moves the order to the target status.
//
// The move is validated against the lifecycle table; an illegal pair fails
// with an error wrapping errs.ErrInvalidTransition and leaves the order
// untouched. On success the per-transition timestamp, actor and reason fields
// are updated, payment status is kept in sync for payment-affecting targets,
// and an immutable history record describing the transition is returned for
// the caller to append to the audit trail.
//
// Parameters:
//   - target: the desired status
//   - actorID: the user performing the transition
//   - reason: optional free-form justification, kept in the audit trail
//   - at: the transition timestamp
func (o *Order) ApplyTransition(target Status, actorID kernel.UUID, reason string, at time.Time) (*HistoryRecord, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return nil, err
	}

	from := o.status
	o.status = newStatus
	o.statusChangedAt = at
	o.statusChangedBy = actorID
	o.statusReason = reason
	o.updatedAt = at

	switch newStatus {
	case Paid:
		t := at
		o.paidAt = &t
		o.paymentStatus = PaymentPaid
	case CompletedByProducer:
		t := at
		o.completedAt = &t
	case DisputeOpen:
		t := at
		o.disputeOpenedAt = &t
	case Confirmed:
		t := at
		o.confirmedAt = &t
	case Refunded:
		o.paymentStatus = PaymentRefunded
	case PartialRefund:
		o.paymentStatus = PaymentPartiallyRefunded
	default:
	}

	return NewHistoryRecord(o.id, from, newStatus, actorID, reason, at)
}

// SetPaymentLink stores the payment link created after a producer accepted the
// order. It does not change status.
func (o *Order) SetPaymentLink(url string, expiresAt time.Time, at time.Time) error {
	if url == "" {
		return errs.NewValueIsRequiredError("paymentLinkURL")
	}
	o.paymentLinkURL = url
	o.paymentLinkExpiresAt = &expiresAt
	o.updatedAt = at
	return nil
}

// SetShippingInfo stores the delivery address and method. It is a
// narrowly-scoped field update that does not change status.
func (o *Order) SetShippingInfo(address string, method string, fee float64, at time.Time) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingFee",
			fmt.Errorf("%f is negative", fee))
	}
	o.shippingAddress = address
	o.shippingMethod = method
	o.shippingFee = fee
	o.updatedAt = at
	return nil
}

// SetTracking stores the carrier tracking reference and marks the order as
// shipped. It is a narrowly-scoped field update that does not change status.
func (o *Order) SetTracking(number string, carrier string, at time.Time) error {
	if number == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	o.trackingNumber = number
	o.trackingCarrier = carrier
	t := at
	o.shippedAt = &t
	o.updatedAt = at
	return nil
}

// SetReview records the customer's rating and optional review text. Only
// confirmed orders can be reviewed, and only once.
func (o *Order) SetReview(rating int, review string, at time.Time) error {
	if o.status != Confirmed {
		return errs.NewInvalidTransitionError(o.status.String(), "reviewed")
	}
	if o.rating != nil {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			errors.New("order is already reviewed"))
	}
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	r := rating
	o.rating = &r
	o.review = review
	o.updatedAt = at
	return nil
}

// DisputeAnchor returns the timestamp the dispute window is measured from:
// the confirmation time when present, otherwise the producer completion time.
// Returns nil when neither happened yet.
func (o *Order) DisputeAnchor() *time.Time {
	if o.confirmedAt != nil {
		return o.confirmedAt
	}
	return o.completedAt
}

// WithinDisputeWindow reports whether a dispute may still be opened at the
// given moment. An order with no anchor timestamp is never disputable.
func (o *Order) WithinDisputeWindow(at time.Time, window time.Duration) bool {
	anchor := o.DisputeAnchor()
	if anchor == nil {
		return false
	}
	return !at.After(anchor.Add(window))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	o.productID = productID
	return nil
}

func (o *Order) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("materialID", err)
	}
	o.materialID = materialID
	return nil
}
