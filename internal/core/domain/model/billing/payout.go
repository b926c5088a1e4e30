// Package billing provides the money-side records of the order lifecycle:
// payouts scheduled at confirmation and refunds created by dispute
// resolution, plus the arithmetic reconciling them.
package billing

import (
	"errors"
	"fmt"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

// DefaultPayoutDelay is how far in the future a payout is scheduled when an
// order is confirmed.
const DefaultPayoutDelay = 72 * time.Hour

var (
	// ErrPayoutIsNotConstructed is returned when using an improperly
	// initialized Payout.
	ErrPayoutIsNotConstructed = errors.New("Payout must be created via NewPayout constructor")
)

// PayoutStatus is the closed settlement state of a payout record.
type PayoutStatus int

const (
	// PayoutUnknown represents an invalid or undefined payout status.
	PayoutUnknown PayoutStatus = iota

	// PayoutScheduled means the payout awaits its scheduled date.
	PayoutScheduled

	// PayoutPaid means the amount was settled to the producer.
	PayoutPaid
)

func getPayoutStatusStrings() map[PayoutStatus]string {
	return map[PayoutStatus]string{
		PayoutUnknown:   "unknown",
		PayoutScheduled: "scheduled",
		PayoutPaid:      "paid",
	}
}

// PayoutStatusFromString parses the persisted string form of a payout status.
func PayoutStatusFromString(value string) (PayoutStatus, error) {
	for status, str := range getPayoutStatusStrings() {
		if status != PayoutUnknown && str == value {
			return status, nil
		}
	}
	return PayoutUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payout status is invalid",
		fmt.Errorf("%q is not a valid payout status", value),
	)
}

// String returns the persisted name of the payout status.
func (s PayoutStatus) String() string {
	if str, ok := getPayoutStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Payout is the amount owed to a producer for one confirmed order. Exactly
// one payout exists per order, created atomically with the confirm transition.
type Payout struct {
	id         kernel.UUID
	orderID    kernel.UUID
	producerID kernel.UUID

	amount           float64
	commissionAmount float64
	refundDeduction  float64

	status        PayoutStatus
	scheduledDate time.Time
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewPayout creates a scheduled Payout from reconciled amounts.
func NewPayout(
	id kernel.UUID,
	orderID kernel.UUID,
	producerID kernel.UUID,
	amounts Amounts,
	scheduledDate time.Time,
	now time.Time,
) (*Payout, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), producerID.Validate()); err != nil {
		return nil, err
	}

	return &Payout{
		id:               id,
		orderID:          orderID,
		producerID:       producerID,
		amount:           amounts.ProducerAmount,
		commissionAmount: amounts.CommissionAmount,
		refundDeduction:  amounts.RefundDeduction,
		status:           PayoutScheduled,
		scheduledDate:    scheduledDate,
		createdAt:        now,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestorePayout reconstructs a Payout from persisted state.
func RestorePayout(
	id kernel.UUID,
	orderID kernel.UUID,
	producerID kernel.UUID,
	amount float64,
	commissionAmount float64,
	refundDeduction float64,
	status PayoutStatus,
	scheduledDate time.Time,
	createdAt time.Time,
) (*Payout, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), producerID.Validate()); err != nil {
		return nil, err
	}

	return &Payout{
		id:               id,
		orderID:          orderID,
		producerID:       producerID,
		amount:           amount,
		commissionAmount: commissionAmount,
		refundDeduction:  refundDeduction,
		status:           status,
		scheduledDate:    scheduledDate,
		createdAt:        createdAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the payout was created through its constructor.
func (p *Payout) Validate() error {
	if p == nil {
		return ErrPayoutIsNotConstructed
	}
	return p.guard.Validate(ErrPayoutIsNotConstructed)
}

// ID returns the payout's unique identifier.
func (p *Payout) ID() kernel.UUID {
	return p.id
}

// OrderID returns the confirmed order this payout settles.
func (p *Payout) OrderID() kernel.UUID {
	return p.orderID
}

// ProducerID returns the producer being paid.
func (p *Payout) ProducerID() kernel.UUID {
	return p.producerID
}

// Amount returns the producer's net amount.
func (p *Payout) Amount() float64 {
	return p.amount
}

// CommissionAmount returns the platform's cut of the refund-adjusted net.
func (p *Payout) CommissionAmount() float64 {
	return p.commissionAmount
}

// RefundDeduction returns the refund total deducted from the order price.
func (p *Payout) RefundDeduction() float64 {
	return p.refundDeduction
}

// Status returns the settlement state.
func (p *Payout) Status() PayoutStatus {
	return p.status
}

// ScheduledDate returns when the payout is due.
func (p *Payout) ScheduledDate() time.Time {
	return p.scheduledDate
}

// CreatedAt returns when the payout was created.
func (p *Payout) CreatedAt() time.Time {
	return p.createdAt
}
