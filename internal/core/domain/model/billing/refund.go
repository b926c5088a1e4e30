package billing

import (
	"errors"
	"fmt"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
	"printmarket/internal/pkg/guard"
)

var (
	// ErrRefundIsNotConstructed is returned when using an improperly
	// initialized Refund.
	ErrRefundIsNotConstructed = errors.New("Refund must be created via NewRefund constructor")
)

// RefundStatus is the closed settlement state of a refund record.
type RefundStatus int

const (
	// RefundUnknown represents an invalid or undefined refund status.
	RefundUnknown RefundStatus = iota

	// RefundPending means the refund was decided but not yet settled.
	RefundPending

	// RefundProcessed means the amount was returned to the customer.
	RefundProcessed
)

func getRefundStatusStrings() map[RefundStatus]string {
	return map[RefundStatus]string{
		RefundUnknown:   "unknown",
		RefundPending:   "pending",
		RefundProcessed: "processed",
	}
}

// RefundStatusFromString parses the persisted string form of a refund status.
func RefundStatusFromString(value string) (RefundStatus, error) {
	for status, str := range getRefundStatusStrings() {
		if status != RefundUnknown && str == value {
			return status, nil
		}
	}
	return RefundUnknown, errs.NewValueIsInvalidErrorWithCause(
		"refund status is invalid",
		fmt.Errorf("%q is not a valid refund status", value),
	)
}

// String returns the persisted name of the refund status.
func (s RefundStatus) String() string {
	if str, ok := getRefundStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Refund is an amount returned to the customer, created by dispute
// resolution. Refunds reduce the net used for the order's payout.
type Refund struct {
	id      kernel.UUID
	orderID kernel.UUID

	amount float64
	reason string

	status    RefundStatus
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRefund creates a pending Refund.
//
// The amount must be positive; the reason documents the dispute outcome.
func NewRefund(id kernel.UUID, orderID kernel.UUID, amount float64, reason string, now time.Time) (*Refund, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}

	return &Refund{
		id:        id,
		orderID:   orderID,
		amount:    roundMoney(amount),
		reason:    reason,
		status:    RefundPending,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreRefund reconstructs a Refund from persisted state.
func RestoreRefund(
	id kernel.UUID,
	orderID kernel.UUID,
	amount float64,
	reason string,
	status RefundStatus,
	createdAt time.Time,
) (*Refund, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &Refund{
		id:        id,
		orderID:   orderID,
		amount:    amount,
		reason:    reason,
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the refund was created through its constructor.
func (r *Refund) Validate() error {
	if r == nil {
		return ErrRefundIsNotConstructed
	}
	return r.guard.Validate(ErrRefundIsNotConstructed)
}

// ID returns the refund's unique identifier.
func (r *Refund) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order being refunded.
func (r *Refund) OrderID() kernel.UUID {
	return r.orderID
}

// Amount returns the refunded amount.
func (r *Refund) Amount() float64 {
	return r.amount
}

// Reason returns the dispute outcome justification.
func (r *Refund) Reason() string {
	return r.reason
}

// Status returns the settlement state.
func (r *Refund) Status() RefundStatus {
	return r.status
}

// CreatedAt returns when the refund was decided.
func (r *Refund) CreatedAt() time.Time {
	return r.createdAt
}
