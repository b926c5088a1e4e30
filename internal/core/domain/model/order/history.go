package order

import (
	"errors"
	"time"

	"printmarket/internal/core/domain/model/kernel"
)

// ErrHistoryRecordIsNotConstructed is returned when a HistoryRecord was not
// created through NewHistoryRecord or RestoreHistoryRecord.
var ErrHistoryRecordIsNotConstructed = errors.New(
	"HistoryRecord must be created via NewHistoryRecord or RestoreHistoryRecord constructor")

// HistoryRecord is one immutable entry of an order's audit trail. Exactly one
// record exists per successful transition; records are never mutated or
// deleted.
type HistoryRecord struct {
	id         kernel.UUID
	orderID    kernel.UUID
	fromStatus Status
	toStatus   Status
	actorID    kernel.UUID
	reason     string
	createdAt  time.Time

	isConstructed bool
}

// NewHistoryRecord creates an audit record for a single transition.
// It is normally produced by Order.ApplyTransition rather than directly.
func NewHistoryRecord(
	orderID kernel.UUID,
	fromStatus Status,
	toStatus Status,
	actorID kernel.UUID,
	reason string,
	at time.Time,
) (*HistoryRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := actorID.Validate(); err != nil {
		return nil, err
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}

	return &HistoryRecord{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		actorID:       actorID,
		reason:        reason,
		createdAt:     at,
		isConstructed: true,
	}, nil
}

// RestoreHistoryRecord reconstructs a HistoryRecord from persisted state.
func RestoreHistoryRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	fromStatus Status,
	toStatus Status,
	actorID kernel.UUID,
	reason string,
	createdAt time.Time,
) (*HistoryRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &HistoryRecord{
		id:            id,
		orderID:       orderID,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		actorID:       actorID,
		reason:        reason,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *HistoryRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrHistoryRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *HistoryRecord) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this record belongs to.
func (r *HistoryRecord) OrderID() kernel.UUID {
	return r.orderID
}

// FromStatus returns the status the order left.
func (r *HistoryRecord) FromStatus() Status {
	return r.fromStatus
}

// ToStatus returns the status the order entered.
func (r *HistoryRecord) ToStatus() Status {
	return r.toStatus
}

// ActorID returns the user who performed the transition.
func (r *HistoryRecord) ActorID() kernel.UUID {
	return r.actorID
}

// Reason returns the optional free-form justification.
func (r *HistoryRecord) Reason() string {
	return r.reason
}

// CreatedAt returns when the transition happened.
func (r *HistoryRecord) CreatedAt() time.Time {
	return r.createdAt
}
