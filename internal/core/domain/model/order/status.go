package order

import (
	"fmt"

	"printmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a closed transition table to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	draft ──> pending ──┬──> accepted ──> paid ──┬──> in_production ──> completed_by_producer ──┬──> confirmed
//	  │         │       │        │               │                                              │
//	  │         │       └──> rejected            └──> refunded                                  └──> dispute_open ──┬──> confirmed
//	  │         │                                                                                                   ├──> refunded
//	  └─────────┴──> cancelled (also from accepted)                                                                 └──> partial_refund
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a freshly assembled order that has not
	// been submitted to the producer pool yet.
	Draft

	// Pending means the order sits in the shared pool waiting for a producer.
	Pending

	// Accepted means a producer has claimed the order and payment is awaited.
	Accepted

	// Rejected means a producer declined the order. Final state.
	Rejected

	// Paid means the customer's payment was received.
	Paid

	// InProduction means the producer started fabricating the object.
	InProduction

	// CompletedByProducer means fabrication finished and the customer may
	// confirm or dispute the result.
	CompletedByProducer

	// DisputeOpen means the customer contested the completed order.
	DisputeOpen

	// Confirmed means the customer accepted the result and the payout was
	// scheduled. Final state.
	Confirmed

	// Cancelled means the order was withdrawn before production. Final state.
	Cancelled

	// Refunded means the full amount was returned to the customer. Final state.
	Refunded

	// PartialRefund means a dispute closed with a partial refund. Final state.
	PartialRefund
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		Draft:               "draft",
		Pending:             "pending",
		Accepted:            "accepted",
		Rejected:            "rejected",
		Paid:                "paid",
		InProduction:        "in_production",
		CompletedByProducer: "completed_by_producer",
		DisputeOpen:         "dispute_open",
		Confirmed:           "confirmed",
		Cancelled:           "cancelled",
		Refunded:            "refunded",
		PartialRefund:       "partial_refund",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:               "draft",
		Pending:             "pending",
		Accepted:            "accepted",
		Rejected:            "rejected",
		Paid:                "paid",
		InProduction:        "in_production",
		CompletedByProducer: "completed_by_producer",
		DisputeOpen:         "dispute_open",
		Confirmed:           "confirmed",
		Cancelled:           "cancelled",
		Refunded:            "refunded",
		PartialRefund:       "partial_refund",
	}
}

// getTransitions returns the closed transition table of the order lifecycle.
// A status missing from the map, or mapped to an empty list, is terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:               {Pending, Cancelled},
		Pending:             {Accepted, Rejected, Cancelled},
		Accepted:            {Paid, Cancelled},
		Paid:                {InProduction, Refunded},
		InProduction:        {CompletedByProducer},
		CompletedByProducer: {Confirmed, DisputeOpen},
		DisputeOpen:         {Confirmed, Refunded, PartialRefund},
	}
}

// StatusFromString parses the persisted string form of a status.
//
// Returns:
//   - the matching Status for a known string
//   - an error for an unknown string
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted snake_case name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the lifecycle table allows moving from this
// status to the target, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition.
//
// Returns:
//   - (target, nil) when the table of allowed transitions permits the move
//   - (Unknown, error) wrapping errs.ErrInvalidTransition otherwise
//
// This method is used by Order.ApplyTransition to enforce the lifecycle.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
