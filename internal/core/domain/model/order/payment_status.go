package order

import (
	"fmt"

	"printmarket/internal/pkg/errs"
)

// PaymentStatus tracks the money side of an order independently of its
// lifecycle status.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid means no payment was received yet.
	PaymentUnpaid

	// PaymentPaid means the customer's payment was received in full.
	PaymentPaid

	// PaymentRefunded means the full amount was returned to the customer.
	PaymentRefunded

	// PaymentPartiallyRefunded means part of the amount was returned after a
	// dispute.
	PaymentPartiallyRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:           "unknown",
		PaymentUnpaid:            "unpaid",
		PaymentPaid:              "paid",
		PaymentRefunded:          "refunded",
		PaymentPartiallyRefunded: "partial_refund",
	}
}

// PaymentStatusFromString parses the persisted string form of a payment status.
func PaymentStatusFromString(value string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == value {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", value),
	)
}

// String returns the persisted snake_case name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
