package ports

import (
	"context"
	"time"

	"printmarket/internal/core/domain/model/kernel"
)

// PaymentLink is a checkout URL issued by the payment provider for one
// accepted order.
type PaymentLink struct {
	URL       string
	ExpiresAt time.Time
}

// PaymentGateway talks to the external payment provider. Implementations
// return errors wrapping errs.ErrDownstreamFailure when the provider is
// unreachable or answers with a non-success status.
type PaymentGateway interface {
	// CreatePaymentLink requests a checkout link for the given order and
	// amount. Called after a producer accepts the order.
	CreatePaymentLink(ctx context.Context, orderID kernel.UUID, amount float64) (PaymentLink, error)

	// IssueRefund instructs the provider to return the given amount to
	// the customer. Called when a dispute resolves with a refund.
	IssueRefund(ctx context.Context, orderID kernel.UUID, amount float64) error
}
