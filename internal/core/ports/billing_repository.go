package ports

import (
	"context"

	"printmarket/internal/core/domain/model/billing"
	"printmarket/internal/core/domain/model/kernel"
)

// BillingRepository defines the persistence contract for payouts and
// refunds. Both are append-mostly: payouts move from scheduled to paid,
// refunds from pending to processed, amounts never change once written.
type BillingRepository interface {
	// AddPayout persists a newly scheduled payout.
	AddPayout(ctx context.Context, payout *billing.Payout) error

	// GetPayoutByOrder retrieves the payout scheduled for an order.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	GetPayoutByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Payout, error)

	// GetPayoutsByProducer retrieves all payouts for a producer, newest
	// first.
	GetPayoutsByProducer(ctx context.Context, producerID kernel.UUID) ([]*billing.Payout, error)

	// AddRefund persists a newly issued refund.
	AddRefund(ctx context.Context, refund *billing.Refund) error

	// GetRefundsByOrder retrieves every refund issued against the order,
	// oldest first. The sum of their amounts is the order's refund
	// deduction at payout time.
	GetRefundsByOrder(ctx context.Context, orderID kernel.UUID) ([]*billing.Refund, error)
}
