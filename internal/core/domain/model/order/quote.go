package order

import (
	"printmarket/internal/core/domain/model/pricing"
)

// Quote is the pricing snapshot frozen into an order at creation time.
// Later changes to pricing parameters never affect an existing order.
type Quote struct {
	// FinalPrice is the customer-facing total.
	FinalPrice float64

	// ProducerEarnings is the amount owed to the producer before refunds.
	ProducerEarnings float64

	// CommissionAmount is the platform's cut at creation time.
	CommissionAmount float64

	// PaymentFee is the payment provider's fee grossed into FinalPrice.
	PaymentFee float64

	// CommissionRate is kept so the confirm-time payout can recompute the
	// commission against the refund-adjusted net amount.
	CommissionRate float64

	// Breakdown itemizes the producer-side cost components.
	Breakdown pricing.Breakdown
}

// QuoteFromPricing freezes a pricing result and the commission rate it was
// computed with into an order snapshot.
func QuoteFromPricing(result pricing.Result, commissionRate float64) Quote {
	return Quote{
		FinalPrice:       result.CustomerPrice,
		ProducerEarnings: result.ProducerEarnings,
		CommissionAmount: result.PlatformCommission,
		PaymentFee:       result.PaymentFee,
		CommissionRate:   commissionRate,
		Breakdown:        result.Breakdown,
	}
}
