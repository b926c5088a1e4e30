package billing

import "math"

// Amounts is the reconciled money split of one confirmed order.
type Amounts struct {
	// Net is the order's final price minus every refund, floored at 0.
	Net float64

	// CommissionAmount is the platform's cut of Net.
	CommissionAmount float64

	// ProducerAmount is what the producer receives, floored at 0.
	ProducerAmount float64

	// RefundDeduction is the refund total subtracted from the final price.
	RefundDeduction float64
}

// ComputeAmounts reconciles an order's frozen final price against its refunds
// and the commission rate frozen in the order's quote:
//
//	net      = max(finalPrice - totalRefunded, 0)
//	cut      = net * commissionRate
//	producer = max(net - cut, 0)
//
// All outputs are rounded to 2 decimal places, half-up.
func ComputeAmounts(finalPrice float64, totalRefunded float64, commissionRate float64) Amounts {
	net := math.Max(finalPrice-totalRefunded, 0)
	commission := net * commissionRate
	producer := math.Max(net-commission, 0)

	return Amounts{
		Net:              roundMoney(net),
		CommissionAmount: roundMoney(commission),
		ProducerAmount:   roundMoney(producer),
		RefundDeduction:  roundMoney(totalRefunded),
	}
}

// roundMoney rounds a non-negative monetary value to 2 decimal places,
// half-up.
func roundMoney(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
