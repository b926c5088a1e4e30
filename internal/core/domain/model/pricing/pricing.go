// Package pricing implements the deterministic pricing engine mapping print
// estimates and pricing parameters to a monetary breakdown. Calculation never
// fails: inputs are defensively clamped, not rejected.
package pricing

import "math"

// Platform default parameter values, applied by DefaultParameters.
const (
	DefaultInfillDensity   = 0.2
	DefaultHourlyRate      = 5.0
	DefaultFixedCost       = 1.0
	DefaultMarginPercent   = 0.20
	DefaultCommissionRate  = 0.15
	DefaultProviderFeeRate = 0.025
	DefaultMinOrderAmount  = 10.0
)

const (
	minInfillDensity = 0.1
	maxInfillDensity = 1.0

	// supportMaterialFraction is the extra material fraction charged when
	// support structures are required.
	supportMaterialFraction = 0.3

	minWeightG = 0.1
)

// Parameters holds the production and fee parameters of a single quote.
// Values are clamped during calculation, so callers may pass raw input.
type Parameters struct {
	MaterialPricePerG float64
	InfillDensity     float64
	SupportRequired   bool
	HourlyRate        float64
	FixedCost         float64
	MarginPercent     float64
	CommissionRate    float64
	ProviderFeeRate   float64
	MinOrderAmount    float64
}

// DefaultParameters returns Parameters carrying the platform defaults for
// everything except the material price, which has no default.
func DefaultParameters(materialPricePerG float64) Parameters {
	return Parameters{
		MaterialPricePerG: materialPricePerG,
		InfillDensity:     DefaultInfillDensity,
		HourlyRate:        DefaultHourlyRate,
		FixedCost:         DefaultFixedCost,
		MarginPercent:     DefaultMarginPercent,
		CommissionRate:    DefaultCommissionRate,
		ProviderFeeRate:   DefaultProviderFeeRate,
		MinOrderAmount:    DefaultMinOrderAmount,
	}
}

// EstimateInput holds the physical estimates a price is derived from.
type EstimateInput struct {
	WeightG          float64
	PrintTimeMinutes float64
}

// Breakdown itemizes the producer-side cost components of a quote.
// All values are monetary, rounded to 2 decimal places.
type Breakdown struct {
	MaterialCost     float64
	TimeCost         float64
	SupportCost      float64
	ProducerBaseCost float64
	ProducerMargin   float64
	ProducerSubtotal float64
}

// Result is the complete monetary outcome of a quote.
//
// Invariants: CustomerPrice >= MinOrderAmount, ProducerEarnings >= 0 and every
// breakdown value >= 0.
type Result struct {
	Breakdown          Breakdown
	PlatformCommission float64
	PaymentFee         float64
	CustomerPrice      float64
	ProducerEarnings   float64
}

// Calculate maps print estimates and parameters to a monetary breakdown.
// It is pure and deterministic and never fails.
//
// The customer price is grossed up by the provider fee rate so that after the
// payment provider deducts its proportional fee, the remaining amount still
// fully covers the producer subtotal plus platform commission.
func Calculate(input EstimateInput, params Parameters) Result {
	weightG := math.Max(input.WeightG, minWeightG)
	printTimeMinutes := math.Max(input.PrintTimeMinutes, 0)

	pricePerG := math.Max(params.MaterialPricePerG, 0)
	hourlyRate := math.Max(params.HourlyRate, 0)
	fixedCost := math.Max(params.FixedCost, 0)
	marginPercent := math.Max(params.MarginPercent, 0)
	commissionRate := math.Max(params.CommissionRate, 0)
	providerFeeRate := math.Max(params.ProviderFeeRate, 0)
	minOrderAmount := math.Max(params.MinOrderAmount, 0)
	infillDensity := clamp(params.InfillDensity, minInfillDensity, maxInfillDensity)

	materialCost := weightG * pricePerG * infillMultiplier(infillDensity)
	timeCost := (printTimeMinutes / 60.0) * hourlyRate

	var supportCost float64
	if params.SupportRequired {
		supportCost = weightG * supportMaterialFraction * pricePerG
	}

	producerBaseCost := materialCost + timeCost + supportCost + fixedCost
	producerMargin := producerBaseCost * marginPercent
	producerSubtotal := producerBaseCost + producerMargin

	platformCommission := producerSubtotal * commissionRate

	// A provider fee rate of 1 or more would make the gross-up divide by zero
	// or flip sign, so such rates fall back to no gross-up.
	denom := 1.0
	if providerFeeRate < 1 {
		denom = 1 - providerFeeRate
	}

	customerPrice := math.Max((producerSubtotal+platformCommission)/denom, minOrderAmount)
	paymentFee := customerPrice * providerFeeRate
	producerEarnings := math.Max(customerPrice-paymentFee-platformCommission, 0)

	return Result{
		Breakdown: Breakdown{
			MaterialCost:     roundMoney(materialCost),
			TimeCost:         roundMoney(timeCost),
			SupportCost:      roundMoney(supportCost),
			ProducerBaseCost: roundMoney(producerBaseCost),
			ProducerMargin:   roundMoney(producerMargin),
			ProducerSubtotal: roundMoney(producerSubtotal),
		},
		PlatformCommission: roundMoney(platformCommission),
		PaymentFee:         roundMoney(paymentFee),
		CustomerPrice:      roundMoney(customerPrice),
		ProducerEarnings:   roundMoney(producerEarnings),
	}
}

// infillMultiplier maps infill density to a material cost multiplier tier.
func infillMultiplier(infillDensity float64) float64 {
	switch {
	case infillDensity > 0.5:
		return 1.5
	case infillDensity > 0.2:
		return 1.2
	default:
		return 1.0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// roundMoney rounds a non-negative monetary value to 2 decimal places,
// half-up.
func roundMoney(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
