package quote

import "github.com/chuymedina96/chicago-3d-printworks/core/types"

// DefaultDensityGCm3 backstops a profile that lacks a density,
// matching the default PLA-like material.
const DefaultDensityGCm3 = 1.24

// CostEstimate is the unrounded output of EstimateCost.
type CostEstimate struct {
	// Grams is the material consumption in grams
	Grams float64

	// Price is the single-unit price in USD
	Price float64
}

// EstimateCost computes material consumption and the single-unit
// price. A missing time estimate (hasHours=false) contributes zero
// machine time rather than failing; a partial quote is a valid,
// displayable state.
func EstimateCost(volumeCm3 float64, material types.MaterialProfile, pricing types.PricingModel, hours float64, hasHours bool) CostEstimate {
	density := material.DensityGCm3
	if density <= 0 {
		density = DefaultDensityGCm3
	}

	grams := volumeCm3 * density

	machineTime := 0.0
	if hasHours {
		machineTime = hours
	}

	price := pricing.BaseFee +
		grams*material.RatePerGram +
		machineTime*pricing.HourlyRate +
		pricing.PostprocessFee

	return CostEstimate{Grams: grams, Price: price}
}
