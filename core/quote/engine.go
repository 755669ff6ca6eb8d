package quote

import (
	"github.com/chuymedina96/chicago-3d-printworks/core/pricing"
	"github.com/chuymedina96/chicago-3d-printworks/core/types"
)

// Params are the user-chosen process parameters for one evaluation.
// Defaults (unset infill, unknown material) are resolved at the
// request boundary, so the engine always sees concrete values.
type Params struct {
	// InfillPct is the infill density, 0-100
	InfillPct int

	// LayerHeightMM is the layer height; values below 0.10 mm are
	// clamped by the time estimator, not rejected
	LayerHeightMM float64

	// Quantity requests batch pricing when >= 1; 0 means single-unit
	// only
	Quantity int
}

// Evaluate runs the full quoting pipeline: time estimate, cost
// estimate, and, when a quantity is requested, the batch tier ladder
// plus the nearest-tier custom estimate.
//
// Evaluate is pure: for a fixed input tuple repeated invocation yields
// an identical QuoteResult, so an authoritative call site and a live
// preview can never drift. Tiers are derived from the full-precision
// unit price; all display rounding happens once, here.
func Evaluate(geom types.GeometryMetrics, material types.MaterialProfile, model types.PricingModel, params Params, ladder []types.TierSpec) types.QuoteResult {
	hours, hasHours := EstimateHours(geom.VolumeCm3, params.LayerHeightMM, params.InfillPct, model.MachineCm3PerHr, material.SpeedFactor)
	cost := EstimateCost(geom.VolumeCm3, material, model, hours, hasHours)

	result := types.QuoteResult{
		Geometry:       geom,
		MaterialID:     material.ID,
		EstimatedGrams: Round1(cost.Grams),
		PriceUSD:       Round2(cost.Price),
	}
	if hasHours {
		rounded := Round2(hours)
		result.EstimatedHours = &rounded
	}

	if params.Quantity >= 1 && pricing.ValidLadder(ladder) {
		result.Tiers = pricing.BuildTiers(cost.Price, ladder)
		result.Custom = pricing.EstimateForQuantity(params.Quantity, result.Tiers)
	}

	return result
}
