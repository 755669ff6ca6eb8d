// Package pricing derives volume-discount batch tiers from a
// single-unit price and prices arbitrary quantities against them.
//
// The discount ladder itself is business configuration; this package
// only applies it. Ladders are generated wholesale from the unrounded
// single-unit price on every pricing change and never edited tier by
// tier, so a material or infill change can never leave stale partial
// state behind.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/chuymedina96/chicago-3d-printworks/core/types"
)

// DefaultLadder is the shipped discount ladder: ascending quantity
// breakpoints with non-decreasing discount fractions. Deployments may
// override it through configuration.
func DefaultLadder() []types.TierSpec {
	return []types.TierSpec{
		{Quantity: 1, Discount: 0},
		{Quantity: 10, Discount: 0.05},
		{Quantity: 25, Discount: 0.10},
		{Quantity: 50, Discount: 0.15},
		{Quantity: 100, Discount: 0.20},
	}
}

// ValidLadder reports whether a ladder is usable: non-empty, strictly
// ascending quantities starting at >= 1, discounts in [0, 1) and
// non-decreasing with quantity.
func ValidLadder(ladder []types.TierSpec) bool {
	if len(ladder) == 0 {
		return false
	}
	prevQty := 0
	prevDiscount := 0.0
	for _, spec := range ladder {
		if spec.Quantity <= prevQty {
			return false
		}
		if spec.Discount < prevDiscount || spec.Discount < 0 || spec.Discount >= 1 {
			return false
		}
		prevQty = spec.Quantity
		prevDiscount = spec.Discount
	}
	return true
}

// BuildTiers generates the batch tier ladder for a single-unit price.
// unitPrice must be the full-precision price; per-unit and total are
// rounded to two decimals here, at the output boundary.
func BuildTiers(unitPrice float64, ladder []types.TierSpec) []types.BatchTier {
	tiers := make([]types.BatchTier, 0, len(ladder))
	for _, spec := range ladder {
		perUnit := unitPrice * (1 - spec.Discount)
		tiers = append(tiers, types.BatchTier{
			Quantity:     spec.Quantity,
			Discount:     spec.Discount,
			PerUnitPrice: round2(perUnit),
			TotalPrice:   round2(perUnit * float64(spec.Quantity)),
		})
	}
	return tiers
}

// EstimateForQuantity prices an arbitrary requested quantity by
// anchoring to the nearest published tier: the per-unit price is held
// at the nearest tier's (no interpolation between tiers) and the total
// extrapolates linearly. Ties between equidistant tiers resolve to the
// first tier in ascending-quantity order; this is a deliberate,
// documented tie-break, not an accident of ordering.
//
// The total multiplies the nearest tier's published (already rounded)
// per-unit price, so at a quantity matching a tier exactly the custom
// total can differ from that tier's TotalPrice by cents: tier totals
// round once from the full-precision per-unit, while the custom total
// starts from the two-decimal figure the tier table shows.
//
// Returns nil when requestedQty < 1 or the ladder is empty: callers
// treat that as "no estimate available", never as a failure.
func EstimateForQuantity(requestedQty int, tiers []types.BatchTier) *types.CustomQuantityEstimate {
	if requestedQty < 1 || len(tiers) == 0 {
		return nil
	}

	nearest := tiers[0]
	best := absInt(tiers[0].Quantity - requestedQty)
	for _, tier := range tiers[1:] {
		if d := absInt(tier.Quantity - requestedQty); d < best {
			nearest = tier
			best = d
		}
	}

	return &types.CustomQuantityEstimate{
		RequestedQuantity: requestedQty,
		NearestTier:       nearest.Quantity,
		PerUnitPrice:      nearest.PerUnitPrice,
		TotalPrice:        round2(nearest.PerUnitPrice * float64(requestedQty)),
	}
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
