// Package quote implements the quoting engine: pure functions that
// turn measured geometry and process parameters into time, material,
// and price estimates.
//
// Every function here is deterministic and side-effect-free. The same
// input tuple always yields the same output, which is the contract
// that keeps the authoritative evaluation and any live preview in
// agreement. Both consumers call this package; no formula is
// duplicated outside it.
package quote

const (
	// referenceLayerMM is the layer height at which the layer ratio
	// is exactly 1.0
	referenceLayerMM = 0.20

	// minLayerMM is the clamp floor for layer height; smaller values
	// are treated as 0.10 mm rather than rejected
	minLayerMM = 0.10

	// layerRatioMin and layerRatioMax bound the layer-height effect so
	// pathological inputs cannot produce runaway or near-zero time
	layerRatioMin = 0.6
	layerRatioMax = 1.5

	// infillTimeWeight is the extra time fraction added at 100% infill
	infillTimeWeight = 0.3

	// minThroughput is the epsilon floor on effective throughput,
	// guarding the division against degenerate configuration
	minThroughput = 1e-6

	// MinHours is the floor on any reported print time (~5 minutes);
	// no job is reported as instantaneous
	MinHours = 0.08

	// DefaultInfillPct is used when a request leaves infill unset
	DefaultInfillPct = 20
)

// EstimateHours estimates print time in hours.
//
// The layer-height effect is referenceLayerMM divided by the clamped
// layer height, bounded to [layerRatioMin, layerRatioMax]; thinner
// layers take proportionally longer. Infill adds linearly up to
// infillTimeWeight extra time at 100% density.
//
// Returns ok=false when volumeCm3 or machineCm3PerHr is not positive:
// there is no throughput to divide by, so no estimate exists. This is
// the only failure mode; valid numeric ranges never fail.
func EstimateHours(volumeCm3, layerHeightMM float64, infillPct int, machineCm3PerHr, speedFactor float64) (hours float64, ok bool) {
	if volumeCm3 <= 0 || machineCm3PerHr <= 0 {
		return 0, false
	}

	layerRatio := referenceLayerMM / maxf(layerHeightMM, minLayerMM)
	layerRatio = clamp(layerRatio, layerRatioMin, layerRatioMax)

	infillMultiplier := 1.0 + float64(infillPct)/100.0*infillTimeWeight

	effective := maxf(minThroughput, machineCm3PerHr*speedFactor/layerRatio)

	hours = volumeCm3 / effective * infillMultiplier
	return maxf(hours, MinHours), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
