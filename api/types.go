package api

import (
	"github.com/chuymedina96/chicago-3d-printworks/core/quote"
	"github.com/chuymedina96/chicago-3d-printworks/core/types"
	"github.com/chuymedina96/chicago-3d-printworks/internal/errors"
)

// QuoteRequest is the wire form of one quote evaluation request.
// Geometry comes from the upstream mesh-analysis service; the rest are
// user-chosen parameters.
type QuoteRequest struct {
	VolumeCm3     float64    `json:"volume_cm3"`
	SurfaceCm2    float64    `json:"surface_cm2"`
	BBoxMM        [3]float64 `json:"bbox_mm"`
	TriangleCount int        `json:"triangle_count"`

	// MaterialID selects a material profile; unknown ids resolve to
	// the fallback profile
	MaterialID string `json:"material_id"`

	// InfillPct is 0-100; absent means the default (20). A pointer
	// distinguishes absent from an explicit 0.
	InfillPct *int `json:"infill_pct"`

	// LayerHeightMM must be positive; values below 0.10 are clamped
	// by the engine
	LayerHeightMM float64 `json:"layer_height_mm"`

	// Quantity requests batch pricing when present (>= 1)
	Quantity *int `json:"quantity,omitempty"`
}

// QuoteResponse is the wire form of a quote result: echoed geometry
// plus the derived estimates, flattened per the output contract.
type QuoteResponse struct {
	VolumeCm3     float64    `json:"volume_cm3"`
	SurfaceCm2    float64    `json:"surface_cm2"`
	BBoxMM        [3]float64 `json:"bbox_mm"`
	TriangleCount int        `json:"triangle_count"`

	MaterialID string `json:"material_id"`

	// MaterialFallback flags that the requested material was unknown
	// and the fallback profile was used
	MaterialFallback bool `json:"material_fallback,omitempty"`

	EstimatedMaterialG float64  `json:"estimated_material_g"`
	EstimatedTimeHr    *float64 `json:"estimated_time_hr"`
	PriceUSD           float64  `json:"price_usd"`

	Tiers  []types.BatchTier             `json:"tiers,omitempty"`
	Custom *types.CustomQuantityEstimate `json:"custom,omitempty"`
}

// geometry extracts the echoed geometry metrics.
func (r *QuoteRequest) geometry() types.GeometryMetrics {
	return types.GeometryMetrics{
		VolumeCm3:     r.VolumeCm3,
		SurfaceCm2:    r.SurfaceCm2,
		BBoxMM:        r.BBoxMM,
		TriangleCount: r.TriangleCount,
	}
}

// params resolves the request's process parameters, applying the
// infill default. This is the single resolve-with-default step; the
// engine itself always sees concrete values.
func (r *QuoteRequest) params() quote.Params {
	p := quote.Params{
		InfillPct:     quote.DefaultInfillPct,
		LayerHeightMM: r.LayerHeightMM,
	}
	if r.InfillPct != nil {
		p.InfillPct = *r.InfillPct
	}
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	}
	return p
}

// Validate checks the request against the input contract. Engine-level
// degenerate values (zero volume, tiny layer heights) are not errors;
// only contract violations are rejected.
func (r *QuoteRequest) Validate() error {
	if r.VolumeCm3 < 0 {
		return errors.Input("volume_cm3 must be >= 0")
	}
	if r.SurfaceCm2 < 0 {
		return errors.Input("surface_cm2 must be >= 0")
	}
	if r.TriangleCount < 0 {
		return errors.Input("triangle_count must be >= 0")
	}
	if r.LayerHeightMM <= 0 {
		return errors.Input("layer_height_mm must be > 0")
	}
	if r.InfillPct != nil && (*r.InfillPct < 0 || *r.InfillPct > 100) {
		return errors.Input("infill_pct must be in [0, 100]")
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return errors.Input("quantity must be >= 1")
	}
	return nil
}

// mapResult flattens an engine result onto the wire contract.
func mapResult(result types.QuoteResult, fallback bool) *QuoteResponse {
	return &QuoteResponse{
		VolumeCm3:          result.Geometry.VolumeCm3,
		SurfaceCm2:         result.Geometry.SurfaceCm2,
		BBoxMM:             result.Geometry.BBoxMM,
		TriangleCount:      result.Geometry.TriangleCount,
		MaterialID:         result.MaterialID,
		MaterialFallback:   fallback,
		EstimatedMaterialG: result.EstimatedGrams,
		EstimatedTimeHr:    result.EstimatedHours,
		PriceUSD:           result.PriceUSD,
		Tiers:              result.Tiers,
		Custom:             result.Custom,
	}
}
