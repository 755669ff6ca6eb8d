// Package types defines the quoting engine's data model.
// Everything here is a plain value type: results are derived, never
// mutated in place, and a new result replaces the old one wholesale.
package types

// GeometryMetrics describes a measured 3D model.
// It is produced by the upstream mesh-analysis collaborator and is
// immutable for the lifetime of one quote request.
type GeometryMetrics struct {
	// VolumeCm3 is the solid volume in cubic centimeters
	VolumeCm3 float64 `json:"volume_cm3"`

	// SurfaceCm2 is the surface area in square centimeters
	SurfaceCm2 float64 `json:"surface_cm2"`

	// BBoxMM is the axis-aligned bounding box in millimeters (x, y, z)
	BBoxMM [3]float64 `json:"bbox_mm"`

	// TriangleCount is the mesh triangle count
	TriangleCount int `json:"triangle_count"`
}

// MaterialProfile holds the physical and economic constants of a
// printable material. Profiles are read-only process-wide
// configuration; entries are never mutated after load.
type MaterialProfile struct {
	// ID is the unique material identifier (e.g. "pla")
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// DensityGCm3 is the material density in g/cm³
	DensityGCm3 float64 `json:"density_g_cm3"`

	// RatePerGram is the material cost in USD per gram
	RatePerGram float64 `json:"rate_per_gram"`

	// RecommendedLayerMM is the recommended layer height in mm
	RecommendedLayerMM float64 `json:"recommended_layer_mm"`

	// SpeedFactor is the relative print-speed multiplier (1.0 = baseline)
	SpeedFactor float64 `json:"speed_factor"`
}

// PricingModel parameterizes the cost formula. One instance is active
// per quote; it is treated as a single configuration snapshot.
type PricingModel struct {
	// BaseFee is the flat setup fee in USD
	BaseFee float64 `json:"base_fee"`

	// HourlyRate is the machine-time rate in USD/hr
	HourlyRate float64 `json:"hourly_rate"`

	// PostprocessFee is the flat finishing fee in USD
	PostprocessFee float64 `json:"postprocess_fee"`

	// MachineCm3PerHr is the baseline machine throughput in cm³/hr
	MachineCm3PerHr float64 `json:"machine_cm3_per_hr"`
}

// TierSpec is one rung of the batch discount ladder: a quantity
// breakpoint and the discount fraction offered at it. The ladder is
// business configuration, not computed by the engine.
type TierSpec struct {
	// Quantity is the order-quantity breakpoint
	Quantity int `json:"quantity"`

	// Discount is the discount fraction, 0 <= d < 1
	Discount float64 `json:"discount_fraction"`
}

// BatchTier is one published tier of a generated discount ladder.
// Prices are rounded to two decimals at generation; the ladder is
// regenerated wholesale on every pricing change.
type BatchTier struct {
	Quantity     int     `json:"quantity"`
	Discount     float64 `json:"discount_fraction"`
	PerUnitPrice float64 `json:"per_unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// CustomQuantityEstimate prices an arbitrary requested quantity by
// anchoring to the nearest published tier's unit economics.
type CustomQuantityEstimate struct {
	RequestedQuantity int     `json:"requested_quantity"`
	NearestTier       int     `json:"nearest_tier_quantity"`
	PerUnitPrice      float64 `json:"per_unit_price"`
	TotalPrice        float64 `json:"total_price"`
}

// QuoteResult is the complete output of one engine evaluation. Display
// values are rounded (grams 1dp, hours 2dp, money 2dp); rounding
// happens once, at result construction, so chained calculations never
// compound it.
type QuoteResult struct {
	// Geometry echoes the evaluated geometry
	Geometry GeometryMetrics `json:"geometry"`

	// MaterialID is the resolved material identifier
	MaterialID string `json:"material_id"`

	// EstimatedGrams is the material consumption estimate
	EstimatedGrams float64 `json:"estimated_material_g"`

	// EstimatedHours is the print-time estimate; nil when no estimate
	// is possible (zero volume or zero throughput)
	EstimatedHours *float64 `json:"estimated_time_hr"`

	// PriceUSD is the single-unit price
	PriceUSD float64 `json:"price_usd"`

	// Tiers is the batch discount ladder; present only when the
	// request asked for batch pricing
	Tiers []BatchTier `json:"tiers,omitempty"`

	// Custom is the nearest-tier estimate for the requested quantity
	Custom *CustomQuantityEstimate `json:"custom,omitempty"`
}
