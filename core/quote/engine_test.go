package quote

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/chuymedina96/chicago-3d-printworks/core/pricing"
	"github.com/chuymedina96/chicago-3d-printworks/core/types"
)

func testGeometry() types.GeometryMetrics {
	return types.GeometryMetrics{
		VolumeCm3:     10,
		SurfaceCm2:    58.3,
		BBoxMM:        [3]float64{40, 32, 18},
		TriangleCount: 2840,
	}
}

func TestEvaluate_ReferenceScenario(t *testing.T) {
	result := Evaluate(testGeometry(), testPLA, testPricing, Params{InfillPct: 20, LayerHeightMM: 0.2}, nil)

	if result.EstimatedGrams != 12.4 {
		t.Errorf("grams = %v, want 12.4", result.EstimatedGrams)
	}
	if result.EstimatedHours == nil || *result.EstimatedHours != 0.23 {
		t.Errorf("hours = %v, want 0.23", result.EstimatedHours)
	}
	if result.PriceUSD != 7.15 {
		t.Errorf("price = %v, want 7.15", result.PriceUSD)
	}
	if result.Tiers != nil || result.Custom != nil {
		t.Error("no quantity requested: tiers and custom must be absent")
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	params := Params{InfillPct: 35, LayerHeightMM: 0.16, Quantity: 30}
	ladder := pricing.DefaultLadder()

	first := Evaluate(testGeometry(), testPLA, testPricing, params, ladder)
	second := Evaluate(testGeometry(), testPLA, testPricing, params, ladder)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation diverged:\n%+v\n%+v", first, second)
	}
}

func TestEvaluate_ZeroVolume(t *testing.T) {
	geom := testGeometry()
	geom.VolumeCm3 = 0

	result := Evaluate(geom, testPLA, testPricing, Params{InfillPct: 20, LayerHeightMM: 0.2}, nil)

	if result.EstimatedHours != nil {
		t.Errorf("hours = %v, want nil", *result.EstimatedHours)
	}
	if result.EstimatedGrams != 0 {
		t.Errorf("grams = %v, want 0", result.EstimatedGrams)
	}
	if result.PriceUSD != testPricing.BaseFee+testPricing.PostprocessFee {
		t.Errorf("price = %v, want base + postprocess", result.PriceUSD)
	}
}

func TestEvaluate_ZeroThroughputDegradesLikeMissingGeometry(t *testing.T) {
	model := testPricing
	model.MachineCm3PerHr = 0

	result := Evaluate(testGeometry(), testPLA, model, Params{InfillPct: 20, LayerHeightMM: 0.2}, nil)

	if result.EstimatedHours != nil {
		t.Error("degenerate throughput should produce no time estimate")
	}
	// Material and base fees still apply.
	if result.EstimatedGrams != 12.4 {
		t.Errorf("grams = %v, want 12.4", result.EstimatedGrams)
	}
}

func TestEvaluate_BatchQuantity(t *testing.T) {
	result := Evaluate(testGeometry(), testPLA, testPricing, Params{InfillPct: 20, LayerHeightMM: 0.2, Quantity: 30}, pricing.DefaultLadder())

	if len(result.Tiers) != 5 {
		t.Fatalf("tiers = %d, want 5", len(result.Tiers))
	}
	if result.Custom == nil {
		t.Fatal("expected a custom quantity estimate")
	}
	if result.Custom.NearestTier != 25 {
		t.Errorf("nearest tier for 30 = %d, want 25", result.Custom.NearestTier)
	}

	// Tiers derive from the full-precision unit price: 10% off
	// 7.1534... rounds to 6.44.
	if result.Tiers[2].PerUnitPrice != 6.44 {
		t.Errorf("25-tier per unit = %v, want 6.44", result.Tiers[2].PerUnitPrice)
	}
}

func TestQuoteResult_JSONRoundTrip(t *testing.T) {
	result := Evaluate(testGeometry(), testPLA, testPricing, Params{InfillPct: 20, LayerHeightMM: 0.2, Quantity: 30}, pricing.DefaultLadder())

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded types.QuoteResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(result, decoded) {
		t.Errorf("round trip changed the result:\n%+v\n%+v", result, decoded)
	}
}
