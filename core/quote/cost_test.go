package quote

import (
	"testing"

	"github.com/chuymedina96/chicago-3d-printworks/core/types"
)

var (
	testPLA = types.MaterialProfile{
		ID:          "pla",
		DensityGCm3: 1.24,
		RatePerGram: 0.025,
		SpeedFactor: 1.0,
	}
	testPricing = types.PricingModel{
		BaseFee:         5,
		HourlyRate:      8,
		PostprocessFee:  0,
		MachineCm3PerHr: 46,
	}
)

func TestEstimateCost_ReferenceScenario(t *testing.T) {
	hours, ok := EstimateHours(10, 0.2, 20, 46, 1.0)
	if !ok {
		t.Fatal("expected an estimate")
	}

	cost := EstimateCost(10, testPLA, testPricing, hours, true)
	nearlyEqual(t, "grams", cost.Grams, 12.4)
	nearlyEqual(t, "price", cost.Price, 5+12.4*0.025+hours*8)

	if Round2(cost.Price) != 7.15 {
		t.Errorf("rounded price = %v, want 7.15", Round2(cost.Price))
	}
}

func TestEstimateCost_MissingHoursContributeZero(t *testing.T) {
	cost := EstimateCost(0, testPLA, testPricing, 0, false)
	nearlyEqual(t, "grams", cost.Grams, 0)
	nearlyEqual(t, "price", cost.Price, testPricing.BaseFee+testPricing.PostprocessFee)
}

func TestEstimateCost_DensityFallback(t *testing.T) {
	noDensity := types.MaterialProfile{ID: "mystery", RatePerGram: 0.025}
	cost := EstimateCost(10, noDensity, testPricing, 0, false)
	nearlyEqual(t, "fallback grams", cost.Grams, 10*DefaultDensityGCm3)
}

func TestRounding(t *testing.T) {
	if got := Round2(7.153478); got != 7.15 {
		t.Errorf("Round2(7.153478) = %v, want 7.15", got)
	}
	if got := Round2(7.155); got != 7.16 {
		t.Errorf("Round2(7.155) = %v, want 7.16", got)
	}
	if got := Round1(12.44); got != 12.4 {
		t.Errorf("Round1(12.44) = %v, want 12.4", got)
	}
}
