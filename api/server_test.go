package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chuymedina96/chicago-3d-printworks/core/materials"
	"github.com/chuymedina96/chicago-3d-printworks/core/pricing"
	"github.com/chuymedina96/chicago-3d-printworks/core/types"
)

func testHandler() *Handler {
	return NewHandler(
		materials.Default(),
		types.PricingModel{BaseFee: 5, HourlyRate: 8, PostprocessFee: 0, MachineCm3PerHr: 46},
		pricing.DefaultLadder(),
	)
}

func postQuote(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quote", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeQuote(t *testing.T, rec *httptest.ResponseRecorder) QuoteResponse {
	t.Helper()
	var resp QuoteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandleQuote(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	rec := postQuote(t, s, `{"volume_cm3":10,"material_id":"pla","infill_pct":20,"layer_height_mm":0.2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeQuote(t, rec)
	if resp.PriceUSD != 7.15 {
		t.Errorf("price = %v, want 7.15", resp.PriceUSD)
	}
	if resp.EstimatedMaterialG != 12.4 {
		t.Errorf("grams = %v, want 12.4", resp.EstimatedMaterialG)
	}
	if resp.EstimatedTimeHr == nil || *resp.EstimatedTimeHr != 0.23 {
		t.Errorf("hours = %v, want 0.23", resp.EstimatedTimeHr)
	}
	if resp.VolumeCm3 != 10 {
		t.Errorf("volume not echoed: %v", resp.VolumeCm3)
	}
	if resp.MaterialFallback {
		t.Error("known material flagged as fallback")
	}
}

func TestHandleQuote_ZeroVolume(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	rec := postQuote(t, s, `{"volume_cm3":0,"material_id":"pla","layer_height_mm":0.2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: a partial quote is a valid, displayable state", rec.Code)
	}

	// estimated_time_hr must serialize as an explicit null.
	if !strings.Contains(rec.Body.String(), `"estimated_time_hr":null`) {
		t.Errorf("body missing null time: %s", rec.Body.String())
	}

	resp := decodeQuote(t, postQuote(t, s, `{"volume_cm3":0,"material_id":"pla","layer_height_mm":0.2}`))
	if resp.EstimatedMaterialG != 0 {
		t.Errorf("grams = %v, want 0", resp.EstimatedMaterialG)
	}
	if resp.PriceUSD != 5 {
		t.Errorf("price = %v, want base fee 5", resp.PriceUSD)
	}
}

func TestHandleQuote_UnknownMaterialFallsBack(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	resp := decodeQuote(t, postQuote(t, s, `{"volume_cm3":10,"material_id":"vibranium","layer_height_mm":0.2}`))
	if !resp.MaterialFallback {
		t.Error("unknown material not flagged")
	}
	if resp.MaterialID != "pla" {
		t.Errorf("material = %s, want fallback pla", resp.MaterialID)
	}
}

func TestHandleQuote_DefaultInfill(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	// Absent infill means 20; explicit 0 does not.
	withDefault := decodeQuote(t, postQuote(t, s, `{"volume_cm3":10,"material_id":"pla","layer_height_mm":0.2}`))
	withZero := decodeQuote(t, postQuote(t, s, `{"volume_cm3":10,"material_id":"pla","infill_pct":0,"layer_height_mm":0.2}`))

	if *withDefault.EstimatedTimeHr <= *withZero.EstimatedTimeHr {
		t.Errorf("default infill (%v hr) should exceed explicit 0%% (%v hr)",
			*withDefault.EstimatedTimeHr, *withZero.EstimatedTimeHr)
	}
}

func TestHandleQuote_BatchQuantity(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	resp := decodeQuote(t, postQuote(t, s, `{"volume_cm3":10,"material_id":"pla","infill_pct":20,"layer_height_mm":0.2,"quantity":30}`))
	if len(resp.Tiers) != 5 {
		t.Fatalf("tiers = %d, want 5", len(resp.Tiers))
	}
	if resp.Custom == nil || resp.Custom.NearestTier != 25 {
		t.Errorf("custom = %+v, want nearest tier 25", resp.Custom)
	}
}

func TestHandleQuote_Validation(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	cases := map[string]string{
		"bad json":        `{`,
		"negative volume": `{"volume_cm3":-1,"layer_height_mm":0.2}`,
		"zero layer":      `{"volume_cm3":10,"layer_height_mm":0}`,
		"infill over 100": `{"volume_cm3":10,"layer_height_mm":0.2,"infill_pct":120}`,
		"zero quantity":   `{"volume_cm3":10,"layer_height_mm":0.2,"quantity":0}`,
	}

	for name, body := range cases {
		rec := postQuote(t, s, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("%s: missing error envelope: %s", name, rec.Body.String())
		}
	}
}

func TestHandleQuote_Deterministic(t *testing.T) {
	s := NewServer("test", testHandler(), nil)
	body := `{"volume_cm3":42.5,"surface_cm2":130.2,"material_id":"petg","infill_pct":35,"layer_height_mm":0.16,"quantity":12}`

	first := postQuote(t, s, body).Body.String()
	second := postQuote(t, s, body).Body.String()
	if first != second {
		t.Errorf("responses diverged:\n%s\n%s", first, second)
	}
}

func TestHandleMaterials(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Materials []types.MaterialProfile `json:"materials"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Materials) == 0 {
		t.Error("no materials returned")
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer("test", testHandler(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
