// Package api is the thin HTTP layer over the quoting engine.
// It is responsible only for input ingestion, engine orchestration,
// and output serialization; it never performs quoting logic itself.
package api

import (
	"go.uber.org/zap"

	"github.com/chuymedina96/chicago-3d-printworks/core/materials"
	"github.com/chuymedina96/chicago-3d-printworks/core/quote"
	"github.com/chuymedina96/chicago-3d-printworks/core/types"
	"github.com/chuymedina96/chicago-3d-printworks/internal/logging"
)

// Handler evaluates quote requests against the engine.
type Handler struct {
	registry *materials.Registry
	model    types.PricingModel
	ladder   []types.TierSpec
}

// NewHandler creates a handler bound to one pricing snapshot.
func NewHandler(registry *materials.Registry, model types.PricingModel, ladder []types.TierSpec) *Handler {
	return &Handler{
		registry: registry,
		model:    model,
		ladder:   ladder,
	}
}

// Quote resolves the request's material and defaults, then runs one
// engine evaluation. The unknown-material fallback is logged so silent
// mismatches stay detectable.
func (h *Handler) Quote(req *QuoteRequest) *QuoteResponse {
	material, exact := h.registry.Resolve(req.MaterialID)
	if !exact {
		logging.Warn("unknown material, using fallback profile",
			zap.String("requested", req.MaterialID),
			zap.String("fallback", material.ID),
		)
	}

	result := quote.Evaluate(req.geometry(), material, h.model, req.params(), h.ladder)
	return mapResult(result, !exact)
}

// Materials returns every profile in the registry.
func (h *Handler) Materials() []types.MaterialProfile {
	return h.registry.All()
}
