// Package materials provides the material profile registry.
//
// Profiles are loaded once from an HCL catalog and are immutable for
// the life of the process. Unknown identifiers resolve to a documented
// fallback profile instead of failing; Resolve reports the fallback so
// callers can flag silent mismatches.
package materials

import (
	"sort"
	"strings"

	"github.com/chuymedina96/chicago-3d-printworks/core/types"
	"github.com/chuymedina96/chicago-3d-printworks/internal/errors"
)

// Registry is a read-only material profile table.
type Registry struct {
	profiles map[string]types.MaterialProfile
	ids      []string
	fallback string
}

// NewRegistry builds a registry from profiles. fallbackID must name
// one of the profiles; it is returned for unknown lookups.
func NewRegistry(profiles []types.MaterialProfile, fallbackID string) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, errors.New(errors.TypeConfig, "material catalog is empty")
	}

	r := &Registry{
		profiles: make(map[string]types.MaterialProfile, len(profiles)),
		fallback: normalizeID(fallbackID),
	}
	for _, p := range profiles {
		id := normalizeID(p.ID)
		if id == "" {
			return nil, errors.New(errors.TypeConfig, "material profile with empty id")
		}
		if _, exists := r.profiles[id]; exists {
			return nil, errors.Newf(errors.TypeConfig, "duplicate material profile: %s", id)
		}
		if p.DensityGCm3 < 0 || p.RatePerGram < 0 || p.SpeedFactor < 0 {
			return nil, errors.Newf(errors.TypeConfig, "material profile %s has negative constants", id)
		}
		p.ID = id
		r.profiles[id] = p
		r.ids = append(r.ids, id)
	}
	sort.Strings(r.ids)

	if _, ok := r.profiles[r.fallback]; !ok {
		return nil, errors.Newf(errors.TypeConfig, "fallback material not in catalog: %s", fallbackID)
	}
	return r, nil
}

// Resolve returns the profile for id, or the fallback profile when id
// is unknown or empty. exact is false on the fallback path; callers
// log it so material mismatches are detectable.
func (r *Registry) Resolve(id string) (profile types.MaterialProfile, exact bool) {
	if p, ok := r.profiles[normalizeID(id)]; ok {
		return p, true
	}
	return r.profiles[r.fallback], false
}

// Fallback returns the fallback profile.
func (r *Registry) Fallback() types.MaterialProfile {
	return r.profiles[r.fallback]
}

// All returns every profile in stable id order.
func (r *Registry) All() []types.MaterialProfile {
	out := make([]types.MaterialProfile, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.profiles[id])
	}
	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
