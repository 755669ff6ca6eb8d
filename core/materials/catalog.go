package materials

import (
	_ "embed"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/chuymedina96/chicago-3d-printworks/core/types"
	"github.com/chuymedina96/chicago-3d-printworks/internal/errors"
)

//go:embed catalog.hcl
var defaultCatalog []byte

// catalogFile is the HCL schema of a material catalog.
type catalogFile struct {
	Fallback  string        `hcl:"fallback"`
	Materials []materialDef `hcl:"material,block"`
}

type materialDef struct {
	ID                 string  `hcl:"id,label"`
	Name               string  `hcl:"name,optional"`
	DensityGCm3        float64 `hcl:"density_g_cm3"`
	RatePerGram        float64 `hcl:"rate_per_gram"`
	RecommendedLayerMM float64 `hcl:"recommended_layer_mm,optional"`
	SpeedFactor        float64 `hcl:"speed_factor,optional"`
}

// Default returns the registry built from the embedded catalog.
// The embedded catalog is validated by tests, so failure to parse it
// is a programmer error.
func Default() *Registry {
	r, err := Parse(defaultCatalog, "catalog.hcl")
	if err != nil {
		panic("embedded material catalog invalid: " + err.Error())
	}
	return r
}

// LoadFile parses a material catalog from an HCL file on disk.
func LoadFile(path string) (*Registry, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "read material catalog %s", path)
	}
	return Parse(src, path)
}

// Parse decodes HCL catalog source into a registry.
func Parse(src []byte, filename string) (*Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Newf(errors.TypeConfig, "parse material catalog: %s", diags.Error())
	}

	var catalog catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &catalog); diags.HasErrors() {
		return nil, errors.Newf(errors.TypeConfig, "decode material catalog: %s", diags.Error())
	}

	profiles := make([]types.MaterialProfile, 0, len(catalog.Materials))
	for _, def := range catalog.Materials {
		p := types.MaterialProfile{
			ID:                 def.ID,
			Name:               def.Name,
			DensityGCm3:        def.DensityGCm3,
			RatePerGram:        def.RatePerGram,
			RecommendedLayerMM: def.RecommendedLayerMM,
			SpeedFactor:        def.SpeedFactor,
		}
		if p.Name == "" {
			p.Name = def.ID
		}
		if p.RecommendedLayerMM == 0 {
			p.RecommendedLayerMM = 0.2
		}
		if p.SpeedFactor == 0 {
			p.SpeedFactor = 1.0
		}
		profiles = append(profiles, p)
	}

	return NewRegistry(profiles, catalog.Fallback)
}
