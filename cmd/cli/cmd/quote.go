// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chuymedina96/chicago-3d-printworks/api"
	"github.com/chuymedina96/chicago-3d-printworks/core/materials"
	"github.com/chuymedina96/chicago-3d-printworks/internal/config"
)

var (
	quoteVolume    float64
	quoteSurface   float64
	quoteBBox      []float64
	quoteTriangles int
	quoteMaterial  string
	quoteInfill    int
	quoteLayer     float64
	quoteQuantity  int
	quoteFormat    string
	quoteCatalog   string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a print job from measured geometry",
	Long: `Compute a print-time, material, and price estimate from measured
model geometry and process parameters.

This runs the exact same engine the quote server runs, so a quote
produced here is byte-for-byte comparable with the server's.

Examples:
  c3dpw quote --volume 10 --material pla --layer-height 0.2
  c3dpw quote --volume 42.5 --material petg --infill 35 --quantity 30
  c3dpw quote --volume 10 --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Float64Var(&quoteVolume, "volume", 0, "model volume in cm³ (required)")
	quoteCmd.Flags().Float64Var(&quoteSurface, "surface", 0, "model surface area in cm²")
	quoteCmd.Flags().Float64SliceVar(&quoteBBox, "bbox", nil, "bounding box in mm as x,y,z")
	quoteCmd.Flags().IntVar(&quoteTriangles, "triangles", 0, "mesh triangle count")
	quoteCmd.Flags().StringVarP(&quoteMaterial, "material", "m", "pla", "material id")
	quoteCmd.Flags().IntVar(&quoteInfill, "infill", -1, "infill percentage 0-100 (default 20)")
	quoteCmd.Flags().Float64VarP(&quoteLayer, "layer-height", "l", 0.2, "layer height in mm")
	quoteCmd.Flags().IntVarP(&quoteQuantity, "quantity", "q", 0, "batch quantity for tier pricing")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "cli", "output format (cli, json)")
	quoteCmd.Flags().StringVar(&quoteCatalog, "catalog", "", "material catalog HCL file (default embedded)")
	_ = quoteCmd.MarkFlagRequired("volume")
}

func runQuote(cmd *cobra.Command, args []string) error {
	registry := materials.Default()
	if quoteCatalog != "" {
		loaded, err := materials.LoadFile(quoteCatalog)
		if err != nil {
			return err
		}
		registry = loaded
	}

	req := &api.QuoteRequest{
		VolumeCm3:     quoteVolume,
		SurfaceCm2:    quoteSurface,
		TriangleCount: quoteTriangles,
		MaterialID:    quoteMaterial,
		LayerHeightMM: quoteLayer,
	}
	if len(quoteBBox) == 3 {
		req.BBoxMM = [3]float64{quoteBBox[0], quoteBBox[1], quoteBBox[2]}
	} else if len(quoteBBox) != 0 {
		return fmt.Errorf("--bbox expects exactly three values, got %d", len(quoteBBox))
	}
	if quoteInfill >= 0 {
		req.InfillPct = &quoteInfill
	}
	if quoteQuantity > 0 {
		req.Quantity = &quoteQuantity
	}

	if err := req.Validate(); err != nil {
		return err
	}

	cfg := config.Get()
	handler := api.NewHandler(registry, cfg.Pricing, cfg.Ladder)
	result := handler.Quote(req)

	switch quoteFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "cli":
		printQuote(result)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", quoteFormat)
	}
}

func printQuote(result *api.QuoteResponse) {
	fmt.Printf("Material:    %s", result.MaterialID)
	if result.MaterialFallback {
		fmt.Printf(" (fallback)")
	}
	fmt.Println()
	fmt.Printf("Volume:      %.2f cm³\n", result.VolumeCm3)
	fmt.Printf("Material:    %.1f g\n", result.EstimatedMaterialG)
	if result.EstimatedTimeHr != nil {
		fmt.Printf("Print time:  %.2f hr\n", *result.EstimatedTimeHr)
	} else {
		fmt.Printf("Print time:  n/a\n")
	}
	fmt.Printf("Price:       $%.2f\n", result.PriceUSD)

	if len(result.Tiers) > 0 {
		fmt.Println("\nBatch pricing:")
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  QTY\tDISCOUNT\tPER UNIT\tTOTAL")
		for _, tier := range result.Tiers {
			fmt.Fprintf(tw, "  %d\t%.0f%%\t$%.2f\t$%.2f\n",
				tier.Quantity, tier.Discount*100, tier.PerUnitPrice, tier.TotalPrice)
		}
		tw.Flush()
	}

	if result.Custom != nil {
		fmt.Printf("\nQuantity %d (nearest tier %d): $%.2f/unit, $%.2f total\n",
			result.Custom.RequestedQuantity, result.Custom.NearestTier,
			result.Custom.PerUnitPrice, result.Custom.TotalPrice)
	}
}
