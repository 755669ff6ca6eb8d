// Package cmd - materials command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chuymedina96/chicago-3d-printworks/core/materials"
)

var materialsCatalog string

// materialsCmd lists the material catalog
var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List available material profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := materials.Default()
		if materialsCatalog != "" {
			loaded, err := materials.LoadFile(materialsCatalog)
			if err != nil {
				return err
			}
			registry = loaded
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tDENSITY g/cm³\t$/GRAM\tLAYER mm\tSPEED")
		for _, p := range registry.All() {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.3f\t%.2f\t%.2f\n",
				p.ID, p.Name, p.DensityGCm3, p.RatePerGram, p.RecommendedLayerMM, p.SpeedFactor)
		}
		return tw.Flush()
	},
}

func init() {
	materialsCmd.Flags().StringVar(&materialsCatalog, "catalog", "", "material catalog HCL file (default embedded)")
}
