// Package cmd provides the CLI commands for c3dpw.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chuymedina96/chicago-3d-printworks/internal/config"
	"github.com/chuymedina96/chicago-3d-printworks/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "c3dpw",
	Short: "Quote 3D print jobs from measured model geometry",
	Long: `c3dpw is the Chicago 3D Printworks quoting tool.

It converts measured model geometry (volume, surface area, bounding
box) plus process parameters into print-time, material, and price
estimates, with volume-discount batch tiers.

Examples:
  c3dpw quote --volume 10 --material pla --layer-height 0.2
  c3dpw quote --volume 42.5 --material petg --infill 35 --quantity 30 --format json
  c3dpw materials`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("c3dpw version 1.0.0")
	},
}
