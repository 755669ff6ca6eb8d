// Package main is the entry point for the c3dpw CLI.
package main

import (
	"os"

	"github.com/chuymedina96/chicago-3d-printworks/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
