package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "otc",
	Short: "OpenTraceCoil - PCB spiral coil footprint generator",
	Long: `OpenTraceCoil (otc) generates multi-layer spiral inductor coils as
KiCad footprint files: per-layer spiral traces, interlayer vias with
bridging arcs, and external connection pads.

Examples:
  otc generate --layers 2 --turns 10 --diameter 30 --name L1 \
      --layer-names F.Cu,B.Cu -o coil.kicad_mod
  otc info coil.kicad_mod                # Show entity counts of a footprint`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
