package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/footprint"
)

var infoCmd = &cobra.Command{
	Use:   "info <footprint_file>",
	Short: "Show footprint entity information",
	Long:  `Parses a KiCad footprint file (.kicad_mod) and prints its entity counts.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	fp, err := footprint.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing footprint: %w", err)
	}

	fmt.Printf("Footprint: %s\n", fp.Name)
	fmt.Printf("  Lines: %d\n", len(fp.Lines))
	fmt.Printf("  Arcs:  %d\n", len(fp.Arcs))
	fmt.Printf("  Vias:  %d\n", len(fp.Vias))
	fmt.Printf("  Pads:  %d\n", len(fp.Pads))

	for _, via := range fp.Vias {
		tag := ""
		if via.PadNumber != 0 {
			tag = fmt.Sprintf(" (pad %d)", via.PadNumber)
		}
		fmt.Printf("  Via %.2f/%.2f mm at (%.3f, %.3f)%s\n",
			via.Diameter, via.Drill, via.Position.X, via.Position.Y, tag)
	}

	for _, pad := range fp.Pads {
		fmt.Printf("  Pad %d: %.2f×%.2f mm on %s at (%.3f, %.3f)\n",
			pad.Number, pad.Width, pad.Height, pad.Layer, pad.Center.X, pad.Center.Y)
	}

	return nil
}
