package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCoil/pkg/coil"
)

var generateParams = coil.Params{}

var (
	generateCounterClockwise bool
	generateOutput           string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a spiral coil footprint",
	Long: `Generates a multi-layer spiral coil and writes it as a KiCad
footprint file (.kicad_mod).

The coil spirals through every named layer; adjacent layers wind in
opposite directions and are stitched together with vias placed on rings
inside and outside the spiral. With some parameter combinations a valid
coil is not possible (turns may collide); the generator does not check
for that.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.IntVar(&generateParams.LayerCount, "layers", 1, "number of coil layers")
	flags.IntVar(&generateParams.TurnsPerLayer, "turns", 10, "full turns per layer")
	flags.Float64Var(&generateParams.TraceWidth, "trace-width", 0.2, "trace width (mm)")
	flags.Float64Var(&generateParams.TraceSpacing, "trace-spacing", 0.2, "spacing between traces (mm)")
	flags.Float64Var(&generateParams.ViaDiameter, "via-size", 0.6, "via outer diameter (mm)")
	flags.Float64Var(&generateParams.ViaDrill, "via-drill", 0.3, "via drill diameter (mm)")
	flags.Float64Var(&generateParams.OuterDiameter, "diameter", 30, "outer coil diameter (mm)")
	flags.StringVar(&generateParams.Name, "name", "COIL", "footprint reference name")
	flags.StringSliceVar(&generateParams.LayerNames, "layer-names", []string{"F.Cu"},
		"KiCad layer names, one per coil layer")
	flags.BoolVar(&generateCounterClockwise, "counter-clockwise", false,
		"wind counter-clockwise instead of clockwise")
	flags.StringVarP(&generateOutput, "output", "o", "", "output file (default <name>.kicad_mod)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	generateParams.Clockwise = !generateCounterClockwise

	text, err := coil.Render(generateParams)
	if err != nil {
		return fmt.Errorf("failed to generate coil: %w", err)
	}

	output := generateOutput
	if output == "" {
		output = generateParams.Name + ".kicad_mod"
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write footprint: %w", err)
	}

	fmt.Printf("✓ Wrote %s (%s)\n", output, humanize.Bytes(uint64(len(text))))
	return nil
}
