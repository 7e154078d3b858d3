package coil

import (
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/footprint"
)

// breakoutLength is the clearance between the breakout trace end and the pad.
// The host tool rejects pads that touch a graphic line as routing origins, so
// the trace deliberately stops short of the pad.
const breakoutLength = 0.5 // mm

// generatePads emits the externally accessible pads and their breakout
// traces. The top pad always exists; the bottom pad only when the layer count
// is even and greater than one, because an odd stack terminates its opposite
// spiral end on a via instead.
func generatePads(p Params, outerRadius float64, d *drawing) []footprint.Pad {
	dir := 1.0
	if !p.Clockwise {
		dir = -1
	}

	padX := outerRadius + breakoutLength + 4*p.TraceWidth
	padY := breakoutLength + 0.5*p.ViaDiameter + p.TraceWidth

	topCenter := geom.Point{X: padX, Y: -dir * padY}
	bottomCenter := geom.Point{X: padX, Y: dir * padY}

	topLayer := p.LayerNames[0]
	bottomLayer := p.LayerNames[p.LayerCount-1]

	// Breakout from the outermost spiral point: radially out to the pad's
	// y offset, then sideways, stopping 3 trace widths before the pad.
	d.lines = append(d.lines,
		footprint.Line{
			Start: geom.Point{X: outerRadius},
			End:   geom.Point{X: outerRadius, Y: topCenter.Y},
			Width: p.TraceWidth,
			Layer: topLayer,
		},
		footprint.Line{
			Start: geom.Point{X: outerRadius, Y: topCenter.Y},
			End:   geom.Point{X: topCenter.X - 3*p.TraceWidth, Y: topCenter.Y},
			Width: p.TraceWidth,
			Layer: topLayer,
		},
	)

	pads := []footprint.Pad{{
		Number: 1,
		Center: topCenter,
		Width:  8 * p.TraceWidth,
		Height: p.TraceWidth,
		Layer:  topLayer,
	}}

	if p.LayerCount > 1 && p.LayerCount%2 == 0 {
		d.lines = append(d.lines,
			footprint.Line{
				Start: geom.Point{X: outerRadius},
				End:   geom.Point{X: outerRadius, Y: bottomCenter.Y},
				Width: p.TraceWidth,
				Layer: bottomLayer,
			},
			footprint.Line{
				Start: geom.Point{X: outerRadius, Y: bottomCenter.Y},
				End:   geom.Point{X: bottomCenter.X - 3*p.TraceWidth, Y: bottomCenter.Y},
				Width: p.TraceWidth,
				Layer: bottomLayer,
			},
		)

		pads = append(pads, footprint.Pad{
			Number: 2,
			Center: bottomCenter,
			Width:  8 * p.TraceWidth,
			Height: p.TraceWidth,
			Layer:  bottomLayer,
		})
	}

	return pads
}
