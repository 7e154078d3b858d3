// Package coil synthesizes the trace topology of multi-layer spiral inductor
// coils: per-layer spiral arcs, interlayer vias with bridging traces, and the
// external connection pads. Generation is a single synchronous pass; the
// resulting entities are never mutated afterwards.
package coil

import (
	"fmt"
)

// Params holds the electrical and mechanical parameters of one coil. All
// dimensions are millimeters.
type Params struct {
	// LayerCount is the number of copper layers the coil spirals through.
	LayerCount int

	// Clockwise selects the winding direction, viewed from the top layer.
	Clockwise bool

	// TurnsPerLayer is the minimum number of full turns per layer.
	// Connecting to vias may introduce up to one more partial turn.
	TurnsPerLayer int

	// TraceWidth and TraceSpacing define the spiral pitch.
	TraceWidth   float64
	TraceSpacing float64

	// ViaDiameter and ViaDrill size the interlayer vias.
	ViaDiameter float64
	ViaDrill    float64

	// OuterDiameter is the desired outer coil diameter. The spiral is laid
	// out from the inside out, so a too small value makes turns collide.
	OuterDiameter float64

	// Name is the footprint reference name.
	Name string

	// LayerNames maps layer indices to KiCad layer names; must hold at least
	// LayerCount entries.
	LayerNames []string
}

// Validate checks the caller contract. It does not detect geometric
// degeneracies such as via rings colliding with spiral turn radii; choosing
// parameters that produce a manufacturable coil remains the caller's job.
func (p Params) Validate() error {
	if p.LayerCount < 1 {
		return fmt.Errorf("layer count must be at least 1, got %d", p.LayerCount)
	}
	if p.TurnsPerLayer < 1 {
		return fmt.Errorf("turns per layer must be at least 1, got %d", p.TurnsPerLayer)
	}
	if len(p.LayerNames) < p.LayerCount {
		return fmt.Errorf("need %d layer names, got %d", p.LayerCount, len(p.LayerNames))
	}

	dims := []struct {
		name  string
		value float64
	}{
		{"trace width", p.TraceWidth},
		{"trace spacing", p.TraceSpacing},
		{"via diameter", p.ViaDiameter},
		{"via drill", p.ViaDrill},
		{"outer diameter", p.OuterDiameter},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", d.name, d.value)
		}
	}

	return nil
}

// increment is the radial growth per turn: one trace lane plus its spacing.
func (p Params) increment() float64 {
	return p.TraceWidth + p.TraceSpacing
}

// startRadius is the innermost turn radius, shared by all layers.
func (p Params) startRadius() float64 {
	turns := float64(p.TurnsPerLayer)
	return p.OuterDiameter/2 - turns*p.TraceWidth - (turns-1)*p.TraceSpacing
}
