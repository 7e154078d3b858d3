package coil

import (
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/footprint"
)

// Generate synthesizes the complete trace topology of one coil: vias are
// planned first (layers consume their anchors), then every layer's spiral
// with its via bridges, then the breakout pads.
func Generate(p Params) (*footprint.Footprint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vias, anchors := planVias(p)

	var d drawing
	outerRadius := generateSpirals(p, anchors, &d)
	pads := generatePads(p, outerRadius, &d)

	return &footprint.Footprint{
		Name:  p.Name,
		Lines: d.lines,
		Arcs:  d.arcs,
		Vias:  vias,
		Pads:  pads,
	}, nil
}

// Render generates a coil and serializes it into .kicad_mod text.
func Render(p Params) (string, error) {
	fp, err := Generate(p)
	if err != nil {
		return "", err
	}
	return fp.Encode()
}
