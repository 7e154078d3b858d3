package coil

import (
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/footprint"
)

// drawing accumulates the conductor entities of one generation pass. It is
// exclusively owned by the call chain; nothing aliases it.
type drawing struct {
	arcs  []footprint.Arc
	lines []footprint.Line
}

// spiralLoop emits one full turn as two 180 degree arcs, starting on the +X
// axis at radius and ending there again at radius+increment. windMult is +1
// for a clockwise sweep and -1 for counter-clockwise.
//
// Two arcs because the arc primitive cannot represent a full circle as one
// entity.
func (d *drawing) spiralLoop(radius, increment, width float64, layer string, windMult float64) {
	swap := windMult > 0

	d.arcs = append(d.arcs,
		footprint.Arc{
			Start:    geom.Point{X: radius},
			Mid:      geom.Point{Y: -windMult * radius},
			End:      geom.Point{X: -radius},
			Width:    width,
			Layer:    layer,
			SwapEnds: swap,
		},
		footprint.Arc{
			Start:    geom.Point{X: -radius},
			Mid:      geom.Point{X: increment / 2, Y: windMult * (radius + increment/2)},
			End:      geom.Point{X: radius + increment},
			Width:    width,
			Layer:    layer,
			SwapEnds: swap,
		},
	)
}

// generateSpirals emits the full spiral of every layer and hooks each layer
// up to its via anchors. It returns the radius after the last full turn,
// which the pad generator needs for breakout placement.
//
// Adjacent layers are viewed from opposite board faces, so odd layers spiral
// in the opposite direction to form one continuous electrical path. Layer i
// reaches back to anchors[i-1] (shared with its predecessor) and forward to
// anchors[i], which threads the serpentine path through the stack.
func generateSpirals(p Params, anchors []Anchor, d *drawing) float64 {
	increment := p.increment()
	startRadius := p.startRadius()

	wrapMult := 1.0
	if !p.Clockwise {
		wrapMult = -1
	}

	currentRadius := startRadius
	for layer := 0; layer < p.LayerCount; layer++ {
		currentRadius = startRadius
		layerName := p.LayerNames[layer]
		odd := layer%2 != 0

		layerMult := 1.0
		if odd {
			layerMult = -1
		}

		for turn := 0; turn < p.TurnsPerLayer; turn++ {
			d.spiralLoop(currentRadius, increment, p.TraceWidth, layerName, wrapMult*layerMult)
			currentRadius += increment
		}

		// Even layers hand their inner end to the previous via and their
		// outer end to their own; odd layers the other way around.
		firstInside, secondInside := false, true
		if odd {
			firstInside, secondInside = true, false
		}

		// Bridging direction flips with the layer parity.
		clockwise := p.Clockwise == !odd

		innerPoint := geom.Point{X: startRadius}
		outerPoint := geom.Point{X: currentRadius}

		if layer > 0 {
			endpoint, endRadius := outerPoint, currentRadius
			if firstInside {
				endpoint, endRadius = innerPoint, startRadius
			}
			d.connectVia(endRadius, endpoint, increment, layerName, p.TraceWidth,
				firstInside, clockwise, anchors[layer-1])
		}

		if layer < p.LayerCount-1 || p.LayerCount%2 != 0 {
			endpoint, endRadius := outerPoint, currentRadius
			if secondInside {
				endpoint, endRadius = innerPoint, startRadius
			}
			d.connectVia(endRadius, endpoint, increment, layerName, p.TraceWidth,
				secondInside, clockwise, anchors[layer])
		}
	}

	return currentRadius
}
