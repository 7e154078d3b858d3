package coil

import (
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/footprint"
)

// Anchor is the designated point on a via that a spiral layer must reach.
// Anchors are produced once by the via planner and are read-only input to the
// spiral generator and the bridge connector.
type Anchor struct {
	Position geom.Point
	Angle    float64 // angular position on its ring, degrees
}

// viaRingRadii returns the radii of the via ring inside the spiral and the
// ring outside of it.
func viaRingRadii(p Params) (inside, outside float64) {
	inside = p.startRadius() - p.ViaDiameter - p.increment()
	outside = p.OuterDiameter/2 + p.ViaDiameter + 2*p.TraceSpacing + p.TraceWidth
	return inside, outside
}

// viaCounts returns how many vias the inside and outside rings need. A coil
// with an odd layer count needs one extra via to route the last spiral
// endpoint back out.
func viaCounts(layerCount int) (inside, outside int) {
	effective := layerCount - (1 - layerCount%2)
	inside = effective/2 + 1
	outside = inside - 1
	return inside, outside
}

// planVias places all vias of the coil and their connection anchors. Via
// index parity selects the ring (even inside, odd outside); within a ring the
// vias are spread evenly over the full circle. The returned slices share
// indexing: anchors[i] belongs to vias[i].
//
// The last via becomes pad number 2 when the layer count is odd, since the
// innermost spiral end of the final layer has no pad of its own.
func planVias(p Params) ([]footprint.Via, []Anchor) {
	insideRadius, outsideRadius := viaRingRadii(p)
	insideCount, outsideCount := viaCounts(p.LayerCount)

	insideStep := 360 / float64(insideCount)
	outsideStep := 0.0
	if outsideCount != 0 {
		outsideStep = 360 / float64(outsideCount)
	}

	total := insideCount + outsideCount
	oddLayers := p.LayerCount%2 != 0

	vias := make([]footprint.Via, 0, total)
	anchors := make([]Anchor, 0, total)

	for v := 0; v < total; v++ {
		radius, step := insideRadius, insideStep
		if v%2 != 0 {
			radius, step = outsideRadius, outsideStep
		}

		angle := float64(v/2) * step
		position := geom.PointOnCircle(angle, radius)

		padNumber := 0
		if oddLayers && v == total-1 {
			padNumber = 2
		}

		vias = append(vias, footprint.Via{
			Position:  position,
			Diameter:  p.ViaDiameter,
			Drill:     p.ViaDrill,
			PadNumber: padNumber,
		})
		anchors = append(anchors, Anchor{Position: position, Angle: angle})
	}

	return vias, anchors
}
