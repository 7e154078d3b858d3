package coil

import (
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/footprint"
)

// bridgeSigns centralizes every inside/outside and winding-direction sign
// choice the bridging steps need, so the branches below stay free of
// duplicated parity logic.
type bridgeSigns struct {
	// sweepClockwise is the direction used for all angular measurements
	// between the endpoint and the anchor.
	sweepClockwise bool

	// swapEnds makes the rendered arc sweep match the traversal direction.
	// A wrong value reverses only the visual sweep, not connectivity.
	swapEnds bool

	// radialStep moves the bridging lane one increment off the last
	// completed turn: inward (-1) for inside anchors, outward (+1) otherwise.
	radialStep float64

	// centerYSign places the half-circle center perpendicular to the
	// starting radius on the correct side.
	centerYSign float64
}

func newBridgeSigns(inside, clockwise bool) bridgeSigns {
	signs := bridgeSigns{
		sweepClockwise: inside == clockwise,
		swapEnds:       inside != clockwise,
		radialStep:     1,
		centerYSign:    1,
	}
	if inside {
		signs.radialStep = -1
	}
	if inside != clockwise {
		signs.centerYSign = -1
	}
	return signs
}

// connectVia stitches a spiral endpoint to a via anchor with the shortest
// valid conductor, staying one lane away from the last completed turn. The
// bridge is composed of up to three independently gated pieces:
//
//  1. a half-circle arc when the anchor is more than 180 degrees away in the
//     winding direction,
//  2. a partial arc when a substantial sweep remains,
//  3. always a closing straight line onto the via position.
func (d *drawing) connectVia(endRadius float64, endpoint geom.Point, increment float64,
	layer string, width float64, inside, clockwise bool, anchor Anchor) {

	signs := newBridgeSigns(inside, clockwise)
	minBridgeDistance := 3 * increment

	targetRadius := endRadius + signs.radialStep*increment

	current := endpoint
	currentRadius := endRadius

	// The point on the bridging lane closest to the via, from where the
	// closing line departs.
	nearest := geom.ProjectToRadius(anchor.Position, targetRadius)

	if geom.Distance(current, anchor.Position) >= minBridgeDistance {
		if geom.AngleBetween(current, nearest, signs.sweepClockwise) >= 180 {
			arcTargetRadius := targetRadius
			arcCenterRadius := arcTargetRadius + 0.5*increment
			if !inside {
				arcTargetRadius = targetRadius - increment
				arcCenterRadius = arcTargetRadius
			}

			// A half circle ends at the diametrically opposite point.
			opposite := geom.ProjectToRadius(endpoint.Negate(), arcTargetRadius)
			center := geom.Point{Y: signs.centerYSign * arcCenterRadius}

			d.arcs = append(d.arcs, footprint.Arc{
				Start:    endpoint,
				Mid:      center,
				End:      opposite,
				Width:    width,
				Layer:    layer,
				SwapEnds: signs.swapEnds,
			})

			current = opposite
			currentRadius = arcTargetRadius
		}

		// Close the remaining sweep with a partial arc. The threshold
		// compares degrees against the millimeter bridge distance, which the
		// layout this generator descends from established; changing it would
		// shift every bridging decision.
		remaining := geom.AngleBetween(current, nearest, signs.sweepClockwise)
		if remaining >= minBridgeDistance {
			arcCenterRadius := (targetRadius-currentRadius)/2 + currentRadius

			d.arcs = append(d.arcs, footprint.Arc{
				Start:    current,
				Mid:      geom.MidpointOnRadius(current, nearest, arcCenterRadius),
				End:      nearest,
				Width:    width,
				Layer:    layer,
				SwapEnds: signs.swapEnds,
			})

			current = nearest
		}
	}

	d.lines = append(d.lines, footprint.Line{
		Start: current,
		End:   anchor.Position,
		Width: width,
		Layer: layer,
	})
}
