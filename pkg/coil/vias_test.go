package coil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// testParams are the reference parameters used across the coil tests:
// 12 mm coil, 4 turns of 0.127/0.127 traces, 0.6/0.3 vias.
func testParams(layers int, clockwise bool) Params {
	names := []string{"F.Cu", "B.Cu", "In1.Cu", "In2.Cu", "In3.Cu", "In4.Cu"}
	return Params{
		LayerCount:    layers,
		Clockwise:     clockwise,
		TurnsPerLayer: 4,
		TraceWidth:    0.127,
		TraceSpacing:  0.127,
		ViaDiameter:   0.6,
		ViaDrill:      0.3,
		OuterDiameter: 12,
		Name:          "L1",
		LayerNames:    names[:layers],
	}
}

func TestViaCounts(t *testing.T) {
	tests := []struct {
		layers      int
		wantInside  int
		wantOutside int
	}{
		{1, 1, 0},
		{2, 1, 0},
		{3, 2, 1},
		{4, 2, 1},
		{5, 3, 2},
		{6, 3, 2},
	}

	for _, tt := range tests {
		inside, outside := viaCounts(tt.layers)
		assert.Equal(t, tt.wantInside, inside, "inside count for %d layers", tt.layers)
		assert.Equal(t, tt.wantOutside, outside, "outside count for %d layers", tt.layers)
	}
}

func TestViaRingRadii(t *testing.T) {
	p := testParams(1, true)
	inside, outside := viaRingRadii(p)

	// D/2 - T*w - (T-1)*s - vd - (w+s)
	assert.InDelta(t, 6-4*0.127-3*0.127-0.6-0.254, inside, delta)
	// D/2 + vd + 2s + w
	assert.InDelta(t, 6+0.6+2*0.127+0.127, outside, delta)
}

func TestPlanViasPlacement(t *testing.T) {
	p := testParams(3, true)
	vias, anchors := planVias(p)

	require.Len(t, vias, 3)
	require.Len(t, anchors, 3)

	insideRadius, outsideRadius := viaRingRadii(p)

	// Even indices sit on the inside ring, odd on the outside ring. The two
	// inside vias split the circle into 180 degree steps.
	assert.InDelta(t, 0, anchors[0].Angle, delta)
	assert.InDelta(t, 0, anchors[1].Angle, delta)
	assert.InDelta(t, 180, anchors[2].Angle, delta)

	assert.InDelta(t, insideRadius, anchors[0].Position.Y, delta)
	assert.InDelta(t, outsideRadius, anchors[1].Position.Y, delta)
	assert.InDelta(t, -insideRadius, anchors[2].Position.Y, delta)

	// Vias and anchors share indexing
	for i := range vias {
		assert.Equal(t, anchors[i].Position, vias[i].Position, "via %d", i)
		assert.Equal(t, p.ViaDiameter, vias[i].Diameter)
		assert.Equal(t, p.ViaDrill, vias[i].Drill)
	}
}

func TestPlanViasPadTwoTagging(t *testing.T) {
	for layers := 1; layers <= 6; layers++ {
		p := testParams(layers, true)
		vias, _ := planVias(p)

		inside, outside := viaCounts(layers)
		require.Len(t, vias, inside+outside, "%d layers", layers)

		tagged := 0
		for _, via := range vias {
			if via.PadNumber == 2 {
				tagged++
			}
		}

		if layers%2 != 0 {
			assert.Equal(t, 1, tagged, "%d layers: odd stacks need one pad-2 via", layers)
			assert.Equal(t, 2, vias[len(vias)-1].PadNumber, "%d layers: last via carries the tag", layers)
		} else {
			assert.Zero(t, tagged, "%d layers: even stacks tag no via", layers)
		}
	}
}
