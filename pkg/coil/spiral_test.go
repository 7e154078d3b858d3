package coil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
)

func TestSpiralLoopClockwise(t *testing.T) {
	var d drawing
	d.spiralLoop(5, 0.25, 0.127, "F.Cu", 1)

	require.Len(t, d.arcs, 2)

	first, second := d.arcs[0], d.arcs[1]

	// First half turn: +X axis to -X axis through the bottom
	assert.Equal(t, geom.Point{X: 5}, first.Start)
	assert.Equal(t, geom.Point{Y: -5}, first.Mid)
	assert.Equal(t, geom.Point{X: -5}, first.End)
	assert.True(t, first.SwapEnds)

	// Second half turn grows one increment while returning to the +X axis
	assert.Equal(t, geom.Point{X: -5}, second.Start)
	assert.Equal(t, geom.Point{X: 0.125, Y: 5.125}, second.Mid)
	assert.Equal(t, geom.Point{X: 5.25}, second.End)
	assert.True(t, second.SwapEnds)

	for _, arc := range d.arcs {
		assert.Equal(t, 0.127, arc.Width)
		assert.Equal(t, "F.Cu", arc.Layer)
	}
}

func TestSpiralLoopCounterClockwise(t *testing.T) {
	var d drawing
	d.spiralLoop(5, 0.25, 0.127, "B.Cu", -1)

	require.Len(t, d.arcs, 2)

	assert.Equal(t, geom.Point{Y: 5}, d.arcs[0].Mid)
	assert.Equal(t, geom.Point{X: 0.125, Y: -5.125}, d.arcs[1].Mid)
	assert.False(t, d.arcs[0].SwapEnds)
	assert.False(t, d.arcs[1].SwapEnds)
}

func TestGenerateSpiralsTurnCount(t *testing.T) {
	for _, layers := range []int{1, 2, 3, 4} {
		p := testParams(layers, true)
		_, anchors := planVias(p)

		var d drawing
		generateSpirals(p, anchors, &d)

		// Two arcs per turn per layer, plus whatever bridging needed
		spiralArcs := 2 * p.TurnsPerLayer * layers
		assert.GreaterOrEqual(t, len(d.arcs), spiralArcs, "%d layers", layers)

		// Every bridge terminates in exactly one closing line
		bridges := layers
		if layers > 1 {
			bridges = 2*layers - 1
			if layers%2 == 0 {
				bridges = 2 * (layers - 1)
			}
		}
		assert.Len(t, d.lines, bridges, "%d layers", layers)
	}
}

func TestGenerateSpiralsOuterRadius(t *testing.T) {
	p := testParams(2, true)
	_, anchors := planVias(p)

	var d drawing
	outerRadius := generateSpirals(p, anchors, &d)

	want := p.startRadius() + float64(p.TurnsPerLayer)*p.increment()
	assert.InDelta(t, want, outerRadius, delta)
}

// Adjacent layers must wind oppositely: their spiral arcs carry inverted
// swap flags.
func TestGenerateSpiralsLayerParity(t *testing.T) {
	p := testParams(2, true)
	_, anchors := planVias(p)

	var d drawing
	generateSpirals(p, anchors, &d)

	spiralPerLayer := 2 * p.TurnsPerLayer

	for i := 0; i < spiralPerLayer; i++ {
		assert.True(t, d.arcs[i].SwapEnds, "layer 0 arc %d", i)
		assert.Equal(t, "F.Cu", d.arcs[i].Layer)
	}

	// Layer 1 spiral arcs start after layer 0's spiral and bridge arcs
	layer1 := 0
	for _, arc := range d.arcs {
		if arc.Layer == "B.Cu" && layer1 < spiralPerLayer {
			assert.False(t, arc.SwapEnds, "layer 1 spiral arc %d", layer1)
			layer1++
		}
	}
	assert.Equal(t, spiralPerLayer, layer1)
}
