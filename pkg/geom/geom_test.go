package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}), delta)
	assert.InDelta(t, 0, Distance(Point{X: 1.5, Y: -2}, Point{X: 1.5, Y: -2}), delta)
}

// The angle convention is atan2(x, y): 0 degrees along +Y, growing toward +X.
func TestAngleOfConvention(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"+y axis", Point{X: 0, Y: 1}, 0},
		{"+x axis", Point{X: 1, Y: 0}, 90},
		{"-y axis", Point{X: 0, Y: -1}, 180},
		{"-x axis", Point{X: -1, Y: 0}, -90},
		{"diagonal", Point{X: 1, Y: 1}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleOf(tt.p), delta)
		})
	}
}

func TestPointOnCircle(t *testing.T) {
	p := PointOnCircle(0, 2)
	assert.InDelta(t, 0, p.X, delta)
	assert.InDelta(t, 2, p.Y, delta)

	p = PointOnCircle(90, 3)
	assert.InDelta(t, 3, p.X, delta)
	assert.InDelta(t, 0, p.Y, delta)

	// PointOnCircle inverts AngleOf
	for _, angle := range []float64{0, 13.7, 45, 90, 135.2, 179.9} {
		assert.InDelta(t, angle, AngleOf(PointOnCircle(angle, 4.2)), 1e-9, "angle %g", angle)
	}
}

func TestProjectToRadius(t *testing.T) {
	p := ProjectToRadius(Point{X: 3, Y: 4}, 10)
	assert.InDelta(t, 6, p.X, delta)
	assert.InDelta(t, 8, p.Y, delta)

	// Projecting a point already on the radius is the identity
	for _, angle := range []float64{0, 30, 77.3, 212} {
		on := PointOnCircle(angle, 5.5)
		projected := ProjectToRadius(on, 5.5)
		assert.InDelta(t, on.X, projected.X, delta)
		assert.InDelta(t, on.Y, projected.Y, delta)
	}
}

func TestAngleBetweenDirectional(t *testing.T) {
	a := Point{X: 0, Y: 1} // 0 degrees
	b := Point{X: 1, Y: 0} // 90 degrees

	assert.InDelta(t, 270, AngleBetween(a, b, true), delta)
	assert.InDelta(t, 90, AngleBetween(a, b, false), delta)

	assert.InDelta(t, 90, AngleBetween(b, a, true), delta)
	assert.InDelta(t, 270, AngleBetween(b, a, false), delta)
}

func TestAngleBetweenSamePointIsZero(t *testing.T) {
	points := []Point{
		{X: 0, Y: 1},
		{X: 3, Y: 4},
		{X: -2, Y: -7},
		{X: 5.111, Y: 0},
	}

	for _, p := range points {
		assert.Zero(t, AngleBetween(p, p, true))
		assert.Zero(t, AngleBetween(p, p, false))
	}
}

// Opposite traversal directions cover the full circle between them.
func TestAngleBetweenComplement(t *testing.T) {
	pairs := []struct{ a, b Point }{
		{Point{X: 0, Y: 1}, Point{X: 1, Y: 0}},
		{Point{X: -1, Y: 2}, Point{X: 4, Y: -0.5}},
		{Point{X: 2, Y: 2}, Point{X: -3, Y: 1}},
	}

	for _, pair := range pairs {
		cw := AngleBetween(pair.a, pair.b, true)
		ccw := AngleBetween(pair.a, pair.b, false)
		sum := math.Mod(cw+ccw, 360)
		assert.InDelta(t, 0, sum, delta)
	}
}

func TestMidpointOnRadius(t *testing.T) {
	// Points at 90 and 0 degrees: midpoint sits at 45 degrees
	mid := MidpointOnRadius(Point{X: 5, Y: 0}, Point{X: 0, Y: 5}, 2)

	require.InDelta(t, 45, AngleOf(mid), delta)
	assert.InDelta(t, 2*math.Sin(math.Pi/4), mid.X, delta)
	assert.InDelta(t, 2*math.Cos(math.Pi/4), mid.Y, delta)

	// The input radii must not matter, only their angles
	mid2 := MidpointOnRadius(Point{X: 0.1, Y: 0}, Point{X: 0, Y: 17}, 2)
	assert.InDelta(t, mid.X, mid2.X, delta)
	assert.InDelta(t, mid.Y, mid2.Y, delta)
}

func TestNegate(t *testing.T) {
	p := Point{X: 1.5, Y: -2.5}.Negate()
	assert.Equal(t, Point{X: -1.5, Y: 2.5}, p)
}
