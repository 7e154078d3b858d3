// Package geom provides the planar and polar geometry primitives used by the
// coil generator. All coordinates are in millimeters, all angles in degrees.
//
// The angle convention is atan2(x, y), not the usual atan2(y, x): 0 degrees
// points along +Y and the angle grows toward +X. Every direction decision in
// the spiral and bridging code is derived from this convention, so it must
// not be "corrected".
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// angleTol is the tolerance used when collapsing a full 360 degree sweep to 0.
const angleTol = 1e-9

// Point is an immutable 2D coordinate in millimeters.
type Point struct {
	X float64
	Y float64
}

// Negate returns the point mirrored through the origin.
func (p Point) Negate() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AngleOf returns the angle in degrees at which p sits on a circle around the
// origin. The result is in (-180, 180].
func AngleOf(p Point) float64 {
	return math.Atan2(p.X, p.Y) * 180 / math.Pi
}

// PointOnCircle places a point on the circle of the given radius at the given
// angle. It is the inverse of AngleOf.
func PointOnCircle(angleDeg, radius float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: math.Sin(rad) * radius,
		Y: math.Cos(rad) * radius,
	}
}

// ProjectToRadius rescales p along its ray from the origin so that it lies
// exactly on the circle of the given radius. Undefined for the origin itself.
func ProjectToRadius(p Point, radius float64) Point {
	factor := math.Hypot(p.X, p.Y) / radius
	return Point{X: p.X / factor, Y: p.Y / factor}
}

// AngleBetween returns the angular sweep in [0, 360) needed to travel from a
// to b around the origin in the requested direction. A full 360 degree result
// collapses to 0.
func AngleBetween(a, b Point, clockwise bool) float64 {
	angleA := AngleOf(a)
	if angleA < 0 {
		angleA += 360
	}

	angleB := AngleOf(b)
	if angleB < 0 {
		angleB += 360
	}

	result := angleA - angleB
	if result < 0 {
		result += 360
	}

	if !clockwise {
		result = 360 - result
	}

	if scalar.EqualWithinAbs(result, 360, angleTol) {
		result = 0
	}

	return result
}

// MidpointOnRadius returns the point halfway between a and b (by angle),
// placed on the circle of the given radius. Used as the three-point midpoint
// of arcs whose endpoints sit on different radii.
func MidpointOnRadius(a, b Point, radius float64) Point {
	unitA := ProjectToRadius(a, 1)
	unitB := ProjectToRadius(b, 1)

	mid := Point{
		X: (unitA.X + unitB.X) / 2,
		Y: (unitA.Y + unitB.Y) / 2,
	}

	return PointOnCircle(AngleOf(mid), radius)
}
