// Package footprint models the subset of the KiCad footprint (.kicad_mod)
// format emitted by the coil generator: graphic lines and arcs, through-hole
// vias and SMD connection pads. It can serialize a footprint into a complete
// .kicad_mod file and parse such a file back into the entity model.
package footprint

import (
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
)

// Line is a straight trace segment on a single layer.
type Line struct {
	Start geom.Point
	End   geom.Point
	Width float64 // trace width in mm
	Layer string  // KiCad layer name, e.g. "F.Cu"
}

// Arc is a three-point arc on a single layer.
//
// KiCad ignores the midpoint when deciding the arc side and always sweeps
// clockwise from start to end. SwapEnds swaps the two endpoints at
// serialization time for arcs that must render counter-clockwise; it changes
// the visual sweep only, never connectivity.
type Arc struct {
	Start    geom.Point
	Mid      geom.Point
	End      geom.Point
	Width    float64
	Layer    string
	SwapEnds bool
}

// Via is a plated through-hole connecting traces across layers. PadNumber 0
// means the via is not an externally visible pin; a coil with an odd layer
// count carries exactly one via with PadNumber 2.
type Via struct {
	Position  geom.Point
	Diameter  float64 // outer copper diameter in mm
	Drill     float64 // drill hole diameter in mm
	PadNumber int
}

// Pad is an externally accessible SMD connection pad.
type Pad struct {
	Number int
	Center geom.Point
	Width  float64
	Height float64
	Layer  string
}

// Footprint aggregates all entities of one generated coil.
type Footprint struct {
	Name  string
	Lines []Line
	Arcs  []Arc
	Vias  []Via
	Pads  []Pad
}
