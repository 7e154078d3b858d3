package footprint

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
)

// The container template carries five substituted regions (name, lines, arcs,
// vias, pads) plus three footprint-level UUIDs. Entity UUIDs are generated
// per entity while encoding.
//
//go:embed template.kicad_mod
var rawTemplate string

var containerTemplate = template.Must(template.New("footprint").Parse(rawTemplate))

type templateData struct {
	Name  string
	Lines string
	Arcs  string
	Vias  string
	Pads  string
	UUID1 string
	UUID2 string
	UUID3 string
}

// Encode serializes the footprint into the textual .kicad_mod format.
// Geometry is kept at full precision up to this point; coordinates and stroke
// widths are rounded to 3 decimals here, at the serialization boundary.
func (f *Footprint) Encode() (string, error) {
	var lines, arcs, vias, pads strings.Builder

	for _, l := range f.Lines {
		encodeLine(&lines, l)
	}
	for _, a := range f.Arcs {
		encodeArc(&arcs, a)
	}
	for _, v := range f.Vias {
		encodeVia(&vias, v)
	}
	for _, p := range f.Pads {
		encodePad(&pads, p)
	}

	data := templateData{
		Name:  f.Name,
		Lines: lines.String(),
		Arcs:  arcs.String(),
		Vias:  vias.String(),
		Pads:  pads.String(),
		UUID1: uuid.NewString(),
		UUID2: uuid.NewString(),
		UUID3: uuid.NewString(),
	}

	var out strings.Builder
	if err := containerTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render footprint template: %w", err)
	}
	return out.String(), nil
}

// formatPoint renders a coordinate pair as "X Y" with 3 decimal millimeters.
func formatPoint(p geom.Point) string {
	return fmt.Sprintf("%.3f %.3f", p.X, p.Y)
}

func encodeLine(b *strings.Builder, l Line) {
	fmt.Fprintf(b, `	(fp_line
		(start %s)
		(end %s)
		(stroke
			(width %.3f)
			(type default)
		)
		(layer "%s")
		(uuid "%s")
	)
`, formatPoint(l.Start), formatPoint(l.End), l.Width, l.Layer, uuid.NewString())
}

func encodeArc(b *strings.Builder, a Arc) {
	start, end := a.Start, a.End
	if a.SwapEnds {
		start, end = end, start
	}

	fmt.Fprintf(b, `	(fp_arc
		(start %s)
		(mid %s)
		(end %s)
		(stroke
			(width %.3f)
			(type default)
		)
		(layer "%s")
		(uuid "%s")
	)
`, formatPoint(start), formatPoint(a.Mid), formatPoint(end), a.Width, a.Layer, uuid.NewString())
}

func encodeVia(b *strings.Builder, v Via) {
	fmt.Fprintf(b, `	(pad "%d" thru_hole circle
		(at %s)
		(size %g %g)
		(drill %g)
		(layers "*.Cu")
		(remove_unused_layers yes)
		(keep_end_layers yes)
		(uuid "%s")
	)
`, v.PadNumber, formatPoint(v.Position), v.Diameter, v.Diameter, v.Drill, uuid.NewString())
}

func encodePad(b *strings.Builder, p Pad) {
	fmt.Fprintf(b, `	(pad "%d" smd roundrect
		(at %s)
		(size %g %g)
		(layers "%s")
		(roundrect_rratio 0.25)
		(uuid "%s")
	)
`, p.Number, formatPoint(p.Center), p.Width, p.Height, p.Layer, uuid.NewString())
}
