package footprint

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceCoil/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceCoil/pkg/kicad/sexp"
)

// Parse reads a .kicad_mod footprint back into the entity model. Through-hole
// pads map to Via, SMD pads to Pad. The SwapEnds flag of parsed arcs is always
// false: the swap is a serialization direction hint and the file only records
// the already swapped endpoints.
func Parse(r io.Reader) (*Footprint, error) {
	nodes, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expressions: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	root, ok := nodes[0].(*sexp.List)
	if !ok || root.Key() != "footprint" {
		return nil, fmt.Errorf("expected (footprint ...) root node")
	}

	fp := &Footprint{}

	if name, err := sexp.GetString(root, 1); err == nil {
		fp.Name = name
	}

	for _, node := range sexp.FindAllNodes(root, "fp_line") {
		line, err := parseLine(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fp_line: %w", err)
		}
		fp.Lines = append(fp.Lines, line)
	}

	for _, node := range sexp.FindAllNodes(root, "fp_arc") {
		arc, err := parseArc(node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fp_arc: %w", err)
		}
		fp.Arcs = append(fp.Arcs, arc)
	}

	for _, node := range sexp.FindAllNodes(root, "pad") {
		padType, err := sexp.GetString(node, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pad type: %w", err)
		}

		switch padType {
		case "thru_hole":
			via, err := parseVia(node)
			if err != nil {
				return nil, fmt.Errorf("failed to parse via pad: %w", err)
			}
			fp.Vias = append(fp.Vias, via)

		case "smd":
			pad, err := parsePad(node)
			if err != nil {
				return nil, fmt.Errorf("failed to parse smd pad: %w", err)
			}
			fp.Pads = append(fp.Pads, pad)

		default:
			return nil, fmt.Errorf("unsupported pad type %q", padType)
		}
	}

	return fp, nil
}

// ParseFile parses a .kicad_mod file from disk.
func ParseFile(path string) (*Footprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// parsePoint extracts coordinates from a (start x y), (end x y), (mid x y) or
// (at x y) node.
func parsePoint(node *sexp.List) (geom.Point, error) {
	x, err := sexp.GetFloat(node, 1)
	if err != nil {
		return geom.Point{}, fmt.Errorf("failed to parse X coordinate: %w", err)
	}

	y, err := sexp.GetFloat(node, 2)
	if err != nil {
		return geom.Point{}, fmt.Errorf("failed to parse Y coordinate: %w", err)
	}

	return geom.Point{X: x, Y: y}, nil
}

// requirePoint finds a child node by key and parses it as a point.
func requirePoint(node *sexp.List, key string) (geom.Point, error) {
	sub, found := sexp.FindNode(node, key)
	if !found {
		return geom.Point{}, fmt.Errorf("missing required %q field", key)
	}
	return parsePoint(sub)
}

// parseStrokeWidth extracts the width from a (stroke (width w) ...) node.
func parseStrokeWidth(node *sexp.List) (float64, error) {
	stroke, found := sexp.FindNode(node, "stroke")
	if !found {
		return 0, fmt.Errorf("missing required 'stroke' field")
	}

	widthNode, found := sexp.FindNode(stroke, "width")
	if !found {
		return 0, fmt.Errorf("missing required stroke 'width' field")
	}

	return sexp.GetFloat(widthNode, 1)
}

// parseLayer extracts the layer name from a (layer "name") node.
func parseLayer(node *sexp.List) (string, error) {
	layerNode, found := sexp.FindNode(node, "layer")
	if !found {
		return "", fmt.Errorf("missing required 'layer' field")
	}
	return sexp.GetString(layerNode, 1)
}

func parseLine(node *sexp.List) (Line, error) {
	var line Line
	var err error

	if line.Start, err = requirePoint(node, "start"); err != nil {
		return line, err
	}
	if line.End, err = requirePoint(node, "end"); err != nil {
		return line, err
	}
	if line.Width, err = parseStrokeWidth(node); err != nil {
		return line, err
	}
	if line.Layer, err = parseLayer(node); err != nil {
		return line, err
	}

	return line, nil
}

func parseArc(node *sexp.List) (Arc, error) {
	var arc Arc
	var err error

	if arc.Start, err = requirePoint(node, "start"); err != nil {
		return arc, err
	}
	if arc.Mid, err = requirePoint(node, "mid"); err != nil {
		return arc, err
	}
	if arc.End, err = requirePoint(node, "end"); err != nil {
		return arc, err
	}
	if arc.Width, err = parseStrokeWidth(node); err != nil {
		return arc, err
	}
	if arc.Layer, err = parseLayer(node); err != nil {
		return arc, err
	}

	return arc, nil
}

func parseVia(node *sexp.List) (Via, error) {
	var via Via
	var err error

	number, err := sexp.GetString(node, 1)
	if err != nil {
		return via, fmt.Errorf("failed to parse pad number: %w", err)
	}
	if via.PadNumber, err = strconv.Atoi(number); err != nil {
		return via, fmt.Errorf("failed to parse pad number %q: %w", number, err)
	}

	if via.Position, err = requirePoint(node, "at"); err != nil {
		return via, err
	}

	sizeNode, found := sexp.FindNode(node, "size")
	if !found {
		return via, fmt.Errorf("missing required 'size' field")
	}
	if via.Diameter, err = sexp.GetFloat(sizeNode, 1); err != nil {
		return via, fmt.Errorf("failed to parse via diameter: %w", err)
	}

	drillNode, found := sexp.FindNode(node, "drill")
	if !found {
		return via, fmt.Errorf("missing required 'drill' field")
	}
	if via.Drill, err = sexp.GetFloat(drillNode, 1); err != nil {
		return via, fmt.Errorf("failed to parse via drill: %w", err)
	}

	return via, nil
}

func parsePad(node *sexp.List) (Pad, error) {
	var pad Pad
	var err error

	number, err := sexp.GetString(node, 1)
	if err != nil {
		return pad, fmt.Errorf("failed to parse pad number: %w", err)
	}
	if pad.Number, err = strconv.Atoi(number); err != nil {
		return pad, fmt.Errorf("failed to parse pad number %q: %w", number, err)
	}

	if pad.Center, err = requirePoint(node, "at"); err != nil {
		return pad, err
	}

	sizeNode, found := sexp.FindNode(node, "size")
	if !found {
		return pad, fmt.Errorf("missing required 'size' field")
	}
	if pad.Width, err = sexp.GetFloat(sizeNode, 1); err != nil {
		return pad, fmt.Errorf("failed to parse pad width: %w", err)
	}
	if pad.Height, err = sexp.GetFloat(sizeNode, 2); err != nil {
		return pad, fmt.Errorf("failed to parse pad height: %w", err)
	}

	layersNode, found := sexp.FindNode(node, "layers")
	if !found {
		return pad, fmt.Errorf("missing required 'layers' field")
	}
	if pad.Layer, err = sexp.GetString(layersNode, 1); err != nil {
		return pad, fmt.Errorf("failed to parse pad layer: %w", err)
	}

	return pad, nil
}
