package ssbparse

import (
	"fmt"
	"strconv"
	"strings"

	"nitro-core-dx/internal/ssb"
)

// parseGeometryBracket parses the content of a "[...]" geometry token. With
// no command letters it is a point set ("x,y x,y ..."); with command
// letters (m/l/c/a/z, SVG-style) it is a vector path.
func parseGeometryBracket(content string) (*ssb.Geometry, error) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return &ssb.Geometry{Kind: ssb.GeomPoints}, nil
	}
	if !hasPathCommand(fields) {
		pts, err := parsePoints(fields)
		if err != nil {
			return nil, err
		}
		return &ssb.Geometry{Kind: ssb.GeomPoints, Points: pts}, nil
	}
	ops, err := parsePathOps(fields)
	if err != nil {
		return nil, err
	}
	return &ssb.Geometry{Kind: ssb.GeomPath, Path: ops}, nil
}

func hasPathCommand(fields []string) bool {
	for _, f := range fields {
		switch f {
		case "m", "l", "c", "a", "z":
			return true
		}
	}
	return false
}

func parsePoints(fields []string) ([]ssb.Point, error) {
	pts := make([]ssb.Point, 0, len(fields))
	for _, f := range fields {
		x, y, err := parseXY(f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, ssb.Point{X: x, Y: y})
	}
	return pts, nil
}

func parsePathOps(fields []string) ([]ssb.PathOp, error) {
	var ops []ssb.PathOp
	cmd := ""
	i := 0
	for i < len(fields) {
		f := fields[i]
		switch f {
		case "m", "l", "c", "a", "z":
			cmd = f
			i++
			if f == "z" {
				ops = append(ops, ssb.PathOp{Kind: ssb.PathClose})
			}
			continue
		}
		switch cmd {
		case "m":
			x, y, err := parseXY(f)
			if err != nil {
				return nil, err
			}
			ops = append(ops, ssb.PathOp{Kind: ssb.PathMove, X: x, Y: y})
			i++
		case "l":
			x, y, err := parseXY(f)
			if err != nil {
				return nil, err
			}
			ops = append(ops, ssb.PathOp{Kind: ssb.PathLine, X: x, Y: y})
			i++
		case "c":
			if i+2 >= len(fields) {
				return nil, fmt.Errorf("path c: expected 3 coordinate pairs")
			}
			cx1, cy1, err := parseXY(fields[i])
			if err != nil {
				return nil, err
			}
			cx2, cy2, err := parseXY(fields[i+1])
			if err != nil {
				return nil, err
			}
			x, y, err := parseXY(fields[i+2])
			if err != nil {
				return nil, err
			}
			ops = append(ops, ssb.PathOp{Kind: ssb.PathCurve, CX1: cx1, CY1: cy1, CX2: cx2, CY2: cy2, X: x, Y: y})
			i += 3
		case "a":
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("path a: expected center and degrees")
			}
			cx, cy, err := parseXY(fields[i])
			if err != nil {
				return nil, err
			}
			deg, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("path a: bad degrees %q: %w", fields[i+1], err)
			}
			ops = append(ops, ssb.PathOp{Kind: ssb.PathArc, CenterX: cx, CenterY: cy, Degrees: deg})
			i += 2
		case "z":
			ops = append(ops, ssb.PathOp{Kind: ssb.PathClose})
			i++
		default:
			return nil, fmt.Errorf("path: coordinate %q before any command", f)
		}
	}
	return ops, nil
}

func parseXY(f string) (float64, float64, error) {
	parts := strings.SplitN(f, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %q", f)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x in %q: %w", f, err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y in %q: %w", f, err)
	}
	return x, y, nil
}
