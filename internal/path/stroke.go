package path

import (
	"math"

	"nitro-core-dx/internal/ssb"
)

// StrokeOptions configures Stroke.
type StrokeOptions struct {
	Width      float64
	Cap        ssb.LineCap
	Join       ssb.LineJoin
	Dashes     []float64
	DashOffset float64
}

const roundJoinSegments = 8

// Stroke converts polys into a set of filled outline polygons approximating
// a stroke of the given width, cap and dash pattern. Every join is drawn
// round: JoinMiter and JoinBevel produce the same round join as JoinRound.
// The returned polygons are meant to be rasterized together with a
// non-zero winding rule: they overlap at joins and caps by construction,
// which a non-zero fill unions correctly.
func Stroke(polys []Polyline, opt StrokeOptions) []Polyline {
	if opt.Width <= 0 {
		return nil
	}
	half := opt.Width / 2
	var out []Polyline

	for _, pl := range polys {
		segs := dashSplit(pl, opt.Dashes, opt.DashOffset)
		for _, seg := range segs {
			out = append(out, strokeOpenOrClosed(seg, half, opt.Cap, opt.Join)...)
		}
	}
	return out
}

func strokeOpenOrClosed(pl Polyline, half float64, cap ssb.LineCap, join ssb.LineJoin) []Polyline {
	pts := pl.Pts
	if len(pts) < 2 {
		if len(pts) == 1 && cap == ssb.CapRound {
			return []Polyline{circlePolygon(pts[0].X, pts[0].Y, half)}
		}
		return nil
	}

	var out []Polyline
	n := len(pts)
	segCount := n - 1
	if pl.Closed {
		segCount = n
	}

	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		out = append(out, segmentQuad(a, b, half))
	}

	joinStart, joinEnd := 1, n-1
	if pl.Closed {
		joinStart, joinEnd = 0, n
	}
	for i := joinStart; i < joinEnd; i++ {
		if out == nil {
			break
		}
		switch join {
		case ssb.JoinRound:
			out = append(out, circlePolygon(pts[i%n].X, pts[i%n].Y, half))
		case ssb.JoinMiter, ssb.JoinBevel:
			out = append(out, circlePolygon(pts[i%n].X, pts[i%n].Y, half))
		}
	}

	if !pl.Closed {
		switch cap {
		case ssb.CapRound:
			out = append(out, circlePolygon(pts[0].X, pts[0].Y, half))
			out = append(out, circlePolygon(pts[n-1].X, pts[n-1].Y, half))
		case ssb.CapSquare:
			out = append(out, squareCap(pts[1], pts[0], half))
			out = append(out, squareCap(pts[n-2], pts[n-1], half))
		case ssb.CapFlat:
			// No extension; the segment quads already end exactly at the
			// endpoints.
		}
	}

	return out
}

func segmentQuad(a, b Point, half float64) Polyline {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return circlePolygon(a.X, a.Y, half)
	}
	nx, ny := -dy/length*half, dx/length*half
	return Polyline{
		Pts: []Point{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		},
		Closed: true,
	}
}

// squareCap extends a flat cap at `tip`, offset away from `from`, by half
// the line width.
func squareCap(from, tip Point, half float64) Polyline {
	dx, dy := tip.X-from.X, tip.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return circlePolygon(tip.X, tip.Y, half)
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy*half, ux*half
	ex, ey := tip.X+ux*half, tip.Y+uy*half
	return Polyline{
		Pts: []Point{
			{tip.X + nx, tip.Y + ny},
			{ex + nx, ey + ny},
			{ex - nx, ey - ny},
			{tip.X - nx, tip.Y - ny},
		},
		Closed: true,
	}
}

func circlePolygon(cx, cy, r float64) Polyline {
	pts := make([]Point, roundJoinSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(roundJoinSegments)
		pts[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return Polyline{Pts: pts, Closed: true}
}

// dashSplit breaks pl into the "on" sub-runs of the dash pattern. An empty
// or all-zero pattern returns pl unchanged.
func dashSplit(pl Polyline, dashes []float64, offset float64) []Polyline {
	if len(dashes) == 0 {
		return []Polyline{pl}
	}
	total := 0.0
	for _, d := range dashes {
		total += d
	}
	if total <= 0 {
		return []Polyline{pl}
	}

	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= dashes[idx] {
		pos -= dashes[idx]
		idx = (idx + 1) % len(dashes)
	}
	on := idx%2 == 0
	remaining := dashes[idx] - pos

	var out []Polyline
	var cur []Point
	if on {
		cur = append(cur, pl.Pts[0])
	}

	pts := pl.Pts
	n := len(pts)
	segCount := n - 1
	if pl.Closed {
		segCount = n
	}

	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		travelled := 0.0
		for travelled < segLen {
			step := math.Min(remaining, segLen-travelled)
			travelled += step
			t := travelled / segLen
			p := Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
			if on {
				cur = append(cur, p)
			}
			remaining -= step
			if remaining <= 1e-9 {
				if on && len(cur) > 1 {
					out = append(out, Polyline{Pts: cur})
				}
				idx = (idx + 1) % len(dashes)
				remaining = dashes[idx]
				on = !on
				cur = nil
				if on {
					cur = append(cur, p)
				}
			}
		}
	}
	if on && len(cur) > 1 {
		out = append(out, Polyline{Pts: cur})
	}
	return out
}
