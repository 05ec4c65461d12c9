package path

import "math"

// maxSegmentLength is the flattening tolerance: curves become line segments
// no longer than sqrt(2) (the diagonal of one pixel).
const maxSegmentLength = math.Sqrt2

// Point is a flattened vertex.
type Point struct{ X, Y float64 }

// Polyline is one flattened contour.
type Polyline struct {
	Pts    []Point
	Closed bool
}

// Flatten converts the path into polylines of straight segments, splitting
// at each Move and closing at each Close. Curves and arcs are subdivided so
// no resulting segment exceeds maxSegmentLength.
func Flatten(p *Path) []Polyline {
	var out []Polyline
	var cur Polyline
	var curX, curY float64
	haveCur := false

	flushOpen := func() {
		if haveCur && len(cur.Pts) > 0 {
			out = append(out, cur)
		}
		cur = Polyline{}
		haveCur = false
	}

	appendPoint := func(x, y float64) {
		if !haveCur {
			cur = Polyline{}
			haveCur = true
		}
		cur.Pts = append(cur.Pts, Point{x, y})
		curX, curY = x, y
	}

	for _, op := range p.Ops {
		switch op.Kind {
		case OpMove:
			flushOpen()
			appendPoint(op.X, op.Y)
		case OpLine:
			if !haveCur {
				appendPoint(curX, curY)
			}
			subdivideLine(curX, curY, op.X, op.Y, appendPoint)
		case OpCubic:
			if !haveCur {
				appendPoint(curX, curY)
			}
			subdivideCubic(curX, curY, op.CX1, op.CY1, op.CX2, op.CY2, op.X, op.Y, 0, appendPoint)
		case OpArc:
			if !haveCur {
				appendPoint(curX, curY)
			}
			subdivideArc(curX, curY, op.CenterX, op.CenterY, op.Degrees, appendPoint)
		case OpClose:
			cur.Closed = true
			flushOpen()
		}
	}
	flushOpen()
	return out
}

func subdivideLine(x0, y0, x1, y1 float64, emit func(x, y float64)) {
	dx, dy := x1-x0, y1-y0
	dist := math.Hypot(dx, dy)
	if dist <= maxSegmentLength || dist == 0 {
		emit(x1, y1)
		return
	}
	n := int(math.Ceil(dist / maxSegmentLength))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		emit(x0+dx*t, y0+dy*t)
	}
}

func subdivideCubic(x0, y0, cx1, cy1, cx2, cy2, x1, y1 float64, depth int, emit func(x, y float64)) {
	// Flatness test: compare control polygon length against the chord; if
	// close enough (or recursion is deep), emit as a single subdivided
	// line run, otherwise split via De Casteljau and recurse.
	chord := math.Hypot(x1-x0, y1-y0)
	ctrlLen := math.Hypot(cx1-x0, cy1-y0) + math.Hypot(cx2-cx1, cy2-cy1) + math.Hypot(x1-cx2, y1-cy2)
	if depth >= 16 || ctrlLen-chord < 0.01 {
		subdivideLine(x0, y0, x1, y1, emit)
		return
	}

	// De Casteljau split at t=0.5.
	x01, y01 := (x0+cx1)/2, (y0+cy1)/2
	x12, y12 := (cx1+cx2)/2, (cy1+cy2)/2
	x23, y23 := (cx2+x1)/2, (cy2+y1)/2
	x012, y012 := (x01+x12)/2, (y01+y12)/2
	x123, y123 := (x12+x23)/2, (y12+y23)/2
	xm, ym := (x012+x123)/2, (y012+y123)/2

	subdivideCubic(x0, y0, x01, y01, x012, y012, xm, ym, depth+1, emit)
	subdivideCubic(xm, ym, x123, y123, x23, y23, x1, y1, depth+1, emit)
}

func subdivideArc(x0, y0, cx, cy, degrees float64, emit func(x, y float64)) {
	r := math.Hypot(x0-cx, y0-cy)
	if r == 0 {
		return
	}
	startAngle := math.Atan2(y0-cy, x0-cx)
	sweep := degrees * math.Pi / 180

	arcLen := math.Abs(sweep) * r
	n := int(math.Ceil(arcLen / maxSegmentLength))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := startAngle + sweep*t
		emit(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}
