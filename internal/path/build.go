package path

import "nitro-core-dx/internal/ssb"

// FromGeometry builds a Path from an ssb.Geometry. Points geometries are
// expanded per-point into a unit square (lineWidth <= 1) or a filled circle
// of diameter lineWidth (lineWidth > 1); text geometries are not handled
// here (they are shaped by internal/font and appended directly by the
// rasterizer/layout pipeline).
func FromGeometry(g *ssb.Geometry, lineWidth float64) *Path {
	p := New()
	switch g.Kind {
	case ssb.GeomPoints:
		for _, pt := range g.Points {
			if lineWidth <= 1 {
				appendUnitSquare(p, pt.X, pt.Y)
			} else {
				appendCircle(p, pt.X, pt.Y, lineWidth/2)
			}
		}
	case ssb.GeomPath:
		for _, op := range g.Path {
			switch op.Kind {
			case ssb.PathMove:
				p.MoveTo(op.X, op.Y)
			case ssb.PathLine:
				p.LineTo(op.X, op.Y)
			case ssb.PathCurve:
				p.CubicTo(op.CX1, op.CY1, op.CX2, op.CY2, op.X, op.Y)
			case ssb.PathArc:
				p.ArcTo(op.CenterX, op.CenterY, op.Degrees)
			case ssb.PathClose:
				p.Close()
			}
		}
	}
	return p
}

func appendUnitSquare(p *Path, x, y float64) {
	p.MoveTo(x-0.5, y-0.5)
	p.LineTo(x+0.5, y-0.5)
	p.LineTo(x+0.5, y+0.5)
	p.LineTo(x-0.5, y+0.5)
	p.Close()
}

func appendCircle(p *Path, cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.ArcTo(cx, cy, 360)
	p.Close()
}
