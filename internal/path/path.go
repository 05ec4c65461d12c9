package path

// OpKind discriminates one Path instruction.
type OpKind int

const (
	OpMove OpKind = iota
	OpLine
	OpCubic
	OpArc
	OpClose
)

// Op is one path instruction, control points in path-local space.
type Op struct {
	Kind OpKind

	X, Y float64 // move, line: destination

	CX1, CY1 float64 // cubic: first control point
	CX2, CY2 float64 // cubic: second control point

	CenterX, CenterY float64 // arc: center
	Degrees          float64 // arc: signed sweep, positive = CCW
}

// Path is an ordered sequence of drawing instructions, the path engine's
// primitive representation. FromGeometry builds one from an ssb.Geometry;
// the rasterizer does so in raster.buildLocalPath.
type Path struct {
	Ops []Op
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.Ops = append(p.Ops, Op{Kind: OpMove, X: x, Y: y})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.Ops = append(p.Ops, Op{Kind: OpLine, X: x, Y: y})
	return p
}

func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float64) *Path {
	p.Ops = append(p.Ops, Op{Kind: OpCubic, CX1: cx1, CY1: cy1, CX2: cx2, CY2: cy2, X: x, Y: y})
	return p
}

// ArcTo appends an arc around (cx,cy) sweeping `degrees` (signed; positive
// sweeps counter-clockwise in path-local space) from the path's current
// point.
func (p *Path) ArcTo(cx, cy, degrees float64) *Path {
	p.Ops = append(p.Ops, Op{Kind: OpArc, CenterX: cx, CenterY: cy, Degrees: degrees})
	return p
}

func (p *Path) Close() *Path {
	p.Ops = append(p.Ops, Op{Kind: OpClose})
	return p
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	out := &Path{Ops: make([]Op, len(p.Ops))}
	copy(out.Ops, p.Ops)
	return out
}
