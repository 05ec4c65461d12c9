package path

import "math"

// Extents is an axis-aligned bounding box in path-local space.
type Extents struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width/Height are clamped to zero: a degenerate box never reports negative.
func (e Extents) Width() float64  { return math.Max(0, e.MaxX-e.MinX) }
func (e Extents) Height() float64 { return math.Max(0, e.MaxY-e.MinY) }

// ExtentsOf computes the bounding box of a set of flattened polylines.
// Returns a zero-area Extents at the origin if polys is empty.
func ExtentsOf(polys []Polyline) Extents {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for _, pl := range polys {
		for _, pt := range pl.Pts {
			any = true
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if !any {
		return Extents{}
	}
	return Extents{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
