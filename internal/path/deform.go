package path

import "nitro-core-dx/internal/expr"

// Deform evaluates (exprX, exprY) at each vertex of polys with variables
// t (progress, 0..1), x, y (the vertex's own coordinates before deform).
// A parse failure in one expression leaves that coordinate unchanged at
// every vertex while the other expression still applies; a per-vertex
// evaluation failure leaves only that vertex's coordinate unchanged.
func Deform(polys []Polyline, exprX, exprY string, progress float64) []Polyline {
	if exprX == "" && exprY == "" {
		return polys
	}

	var cx, cy *expr.Expr
	if exprX != "" {
		if e, err := expr.Parse(exprX); err == nil {
			cx = e
		}
	}
	if exprY != "" {
		if e, err := expr.Parse(exprY); err == nil {
			cy = e
		}
	}
	if cx == nil && cy == nil {
		return polys
	}

	out := make([]Polyline, len(polys))
	for i, pl := range polys {
		np := Polyline{Pts: make([]Point, len(pl.Pts)), Closed: pl.Closed}
		for j, pt := range pl.Pts {
			nx, ny := pt.X, pt.Y
			vars := map[string]float64{"t": progress, "x": pt.X, "y": pt.Y}
			if cx != nil {
				if v, err := cx.Eval(vars); err == nil {
					nx = v
				}
			}
			if cy != nil {
				if v, err := cy.Eval(vars); err == nil {
					ny = v
				}
			}
			np.Pts[j] = Point{nx, ny}
		}
		out[i] = np
	}
	return out
}
