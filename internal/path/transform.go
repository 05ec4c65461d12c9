package path

// TransformPolylines applies m to every vertex of polys, returning new
// polylines (the input is left unmodified).
func TransformPolylines(polys []Polyline, m Matrix) []Polyline {
	out := make([]Polyline, len(polys))
	for i, pl := range polys {
		np := Polyline{Pts: make([]Point, len(pl.Pts)), Closed: pl.Closed}
		for j, pt := range pl.Pts {
			x, y := m.Apply(pt.X, pt.Y)
			np.Pts[j] = Point{x, y}
		}
		out[i] = np
	}
	return out
}
