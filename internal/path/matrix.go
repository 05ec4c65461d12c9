// Package path implements vector path construction, flattening, affine
// transforms, stroking and scan-conversion for the rasterizer. Curve
// flattening, stroking and mesh/pattern fills are implemented directly on
// top of golang.org/x/image/vector's scanline rasterizer, since no
// available library exposes a higher-level path-fill API with
// mesh-gradient support.
package path

import "math"

// Matrix is a 2x3 affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the no-op transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Apply transforms a single point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Mul composes m then other (other is applied to m's output), i.e. returns
// the matrix equivalent to applying m first and other second.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a rotation matrix for degrees clockwise (screen-space, y
// down).
func Rotate(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// RotateXY returns the pseudo-3D matrix for a rotation of angleXDeg around
// the x axis followed by angleYDeg around the y axis, projected back onto
// the 2D plane (rxy= tag). Unlike Rotate, this has no single equivalent
// angle: the x rotation scales y by cos(x) and also couples with the y
// rotation through the sin(x)*sin(y) shear term.
func RotateXY(angleXDeg, angleYDeg float64) Matrix {
	radX := angleXDeg * math.Pi / 180
	radY := angleYDeg * math.Pi / 180
	return Matrix{
		A: math.Cos(radY),
		B: 0,
		C: math.Sin(radX) * math.Sin(radY),
		D: math.Cos(radX),
	}
}

// RotateYX returns the pseudo-3D matrix for a rotation of angleYDeg around
// the y axis followed by angleXDeg around the x axis (ryx= tag), the mirror
// of RotateXY with the shear term on B instead of C.
func RotateYX(angleYDeg, angleXDeg float64) Matrix {
	radY := angleYDeg * math.Pi / 180
	radX := angleXDeg * math.Pi / 180
	return Matrix{
		A: math.Cos(radY),
		B: math.Sin(radX) * math.Sin(radY),
		C: 0,
		D: math.Cos(radX),
	}
}

// Shear returns a shear matrix with the given x/y shear factors.
func Shear(shx, shy float64) Matrix {
	return Matrix{A: 1, B: shy, C: shx, D: 1}
}
