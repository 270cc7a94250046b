package paint

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Skew creates a skew matrix with the given tangents per axis.
func Skew(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformRect returns the bounding rectangle of the transformed corners
// of r. For rotation and skew this is larger than the transformed shape.
func (m Matrix) TransformRect(r Rect) Rect {
	c := r.Corners()
	p0 := m.TransformPoint(c[0])
	bounds := Rect{X: p0.X, Y: p0.Y}
	for _, pt := range c[1:] {
		q := m.TransformPoint(pt)
		x0 := math.Min(bounds.X, q.X)
		y0 := math.Min(bounds.Y, q.Y)
		x1 := math.Max(bounds.MaxX(), q.X)
		y1 := math.Max(bounds.MaxY(), q.Y)
		bounds = Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}
	return bounds
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
// The 2x2 linear part is compared exactly: a near-identity rotation does
// not qualify, which keeps the fast paths conservative.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned returns true if the matrix maps axis-aligned rectangles
// to axis-aligned rectangles (no rotation or skew component).
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// ScaleX returns the magnitude of the horizontal scale component,
// accounting for rotation.
func (m Matrix) ScaleX() float64 {
	return math.Hypot(m.A, m.D)
}

// ScaleY returns the magnitude of the vertical scale component,
// accounting for rotation.
func (m Matrix) ScaleY() float64 {
	return math.Hypot(m.B, m.E)
}

// ScaleFactor returns the average scale factor applied by the matrix.
func (m Matrix) ScaleFactor() float64 {
	return (m.ScaleX() + m.ScaleY()) / 2
}

// IsFinite reports whether all six coefficients are finite numbers.
func (m Matrix) IsFinite() bool {
	return Pt(m.A, m.B).IsFinite() && Pt(m.C, m.D).IsFinite() && Pt(m.E, m.F).IsFinite()
}
