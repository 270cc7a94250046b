package paint

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z component) of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Normalize returns the unit vector in the direction of p, or the zero
// vector if p has near-zero length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Lerp linearly interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) &&
		!math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// Rect is an axis-aligned rectangle with float64 coordinates, defined by
// its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Intersect returns the intersection of two rectangles. The result may
// be empty.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both rectangles.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.MaxX(), o.MaxX())
	y1 := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether the two rectangles overlap with positive
// area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() &&
		r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether the point lies inside the rectangle,
// including the top and left edges but excluding bottom and right.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() &&
		p.Y >= r.Y && p.Y < r.MaxY()
}

// Translated returns the rectangle shifted by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Expanded returns the rectangle grown by d on all four sides. Negative
// d shrinks it.
func (r Rect) Expanded(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Corners returns the four corners in clockwise order starting from the
// top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
}

// IsFinite reports whether all four fields are finite numbers.
func (r Rect) IsFinite() bool {
	return Pt(r.X, r.Y).IsFinite() && Pt(r.W, r.H).IsFinite()
}

// EmptyBounds returns the identity element for bounds accumulation via
// Include: a rectangle so inverted that any real rectangle folded into
// it replaces it entirely.
func EmptyBounds() Rect {
	const huge = math.MaxFloat64 / 4
	return Rect{X: huge, Y: huge, W: -2 * huge, H: -2 * huge}
}

// Include grows the rectangle to contain o. Unlike Union it treats the
// receiver as a bounds accumulator: an inverted receiver (as returned by
// EmptyBounds) is replaced, and an empty o is ignored.
func (r Rect) Include(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.MaxX(), o.MaxX())
	y1 := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// RectI is an axis-aligned rectangle with integer pixel coordinates.
type RectI struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle has no area.
func (r RectI) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// MaxX returns the right edge coordinate.
func (r RectI) MaxX() int { return r.X + r.W }

// MaxY returns the bottom edge coordinate.
func (r RectI) MaxY() int { return r.Y + r.H }

// ToRect converts to float coordinates.
func (r RectI) ToRect() Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Intersect returns the intersection of two integer rectangles.
func (r RectI) Intersect(o RectI) RectI {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	return RectI{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

/// OuterRect returns the smallest integer rectangle fully containing r:
// the minimum corner rounds down and the maximum corner rounds up, so a
// partially covered pixel is always included.
func OuterRect(r Rect) RectI {
	if r.IsEmpty() {
		return RectI{}
	}
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.MaxX()))
	y1 := int(math.Ceil(r.MaxY()))
	return RectI{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
