package paint

import "math"

// Verb identifies a segment command within a subpath.
type Verb uint8

const (
	// VerbLine consumes one point: a straight segment to that point.
	VerbLine Verb = iota
	// VerbCubic consumes three points: two control points and an endpoint.
	VerbCubic
)

// SubPath is a single contour of a path: a start point followed by a
// sequence of line and cubic segments. Once finalized it is read-only
// and carries its precomputed local-space bounding box.
type SubPath struct {
	Verbs  []Verb
	Points []Point // Points[0] is the start; verbs consume the rest in order
	Closed bool
	Bounds Rect
}

// IsEmpty reports whether the subpath has no segments.
func (sp *SubPath) IsEmpty() bool {
	return len(sp.Verbs) == 0
}

// computeBounds derives the bounding box from the point list.
// Cubic control points are included, giving a conservative hull box.
func (sp *SubPath) computeBounds() {
	if len(sp.Points) == 0 {
		sp.Bounds = Rect{}
		return
	}
	minX, minY := sp.Points[0].X, sp.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range sp.Points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	sp.Bounds = Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Path is an ordered sequence of subpaths, built incrementally with
// MoveTo/LineTo/CubicTo/Close. Subpaths are finalized (bounding box
// computed, contents frozen) when a new subpath starts or when the
// path is iterated.
type Path struct {
	subs    []SubPath
	pending SubPath
	open    bool
	start   Point
	current Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.finalize()
	p.start = Pt(x, y)
	p.current = p.start
	p.pending = SubPath{Points: []Point{p.start}}
	p.open = true
}

// LineTo adds a straight segment to the current subpath.
// A LineTo without a preceding MoveTo starts at the origin.
func (p *Path) LineTo(x, y float64) {
	p.ensureOpen()
	p.pending.Verbs = append(p.pending.Verbs, VerbLine)
	p.pending.Points = append(p.pending.Points, Pt(x, y))
	p.current = Pt(x, y)
}

// CubicTo adds a cubic Bezier segment to the current subpath.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureOpen()
	p.pending.Verbs = append(p.pending.Verbs, VerbCubic)
	p.pending.Points = append(p.pending.Points, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	p.current = Pt(x, y)
}

// QuadTo adds a quadratic Bezier segment, stored as the equivalent cubic.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	c := Pt(cx, cy)
	c1 := p.current.Lerp(c, 2.0/3.0)
	c2 := Pt(x, y).Lerp(c, 2.0/3.0)
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// Close marks the current subpath closed and finalizes it.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.pending.Closed = true
	p.current = p.start
	p.finalize()
}

// Clear removes all subpaths, retaining allocated memory where possible.
func (p *Path) Clear() {
	p.subs = p.subs[:0]
	p.pending = SubPath{}
	p.open = false
	p.start = Point{}
	p.current = Point{}
}

// IsEmpty reports whether the path contains no drawable segments.
func (p *Path) IsEmpty() bool {
	return len(p.subs) == 0 && len(p.pending.Verbs) == 0
}

// SubPaths finalizes any in-progress subpath and returns the full list.
func (p *Path) SubPaths() []SubPath {
	p.finalize()
	return p.subs
}

// Bounds returns the union of all subpath bounding boxes.
func (p *Path) Bounds() Rect {
	p.finalize()
	bounds := EmptyBounds()
	for i := range p.subs {
		bounds = bounds.Include(p.subs[i].Bounds)
	}
	if bounds.IsEmpty() {
		return Rect{}
	}
	return bounds
}

func (p *Path) ensureOpen() {
	if !p.open {
		p.start = p.current
		p.pending = SubPath{Points: []Point{p.start}}
		p.open = true
	}
}

func (p *Path) finalize() {
	if !p.open {
		return
	}
	if len(p.pending.Verbs) > 0 {
		p.pending.computeBounds()
		p.subs = append(p.subs, p.pending)
	}
	p.pending = SubPath{}
	p.open = false
}

// Rectangle adds a closed rectangular subpath.
func (p *Path) Rectangle(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.MaxX(), r.Y)
	p.LineTo(r.MaxX(), r.MaxY())
	p.LineTo(r.X, r.MaxY())
	p.Close()
}

// RoundedRectangle adds a closed rectangular subpath with circular
// corner arcs of the given radius. The radius clamps to half the
// shorter side.
func (p *Path) RoundedRectangle(r Rect, radius float64) {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		p.Rectangle(r)
		return
	}
	o := radius * (4.0 / 3.0) * (math.Sqrt2 - 1)
	x0, y0 := r.X, r.Y
	x1, y1 := r.MaxX(), r.MaxY()

	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CubicTo(x1-radius+o, y0, x1, y0+radius-o, x1, y0+radius)
	p.LineTo(x1, y1-radius)
	p.CubicTo(x1, y1-radius+o, x1-radius+o, y1, x1-radius, y1)
	p.LineTo(x0+radius, y1)
	p.CubicTo(x0+radius-o, y1, x0, y1-radius+o, x0, y1-radius)
	p.LineTo(x0, y0+radius)
	p.CubicTo(x0, y0+radius-o, x0+radius-o, y0, x0+radius, y0)
	p.Close()
}

// Triangle adds a closed triangular subpath.
func (p *Path) Triangle(a, b, c Point) {
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	p.LineTo(c.X, c.Y)
	p.Close()
}

// Circle adds a closed circular subpath approximated by two cubic Bezier
// half-arcs with the classic 4/3 control-point offset.
func (p *Path) Circle(cx, cy, r float64) {
	o := r * 4.0 / 3.0
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+o, cx-r, cy+o, cx-r, cy)
	p.CubicTo(cx-r, cy-o, cx+r, cy-o, cx+r, cy)
	p.Close()
}

// Ellipse adds a closed elliptical subpath, two half-arcs like Circle.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	o := ry * 4.0 / 3.0
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+o, cx-rx, cy+o, cx-rx, cy)
	p.CubicTo(cx-rx, cy-o, cx+rx, cy-o, cx+rx, cy)
	p.Close()
}
