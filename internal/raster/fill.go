package raster

import (
	"math"
	"sort"

	"github.com/gogpu/paint"
)

// supersamples is the number of vertical samples per pixel row when
// anti-aliasing. Horizontal coverage is computed analytically from the
// fractional span ends, so 4 vertical samples suffice for smooth edges.
const supersamples = 4

// edge is a non-horizontal line segment prepared for scanline
// traversal, stored with y0 < y1 and the original direction for the
// non-zero winding rule.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int
}

func newEdge(p0, p1 paint.Point) (edge, bool) {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	if p1.Y-p0.Y < 1e-9 {
		return edge{}, false
	}
	return edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}, true
}

// xAt returns the edge's x coordinate at scanline y.
func (e *edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

type crossing struct {
	x   float64
	dir int
}

// Rasterizer converts contours into coverage masks. The zero value is
// ready to use; scratch buffers are reused across calls.
type Rasterizer struct {
	edges []edge
	xs    []crossing
}

// New creates a rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

// FillMask rasterizes the contours into dst under the given fill rule,
// accumulating coverage on top of whatever dst already holds. Open
// contours are implicitly closed, per standard fill semantics.
func (r *Rasterizer) FillMask(dst *Mask, contours []paint.Contour, rule paint.FillRule, antialias bool) {
	if dst.Rect.IsEmpty() {
		return
	}
	r.edges = r.edges[:0]
	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	for _, c := range contours {
		n := len(c.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := c.Points[i]
			p1 := c.Points[(i+1)%n]
			if e, ok := newEdge(p0, p1); ok {
				r.edges = append(r.edges, e)
				yMin = math.Min(yMin, e.y0)
				yMax = math.Max(yMax, e.y1)
			}
		}
	}
	if len(r.edges) == 0 {
		return
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < dst.Rect.Y {
		y0 = dst.Rect.Y
	}
	if y1 > dst.Rect.MaxY() {
		y1 = dst.Rect.MaxY()
	}

	samples := supersamples
	if !antialias {
		samples = 1
	}
	for y := y0; y < y1; y++ {
		for s := 0; s < samples; s++ {
			scanY := float64(y) + (float64(s)+0.5)/float64(samples)
			r.scanline(dst, y, scanY, rule, samples, antialias)
		}
	}
}

// scanline collects the edge crossings at scanY, extracts spans per the
// fill rule, and accumulates their coverage into mask row y.
func (r *Rasterizer) scanline(dst *Mask, y int, scanY float64, rule paint.FillRule, samples int, antialias bool) {
	r.xs = r.xs[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= scanY && scanY < e.y1 {
			r.xs = append(r.xs, crossing{x: e.xAt(scanY), dir: e.dir})
		}
	}
	if len(r.xs) < 2 {
		return
	}
	sort.Slice(r.xs, func(i, j int) bool { return r.xs[i].x < r.xs[j].x })

	if rule == paint.FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, c := range r.xs {
			if winding == 0 {
				x1 = c.x
			}
			winding += c.dir
			if winding == 0 {
				r.span(dst, y, x1, c.x, samples, antialias)
			}
		}
	} else {
		for i := 0; i+1 < len(r.xs); i += 2 {
			r.span(dst, y, r.xs[i].x, r.xs[i+1].x, samples, antialias)
		}
	}
}

// span accumulates the coverage of the horizontal span [x1, x2) into
// mask row y. Interior pixels receive a full per-sample share; the
// fractional ends receive a proportional share.
func (r *Rasterizer) span(dst *Mask, y int, x1, x2 float64, samples int, antialias bool) {
	minX := float64(dst.Rect.X)
	maxX := float64(dst.Rect.MaxX())
	if x1 < minX {
		x1 = minX
	}
	if x2 > maxX {
		x2 = maxX
	}
	if x1 >= x2 {
		return
	}
	row := y - dst.Rect.Y

	if !antialias {
		// Pixel-center inclusion: a pixel is in when its center is.
		i1 := int(math.Floor(x1 + 0.5))
		i2 := int(math.Floor(x2 + 0.5))
		for x := i1; x < i2; x++ {
			dst.Pix[row*dst.Rect.W+(x-dst.Rect.X)] = 255
		}
		return
	}

	share := 255.0 / float64(samples)
	i1 := int(math.Floor(x1))
	i2 := int(math.Ceil(x2))
	for x := i1; x < i2; x++ {
		l := math.Max(x1, float64(x))
		h := math.Min(x2, float64(x+1))
		cov := (h - l) * share
		if cov <= 0 {
			continue
		}
		dst.add(x-dst.Rect.X, row, byte(cov+0.5))
	}
}
