package raster

import "github.com/gogpu/paint"

// Stroke expansion: a stroked polyline becomes a set of closed fill
// outlines (one quad per segment, one bevel triangle per joint) that
// rasterize in a single non-zero fill pass. Quads and triangles are
// forced to a consistent orientation so overlaps at joints keep a
// non-zero winding instead of cancelling.

// ExpandStroke appends the fill outlines for stroking one contour at
// the given width to dst and returns it.
func ExpandStroke(dst []paint.Contour, c paint.Contour, width float64) []paint.Contour {
	pts := dedupe(c.Points)
	if c.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 2 || width <= 0 {
		return dst
	}
	half := width / 2

	segs := n - 1
	if c.Closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		norm := perp(p1.Sub(p0).Normalize()).Mul(half)
		dst = append(dst, orient(paint.Contour{
			Points: []paint.Point{p0.Add(norm), p1.Add(norm), p1.Sub(norm), p0.Sub(norm)},
			Closed: true,
		}))
	}

	// Bevel triangles close the gaps on the outer side of each joint.
	first := 1
	last := n - 1
	if c.Closed {
		first = 0
		last = n
	}
	for i := first; i < last; i++ {
		p := pts[i%n]
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		n0 := perp(p.Sub(prev).Normalize()).Mul(half)
		n1 := perp(next.Sub(p).Normalize()).Mul(half)
		turn := p.Sub(prev).Cross(next.Sub(p))
		var a, b paint.Point
		if turn > 0 {
			a, b = p.Sub(n0), p.Sub(n1)
		} else {
			a, b = p.Add(n0), p.Add(n1)
		}
		dst = append(dst, orient(paint.Contour{
			Points: []paint.Point{p, a, b},
			Closed: true,
		}))
	}
	return dst
}

// dedupe removes consecutive duplicate points, which would produce
// zero-length segments with undefined normals.
func dedupe(pts []paint.Point) []paint.Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i > 0 && p == pts[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func perp(v paint.Point) paint.Point {
	return paint.Pt(-v.Y, v.X)
}

// orient flips a closed contour to positive signed area.
func orient(c paint.Contour) paint.Contour {
	area := 0.0
	n := len(c.Points)
	for i := 0; i < n; i++ {
		p0 := c.Points[i]
		p1 := c.Points[(i+1)%n]
		area += p0.Cross(p1)
	}
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			c.Points[i], c.Points[j] = c.Points[j], c.Points[i]
		}
	}
	return c
}
