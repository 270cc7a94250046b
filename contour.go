package paint

// Contour is a flattened subpath: a polyline in a single coordinate
// space, plus the closed/open flag of the subpath it came from.
type Contour struct {
	Points []Point
	Closed bool
}

// flattenTolerance is the maximum distance between a curve and its
// polyline approximation, in the output coordinate space.
const flattenTolerance = 0.1

// FlattenSubPath converts a subpath into a polyline contour, applying the
// optional transform to every point before flattening. The polyline is
// appended to dst (which may be nil) so callers can reuse buffers.
func FlattenSubPath(sp *SubPath, m *Matrix, dst []Point) []Point {
	xf := func(p Point) Point { return p }
	if m != nil && !m.IsIdentity() {
		xf = m.TransformPoint
	}

	cur := xf(sp.Points[0])
	dst = append(dst, cur)
	i := 1
	for _, v := range sp.Verbs {
		switch v {
		case VerbLine:
			cur = xf(sp.Points[i])
			i++
			dst = append(dst, cur)
		case VerbCubic:
			c1 := xf(sp.Points[i])
			c2 := xf(sp.Points[i+1])
			end := xf(sp.Points[i+2])
			i += 3
			dst = flattenCubic(cur, c1, c2, end, flattenTolerance, dst)
			cur = end
		}
	}
	return dst
}

// flattenCubic appends a polyline approximation of the cubic Bezier
// (p0, p1, p2, p3) to dst, excluding p0. Curves are recursively
// subdivided with de Casteljau splitting until the control points are
// within tolerance of the chord.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, dst []Point) []Point {
	d1 := distanceToSegment(p1, p0, p3)
	d2 := distanceToSegment(p2, p0, p3)
	if d1 < tolerance && d2 < tolerance {
		return append(dst, p3)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubic(p0, q0, r0, s, tolerance, dst)
	return flattenCubic(s, r1, q2, p3, tolerance, dst)
}

// distanceToSegment returns the perpendicular distance from p to the
// segment (a, b), falling back to point distance for degenerate segments.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// prepareContours flattens the path's subpaths into device-space contours,
// culling every subpath whose padded, transformed bounding box misses the
// current device clip. padding expands each subpath's local bounds (for
// stroke width); trPadding expands the transformed device bounds (for the
// anti-alias fringe). The surviving contours land in the painter's scratch
// contour buffer, and the combined local/device bounds land in the
// geometry scratch consumed by the backend. Returns false when every
// subpath was culled, which callers treat as fully clipped out.
func (p *Painter) prepareContours(path *Path, padding, trPadding float64) bool {
	p.contours = p.contours[:0]
	localBB := EmptyBounds()
	deviceBB := EmptyBounds()
	m := p.st.Matrix

	for i := range path.SubPaths() {
		sp := &path.SubPaths()[i]
		if sp.IsEmpty() {
			continue
		}
		local := sp.Bounds.Expanded(padding)
		device := m.TransformRect(local).Expanded(trPadding)
		if !OuterRect(device).ToRect().Intersects(p.st.ClipRect) {
			continue
		}
		var pts []Point
		if n := len(p.contours); n < cap(p.contours) {
			pts = p.contours[:n+1][n].Points[:0]
		}
		p.contours = append(p.contours, Contour{
			Points: FlattenSubPath(sp, &m, pts),
			Closed: sp.Closed,
		})
		localBB = localBB.Include(local)
		deviceBB = deviceBB.Include(device)
	}

	if len(p.contours) == 0 {
		return false
	}
	p.geom.Local = localBB
	p.geom.Device = deviceBB
	return true
}
