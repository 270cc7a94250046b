package paint

import "math"

// Every drawing primitive follows the same template: reject degenerate
// input, honor the discard flag, skip fully transparent brushes unless
// the active layer passes transparency through, cull against the clip,
// fold the device bounds into the layer's dirty region, and hand the
// backend already-transformed geometry.

// PaintOut fills the entire current clip region with the brush. Used
// for whole-canvas or whole-layer backgrounds.
func (p *Painter) PaintOut(b Brush) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if brushTransparent(b) && !p.st.PassTransparent {
		return
	}
	clip := p.st.ClipRect
	if clip.IsEmpty() {
		return
	}
	p.includeBounds(clip)
	p.geom.Device = clip
	p.geom.Local = p.st.Matrix.Invert().TransformRect(clip)

	c := clip.Corners()
	p.contours = append(p.contours[:0], Contour{
		Points: []Point{c[0], c[1], c[2], c[3]},
		Closed: true,
	})
	p.engine.FillPath(p.contours, b, FillRuleNonZero)
}

// Fill fills a path with the brush under the given fill rule.
func (p *Painter) Fill(path *Path, b Brush, rule FillRule) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if path == nil || path.IsEmpty() {
		return
	}
	if brushTransparent(b) && !p.st.PassTransparent {
		return
	}
	if !p.prepareContours(path, 0, 1) {
		return
	}
	p.includeBounds(p.geom.Device)
	p.engine.FillPath(p.contours, b, rule)
}

// Stroke strokes a path with the brush and pen.
//
// A pen that scales with the transform and lands below one device
// pixel is not drawn geometrically thin: the width is forced to one
// pixel and the brush opacity is faded by the sub-pixel width instead,
// preserving average coverage. The same fade applies to a non-scaling
// pen whose requested width is below one. Unequal axis scales cannot
// use the one-pixel fast path and fall back to geometric stroking.
func (p *Painter) Stroke(path *Path, b Brush, pen Pen) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if path == nil || path.IsEmpty() {
		return
	}
	if !(pen.Width > 0) || math.IsInf(pen.Width, 0) {
		return
	}
	if brushTransparent(b) && !p.st.PassTransparent {
		return
	}

	width := pen.Width
	hairline := false
	localPad := 0.0
	if pen.ShouldScale {
		localPad = width / 2
		sx, sy := p.st.Matrix.ScaleX(), p.st.Matrix.ScaleY()
		if sx == sy {
			width *= sx
			if width < 1 {
				b = WithOpacity(b, width)
				width = 1
				hairline = true
			}
		} else {
			width *= p.st.Matrix.ScaleFactor()
		}
	} else if width < 1 {
		b = WithOpacity(b, width)
		width = 1
		hairline = true
	}

	if !p.prepareContours(path, localPad, width/2+1) {
		return
	}
	p.includeBounds(p.geom.Device)
	p.engine.StrokePath(p.contours, b, Pen{Width: width}, hairline)
}

// DrawLine draws a line of exactly one device pixel width regardless of
// the current transform. Endpoints are pixel-centered by the standard
// half-pixel offset so axis-aligned lines render crisply.
func (p *Painter) DrawLine(x0, y0, x1, y1 float64, c RGBA) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if !Pt(x0, y0).IsFinite() || !Pt(x1, y1).IsFinite() {
		panic("paint: non-finite line endpoint")
	}
	if c.IsTransparent() && !p.st.PassTransparent {
		return
	}

	a := p.st.Matrix.TransformPoint(Pt(x0, y0)).Add(Pt(0.5, 0.5))
	e := p.st.Matrix.TransformPoint(Pt(x1, y1)).Add(Pt(0.5, 0.5))
	device := Rect{
		X: math.Min(a.X, e.X),
		Y: math.Min(a.Y, e.Y),
		W: math.Abs(e.X - a.X),
		H: math.Abs(e.Y - a.Y),
	}.Expanded(1)
	if !device.Intersects(p.st.ClipRect) {
		return
	}
	p.includeBounds(device)
	p.geom.Device = device
	p.geom.Local = Rect{
		X: math.Min(x0, x1),
		Y: math.Min(y0, y1),
		W: math.Abs(x1 - x0),
		H: math.Abs(y1 - y0),
	}.Expanded(1)

	p.contours = append(p.contours[:0], Contour{Points: []Point{a, e}})
	p.engine.StrokePath(p.contours, Solid(c), Pen{Width: 1}, true)
}

// FillRect fills an axis-aligned local-space rectangle.
func (p *Painter) FillRect(r Rect, b Brush) {
	p.requireFrame()
	if p.st.Discard || r.IsEmpty() {
		return
	}
	if !r.IsFinite() {
		panic("paint: non-finite rectangle")
	}
	p.scratch.Clear()
	p.scratch.Rectangle(r)
	p.Fill(&p.scratch, b, FillRuleEvenOdd)
}

// FillTriangle fills the triangle (a, b, c).
func (p *Painter) FillTriangle(a, b, c Point, brush Brush) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		panic("paint: non-finite triangle vertex")
	}
	p.scratch.Clear()
	p.scratch.Triangle(a, b, c)
	p.Fill(&p.scratch, brush, FillRuleEvenOdd)
}

// FillCircle fills a circle centered at (cx, cy).
func (p *Painter) FillCircle(cx, cy, r float64, b Brush) {
	p.requireFrame()
	if p.st.Discard || !(r > 0) {
		return
	}
	if !Pt(cx, cy).IsFinite() || math.IsInf(r, 0) {
		panic("paint: non-finite circle")
	}
	p.scratch.Clear()
	p.scratch.Circle(cx, cy, r)
	p.Fill(&p.scratch, b, FillRuleEvenOdd)
}

// DrawImage draws the whole bitmap with its top-left corner at the
// local-space point (x, y).
//
// At zero opacity the call is normally skipped. Inside a layer whose
// composite mode gives meaning to transparent pixels, a fully
// transparent fill of the image's footprint is substituted instead, so
// the layer's coverage still reflects it.
func (p *Painter) DrawImage(bm *Bitmap, x, y, opacity float64) {
	p.requireFrame()
	if p.st.Discard || bm == nil || bm.Width() <= 0 || bm.Height() <= 0 {
		return
	}
	if !Pt(x, y).IsFinite() {
		panic("paint: non-finite image position")
	}

	local := bm.Rect().Translated(x, y)
	if opacity*255 < 0.5 {
		if p.st.PassTransparent {
			p.FillRect(local, Solid(Transparent))
		}
		return
	}

	device := p.st.Matrix.TransformRect(local)
	if !device.Intersects(p.st.ClipRect) {
		return
	}
	p.includeBounds(device)
	p.geom.Local = local
	p.geom.Device = device
	p.engine.DrawImage(bm, bm.Rect(), device, math.Min(opacity, 1))
}

// DrawNinePatch draws the bitmap stretched into the local-space dst
// rectangle, keeping the borders around the bitmap's nine-patch center
// at their pixel size. A bitmap without nine-patch metadata stretches
// uniformly. Zero-opacity handling matches DrawImage.
func (p *Painter) DrawNinePatch(bm *Bitmap, dst Rect, opacity float64) {
	p.requireFrame()
	if p.st.Discard || bm == nil || bm.Width() <= 0 || bm.Height() <= 0 || dst.IsEmpty() {
		return
	}
	if !dst.IsFinite() {
		panic("paint: non-finite rectangle")
	}

	if opacity*255 < 0.5 {
		if p.st.PassTransparent {
			p.FillRect(dst, Solid(Transparent))
		}
		return
	}

	device := p.st.Matrix.TransformRect(dst)
	if !device.Intersects(p.st.ClipRect) {
		return
	}

	center, ok := bm.NinePatch()
	if !ok {
		center = bm.Rect()
	}
	info := MakeNinePatch(bm, center, device)
	p.includeBounds(device)
	p.geom.Local = dst
	p.geom.Device = device
	p.engine.DrawNinePatch(bm, info, math.Min(opacity, 1))
}

// DrawText draws a pre-shaped, pre-rasterized glyph run in the given
// color. The run's glyph positions are in local coordinates; the whole
// run goes to the backend in one call so it can batch.
func (p *Painter) DrawText(run *GlyphRun, c RGBA) {
	p.requireFrame()
	if p.st.Discard || run.IsEmpty() {
		return
	}
	if c.IsTransparent() && !p.st.PassTransparent {
		return
	}

	local := run.Bounds()
	device := p.st.Matrix.TransformRect(local).Expanded(1)
	if !device.Intersects(p.st.ClipRect) {
		return
	}
	p.includeBounds(device)
	p.geom.Local = local
	p.geom.Device = device
	p.engine.DrawText(run, c)
}
