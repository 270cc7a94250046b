package software

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/blend"
	"github.com/gogpu/paint/internal/raster"
)

// FillPath implements paint.Engine.
func (e *Engine) FillPath(contours []paint.Contour, b paint.Brush, rule paint.FillRule) {
	area := e.drawArea(contoursBounds(contours))
	if area.IsEmpty() {
		return
	}
	mask := raster.NewMask(area)
	e.rast.FillMask(mask, contours, rule, e.cfg.State.Antialias)
	e.blendMask(mask, b)
}

// StrokePath implements paint.Engine: contours are expanded into fill
// outlines and rasterized in one non-zero pass. The hairline flag is a
// fast-path hint; the expansion path produces the same coverage for
// width-1 pens.
func (e *Engine) StrokePath(contours []paint.Contour, b paint.Brush, pen paint.Pen, hairline bool) {
	_ = hairline
	e.outline = e.outline[:0]
	for _, c := range contours {
		e.outline = raster.ExpandStroke(e.outline, c, pen.Width)
	}
	if len(e.outline) == 0 {
		return
	}
	area := e.drawArea(contoursBounds(e.outline))
	if area.IsEmpty() {
		return
	}
	mask := raster.NewMask(area)
	e.rast.FillMask(mask, e.outline, paint.FillRuleNonZero, e.cfg.State.Antialias)
	e.blendMask(mask, b)
}

// DrawImage implements paint.Engine.
func (e *Engine) DrawImage(bm *paint.Bitmap, src paint.Rect, dst paint.Rect, opacity float64) {
	e.blitScaled(bm, src, dst, opacity)
}

// DrawNinePatch implements paint.Engine: nine independent scaled blits.
func (e *Engine) DrawNinePatch(bm *paint.Bitmap, info paint.NinePatchInfo, opacity float64) {
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			src, dst := info.Region(i, j)
			if src.IsEmpty() || dst.IsEmpty() {
				continue
			}
			e.blitScaled(bm, src, dst, opacity)
		}
	}
}

// DrawText implements paint.Engine: each glyph's pre-rasterized
// coverage mask tints the color and composites source-over.
func (e *Engine) DrawText(run *paint.GlyphRun, c paint.RGBA) {
	top := e.topLayer()
	img := top.img
	pm := c.Premultiply()
	cr := byte(clampUnit(pm.R)*255 + 0.5)
	cg := byte(clampUnit(pm.G)*255 + 0.5)
	cb := byte(clampUnit(pm.B)*255 + 0.5)
	ca := byte(clampUnit(pm.A)*255 + 0.5)

	m := e.cfg.State.Matrix
	for gi := range run.Glyphs {
		g := &run.Glyphs[gi]
		if g.Mask == nil {
			continue
		}
		pen := m.TransformPoint(g.Pos)
		ox := int(math.Round(pen.X + g.MaskOffset.X))
		oy := int(math.Round(pen.Y + g.MaskOffset.Y))

		mb := g.Mask.Bounds()
		for my := mb.Min.Y; my < mb.Max.Y; my++ {
			y := oy + my - mb.Min.Y
			if y < 0 || y >= img.Rect.Dy() {
				continue
			}
			for mx := mb.Min.X; mx < mb.Max.X; mx++ {
				x := ox + mx - mb.Min.X
				if x < 0 || x >= img.Rect.Dx() {
					continue
				}
				cov := g.Mask.AlphaAt(mx, my).A
				if cov == 0 {
					continue
				}
				cov = blend.MulDiv255(cov, e.drawClipCoverage(x, y))
				if cov == 0 && !e.cfg.State.PassTransparent {
					continue
				}
				e.compositePixel(img, x, y,
					blend.MulDiv255(cr, cov),
					blend.MulDiv255(cg, cov),
					blend.MulDiv255(cb, cov),
					blend.MulDiv255(ca, cov))
			}
		}
	}
}

// drawArea intersects a device bounds with the live clip rectangle and
// the top layer's extent.
func (e *Engine) drawArea(bounds paint.RectI) paint.RectI {
	top := e.topLayer()
	extent := paint.RectI{W: top.bounds.W, H: top.bounds.H}
	clip := paint.OuterRect(e.cfg.State.ClipRect)
	return bounds.Intersect(clip).Intersect(extent)
}

// blendMask composites brush color through a coverage mask into the top
// layer, source-over.
func (e *Engine) blendMask(mask *raster.Mask, b paint.Brush) {
	top := e.topLayer()
	img := top.img

	solid, isSolid := b.(paint.SolidBrush)
	var sr, sg, sb, sa byte
	if isSolid {
		sr, sg, sb, sa = premulBytes(solid.Color)
	}

	r := mask.Rect
	for y := r.Y; y < r.MaxY(); y++ {
		for x := r.X; x < r.MaxX(); x++ {
			cov := mask.Pix[(y-r.Y)*r.W+(x-r.X)]
			if cov == 0 {
				continue
			}
			cov = blend.MulDiv255(cov, e.drawClipCoverage(x, y))
			if cov == 0 {
				continue
			}
			cr, cg, cb, ca := sr, sg, sb, sa
			if !isSolid {
				cr, cg, cb, ca = premulBytes(b.ColorAt(float64(x)+0.5, float64(y)+0.5))
			}
			e.compositePixel(img, x, y,
				blend.MulDiv255(cr, cov),
				blend.MulDiv255(cg, cov),
				blend.MulDiv255(cb, cov),
				blend.MulDiv255(ca, cov))
		}
	}
}

// blitScaled scales the src region of the bitmap into the device dst
// rectangle and composites it source-over with the given opacity.
func (e *Engine) blitScaled(bm *paint.Bitmap, src paint.Rect, dst paint.Rect, opacity float64) {
	area := e.drawArea(paint.OuterRect(dst))
	if area.IsEmpty() {
		return
	}

	place := paint.OuterRect(dst)
	scaled := image.NewRGBA(image.Rect(0, 0, place.W, place.H))
	srcRect := image.Rect(
		int(math.Floor(src.X)), int(math.Floor(src.Y)),
		int(math.Ceil(src.MaxX())), int(math.Ceil(src.MaxY())),
	)
	e.scaler(srcRect, place).Scale(scaled, scaled.Bounds(), bm.RGBA(), srcRect, xdraw.Src, nil)

	top := e.topLayer()
	img := top.img
	alpha := byte(clampUnit(opacity)*255 + 0.5)

	for y := area.Y; y < area.MaxY(); y++ {
		for x := area.X; x < area.MaxX(); x++ {
			si := scaled.PixOffset(x-place.X, y-place.Y)
			sr, sg, sb, sa := scaled.Pix[si], scaled.Pix[si+1], scaled.Pix[si+2], scaled.Pix[si+3]
			if sa == 0 && sr == 0 && sg == 0 && sb == 0 && !e.cfg.State.PassTransparent {
				continue
			}
			cov := alpha
			cov = blend.MulDiv255(cov, e.drawClipCoverage(x, y))
			if cov == 0 {
				continue
			}
			e.compositePixel(img, x, y,
				blend.MulDiv255(sr, cov),
				blend.MulDiv255(sg, cov),
				blend.MulDiv255(sb, cov),
				blend.MulDiv255(sa, cov))
		}
	}
}

// scaler picks the blit interpolator: the configured one if set,
// otherwise NearestNeighbor for 1:1 copies and ApproxBiLinear when the
// blit actually scales.
func (e *Engine) scaler(src image.Rectangle, dst paint.RectI) xdraw.Interpolator {
	if e.interp != nil {
		return e.interp
	}
	if src.Dx() == dst.W && src.Dy() == dst.H {
		return xdraw.NearestNeighbor
	}
	return xdraw.ApproxBiLinear
}

// compositePixel source-overs one premultiplied pixel into img.
func (e *Engine) compositePixel(img *image.RGBA, x, y int, sr, sg, sb, sa byte) {
	i := img.PixOffset(x, y)
	dr, dg, db, da := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
	rr, rg, rb, ra := blend.SourceOver(sr, sg, sb, sa, dr, dg, db, da)
	img.Pix[i] = rr
	img.Pix[i+1] = rg
	img.Pix[i+2] = rb
	img.Pix[i+3] = ra
}

// premulBytes converts a straight-alpha color to premultiplied bytes.
func premulBytes(c paint.RGBA) (r, g, b, a byte) {
	pm := c.Premultiply()
	return byte(clampUnit(pm.R)*255 + 0.5),
		byte(clampUnit(pm.G)*255 + 0.5),
		byte(clampUnit(pm.B)*255 + 0.5),
		byte(clampUnit(pm.A)*255 + 0.5)
}
