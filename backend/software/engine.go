// Package software is a CPU rasterization backend for paint. It keeps
// a stack of premultiplied RGBA layer buffers, rasterizes contours into
// coverage masks, and composites with Porter-Duff math at layer
// boundaries.
package software

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/blend"
	"github.com/gogpu/paint/internal/raster"
)

// layer is one compositing buffer. The buffer's pixel (0, 0) maps to
// (bounds.X, bounds.Y) in the parent layer's coordinates.
type layer struct {
	img     *image.RGBA
	bounds  paint.RectI
	opacity float64
	mode    paint.BlendMode

	// clipMark is the clip-entry count when the layer began. Entries
	// below it are in parent space and apply when the layer composes;
	// entries at or above it are in this layer's space and apply to
	// drawing inside it.
	clipMark int
}

// clipEntry is one accumulated pixel-level clip effect, recorded at a
// state-stack depth so RestoreClip can drop it.
type clipEntry struct {
	depth      int
	mask       *raster.Mask
	complement bool
}

// Engine implements paint.Engine with scanline rasterization.
type Engine struct {
	rast *raster.Rasterizer
	cfg  paint.FrameConfig

	layers []layer
	clips  []clipEntry

	composed *image.RGBA
	active   bool
	err      error

	// interp, when set, overrides the automatic scaler choice for blits.
	interp xdraw.Interpolator

	// scratch buffers reused across draw calls
	outline []paint.Contour
}

// New creates a software engine. One engine serves one painter at a
// time and may be reused across frames.
func New(opts ...Option) *Engine {
	e := &Engine{rast: raster.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Begin implements paint.Engine.
func (e *Engine) Begin(cfg paint.FrameConfig) error {
	if e.active {
		return fmt.Errorf("software: frame already active")
	}
	if cfg.Target != nil && cfg.Target.Format() != gputypes.TextureFormatRGBA8Unorm {
		return fmt.Errorf("software: unsupported target format %v", cfg.Target.Format())
	}
	e.cfg = cfg
	e.clips = e.clips[:0]
	e.err = nil

	root := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	fillRGBA(root, cfg.Background.Premultiply())
	e.layers = append(e.layers[:0], layer{
		img:    root,
		bounds: paint.RectI{W: cfg.Width, H: cfg.Height},
		mode:   paint.BlendSourceOver,
	})
	e.active = true
	return nil
}

// End implements paint.Engine. The frame's first recorded drawing error
// surfaces here.
func (e *Engine) End() error {
	if !e.active {
		return fmt.Errorf("software: no active frame")
	}
	e.active = false
	if len(e.layers) != 1 {
		e.setErr(fmt.Errorf("software: %d layers left open", len(e.layers)-1))
	}
	e.composed = e.layers[0].img
	return e.err
}

// Paint implements paint.Engine: it copies the last composed output
// into the frame target's pixel buffer. GPU-only targets (nil Pixels)
// are presented separately through Present.
func (e *Engine) Paint() error {
	if e.composed == nil {
		return fmt.Errorf("software: nothing composed")
	}
	t := e.cfg.Target
	if t == nil {
		return nil
	}
	pix := t.Pixels()
	if pix == nil {
		return nil
	}
	w := min(t.Width(), e.composed.Rect.Dx())
	h := min(t.Height(), e.composed.Rect.Dy())
	for y := 0; y < h; y++ {
		src := e.composed.Pix[y*e.composed.Stride : y*e.composed.Stride+w*4]
		copy(pix[y*t.Stride():], src)
	}
	return nil
}

// Composed returns the last composed frame, or nil before the first
// End. The engine retains ownership.
func (e *Engine) Composed() *image.RGBA { return e.composed }

// BeginLayer implements paint.Engine.
func (e *Engine) BeginLayer(bounds paint.RectI, opacity float64, mode paint.BlendMode) {
	buf := image.NewRGBA(image.Rect(0, 0, bounds.W, bounds.H))
	e.layers = append(e.layers, layer{
		img:      buf,
		bounds:   bounds,
		opacity:  opacity,
		mode:     mode,
		clipMark: len(e.clips),
	})
	paint.Logger().LogAttrs(context.Background(), slog.LevelDebug, "layer buffer",
		slog.Int("w", bounds.W), slog.Int("h", bounds.H))
}

// ComposeLayer implements paint.Engine: it pops the top layer and
// composites it onto its parent with the layer's opacity and mode,
// restricted to the accumulated dirty bounds.
func (e *Engine) ComposeLayer(dirty paint.RectI) {
	if len(e.layers) < 2 {
		e.setErr(fmt.Errorf("software: compose without open layer"))
		return
	}
	top := e.layers[len(e.layers)-1]
	e.layers = e.layers[:len(e.layers)-1]
	parent := &e.layers[len(e.layers)-1]

	if dirty.IsEmpty() && !top.mode.TransparencySignificant() {
		return
	}
	region := dirty
	if top.mode.TransparencySignificant() {
		// Transparent regions of the layer carry meaning; compose the
		// whole extent, not just where something was drawn.
		region = paint.RectI{W: top.bounds.W, H: top.bounds.H}
	}
	region = region.Intersect(paint.RectI{W: top.bounds.W, H: top.bounds.H})
	if region.IsEmpty() {
		return
	}

	f := blend.ForMode(top.mode)
	alpha := byte(clampUnit(top.opacity)*255 + 0.5)
	from, to := parent.clipMark, top.clipMark

	for ly := region.Y; ly < region.MaxY(); ly++ {
		py := ly + top.bounds.Y
		if py < 0 || py >= parent.img.Rect.Dy() {
			continue
		}
		for lx := region.X; lx < region.MaxX(); lx++ {
			px := lx + top.bounds.X
			if px < 0 || px >= parent.img.Rect.Dx() {
				continue
			}
			cov := e.clipCoverage(px, py, from, to)
			if cov == 0 && !top.mode.TransparencySignificant() {
				continue
			}

			si := top.img.PixOffset(lx, ly)
			sr, sg, sb, sa := top.img.Pix[si], top.img.Pix[si+1], top.img.Pix[si+2], top.img.Pix[si+3]
			if alpha < 255 {
				sr = blend.MulDiv255(sr, alpha)
				sg = blend.MulDiv255(sg, alpha)
				sb = blend.MulDiv255(sb, alpha)
				sa = blend.MulDiv255(sa, alpha)
			}

			di := parent.img.PixOffset(px, py)
			dr, dg, db, da := parent.img.Pix[di], parent.img.Pix[di+1], parent.img.Pix[di+2], parent.img.Pix[di+3]

			rr, rg, rb, ra := f(sr, sg, sb, sa, dr, dg, db, da)
			if cov < 255 {
				// Partial clip coverage interpolates between the
				// destination and the composed result.
				inv := 255 - cov
				rr = blend.MulDiv255(rr, cov) + blend.MulDiv255(dr, inv)
				rg = blend.MulDiv255(rg, cov) + blend.MulDiv255(dg, inv)
				rb = blend.MulDiv255(rb, cov) + blend.MulDiv255(db, inv)
				ra = blend.MulDiv255(ra, cov) + blend.MulDiv255(da, inv)
			}
			parent.img.Pix[di] = rr
			parent.img.Pix[di+1] = rg
			parent.img.Pix[di+2] = rb
			parent.img.Pix[di+3] = ra
		}
	}
}

// ClipOut implements paint.Engine: it rasterizes the contours into a
// coverage mask recorded at the given depth. With complement=true only
// pixels covered by the contours survive later draws; otherwise
// covered pixels are excluded.
func (e *Engine) ClipOut(depth int, contours []paint.Contour, rule paint.FillRule, complement, antialias bool) {
	bounds := contoursBounds(contours)
	top := e.topLayer()
	extent := paint.RectI{W: top.bounds.W, H: top.bounds.H}
	mask := raster.NewMask(bounds.Intersect(extent))
	e.rast.FillMask(mask, contours, rule, antialias)
	e.clips = append(e.clips, clipEntry{depth: depth, mask: mask, complement: complement})
}

// RestoreClip implements paint.Engine.
func (e *Engine) RestoreClip(depth int) {
	n := len(e.clips)
	for n > 0 && e.clips[n-1].depth > depth {
		n--
	}
	e.clips = e.clips[:n]
}

// clipCoverage multiplies the surviving coverage of clip entries
// [from, to) at pixel (x, y).
func (e *Engine) clipCoverage(x, y, from, to int) byte {
	cov := byte(255)
	for i := from; i < to; i++ {
		c := &e.clips[i]
		m := c.mask.At(x, y)
		if c.complement {
			cov = blend.MulDiv255(cov, m)
		} else {
			cov = blend.MulDiv255(cov, 255-m)
		}
		if cov == 0 {
			return 0
		}
	}
	return cov
}

// drawClipCoverage is clipCoverage for drawing into the top layer:
// only entries recorded since the layer began apply, combined with the
// live clip rectangle's fractional pixel coverage.
func (e *Engine) drawClipCoverage(x, y int) byte {
	cov := rectCoverage(x, y, e.cfg.State.ClipRect)
	if cov == 0 {
		return 0
	}
	top := e.topLayer()
	return blend.MulDiv255(cov, e.clipCoverage(x, y, top.clipMark, len(e.clips)))
}

func (e *Engine) topLayer() *layer {
	return &e.layers[len(e.layers)-1]
}

func (e *Engine) setErr(err error) {
	if e.err == nil {
		e.err = err
	}
}

// rectCoverage returns how much of pixel (x, y) the rectangle covers,
// 0-255, computed analytically so fractional clip edges anti-alias.
func rectCoverage(x, y int, r paint.Rect) byte {
	w := overlap(float64(x), float64(x+1), r.X, r.MaxX())
	if w <= 0 {
		return 0
	}
	h := overlap(float64(y), float64(y+1), r.Y, r.MaxY())
	if h <= 0 {
		return 0
	}
	return byte(w*h*255 + 0.5)
}

func overlap(a0, a1, b0, b1 float64) float64 {
	lo := max(a0, b0)
	hi := min(a1, b1)
	return hi - lo
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// contoursBounds returns the outward-rounded device bounds of a
// contour set.
func contoursBounds(contours []paint.Contour) paint.RectI {
	first := true
	var x0, y0, x1, y1 float64
	for _, c := range contours {
		for _, p := range c.Points {
			if first {
				x0, y0, x1, y1 = p.X, p.Y, p.X, p.Y
				first = false
				continue
			}
			x0 = min(x0, p.X)
			y0 = min(y0, p.Y)
			x1 = max(x1, p.X)
			y1 = max(y1, p.Y)
		}
	}
	if first {
		return paint.RectI{}
	}
	return paint.OuterRect(paint.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0})
}

// fillRGBA sets every pixel of img to the premultiplied color.
func fillRGBA(img *image.RGBA, c paint.RGBA) {
	r := byte(clampUnit(c.R)*255 + 0.5)
	g := byte(clampUnit(c.G)*255 + 0.5)
	b := byte(clampUnit(c.B)*255 + 0.5)
	a := byte(clampUnit(c.A)*255 + 0.5)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
}
