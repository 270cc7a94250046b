package paint

import (
	"context"
	"fmt"
	"log/slog"
)

// Painter is the retained-state drawing front end. It owns the current
// transform, clip rectangle, and anti-alias flag, a LIFO stack of saved
// states, and a parallel stack of per-layer dirty bounds. Drawing calls
// are culled, transformed into device space, and forwarded to the bound
// Engine with minimal geometry.
//
// A Painter and its bound engine are single-threaded: exactly one frame
// is active between BeginFrame and EndFrame, and no call is safe for
// concurrent use.
type Painter struct {
	engine Engine
	target RenderTarget

	st          State
	stack       []State
	layerBounds []layerBound

	// base is the device-scaling matrix established at frame start.
	// SetMatrix replaces relative to it, not relative to identity, so a
	// hard reset keeps device-pixel-ratio scaling.
	base Matrix

	active   bool
	composed bool

	width, height int

	// scratch buffers reused across calls to avoid reallocation. Never
	// retained by the backend beyond a single call.
	scratch  Path
	contours []Contour
	geom     GeometryBBox
}

// NewPainter creates an unbound painter. Bind an engine per frame with
// BeginFrame.
func NewPainter() *Painter {
	return &Painter{}
}

// BeginFrame binds an engine and target and starts a frame. The base
// matrix is established as the ratio of physical (target) to logical
// size, with independent X and Y ratios, so non-square device pixel
// ratios are supported. The initial clip covers the whole target.
//
// Calling BeginFrame while a frame is active is a contract violation
// and panics.
func (p *Painter) BeginFrame(e Engine, target RenderTarget, logicalW, logicalH float64, background RGBA) error {
	if p.active {
		panic("paint: frame already active")
	}
	if e == nil || target == nil {
		panic("paint: nil engine or target")
	}
	if !(logicalW > 0 && logicalH > 0) || !Pt(logicalW, logicalH).IsFinite() {
		panic("paint: invalid logical size")
	}

	p.engine = e
	p.target = target
	p.width = target.Width()
	p.height = target.Height()
	p.base = Scale(float64(p.width)/logicalW, float64(p.height)/logicalH)

	p.st = State{
		Antialias: true,
		ClipRect:  Rect{W: float64(p.width), H: float64(p.height)},
		Matrix:    p.base,
	}
	p.stack = p.stack[:0]
	p.layerBounds = append(p.layerBounds[:0], layerBound{bounds: EmptyBounds()})

	cfg := FrameConfig{
		Target:     target,
		Width:      p.width,
		Height:     p.height,
		Background: background,
		State:      &p.st,
		Geometry:   &p.geom,
	}
	if err := e.Begin(cfg); err != nil {
		return fmt.Errorf("%w: begin: %w", ErrBackend, err)
	}
	p.active = true
	return nil
}

// EndFrame restores all outstanding state to depth 0, finalizes the
// frame, and presents it. Drawing errors recorded by the backend during
// the frame surface here; the state stack is fully unwound regardless.
func (p *Painter) EndFrame() error {
	p.requireFrame()
	p.Restore(0)
	p.active = false

	if err := p.engine.End(); err != nil {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	p.composed = true
	if err := p.engine.Paint(); err != nil {
		return fmt.Errorf("%w: paint: %w", ErrBackend, err)
	}
	return nil
}

// Repaint asks the backend to re-present its last composed output
// without redoing any vector work. Valid only between frames; returns
// ErrNoFrame if no frame has ever been composed.
func (p *Painter) Repaint() error {
	if p.active {
		panic("paint: repaint during active frame")
	}
	if !p.composed {
		return ErrNoFrame
	}
	if err := p.engine.Paint(); err != nil {
		return fmt.Errorf("%w: paint: %w", ErrBackend, err)
	}
	return nil
}

// Width returns the frame width in device pixels.
func (p *Painter) Width() int { return p.width }

// Height returns the frame height in device pixels.
func (p *Painter) Height() int { return p.height }

func (p *Painter) requireFrame() {
	if !p.active {
		panic("paint: no active frame")
	}
}

// Save pushes a copy of the current state and returns the pre-push
// stack depth, which the matching Restore must receive.
func (p *Painter) Save() int {
	p.requireFrame()
	depth := len(p.stack)
	p.stack = append(p.stack, p.st)
	p.st.Layer = false
	return depth
}

// Saved is the guard form of Save; see StateGuard.
func (p *Painter) Saved() *StateGuard {
	return &StateGuard{p: p, depth: p.Save()}
}

// Restore pops state frames down to depth, in strict LIFO order. Each
// popped layer frame is composed onto its parent and its accumulated
// dirty bounds are folded, translated by the layer's device offset,
// into the parent's bounds. Restoring to a depth that was never
// returned by Save or BeginLayer is a contract violation and panics.
func (p *Painter) Restore(depth int) {
	p.requireFrame()
	if depth < 0 || depth > len(p.stack) {
		panic("paint: restore depth out of range")
	}
	for len(p.stack) > depth {
		newLen := len(p.stack) - 1
		if p.st.Layer {
			n := len(p.layerBounds) - 1
			lb := p.layerBounds[n]
			p.layerBounds = p.layerBounds[:n]

			var dirty RectI
			if !lb.bounds.IsEmpty() {
				dirty = OuterRect(lb.bounds)
			}
			p.engine.ComposeLayer(dirty)

			if !lb.bounds.IsEmpty() {
				top := &p.layerBounds[n-1]
				top.bounds = top.bounds.Include(lb.bounds.Translated(lb.off.X, lb.off.Y))
			}
		}
		p.engine.RestoreClip(newLen)
		p.st = p.stack[newLen]
		p.stack = p.stack[:newLen]
	}
}

// BeginLayer pushes a state frame that accumulates subsequent drawing
// into an offscreen buffer, composed onto the parent at the matching
// Restore with the given group opacity and blend mode. Returns the
// pre-push stack depth, same discipline as Save.
//
// The layer's device origin is shifted to the top-left of the current
// clip rectangle so backends can allocate minimally sized buffers. If
// opacity rounds to zero and the mode is not transparency-significant,
// the layer's content is discarded without any backend work.
func (p *Painter) BeginLayer(opacity float64, mode BlendMode) int {
	depth := p.Save()
	if p.st.Discard {
		return depth
	}
	if opacity*255 < 0.5 && !mode.TransparencySignificant() {
		p.st.Discard = true
		return depth
	}
	bounds := OuterRect(p.st.ClipRect)
	if bounds.IsEmpty() {
		p.st.Discard = true
		return depth
	}

	p.engine.BeginLayer(bounds, opacity, mode)
	p.st.Layer = true
	p.st.PassTransparent = mode.TransparencySignificant()

	off := Pt(float64(bounds.X), float64(bounds.Y))
	p.st.Matrix = Translate(-off.X, -off.Y).Multiply(p.st.Matrix)
	p.st.ClipRect = p.st.ClipRect.Translated(-off.X, -off.Y)
	p.layerBounds = append(p.layerBounds, layerBound{bounds: EmptyBounds(), off: off})

	Logger().LogAttrs(context.Background(), slog.LevelDebug, "begin layer",
		slog.Int("depth", depth),
		slog.Float64("opacity", opacity),
		slog.String("mode", mode.String()))
	return depth
}

// Layered is the guard form of BeginLayer; see LayerGuard.
func (p *Painter) Layered(opacity float64, mode BlendMode) *LayerGuard {
	return &LayerGuard{p: p, depth: p.BeginLayer(opacity, mode)}
}

// axisAlignedImage reports whether the matrix maps axis-aligned
// rectangles to axis-aligned rectangles, including quarter-turn
// rotations.
func axisAlignedImage(m Matrix) bool {
	return (m.B == 0 && m.D == 0) || (m.A == 0 && m.E == 0)
}

// ClipRect intersects the clip with the device-space image of a
// local-space rectangle. When the current matrix keeps the rectangle
// axis-aligned the clip stays a plain rectangle intersection. Under
// rotation or skew the clip rectangle takes the transformed bounding
// box and the backend additionally excludes everything outside the
// transformed quadrilateral, so rotated clips are respected per pixel.
func (p *Painter) ClipRect(r Rect) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if !r.IsFinite() {
		panic("paint: non-finite clip rectangle")
	}
	if r.IsEmpty() {
		p.st.ClipRect = Rect{}
		p.st.Discard = true
		return
	}

	m := p.st.Matrix
	p.st.ClipRect = p.st.ClipRect.Intersect(m.TransformRect(r))
	if p.st.ClipRect.IsEmpty() {
		p.st.Discard = true
		return
	}
	if !axisAlignedImage(m) {
		c := r.Corners()
		quad := Contour{
			Points: []Point{
				m.TransformPoint(c[0]),
				m.TransformPoint(c[1]),
				m.TransformPoint(c[2]),
				m.TransformPoint(c[3]),
			},
			Closed: true,
		}
		p.engine.ClipOut(len(p.stack), []Contour{quad}, FillRuleNonZero, true, p.st.Antialias)
	}
}

// ClipPath intersects the clip with the inside of a path under the
// given fill rule. The clip rectangle tightens to the path's device
// bounding box; the backend keeps only pixels inside the path.
func (p *Painter) ClipPath(path *Path, rule FillRule) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if path == nil || path.IsEmpty() {
		p.st.ClipRect = Rect{}
		p.st.Discard = true
		return
	}
	if !p.prepareContours(path, 0, 1) {
		p.st.ClipRect = Rect{}
		p.st.Discard = true
		return
	}
	p.st.ClipRect = p.st.ClipRect.Intersect(p.geom.Device)
	if p.st.ClipRect.IsEmpty() {
		p.st.Discard = true
		return
	}
	p.engine.ClipOut(len(p.stack), p.contours, rule, true, p.st.Antialias)
}

// ClipOutRect excludes a local-space rectangle from the clip region.
// The clip rectangle is unchanged; exclusion is tracked by the backend.
func (p *Painter) ClipOutRect(r Rect) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if !r.IsFinite() {
		panic("paint: non-finite clip rectangle")
	}
	if r.IsEmpty() {
		return
	}
	p.scratch.Clear()
	p.scratch.Rectangle(r)
	p.clipOutPath(&p.scratch, FillRuleNonZero)
}

// ClipOutPath excludes the inside of a path from the clip region.
func (p *Painter) ClipOutPath(path *Path, rule FillRule) {
	p.requireFrame()
	if p.st.Discard {
		return
	}
	if path == nil || path.IsEmpty() {
		return
	}
	p.clipOutPath(path, rule)
}

func (p *Painter) clipOutPath(path *Path, rule FillRule) {
	// An excluded region that misses the clip entirely excludes nothing.
	if !p.prepareContours(path, 0, 1) {
		return
	}
	p.engine.ClipOut(len(p.stack), p.contours, rule, false, p.st.Antialias)
}

// Translate composes a local-space translation onto the current matrix.
func (p *Painter) Translate(x, y float64) {
	p.requireFrame()
	p.st.Matrix = p.st.Matrix.Multiply(Translate(x, y))
}

// Scale composes a local-space scale onto the current matrix.
func (p *Painter) Scale(x, y float64) {
	p.requireFrame()
	p.st.Matrix = p.st.Matrix.Multiply(Scale(x, y))
}

// Rotate composes a local-space rotation (radians) onto the current
// matrix.
func (p *Painter) Rotate(angle float64) {
	p.requireFrame()
	p.st.Matrix = p.st.Matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a local-space point.
func (p *Painter) RotateAbout(angle, x, y float64) {
	p.requireFrame()
	p.st.Matrix = p.st.Matrix.
		Multiply(Translate(x, y)).
		Multiply(Rotate(angle)).
		Multiply(Translate(-x, -y))
}

// Skew composes a local-space skew onto the current matrix.
func (p *Painter) Skew(x, y float64) {
	p.requireFrame()
	p.st.Matrix = p.st.Matrix.Multiply(Skew(x, y))
}

// Transform composes an arbitrary local-space matrix onto the current
// matrix.
func (p *Painter) Transform(m Matrix) {
	p.requireFrame()
	if !m.IsFinite() {
		panic("paint: non-finite matrix")
	}
	p.st.Matrix = p.st.Matrix.Multiply(m)
}

// SetMatrix replaces the current transform with m relative to the
// frame's base matrix, so device-pixel-ratio scaling survives a hard
// reset. Inside a layer the base is additionally shifted by the layer's
// device origin.
func (p *Painter) SetMatrix(m Matrix) {
	p.requireFrame()
	if !m.IsFinite() {
		panic("paint: non-finite matrix")
	}
	off := p.layerOffset()
	p.st.Matrix = Translate(-off.X, -off.Y).Multiply(p.base).Multiply(m)
}

// ResetMatrix restores the frame's base transform.
func (p *Painter) ResetMatrix() {
	p.SetMatrix(Identity())
}

// layerOffset returns the accumulated device offset of the open layers.
func (p *Painter) layerOffset() Point {
	var off Point
	for _, lb := range p.layerBounds[1:] {
		off = off.Add(lb.off)
	}
	return off
}

// Matrix returns the current local-to-device transform.
func (p *Painter) Matrix() Matrix { return p.st.Matrix }

// Antialias reports whether anti-aliasing is enabled.
func (p *Painter) Antialias() bool { return p.st.Antialias }

// SetAntialias toggles anti-aliasing for subsequent draws. The setting
// saves and restores with the state stack.
func (p *Painter) SetAntialias(on bool) {
	p.requireFrame()
	p.st.Antialias = on
}

// QuickReject reports whether a local-space box is certainly invisible
// under the current transform and clip. It may return false for an
// invisible box, never true for a visible one.
func (p *Painter) QuickReject(box Rect) bool {
	p.requireFrame()
	if p.st.Discard {
		return true
	}
	if box.IsEmpty() {
		return true
	}
	var device Rect
	if p.st.Matrix.IsTranslation() {
		device = box.Translated(p.st.Matrix.C, p.st.Matrix.F)
	} else {
		device = p.st.Matrix.TransformRect(box)
	}
	return !device.Intersects(p.st.ClipRect)
}

// LocalClipBounds returns the current clip rectangle mapped back into
// local space, expanded by one device pixel on each side to cover
// anti-aliased fringes. Returns the empty rectangle when the clip is
// empty.
func (p *Painter) LocalClipBounds() Rect {
	p.requireFrame()
	if p.st.ClipRect.IsEmpty() {
		return Rect{}
	}
	device := p.st.ClipRect.Expanded(1)
	if p.st.Matrix.IsTranslation() {
		return device.Translated(-p.st.Matrix.C, -p.st.Matrix.F)
	}
	return p.st.Matrix.Invert().TransformRect(device)
}

// includeBounds folds a device-space bounding box, clipped to the
// current clip rectangle, into the active layer's dirty bounds.
func (p *Painter) includeBounds(device Rect) {
	b := device.Intersect(p.st.ClipRect)
	if b.IsEmpty() {
		return
	}
	top := &p.layerBounds[len(p.layerBounds)-1]
	top.bounds = top.bounds.Include(b)
}
