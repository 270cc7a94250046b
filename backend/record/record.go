// Package record is a backend that records every engine call instead
// of rasterizing. Tests assert on the recorded sequence to verify what
// the painter forwards, culls, or substitutes.
package record

import "github.com/gogpu/paint"

// Kind identifies a recorded engine operation.
type Kind string

// Recorded operation kinds.
const (
	KindBegin        Kind = "begin"
	KindEnd          Kind = "end"
	KindPaint        Kind = "paint"
	KindBeginLayer   Kind = "beginLayer"
	KindComposeLayer Kind = "composeLayer"
	KindClipOut      Kind = "clipOut"
	KindRestoreClip  Kind = "restoreClip"
	KindFillPath     Kind = "fillPath"
	KindStrokePath   Kind = "strokePath"
	KindDrawImage    Kind = "drawImage"
	KindDrawNine     Kind = "drawNinePatch"
	KindDrawText     Kind = "drawText"
)

// Op is one recorded engine call with the arguments that matter to
// assertions. Contours are deep-copied because the painter reuses its
// scratch buffers between calls.
type Op struct {
	Kind Kind

	Depth      int
	Bounds     paint.RectI
	Opacity    float64
	Mode       paint.BlendMode
	Rule       paint.FillRule
	Complement bool
	Antialias  bool

	Brush    paint.Brush
	Pen      paint.Pen
	Hairline bool

	Contours []paint.Contour
	Src, Dst paint.Rect
	Nine     paint.NinePatchInfo
	Glyphs   int
	Color    paint.RGBA

	// State is a snapshot of the painter state at the time of the call.
	State paint.State
}

// Engine implements paint.Engine by recording.
type Engine struct {
	Ops []Op

	// Errs, when set, are returned in order from Begin, End, and Paint
	// to exercise failure paths.
	BeginErr, EndErr, PaintErr error

	cfg paint.FrameConfig
}

// New creates a recording engine.
func New() *Engine {
	return &Engine{}
}

// Config returns the FrameConfig received by Begin.
func (e *Engine) Config() paint.FrameConfig { return e.cfg }

// Reset clears the recording.
func (e *Engine) Reset() {
	e.Ops = e.Ops[:0]
}

// Calls returns the recorded operations of one kind, in order.
func (e *Engine) Calls(k Kind) []Op {
	var out []Op
	for _, op := range e.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// DrawCalls returns the recorded pure drawing operations, in order.
func (e *Engine) DrawCalls() []Op {
	var out []Op
	for _, op := range e.Ops {
		switch op.Kind {
		case KindFillPath, KindStrokePath, KindDrawImage, KindDrawNine, KindDrawText:
			out = append(out, op)
		}
	}
	return out
}

func (e *Engine) record(op Op) {
	if e.cfg.State != nil {
		op.State = *e.cfg.State
	}
	e.Ops = append(e.Ops, op)
}

func copyContours(contours []paint.Contour) []paint.Contour {
	out := make([]paint.Contour, len(contours))
	for i, c := range contours {
		pts := make([]paint.Point, len(c.Points))
		copy(pts, c.Points)
		out[i] = paint.Contour{Points: pts, Closed: c.Closed}
	}
	return out
}

// Begin implements paint.Engine.
func (e *Engine) Begin(cfg paint.FrameConfig) error {
	e.cfg = cfg
	e.record(Op{Kind: KindBegin})
	return e.BeginErr
}

// End implements paint.Engine.
func (e *Engine) End() error {
	e.record(Op{Kind: KindEnd})
	return e.EndErr
}

// Paint implements paint.Engine.
func (e *Engine) Paint() error {
	e.record(Op{Kind: KindPaint})
	return e.PaintErr
}

// BeginLayer implements paint.Engine.
func (e *Engine) BeginLayer(bounds paint.RectI, opacity float64, mode paint.BlendMode) {
	e.record(Op{Kind: KindBeginLayer, Bounds: bounds, Opacity: opacity, Mode: mode})
}

// ComposeLayer implements paint.Engine.
func (e *Engine) ComposeLayer(bounds paint.RectI) {
	e.record(Op{Kind: KindComposeLayer, Bounds: bounds})
}

// ClipOut implements paint.Engine.
func (e *Engine) ClipOut(depth int, contours []paint.Contour, rule paint.FillRule, complement, antialias bool) {
	e.record(Op{
		Kind: KindClipOut, Depth: depth, Contours: copyContours(contours),
		Rule: rule, Complement: complement, Antialias: antialias,
	})
}

// RestoreClip implements paint.Engine.
func (e *Engine) RestoreClip(depth int) {
	e.record(Op{Kind: KindRestoreClip, Depth: depth})
}

// FillPath implements paint.Engine.
func (e *Engine) FillPath(contours []paint.Contour, b paint.Brush, rule paint.FillRule) {
	e.record(Op{Kind: KindFillPath, Contours: copyContours(contours), Brush: b, Rule: rule})
}

// StrokePath implements paint.Engine.
func (e *Engine) StrokePath(contours []paint.Contour, b paint.Brush, pen paint.Pen, hairline bool) {
	e.record(Op{Kind: KindStrokePath, Contours: copyContours(contours), Brush: b, Pen: pen, Hairline: hairline})
}

// DrawImage implements paint.Engine.
func (e *Engine) DrawImage(bm *paint.Bitmap, src paint.Rect, dst paint.Rect, opacity float64) {
	_ = bm
	e.record(Op{Kind: KindDrawImage, Src: src, Dst: dst, Opacity: opacity})
}

// DrawNinePatch implements paint.Engine.
func (e *Engine) DrawNinePatch(bm *paint.Bitmap, info paint.NinePatchInfo, opacity float64) {
	_ = bm
	e.record(Op{Kind: KindDrawNine, Nine: info, Opacity: opacity})
}

// DrawText implements paint.Engine.
func (e *Engine) DrawText(run *paint.GlyphRun, c paint.RGBA) {
	e.record(Op{Kind: KindDrawText, Glyphs: len(run.Glyphs), Color: c})
}
