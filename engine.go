package paint

// GeometryBBox is the geometry scratch value the painter fills in
// immediately before each drawing call: the bounding box of the geometry
// in local space and in device space (clip-padded). Backends size their
// buffers from it.
type GeometryBBox struct {
	Local  Rect
	Device Rect
}

// FrameConfig carries everything a backend needs to begin a frame.
// State and Geometry are read-only views owned by the painter; they stay
// valid (and live-updated) between Begin and End.
type FrameConfig struct {
	// Target receives the composed output when the backend paints.
	Target RenderTarget

	// Width and Height are the frame size in device pixels.
	Width, Height int

	// Background is the color the frame starts from.
	Background RGBA

	// State points at the painter's current drawing state.
	State *State

	// Geometry points at the painter's geometry bounding-box scratch.
	Geometry *GeometryBBox
}

// Engine is the rasterization and compositing backend contract. The
// Painter is the only caller and calls are strictly ordered: Begin once
// per frame before anything else, End once after the frame's final
// restore, Paint to present (Paint may also be re-invoked between frames
// to re-present the last composed output without new vector work).
// Within a frame, BeginLayer/ComposeLayer pairs nest in LIFO order
// matching the painter's state stack, and ClipOut effects accumulate
// keyed by state-stack depth until RestoreClip drops them.
//
// Geometry arrives pre-transformed into device space and pre-culled
// against the clip rectangle; backends still honor the live clip state
// (rectangle plus accumulated ClipOut masks) per pixel.
//
// A backend is free to choose its rasterization algorithm as long as
// anti-aliased coverage is proportional to geometric area, fill rules
// follow standard winding semantics, and composite operators match
// Porter-Duff math on premultiplied-alpha samples.
type Engine interface {
	// Begin starts a frame. No other call is valid before it.
	Begin(cfg FrameConfig) error

	// End finishes the frame, after the painter has unwound all state.
	// Drawing errors recorded during the frame surface here.
	End() error

	// Paint presents the last composed output to the frame target.
	Paint() error

	// BeginLayer allocates a compositing buffer for the device-space
	// bounds. The layer's origin is the bounds' top-left corner.
	BeginLayer(bounds RectI, opacity float64, mode BlendMode)

	// ComposeLayer composites the most recent open layer onto its
	// parent. bounds is the accumulated dirty region of the layer in the
	// layer's own coordinates; it may be empty, but the layer must still
	// be popped.
	ComposeLayer(bounds RectI)

	// ClipOut applies a path-shaped clip at the given state-stack depth.
	// With complement=true only pixels inside the contours survive; with
	// complement=false pixels inside the contours are excluded.
	ClipOut(depth int, contours []Contour, rule FillRule, complement, antialias bool)

	// RestoreClip drops every ClipOut effect recorded at a depth greater
	// than depth.
	RestoreClip(depth int)

	// FillPath fills device-space contours with the brush.
	FillPath(contours []Contour, b Brush, rule FillRule)

	// StrokePath strokes device-space contours. pen.Width is in device
	// pixels; hairline requests the exact 1px fast path.
	StrokePath(contours []Contour, b Brush, pen Pen, hairline bool)

	// DrawImage blits the src region of the bitmap to the device-space
	// dst rectangle with the given opacity.
	DrawImage(bm *Bitmap, src Rect, dst Rect, opacity float64)

	// DrawNinePatch blits the nine regions described by info.
	DrawNinePatch(bm *Bitmap, info NinePatchInfo, opacity float64)

	// DrawText draws a whole pre-rasterized glyph run in one call so
	// backends can batch.
	DrawText(run *GlyphRun, color RGBA)
}
