package paint

import (
	"image"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// GlyphInstance is a positioned, pre-rasterized glyph reference.
// Shaping and rasterization happen upstream; the painter only places
// the mask and accounts for its extents.
type GlyphInstance struct {
	// GID identifies the glyph within its face.
	GID font.GID

	// Pos is the pen position in local coordinates.
	Pos Point

	// Advance is the horizontal advance to the next pen position.
	Advance fixed.Int26_6

	// Mask is the pre-rasterized coverage bitmap, or nil for blank
	// glyphs (spaces). MaskOffset places the mask's top-left corner
	// relative to Pos.
	Mask       *image.Alpha
	MaskOffset Point

	// Box is the glyph's black-box extents relative to Pos.
	Box Rect
}

// GlyphRun is an ordered sequence of positioned glyphs drawn in one
// backend call so backends can batch.
type GlyphRun struct {
	Glyphs    []GlyphInstance
	Direction bidi.Direction
}

// Bounds returns the union of every glyph's placement rectangle in
// local coordinates. Blank glyphs contribute nothing.
func (r *GlyphRun) Bounds() Rect {
	bounds := EmptyBounds()
	for i := range r.Glyphs {
		g := &r.Glyphs[i]
		box := g.Box.Translated(g.Pos.X, g.Pos.Y)
		if box.IsEmpty() {
			continue
		}
		bounds = bounds.Include(box)
	}
	if bounds.IsEmpty() {
		return Rect{}
	}
	return bounds
}

// IsEmpty reports whether the run has no glyphs with visible extents.
func (r *GlyphRun) IsEmpty() bool {
	if r == nil || len(r.Glyphs) == 0 {
		return true
	}
	return r.Bounds().IsEmpty()
}
