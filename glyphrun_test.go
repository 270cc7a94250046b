package paint

import (
	"image"
	"testing"
)

func TestGlyphRunBounds(t *testing.T) {
	run := &GlyphRun{Glyphs: []GlyphInstance{
		{Pos: Pt(10, 20), Box: Rect{X: 0, Y: -8, W: 6, H: 10}},
		{Pos: Pt(17, 20), Box: Rect{X: 0, Y: -6, W: 5, H: 8}},
		{Pos: Pt(23, 20)}, // space, no extents
	}}

	want := Rect{X: 10, Y: 12, W: 12, H: 10}
	if got := run.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if run.IsEmpty() {
		t.Error("run with visible glyphs should not be empty")
	}
}

func TestGlyphRunEmpty(t *testing.T) {
	var nilRun *GlyphRun
	if !nilRun.IsEmpty() {
		t.Error("nil run should be empty")
	}
	if !(&GlyphRun{}).IsEmpty() {
		t.Error("run with no glyphs should be empty")
	}

	spaces := &GlyphRun{Glyphs: []GlyphInstance{
		{Pos: Pt(0, 0)},
		{Pos: Pt(4, 0)},
	}}
	if !spaces.IsEmpty() {
		t.Error("run of blank glyphs should be empty")
	}
	if got := spaces.Bounds(); got != (Rect{}) {
		t.Errorf("blank Bounds() = %+v, want zero", got)
	}

	masked := &GlyphRun{Glyphs: []GlyphInstance{{
		Pos:  Pt(5, 5),
		Mask: image.NewAlpha(image.Rect(0, 0, 3, 3)),
		Box:  Rect{W: 3, H: 3},
	}}}
	if masked.IsEmpty() {
		t.Error("masked glyph should not be empty")
	}
}
