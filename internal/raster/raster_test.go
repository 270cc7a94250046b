package raster

import (
	"testing"

	"github.com/gogpu/paint"
)

func quad(r paint.Rect) paint.Contour {
	c := r.Corners()
	return paint.Contour{Points: []paint.Point{c[0], c[1], c[2], c[3]}, Closed: true}
}

func TestFillMaskAlignedSquare(t *testing.T) {
	mask := NewMask(paint.RectI{W: 10, H: 10})
	New().FillMask(mask, []paint.Contour{quad(paint.Rect{X: 2, Y: 2, W: 6, H: 6})}, paint.FillRuleNonZero, true)

	// Integer-aligned edges: interior pixels saturate to full coverage.
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			if got := mask.At(x, y); got != 255 {
				t.Fatalf("interior (%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
	for _, p := range [][2]int{{1, 5}, {8, 5}, {5, 1}, {5, 8}, {0, 0}} {
		if got := mask.At(p[0], p[1]); got != 0 {
			t.Errorf("exterior (%d,%d) = %d, want 0", p[0], p[1], got)
		}
	}
}

func TestFillMaskHalfPixelEdges(t *testing.T) {
	mask := NewMask(paint.RectI{W: 12, H: 12})
	New().FillMask(mask, []paint.Contour{quad(paint.Rect{X: 2, Y: 2, W: 6.5, H: 6.5})}, paint.FillRuleNonZero, true)

	if got := mask.At(5, 5); got != 255 {
		t.Errorf("interior = %d, want 255", got)
	}
	// The right column covers half of pixel 8 horizontally.
	if got := mask.At(8, 5); got != 128 {
		t.Errorf("right half-covered pixel = %d, want 128", got)
	}
	// The bottom row covers half of pixel 8 vertically: 2 of 4 samples.
	if got := mask.At(5, 8); got != 128 {
		t.Errorf("bottom half-covered pixel = %d, want 128", got)
	}
	if got := mask.At(9, 5); got != 0 {
		t.Errorf("past the edge = %d, want 0", got)
	}
}

func TestFillMaskEvenOddHole(t *testing.T) {
	outer := quad(paint.Rect{X: 2, Y: 2, W: 10, H: 10})
	inner := quad(paint.Rect{X: 5, Y: 5, W: 4, H: 4})

	mask := NewMask(paint.RectI{W: 14, H: 14})
	New().FillMask(mask, []paint.Contour{outer, inner}, paint.FillRuleEvenOdd, true)

	if got := mask.At(3, 6); got != 255 {
		t.Errorf("ring = %d, want 255", got)
	}
	if got := mask.At(6, 6); got != 0 {
		t.Errorf("hole = %d, want 0", got)
	}

	// Same contours under non-zero: both wind the same way, no hole.
	mask = NewMask(paint.RectI{W: 14, H: 14})
	New().FillMask(mask, []paint.Contour{outer, inner}, paint.FillRuleNonZero, true)
	if got := mask.At(6, 6); got != 255 {
		t.Errorf("non-zero interior = %d, want 255", got)
	}
}

func TestFillMaskNoAntialias(t *testing.T) {
	mask := NewMask(paint.RectI{W: 8, H: 8})
	New().FillMask(mask, []paint.Contour{quad(paint.Rect{X: 2.6, Y: 2.6, W: 2.8, H: 2.8})}, paint.FillRuleNonZero, false)

	// Pixel-center inclusion, no fractional coverage anywhere.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := byte(0)
			if x >= 3 && x <= 4 && y >= 3 && y <= 4 {
				want = 255
			}
			if got := mask.At(x, y); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFillMaskOpenContourImplicitlyClosed(t *testing.T) {
	tri := paint.Contour{Points: []paint.Point{
		paint.Pt(2, 2), paint.Pt(10, 2), paint.Pt(2, 10),
	}}
	mask := NewMask(paint.RectI{W: 12, H: 12})
	New().FillMask(mask, []paint.Contour{tri}, paint.FillRuleNonZero, true)

	if got := mask.At(3, 3); got != 255 {
		t.Errorf("triangle interior = %d, want 255", got)
	}
	if got := mask.At(9, 9); got != 0 {
		t.Errorf("outside hypotenuse = %d, want 0", got)
	}
}

func TestFillMaskClampsToMask(t *testing.T) {
	mask := NewMask(paint.RectI{X: 4, Y: 4, W: 4, H: 4})
	New().FillMask(mask, []paint.Contour{quad(paint.Rect{X: 0, Y: 0, W: 100, H: 100})}, paint.FillRuleNonZero, true)

	for y := 4; y < 8; y++ {
		for x := 4; x < 8; x++ {
			if got := mask.At(x, y); got != 255 {
				t.Fatalf("(%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestMaskAtOutside(t *testing.T) {
	mask := NewMask(paint.RectI{X: 2, Y: 2, W: 4, H: 4})
	mask.Fill(200)
	if got := mask.At(3, 3); got != 200 {
		t.Errorf("inside = %d, want 200", got)
	}
	for _, p := range [][2]int{{1, 3}, {6, 3}, {3, 1}, {3, 6}, {-5, -5}} {
		if got := mask.At(p[0], p[1]); got != 0 {
			t.Errorf("outside (%d,%d) = %d, want 0", p[0], p[1], got)
		}
	}
}

func TestExpandStrokeSegmentQuad(t *testing.T) {
	seg := paint.Contour{Points: []paint.Point{paint.Pt(2, 5), paint.Pt(8, 5)}}
	outlines := ExpandStroke(nil, seg, 2)
	if len(outlines) != 1 {
		t.Fatalf("outlines = %d, want 1 quad", len(outlines))
	}

	mask := NewMask(paint.RectI{W: 10, H: 10})
	New().FillMask(mask, outlines, paint.FillRuleNonZero, true)

	// The stroke band spans y in [4, 6].
	if got := mask.At(5, 4); got != 255 {
		t.Errorf("band top = %d, want 255", got)
	}
	if got := mask.At(5, 5); got != 255 {
		t.Errorf("band center = %d, want 255", got)
	}
	if got := mask.At(5, 2); got != 0 {
		t.Errorf("above band = %d, want 0", got)
	}
	if got := mask.At(5, 7); got != 0 {
		t.Errorf("below band = %d, want 0", got)
	}
}

func TestExpandStrokeJointDoesNotCancel(t *testing.T) {
	// Right-angle polyline: the two segment quads overlap at the corner.
	// A single non-zero pass must keep the overlap filled.
	elbow := paint.Contour{Points: []paint.Point{
		paint.Pt(2, 2), paint.Pt(8, 2), paint.Pt(8, 8),
	}}
	outlines := ExpandStroke(nil, elbow, 2)
	if len(outlines) != 3 {
		t.Fatalf("outlines = %d, want 2 quads + 1 bevel", len(outlines))
	}

	mask := NewMask(paint.RectI{W: 12, H: 12})
	New().FillMask(mask, outlines, paint.FillRuleNonZero, true)

	for _, p := range [][2]int{{4, 2}, {8, 2}, {8, 5}} {
		if got := mask.At(p[0], p[1]); got != 255 {
			t.Errorf("stroke at (%d,%d) = %d, want 255", p[0], p[1], got)
		}
	}
	if got := mask.At(4, 6); got != 0 {
		t.Errorf("off the stroke = %d, want 0", got)
	}
}

func TestExpandStrokeClosedContour(t *testing.T) {
	square := quad(paint.Rect{X: 3, Y: 3, W: 6, H: 6})
	outlines := ExpandStroke(nil, square, 2)
	// 4 segment quads and 4 corner bevels.
	if len(outlines) != 8 {
		t.Fatalf("outlines = %d, want 8", len(outlines))
	}

	mask := NewMask(paint.RectI{W: 12, H: 12})
	New().FillMask(mask, outlines, paint.FillRuleNonZero, true)

	if got := mask.At(6, 3); got != 255 {
		t.Errorf("on the edge = %d, want 255", got)
	}
	if got := mask.At(6, 6); got != 0 {
		t.Errorf("hollow center = %d, want 0", got)
	}
}

func TestExpandStrokeDegenerate(t *testing.T) {
	if got := ExpandStroke(nil, paint.Contour{Points: []paint.Point{paint.Pt(1, 1)}}, 2); len(got) != 0 {
		t.Errorf("single point expanded to %d outlines", len(got))
	}
	dup := paint.Contour{Points: []paint.Point{paint.Pt(1, 1), paint.Pt(1, 1)}}
	if got := ExpandStroke(nil, dup, 2); len(got) != 0 {
		t.Errorf("duplicate-point contour expanded to %d outlines", len(got))
	}
	seg := paint.Contour{Points: []paint.Point{paint.Pt(1, 1), paint.Pt(5, 1)}}
	if got := ExpandStroke(nil, seg, 0); len(got) != 0 {
		t.Errorf("zero width expanded to %d outlines", len(got))
	}
}
