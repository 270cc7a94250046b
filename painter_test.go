package paint_test

import (
	"math"
	"testing"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/backend/record"
)

func newFrame(t *testing.T, logicalW, logicalH float64, physW, physH int) (*paint.Painter, *record.Engine) {
	t.Helper()
	p := paint.NewPainter()
	eng := record.New()
	target := paint.NewPixmapTarget(physW, physH)
	if err := p.BeginFrame(eng, target, logicalW, logicalH, paint.White); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	return p, eng
}

func rectsClose(a, b paint.Rect, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	p, eng := newFrame(t, 100, 100, 100, 100)

	p.Translate(3, 4)
	p.SetAntialias(false)
	before := *eng.Config().State

	depth := p.Save()
	if depth != 0 {
		t.Fatalf("Save() = %d, want 0", depth)
	}
	p.Rotate(math.Pi / 3)
	p.Scale(2, 5)
	p.ClipRect(paint.Rect{X: 1, Y: 1, W: 10, H: 10})
	p.SetAntialias(true)
	inner := p.Save()
	if inner != 1 {
		t.Fatalf("inner Save() = %d, want 1", inner)
	}
	p.BeginLayer(0.5, paint.BlendSourceOver)
	p.FillRect(paint.Rect{W: 5, H: 5}, paint.Solid(paint.Red))

	p.Restore(depth)
	after := *eng.Config().State
	if after.Matrix != before.Matrix {
		t.Errorf("matrix not restored: got %+v, want %+v", after.Matrix, before.Matrix)
	}
	if after.ClipRect != before.ClipRect {
		t.Errorf("clip not restored: got %+v, want %+v", after.ClipRect, before.ClipRect)
	}
	if after.Antialias != before.Antialias {
		t.Errorf("antialias not restored: got %v, want %v", after.Antialias, before.Antialias)
	}
}

func TestClipRectLocalBoundsRoundTrip(t *testing.T) {
	p, _ := newFrame(t, 100, 100, 100, 100)

	p.Translate(10, 5)
	r := paint.Rect{X: 10, Y: 10, W: 20, H: 20}
	p.ClipRect(r)

	got := p.LocalClipBounds()
	want := r.Expanded(1)
	if !rectsClose(got, want, 1e-9) {
		t.Errorf("LocalClipBounds() = %+v, want %+v", got, want)
	}
}

func TestEmptyClipDiscards(t *testing.T) {
	p, eng := newFrame(t, 100, 100, 100, 100)

	p.ClipRect(paint.Rect{X: 200, Y: 200, W: 10, H: 10})
	p.FillRect(paint.Rect{W: 100, H: 100}, paint.Solid(paint.Red))
	p.PaintOut(paint.Solid(paint.Blue))
	p.DrawLine(0, 0, 50, 50, paint.Black)

	if got := eng.DrawCalls(); len(got) != 0 {
		t.Errorf("discarded state issued %d draw calls", len(got))
	}
	if !p.QuickReject(paint.Rect{W: 100, H: 100}) {
		t.Error("QuickReject should be true in a discarded state")
	}
}

func TestDisjointClipsDiscard(t *testing.T) {
	p, eng := newFrame(t, 100, 100, 100, 100)

	path := paint.NewPath()
	path.Rectangle(paint.Rect{X: 10, Y: 10, W: 20, H: 20})
	p.ClipPath(path, paint.FillRuleNonZero)
	p.ClipRect(paint.Rect{X: 60, Y: 60, W: 20, H: 20})

	p.FillRect(paint.Rect{W: 100, H: 100}, paint.Solid(paint.Red))
	if got := eng.DrawCalls(); len(got) != 0 {
		t.Errorf("disjoint clips should discard, got %d draw calls", len(got))
	}
}

func TestQuickRejectNoFalsePositives(t *testing.T) {
	matrices := []paint.Matrix{
		paint.Identity(),
		paint.Translate(30, -20),
		paint.Scale(2, 0.5),
		paint.Rotate(math.Pi / 6),
		paint.Translate(50, 50).Multiply(paint.Rotate(1.1)).Multiply(paint.Scale(3, 3)),
		paint.Skew(0.4, 0),
	}
	boxes := []paint.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: -40, Y: -40, W: 200, H: 200},
		{X: 90, Y: 90, W: 5, H: 5},
		{X: -10, Y: 40, W: 15, H: 2},
		{X: 300, Y: 300, W: 10, H: 10},
	}
	clip := paint.Rect{W: 100, H: 100}

	for _, m := range matrices {
		p, _ := newFrame(t, 100, 100, 100, 100)
		p.Transform(m)
		dev := p.Matrix()
		for _, box := range boxes {
			visible := dev.TransformRect(box).Intersects(clip)
			if visible && p.QuickReject(box) {
				t.Errorf("QuickReject rejected visible box %+v under %+v", box, m)
			}
		}
	}
}

func TestSetMatrixKeepsDeviceScale(t *testing.T) {
	p, _ := newFrame(t, 100, 100, 200, 200)

	base := paint.Scale(2, 2)
	if got := p.Matrix(); got != base {
		t.Fatalf("initial matrix = %+v, want %+v", got, base)
	}
	p.Translate(7, 9)
	p.Rotate(0.3)
	p.ResetMatrix()
	if got := p.Matrix(); got != base {
		t.Errorf("ResetMatrix() = %+v, want base %+v", got, base)
	}

	m := paint.Translate(5, 0)
	p.SetMatrix(m)
	if got, want := p.Matrix(), base.Multiply(m); got != want {
		t.Errorf("SetMatrix = %+v, want %+v", got, want)
	}
}

func TestRestoreDepthOutOfRangePanics(t *testing.T) {
	p, _ := newFrame(t, 100, 100, 100, 100)
	defer func() {
		if recover() == nil {
			t.Error("Restore(5) with empty stack should panic")
		}
	}()
	p.Restore(5)
}

func TestDrawOutsideFramePanics(t *testing.T) {
	p := paint.NewPainter()
	defer func() {
		if recover() == nil {
			t.Error("drawing without an active frame should panic")
		}
	}()
	p.FillRect(paint.Rect{W: 10, H: 10}, paint.Solid(paint.Red))
}

func TestGuardDoubleUsePanics(t *testing.T) {
	p, _ := newFrame(t, 100, 100, 100, 100)

	g := p.Saved()
	g.End()
	defer func() {
		if recover() == nil {
			t.Error("second End() on a guard should panic")
		}
	}()
	g.End()
}

func TestLayerComposeAndClipUnwindOrder(t *testing.T) {
	p, eng := newFrame(t, 100, 100, 100, 100)

	d0 := p.Save()
	path := paint.NewPath()
	path.Rectangle(paint.Rect{X: 10, Y: 10, W: 50, H: 50})
	p.ClipPath(path, paint.FillRuleNonZero)

	d1 := p.BeginLayer(0.5, paint.BlendSourceOver)
	p.FillRect(paint.Rect{X: 12, Y: 12, W: 10, H: 10}, paint.Solid(paint.Red))
	p.Restore(d1)
	p.Restore(d0)

	var kinds []record.Kind
	for _, op := range eng.Ops {
		kinds = append(kinds, op.Kind)
	}
	want := []record.Kind{
		record.KindBegin,
		record.KindClipOut,
		record.KindBeginLayer,
		record.KindFillPath,
		record.KindComposeLayer,
		record.KindRestoreClip,
		record.KindRestoreClip,
	}
	if len(kinds) != len(want) {
		t.Fatalf("op sequence %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("op[%d] = %v, want %v (full: %v)", i, kinds[i], want[i], kinds)
		}
	}

	clips := eng.Calls(record.KindClipOut)
	if clips[0].Depth != 1 {
		t.Errorf("clip recorded at depth %d, want 1", clips[0].Depth)
	}
	restores := eng.Calls(record.KindRestoreClip)
	if restores[0].Depth != 1 || restores[1].Depth != 0 {
		t.Errorf("restore depths = %d, %d, want 1, 0", restores[0].Depth, restores[1].Depth)
	}
}

func TestRotatedClipIssuesComplementQuad(t *testing.T) {
	p, eng := newFrame(t, 100, 100, 100, 100)

	p.Rotate(math.Pi / 4)
	p.ClipRect(paint.Rect{X: 10, Y: 10, W: 20, H: 20})

	clips := eng.Calls(record.KindClipOut)
	if len(clips) != 1 {
		t.Fatalf("rotated ClipRect issued %d ClipOut calls, want 1", len(clips))
	}
	op := clips[0]
	if !op.Complement {
		t.Error("rotated clip should keep the inside (complement=true)")
	}
	if len(op.Contours) != 1 || len(op.Contours[0].Points) != 4 {
		t.Errorf("rotated clip contour = %+v, want one quad", op.Contours)
	}
}

func TestAxisAlignedClipSkipsBackend(t *testing.T) {
	p, eng := newFrame(t, 100, 100, 100, 100)

	p.Translate(5, 5)
	p.Scale(2, 3)
	p.ClipRect(paint.Rect{X: 1, Y: 1, W: 10, H: 10})

	if clips := eng.Calls(record.KindClipOut); len(clips) != 0 {
		t.Errorf("axis-aligned clip issued %d ClipOut calls, want 0", len(clips))
	}
}

func TestRepaint(t *testing.T) {
	p := paint.NewPainter()
	eng := record.New()
	target := paint.NewPixmapTarget(50, 50)

	if err := p.BeginFrame(eng, target, 50, 50, paint.White); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	if err := p.EndFrame(); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}
	if err := p.Repaint(); err != nil {
		t.Fatalf("Repaint: %v", err)
	}
	if got := len(eng.Calls(record.KindPaint)); got != 2 {
		t.Errorf("paint calls = %d, want 2 (EndFrame + Repaint)", got)
	}
}

func TestRepaintBeforeAnyFrame(t *testing.T) {
	p := paint.NewPainter()
	if err := p.Repaint(); err != paint.ErrNoFrame {
		t.Errorf("Repaint() = %v, want ErrNoFrame", err)
	}
}
