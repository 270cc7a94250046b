package paint

import "testing"

func TestMakeNinePatchGrid(t *testing.T) {
	bm := NewBitmap(30, 30)
	center := Rect{X: 10, Y: 10, W: 10, H: 10}
	dst := Rect{X: 100, Y: 200, W: 90, H: 60}

	info := MakeNinePatch(bm, center, dst)

	wantX := [4]float64{100, 110, 180, 190}
	wantY := [4]float64{200, 210, 250, 260}
	if info.DstX != wantX {
		t.Errorf("DstX = %v, want %v", info.DstX, wantX)
	}
	if info.DstY != wantY {
		t.Errorf("DstY = %v, want %v", info.DstY, wantY)
	}

	// Corners keep their pixel size, the center stretches.
	src, d := info.Region(0, 0)
	if src != (Rect{W: 10, H: 10}) || d != (Rect{X: 100, Y: 200, W: 10, H: 10}) {
		t.Errorf("corner region = %+v -> %+v", src, d)
	}
	src, d = info.Region(1, 1)
	if src != center || d != (Rect{X: 110, Y: 210, W: 70, H: 40}) {
		t.Errorf("center region = %+v -> %+v", src, d)
	}
	if got := info.DstBounds(); got != dst {
		t.Errorf("DstBounds() = %+v, want %+v", got, dst)
	}
}

func TestMakeNinePatchTooSmallCollapses(t *testing.T) {
	// 30px bitmap with 10px borders into a 12px destination: the inner
	// vertical lines would land at 110 and 102, crossed.
	bm := NewBitmap(30, 30)
	center := Rect{X: 10, Y: 10, W: 10, H: 10}
	dst := Rect{X: 100, Y: 100, W: 12, H: 60}

	info := MakeNinePatch(bm, center, dst)

	if info.DstX[1] != info.DstX[2] {
		t.Errorf("crossed boundaries not collapsed: %v", info.DstX)
	}
	if got, want := info.DstX[1], 106.0; got != want {
		t.Errorf("collapse point = %v, want midpoint %v", got, want)
	}
	for i := 0; i < 3; i++ {
		if info.DstX[i] > info.DstX[i+1] {
			t.Fatalf("DstX not monotonic: %v", info.DstX)
		}
	}
	// The uncrossed axis is untouched.
	if want := [4]float64{100, 110, 150, 160}; info.DstY != want {
		t.Errorf("DstY = %v, want %v", info.DstY, want)
	}
	// The collapsed center region is empty and drawable code may skip it.
	if _, d := info.Region(1, 1); !d.IsEmpty() {
		t.Errorf("collapsed center region = %+v, want empty", d)
	}
}

func TestMakeNinePatchZeroBorders(t *testing.T) {
	// Center covering the whole bitmap degenerates to a plain stretch.
	bm := NewBitmap(20, 20)
	dst := Rect{X: 0, Y: 0, W: 80, H: 40}

	info := MakeNinePatch(bm, bm.Rect(), dst)

	src, d := info.Region(1, 1)
	if src != bm.Rect() || d != dst {
		t.Errorf("full-center region = %+v -> %+v, want whole bitmap -> whole dst", src, d)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == 1 && j == 1 {
				continue
			}
			if _, d := info.Region(i, j); !d.IsEmpty() {
				t.Errorf("border region (%d,%d) = %+v, want empty", i, j, d)
			}
		}
	}
}
