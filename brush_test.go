package paint

import "testing"

func TestSolidBrush(t *testing.T) {
	b := Solid(RGBA{R: 1, G: 0.5, B: 0, A: 0.8})
	if got := b.ColorAt(17, -3); got != b.Color {
		t.Errorf("ColorAt = %+v, want the solid color", got)
	}
	if got := b.Opacity(); got != 0.8 {
		t.Errorf("Opacity() = %v, want 0.8", got)
	}
}

func TestGradientColorAt(t *testing.T) {
	b := Linear(Pt(0, 0), Pt(10, 0),
		GradientStop{Offset: 0, Color: Black},
		GradientStop{Offset: 1, Color: White},
	)

	tests := []struct {
		name string
		x, y float64
		want RGBA
	}{
		{"start", 0, 0, Black},
		{"end", 10, 0, White},
		{"middle", 5, 0, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"before start clamps", -5, 0, Black},
		{"past end clamps", 20, 0, White},
		{"off-axis projects", 5, 100, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ColorAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ColorAt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGradientOpacityIsPeakStopAlpha(t *testing.T) {
	b := Linear(Pt(0, 0), Pt(1, 0),
		GradientStop{Offset: 0, Color: RGBA{A: 0.2}},
		GradientStop{Offset: 1, Color: RGBA{A: 0.9}},
	)
	if got := b.Opacity(); got != 0.9 {
		t.Errorf("Opacity() = %v, want 0.9", got)
	}
}

func TestGradientNoStops(t *testing.T) {
	b := Linear(Pt(0, 0), Pt(1, 0))
	if got := b.ColorAt(0.5, 0); got != Transparent {
		t.Errorf("ColorAt with no stops = %+v, want transparent", got)
	}
	if got := b.Opacity(); got != 0 {
		t.Errorf("Opacity() = %v, want 0", got)
	}
}

func TestWithOpacity(t *testing.T) {
	s := WithOpacity(Solid(RGBA{R: 1, A: 0.5}), 0.5)
	if got := s.Opacity(); got != 0.25 {
		t.Errorf("solid WithOpacity = %v, want 0.25", got)
	}

	g := WithOpacity(Linear(Pt(0, 0), Pt(1, 0),
		GradientStop{Offset: 0, Color: RGBA{A: 1}},
		GradientStop{Offset: 1, Color: RGBA{A: 0.5}},
	), 0.5)
	if got := g.Opacity(); got != 0.5 {
		t.Errorf("gradient WithOpacity = %v, want 0.5", got)
	}
}

func TestBrushTransparent(t *testing.T) {
	if !brushTransparent(nil) {
		t.Error("nil brush should count as transparent")
	}
	if !brushTransparent(Solid(Transparent)) {
		t.Error("transparent solid should count as transparent")
	}
	if !brushTransparent(Solid(RGBA{R: 1, A: 0.001})) {
		t.Error("alpha below 8-bit resolution should count as transparent")
	}
	if brushTransparent(Solid(RGBA{R: 1, A: 0.01})) {
		t.Error("representable alpha should not count as transparent")
	}
}
