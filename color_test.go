package paint

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#FF0000", Red},
		{"00FF00", Green},
		{"#F00", Red},
		{"#F00F", Red},
		{"#FF000080", RGBA{R: 1, A: 128.0 / 255}},
		{"bogus", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	in := RGBA{R: 1, G: 0, B: 0, A: 0.5}
	got := FromColor(in.Color())
	if got.A < 0.49 || got.A > 0.51 || got.R < 0.99 {
		t.Errorf("round trip = %+v", got)
	}

	if got := FromColor(color.NRGBA{}); got != (RGBA{}) {
		t.Errorf("FromColor(transparent) = %+v, want zero", got)
	}
}

func TestPremultiply(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.Premultiply()
	want := RGBA{R: 0.5, G: 0.25, B: 0, A: 0.5}
	if got != want {
		t.Errorf("Premultiply() = %+v, want %+v", got, want)
	}
}

func TestIsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent should be transparent")
	}
	if !(RGBA{R: 1, A: 0.001}).IsTransparent() {
		t.Error("alpha below 8-bit resolution should be transparent")
	}
	if (RGBA{A: 0.5}).IsTransparent() {
		t.Error("half alpha should not be transparent")
	}
}

func TestLerpColors(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	want := RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}
	if got != want {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
}
