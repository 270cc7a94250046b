package blend

import (
	"testing"

	"github.com/gogpu/paint"
)

type pixel struct{ r, g, b, a byte }

func apply(f Func, s, d pixel) pixel {
	r, g, b, a := f(s.r, s.g, s.b, s.a, d.r, d.g, d.b, d.a)
	return pixel{r, g, b, a}
}

func TestPorterDuffOperators(t *testing.T) {
	// Half-transparent premultiplied red over opaque blue.
	src := pixel{128, 0, 0, 128}
	dst := pixel{0, 0, 255, 255}

	tests := []struct {
		mode paint.BlendMode
		want pixel
	}{
		{paint.BlendClear, pixel{0, 0, 0, 0}},
		{paint.BlendSource, src},
		{paint.BlendDestination, dst},
		{paint.BlendSourceOver, pixel{128, 0, 127, 255}},
		{paint.BlendDestinationOver, dst},
		{paint.BlendSourceIn, src},
		{paint.BlendDestinationIn, pixel{0, 0, 128, 128}},
		{paint.BlendSourceOut, pixel{0, 0, 0, 0}},
		{paint.BlendDestinationOut, pixel{0, 0, 127, 127}},
		{paint.BlendSourceAtop, pixel{128, 0, 127, 255}},
		{paint.BlendDestinationAtop, pixel{0, 0, 128, 128}},
		{paint.BlendXor, pixel{0, 0, 127, 127}},
		{paint.BlendModulate, pixel{0, 0, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := apply(ForMode(tt.mode), src, dst); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSourceOverOpaqueReplaces(t *testing.T) {
	src := pixel{10, 200, 30, 255}
	dst := pixel{255, 255, 255, 255}
	if got := apply(SourceOver, src, dst); got != src {
		t.Errorf("opaque source-over = %+v, want %+v", got, src)
	}
}

func TestXorOfOpaquePixelsCancels(t *testing.T) {
	src := pixel{255, 0, 0, 255}
	dst := pixel{0, 0, 255, 255}
	if got := apply(ForMode(paint.BlendXor), src, dst); got != (pixel{0, 0, 0, 0}) {
		t.Errorf("opaque xor = %+v, want transparent", got)
	}
}

func TestPlusClamps(t *testing.T) {
	src := pixel{200, 10, 0, 200}
	dst := pixel{100, 10, 0, 100}
	got := apply(ForMode(paint.BlendPlus), src, dst)
	if got != (pixel{255, 20, 0, 255}) {
		t.Errorf("plus = %+v, want clamped sum", got)
	}
}

func TestMultiplyOverWhiteIsIdentity(t *testing.T) {
	src := pixel{40, 90, 200, 255}
	white := pixel{255, 255, 255, 255}
	if got := apply(ForMode(paint.BlendMultiply), src, white); got != src {
		t.Errorf("multiply over white = %+v, want %+v", got, src)
	}
}

func TestScreenOverBlackIsIdentity(t *testing.T) {
	src := pixel{40, 90, 200, 255}
	black := pixel{0, 0, 0, 255}
	if got := apply(ForMode(paint.BlendScreen), src, black); got != src {
		t.Errorf("screen over black = %+v, want %+v", got, src)
	}
}

func TestOverlayExtremes(t *testing.T) {
	src := pixel{40, 90, 200, 255}
	white := pixel{255, 255, 255, 255}
	black := pixel{0, 0, 0, 255}
	if got := apply(ForMode(paint.BlendOverlay), src, white); got != white {
		t.Errorf("overlay over white = %+v, want white", got)
	}
	if got := apply(ForMode(paint.BlendOverlay), src, black); got != black {
		t.Errorf("overlay over black = %+v, want black", got)
	}
}

func TestDarkenLightenPickPerChannel(t *testing.T) {
	src := pixel{40, 200, 100, 255}
	dst := pixel{90, 90, 90, 255}
	if got := apply(ForMode(paint.BlendDarken), src, dst); got != (pixel{40, 90, 90, 255}) {
		t.Errorf("darken = %+v", got)
	}
	if got := apply(ForMode(paint.BlendLighten), src, dst); got != (pixel{90, 200, 100, 255}) {
		t.Errorf("lighten = %+v", got)
	}
}

func TestSeparableDegenerateAlphas(t *testing.T) {
	dst := pixel{10, 20, 30, 200}
	if got := apply(ForMode(paint.BlendMultiply), pixel{}, dst); got != dst {
		t.Errorf("zero source alpha = %+v, want destination %+v", got, dst)
	}
	src := pixel{10, 20, 30, 200}
	if got := apply(ForMode(paint.BlendMultiply), src, pixel{}); got != src {
		t.Errorf("zero destination alpha = %+v, want source %+v", got, src)
	}
}

func TestUnknownModeFallsBackToSourceOver(t *testing.T) {
	src := pixel{0, 128, 0, 128}
	dst := pixel{255, 0, 0, 255}
	want := apply(SourceOver, src, dst)
	if got := apply(ForMode(paint.BlendMode(99)), src, dst); got != want {
		t.Errorf("unknown mode = %+v, want source-over %+v", got, want)
	}
}

func TestDiv255ExactMatchesDivision(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		if got, want := div255Exact(uint16(x)), uint16(x/255); got != want {
			t.Fatalf("div255Exact(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestDiv255ApproximationError(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		exact := uint16(x / 255)
		got := div255(uint16(x))
		if got != exact && got != exact+1 {
			t.Fatalf("div255(%d) = %d, exact %d: error beyond +1", x, got, exact)
		}
	}
}

func TestMulDiv255Identities(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if got := MulDiv255(byte(v), 255); got != byte(v) {
			t.Errorf("MulDiv255(%d, 255) = %d", v, got)
		}
		if got := MulDiv255(byte(v), 0); got != 0 {
			t.Errorf("MulDiv255(%d, 0) = %d", v, got)
		}
	}
}

func TestAddClamp(t *testing.T) {
	if got := addClamp(100, 100); got != 200 {
		t.Errorf("addClamp(100, 100) = %d", got)
	}
	if got := addClamp(200, 100); got != 255 {
		t.Errorf("addClamp(200, 100) = %d", got)
	}
}
