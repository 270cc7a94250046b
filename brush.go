package paint

// Brush describes what to paint with. This is a sealed interface; only
// types in this package implement it. Brushes are value descriptors owned
// by the caller: the Painter reads them during a draw call and never
// retains them.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the brush color at the given device coordinates.
	ColorAt(x, y float64) RGBA

	// Opacity returns the peak alpha the brush can produce, used for
	// the fully-transparent fast path and the hairline fade.
	Opacity() float64
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Opacity implements Brush.
func (b SolidBrush) Opacity() float64 {
	return b.Color.A
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// GradientStop is a single color stop of a gradient, with Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// GradientBrush is a two-point linear gradient with ordered color stops.
type GradientBrush struct {
	Start Point
	End   Point
	Stops []GradientStop
}

func (GradientBrush) brushMarker() {}

// Linear creates a GradientBrush between two points.
func Linear(start, end Point, stops ...GradientStop) GradientBrush {
	return GradientBrush{Start: start, End: end, Stops: stops}
}

// ColorAt implements Brush by projecting the point onto the gradient axis
// and interpolating between the surrounding stops. Offsets outside the
// stop range clamp to the nearest stop.
func (b GradientBrush) ColorAt(x, y float64) RGBA {
	if len(b.Stops) == 0 {
		return Transparent
	}
	axis := b.End.Sub(b.Start)
	len2 := axis.Dot(axis)
	t := 0.0
	if len2 > 0 {
		t = Pt(x, y).Sub(b.Start).Dot(axis) / len2
	}
	if t <= b.Stops[0].Offset {
		return b.Stops[0].Color
	}
	last := b.Stops[len(b.Stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(b.Stops); i++ {
		s0, s1 := b.Stops[i-1], b.Stops[i]
		if t <= s1.Offset {
			span := s1.Offset - s0.Offset
			if span <= 0 {
				return s1.Color
			}
			return s0.Color.Lerp(s1.Color, (t-s0.Offset)/span)
		}
	}
	return last.Color
}

// Opacity implements Brush: the maximum stop alpha.
func (b GradientBrush) Opacity() float64 {
	peak := 0.0
	for _, s := range b.Stops {
		if s.Color.A > peak {
			peak = s.Color.A
		}
	}
	return peak
}

// WithOpacity returns the brush with every color's alpha multiplied by f.
// The painter uses this for the hairline fade and zero-opacity
// substitution; the original brush is not modified.
func WithOpacity(b Brush, f float64) Brush {
	switch br := b.(type) {
	case SolidBrush:
		return SolidBrush{Color: br.Color.WithAlpha(f)}
	case GradientBrush:
		stops := make([]GradientStop, len(br.Stops))
		for i, s := range br.Stops {
			stops[i] = GradientStop{Offset: s.Offset, Color: s.Color.WithAlpha(f)}
		}
		return GradientBrush{Start: br.Start, End: br.End, Stops: stops}
	default:
		return b
	}
}

// brushTransparent reports whether the brush rounds to fully transparent
// at 8-bit precision.
func brushTransparent(b Brush) bool {
	return b == nil || b.Opacity()*255 < 0.5
}

// Pen describes stroke parameters. Width is in local units when
// ShouldScale is set, otherwise in device pixels.
type Pen struct {
	Width       float64
	ShouldScale bool
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)
