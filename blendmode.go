package paint

// BlendMode selects how a layer or draw is composited onto its
// destination. The first group are the Porter-Duff operators; the second
// are separable blend modes per the W3C compositing spec. The math for
// every mode lives in exactly one place, internal/blend.
type BlendMode uint8

const (
	// BlendSourceOver composites source over destination (the default).
	BlendSourceOver BlendMode = iota
	// BlendClear clears the destination to transparent.
	BlendClear
	// BlendSource replaces the destination with the source ("copy").
	BlendSource
	// BlendDestination keeps the destination unchanged.
	BlendDestination
	// BlendDestinationOver composites destination over source.
	BlendDestinationOver
	// BlendSourceIn keeps source where the destination is opaque.
	BlendSourceIn
	// BlendDestinationIn keeps destination where the source is opaque.
	BlendDestinationIn
	// BlendSourceOut keeps source where the destination is transparent.
	BlendSourceOut
	// BlendDestinationOut keeps destination where the source is transparent.
	BlendDestinationOut
	// BlendSourceAtop draws source over destination, keeping destination alpha.
	BlendSourceAtop
	// BlendDestinationAtop draws destination over source, keeping source alpha.
	BlendDestinationAtop
	// BlendXor keeps source and destination where they do not overlap.
	BlendXor
	// BlendPlus adds source and destination, clamped.
	BlendPlus
	// BlendModulate multiplies source and destination.
	BlendModulate

	// BlendMultiply multiplies the colors after unpremultiplying.
	BlendMultiply
	// BlendScreen inverts, multiplies, inverts again.
	BlendScreen
	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay
	// BlendDarken keeps the darker of the two colors.
	BlendDarken
	// BlendLighten keeps the lighter of the two colors.
	BlendLighten
)

// String returns the mode name for diagnostics.
func (m BlendMode) String() string {
	switch m {
	case BlendSourceOver:
		return "source-over"
	case BlendClear:
		return "clear"
	case BlendSource:
		return "source"
	case BlendDestination:
		return "destination"
	case BlendDestinationOver:
		return "destination-over"
	case BlendSourceIn:
		return "source-in"
	case BlendDestinationIn:
		return "destination-in"
	case BlendSourceOut:
		return "source-out"
	case BlendDestinationOut:
		return "destination-out"
	case BlendSourceAtop:
		return "source-atop"
	case BlendDestinationAtop:
		return "destination-atop"
	case BlendXor:
		return "xor"
	case BlendPlus:
		return "plus"
	case BlendModulate:
		return "modulate"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	default:
		return "unknown"
	}
}

// TransparencySignificant reports whether composing with this mode
// produces a result in fully-transparent source regions that differs from
// keeping the destination unchanged. Layers composed with such a mode
// must not skip fully-transparent draws, since the transparent pixels
// themselves carry meaning for the operator.
func (m BlendMode) TransparencySignificant() bool {
	switch m {
	case BlendClear, BlendSource, BlendSourceIn, BlendSourceOut,
		BlendDestinationIn, BlendDestinationAtop:
		return true
	default:
		return false
	}
}
