// Package blend implements Porter-Duff compositing operators and
// separable blend modes on premultiplied-alpha bytes. It is the one
// place where per-mode behavior differs; everything else dispatches
// through Func.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/paint"

// Func composites one premultiplied source pixel onto one premultiplied
// destination pixel. All channels are 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// ForMode returns the compositing function for the given mode. Unknown
// modes fall back to source-over.
func ForMode(mode paint.BlendMode) Func {
	switch mode {
	case paint.BlendClear:
		return clear
	case paint.BlendSource:
		return source
	case paint.BlendDestination:
		return destination
	case paint.BlendSourceOver:
		return SourceOver
	case paint.BlendDestinationOver:
		return destinationOver
	case paint.BlendSourceIn:
		return sourceIn
	case paint.BlendDestinationIn:
		return destinationIn
	case paint.BlendSourceOut:
		return sourceOut
	case paint.BlendDestinationOut:
		return destinationOut
	case paint.BlendSourceAtop:
		return sourceAtop
	case paint.BlendDestinationAtop:
		return destinationAtop
	case paint.BlendXor:
		return xor
	case paint.BlendPlus:
		return plus
	case paint.BlendModulate:
		return modulate
	case paint.BlendMultiply:
		return multiply
	case paint.BlendScreen:
		return screen
	case paint.BlendOverlay:
		return overlay
	case paint.BlendDarken:
		return darken
	case paint.BlendLighten:
		return lighten
	default:
		return SourceOver
	}
}

// Porter-Duff implementations (premultiplied alpha).

func clear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func destination(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// SourceOver is the default operator: S + D*(1-Sa). Exported because
// backends call it directly on the hot path without a mode lookup.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// destinationOver: S*(1-Da) + D.
func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// sourceIn: S*Da.
func sourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// destinationIn: D*Sa.
func destinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// sourceOut: S*(1-Da).
func sourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// destinationOut: D*(1-Sa).
func destinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// sourceAtop: S*Da + D*(1-Sa); destination alpha is preserved.
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// destinationAtop: S*(1-Da) + D*Sa; source alpha is preserved.
func destinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

// xor: S*(1-Da) + D*(1-Sa).
func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// plus: S + D, clamped.
func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// modulate: S*D.
func modulate(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, dr), mulDiv255(sg, dg), mulDiv255(sb, db), mulDiv255(sa, da)
}
