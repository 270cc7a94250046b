package blend

// Separable blend modes per W3C Compositing and Blending Level 1:
// each color channel blends independently on unpremultiplied values,
// then the result is recombined with the Porter-Duff source-over
// alpha coverage:
//
//	out = S*(1-Da) + D*(1-Sa) + Sa*Da*B(Sc, Dc)

// separable applies the per-channel blend function B to unpremultiplied
// channels and recombines with standard coverage.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, b func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	sur := unmul(sr, sa)
	sug := unmul(sg, sa)
	sub := unmul(sb, sa)
	dur := unmul(dr, da)
	dug := unmul(dg, da)
	dub := unmul(db, da)

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	outR := addClamp(addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)), mulDiv255(saDa, b(sur, dur)))
	outG := addClamp(addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)), mulDiv255(saDa, b(sug, dug)))
	outB := addClamp(addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)), mulDiv255(saDa, b(sub, dub)))
	outA := addClamp(sa, mulDiv255(da, invSa))
	return outR, outG, outB, outA
}

// multiply: B(Cs, Cd) = Cs*Cd.
func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// screen: B(Cs, Cd) = 1 - (1-Cs)*(1-Cd).
func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return 255 - mulDiv255(255-s, 255-d)
	})
}

// overlay: multiply where the destination is dark, screen where it is
// light (hard-light with the operands swapped).
func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if int(d)*2 <= 255 {
			return mulDiv255(s, byte(int(d)*2))
		}
		t := byte(int(d)*2 - 255)
		return 255 - mulDiv255(255-s, 255-t)
	})
}

// darken: B(Cs, Cd) = min(Cs, Cd).
func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return min(s, d)
	})
}

// lighten: B(Cs, Cd) = max(Cs, Cd).
func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return max(s, d)
	})
}
