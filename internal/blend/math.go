package blend

// Fast byte math for alpha blending. mulDiv255 runs for every pixel of
// every composite, so integer division is avoided.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/

// div255 divides by 255 using the shift approximation (x+255)>>8.
// Maximum error is +1, imperceptible in blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// div255Exact is Alvy Ray Smith's exact formula, used where tests need
// bit-exact results.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 approximately.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// MulDiv255 is the exported form for backends scaling coverage values.
func MulDiv255(a, b byte) byte {
	return mulDiv255(a, b)
}

// addClamp adds two bytes, clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unmul undoes premultiplication for one channel. a must be nonzero.
func unmul(c, a byte) byte {
	v := (uint16(c) * 255) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}
