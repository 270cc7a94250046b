// Package raster provides scanline rasterization of flattened contours
// into 8-bit coverage masks, with 4x supersampled anti-aliasing, and
// stroke expansion of polylines into fill outlines.
package raster

import "github.com/gogpu/paint"

// Mask is an 8-bit coverage buffer over an integer device-space
// rectangle. 0 means no coverage, 255 full coverage.
type Mask struct {
	Rect paint.RectI
	Pix  []byte // Rect.W * Rect.H, row-major
}

// NewMask allocates a zeroed mask covering r.
func NewMask(r paint.RectI) *Mask {
	if r.IsEmpty() {
		return &Mask{Rect: paint.RectI{}}
	}
	return &Mask{Rect: r, Pix: make([]byte, r.W*r.H)}
}

// At returns the coverage at device pixel (x, y); 0 outside the mask.
func (m *Mask) At(x, y int) byte {
	x -= m.Rect.X
	y -= m.Rect.Y
	if x < 0 || y < 0 || x >= m.Rect.W || y >= m.Rect.H {
		return 0
	}
	return m.Pix[y*m.Rect.W+x]
}

// Fill sets every pixel to v.
func (m *Mask) Fill(v byte) {
	for i := range m.Pix {
		m.Pix[i] = v
	}
}

// add accumulates coverage at mask-local (x, y), saturating at 255.
func (m *Mask) add(x, y int, v byte) {
	i := y*m.Rect.W + x
	sum := uint16(m.Pix[i]) + uint16(v)
	if sum > 255 {
		sum = 255
	}
	m.Pix[i] = byte(sum)
}
