package paint

import (
	"image"

	"github.com/gogpu/gputypes"
)

// RenderTarget defines where composed frame output goes.
//
// Targets may be CPU-backed (Pixels returns the buffer) or GPU-backed
// (Pixels returns nil and the host presents through its own texture
// machinery). Formats follow WebGPU conventions via gputypes.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, or nil for GPU-only
	// targets. For RGBA formats each pixel is 4 bytes.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed render target over a premultiplied
// *image.RGBA buffer.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width implements RenderTarget.
func (t *PixmapTarget) Width() int { return t.img.Rect.Dx() }

// Height implements RenderTarget.
func (t *PixmapTarget) Height() int { return t.img.Rect.Dy() }

// Format implements RenderTarget.
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels implements RenderTarget.
func (t *PixmapTarget) Pixels() []byte { return t.img.Pix }

// Stride implements RenderTarget.
func (t *PixmapTarget) Stride() int { return t.img.Stride }

// Image returns the underlying image for inspection or encoding.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }
