package paint

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
)

// Bitmap is a raster image in premultiplied RGBA form, the layout
// backends composite directly. Optional nine-patch metadata marks the
// stretchable center region for DrawNinePatch.
type Bitmap struct {
	img *image.RGBA

	ninePatch    Rect
	hasNinePatch bool
}

// NewBitmap creates an empty (fully transparent) bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// BitmapFromImage converts any image into a premultiplied RGBA bitmap.
// An *image.RGBA anchored at the origin is wrapped without copying.
func BitmapFromImage(src image.Image) *Bitmap {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &Bitmap{img: rgba}
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return &Bitmap{img: dst}
}

// DecodePNG reads a PNG stream into a bitmap.
func DecodePNG(r io.Reader) (*Bitmap, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("paint: decode png: %w", err)
	}
	return BitmapFromImage(src), nil
}

// EncodePNG writes the bitmap as a PNG stream.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("paint: encode png: %w", err)
	}
	return nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.img.Rect.Dx() }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.img.Rect.Dy() }

// Rect returns the bitmap's full extent as a float rectangle.
func (b *Bitmap) Rect() Rect {
	return Rect{W: float64(b.Width()), H: float64(b.Height())}
}

// RGBA returns the underlying premultiplied pixel buffer. The bitmap
// retains ownership; backends read it during a draw call and must not
// hold on to it.
func (b *Bitmap) RGBA() *image.RGBA { return b.img }

// SubBitmap copies the given pixel region into a new bitmap. The region
// is clamped to the bitmap's extent; an empty result yields a 0x0
// bitmap. Nine-patch metadata does not carry over.
func (b *Bitmap) SubBitmap(r RectI) *Bitmap {
	clipped := r.Intersect(RectI{W: b.Width(), H: b.Height()})
	if clipped.IsEmpty() {
		return NewBitmap(0, 0)
	}
	dst := image.NewRGBA(image.Rect(0, 0, clipped.W, clipped.H))
	draw.Draw(dst, dst.Rect, b.img, image.Pt(clipped.X, clipped.Y), draw.Src)
	return &Bitmap{img: dst}
}

// SetNinePatch marks the stretchable center region, in bitmap pixel
// coordinates. The border outside the center keeps its size when the
// bitmap is drawn through DrawNinePatch.
func (b *Bitmap) SetNinePatch(center Rect) {
	b.ninePatch = center
	b.hasNinePatch = true
}

// NinePatch returns the stretchable center region, if set.
func (b *Bitmap) NinePatch() (Rect, bool) {
	return b.ninePatch, b.hasNinePatch
}
