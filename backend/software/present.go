package software

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Presentation errors.
var (
	// ErrNoComposedFrame is returned by Present before the first
	// completed frame.
	ErrNoComposedFrame = errors.New("software: no composed frame to present")

	// ErrInvalidRenderer is returned when the draw context cannot
	// create textures.
	ErrInvalidRenderer = errors.New("software: dc must provide a gpucontext.TextureCreator")
)

// Present uploads the last composed frame as a GPU texture and draws it
// through the given draw context at the origin. This is the seam for
// hosts that render the painter's output inside a GPU-composited
// window; CPU-backed targets are served by Paint instead.
func (e *Engine) Present(dc gpucontext.TextureDrawer) error {
	return e.PresentAt(dc, 0, 0)
}

// PresentAt is Present with a destination position.
func (e *Engine) PresentAt(dc gpucontext.TextureDrawer, x, y float32) error {
	if e.composed == nil {
		return ErrNoComposedFrame
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}

	b := e.composed.Rect
	tex, err := creator.NewTextureFromRGBA(b.Dx(), b.Dy(), e.composed.Pix)
	if err != nil {
		return fmt.Errorf("software: create texture: %w", err)
	}

	// Layer buffers are premultiplied; the one-factor blend pipeline
	// must be selected or edges double-blend.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("software: created texture is not drawable")
	}
	return dc.DrawTexture(gpuTex, x, y)
}
