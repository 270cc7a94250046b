// Package paint is a retained-state, layered 2D vector painter.
//
// A Painter accepts drawing commands in a user coordinate space,
// applies an affine transform and nested clip stack, and forwards
// minimal, already-transformed geometry to a pluggable Engine backend
// that rasterizes and composites into a frame target.
//
// A typical frame:
//
//	p := paint.NewPainter()
//	eng := software.New()
//	target := paint.NewPixmapTarget(200, 200)
//
//	if err := p.BeginFrame(eng, target, 100, 100, paint.White); err != nil {
//		return err
//	}
//	defer p.Saved().End()
//	p.FillRect(paint.Rect{W: 50, H: 50}, paint.Solid(paint.Green))
//	return p.EndFrame()
//
// Save/Restore pairs are enforced through single-use guards, layers
// provide group opacity and Porter-Duff composite modes, and all
// degenerate geometry (empty paths, zero sizes, transparent brushes)
// is absorbed as a silent no-op.
package paint
