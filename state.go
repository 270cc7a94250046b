package paint

// State is the painter's current drawing state. It is a plain value:
// Save copies it onto the stack and Restore copies it back. Backends
// receive a read-only pointer to the painter's live State through
// FrameConfig and must not mutate it.
type State struct {
	// Antialias controls edge coverage blending for subsequent draws.
	Antialias bool

	// ClipRect is the current clip rectangle in device space. It is only
	// ever intersected, never expanded, except by Restore. It is always
	// valid but may be empty.
	ClipRect Rect

	// Matrix maps local coordinates to device coordinates
	// (device = Matrix x local).
	Matrix Matrix

	// Layer marks a saved stack frame that began a composited layer, so
	// Restore knows to compose it.
	Layer bool

	// Discard marks the remainder of this state frame as a silent no-op:
	// the clip is empty or the layer cannot contribute output. Once set
	// it stays set until the frame is popped.
	Discard bool

	// PassTransparent forces fully-transparent draws to still reach the
	// backend, because the active layer's composite mode gives meaning
	// to transparent pixels.
	PassTransparent bool
}

// layerBound is one frame of the layer-bounds stack: the accumulated
// device-space bounding box of everything drawn in the layer (or root),
// plus the device offset of the layer's origin within its parent.
type layerBound struct {
	bounds Rect
	off    Point
}
