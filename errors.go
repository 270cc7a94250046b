package paint

import "errors"

// Sentinel errors returned by frame lifecycle operations.
var (
	// ErrNoFrame is returned by Repaint when no frame has ever been
	// composed on the bound engine.
	ErrNoFrame = errors.New("paint: no composed frame to present")

	// ErrBackend wraps a backend failure surfaced at EndFrame.
	ErrBackend = errors.New("paint: backend failure")
)
