package software

import xdraw "golang.org/x/image/draw"

// Option configures an Engine at construction.
type Option func(*Engine)

// WithInterpolator fixes the scaler used for image and nine-patch
// blits. By default the engine picks NearestNeighbor for 1:1 blits and
// ApproxBiLinear when scaling.
func WithInterpolator(ip xdraw.Interpolator) Option {
	return func(e *Engine) {
		e.interp = ip
	}
}
