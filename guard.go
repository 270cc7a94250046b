package paint

// StateGuard is a single-use restore obligation returned by
// [Painter.Saved]. It must be consumed exactly once with End, normally
// via defer, so the state stack unwinds on every exit path:
//
//	defer p.Saved().End()
//
// Guards must not be copied; reusing a consumed guard panics.
type StateGuard struct {
	p     *Painter
	depth int
	done  bool

	noCopy noCopy
}

// End restores the painter to the guard's depth. Calling End twice is a
// contract violation and panics.
func (g *StateGuard) End() {
	if g.done {
		panic("paint: state guard used twice")
	}
	g.done = true
	g.p.Restore(g.depth)
}

// Depth returns the stack depth the guard restores to.
func (g *StateGuard) Depth() int { return g.depth }

// LayerGuard is the layer counterpart of StateGuard, returned by
// [Painter.Layered]. Ending it composes the layer.
type LayerGuard struct {
	p     *Painter
	depth int
	done  bool

	noCopy noCopy
}

// End restores the painter to the guard's depth, composing the layer.
// Calling End twice is a contract violation and panics.
func (g *LayerGuard) End() {
	if g.done {
		panic("paint: layer guard used twice")
	}
	g.done = true
	g.p.Restore(g.depth)
}

// Depth returns the stack depth the guard restores to.
func (g *LayerGuard) Depth() int { return g.depth }

// noCopy triggers go vet's copylocks check when a guard is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
