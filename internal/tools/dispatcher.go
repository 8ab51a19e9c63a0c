package tools

import "lifepaint/internal/core"

// Dispatcher routes pointer input to the active tool and tracks drag state.
type Dispatcher struct {
	current Tool
	rng     *core.RNG

	dragging bool
	anchor   core.Point
	corner   core.Point
}

// NewDispatcher returns a dispatcher with SingleCell selected.
func NewDispatcher(rng *core.RNG) *Dispatcher {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Dispatcher{current: SingleCell{}, rng: rng}
}

// Current returns the active tool.
func (d *Dispatcher) Current() Tool { return d.current }

// Select changes the active tool and abandons any drag in progress.
func (d *Dispatcher) Select(t Tool) {
	if t == nil {
		return
	}
	d.current = t
	d.dragging = false
}

// Dragging reports whether a stroke is in progress.
func (d *Dispatcher) Dragging() bool { return d.dragging }

// Selection returns the rectangle drag corners while a Rectangle stroke is in
// progress.
func (d *Dispatcher) Selection() (a, b core.Point, ok bool) {
	if !d.dragging || d.current.Kind() != KindRectangle {
		return core.Point{}, core.Point{}, false
	}
	return d.anchor, d.corner, true
}

// Apply runs the active tool once at the target cell.
func (d *Dispatcher) Apply(g *core.Grid, at core.Point) {
	d.current.Apply(g, at, d.rng)
}

// Press starts a stroke. Rectangle records its anchor; other tools apply.
func (d *Dispatcher) Press(g *core.Grid, at core.Point) {
	d.dragging = true
	d.anchor, d.corner = at, at
	if d.current.Kind() == KindRectangle {
		return
	}
	d.Apply(g, at)
}

// Drag continues a stroke. Stamp only applies on press.
func (d *Dispatcher) Drag(g *core.Grid, at core.Point) {
	if !d.dragging {
		return
	}
	d.corner = at
	switch d.current.Kind() {
	case KindRectangle, KindStamp:
		return
	}
	d.Apply(g, at)
}

// Release ends a stroke. Rectangle fills from its anchor to the release cell.
func (d *Dispatcher) Release(g *core.Grid, at core.Point) {
	if !d.dragging {
		return
	}
	d.dragging = false
	if r, ok := d.current.(Rectangle); ok {
		r.Fill(g, d.anchor, at)
	}
}

// Cancel abandons a stroke without applying anything further.
func (d *Dispatcher) Cancel() { d.dragging = false }
