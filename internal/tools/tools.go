// Package tools implements the paint tools that edit a grid: single cells,
// eraser, stochastic spray, rectangle fill, and pattern stamps.
package tools

import (
	"lifepaint/internal/core"
	"lifepaint/internal/patterns"
)

// Kind enumerates the tool variants.
type Kind int

const (
	KindSingleCell Kind = iota
	KindEraser
	KindSpray
	KindRectangle
	KindStamp
)

var kindNames = [...]string{"Single", "Eraser", "Spray", "Rectangle", "Stamp"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Tool is a paint tool. Each variant carries only the parameters it needs.
type Tool interface {
	Kind() Kind
	// Apply edits g around the target cell. Off-grid cells are skipped.
	Apply(g *core.Grid, at core.Point, rng *core.RNG)
}

// SingleCell sets the target cell alive.
type SingleCell struct{}

func (SingleCell) Kind() Kind { return KindSingleCell }

func (SingleCell) Apply(g *core.Grid, at core.Point, _ *core.RNG) { g.Set(at.X, at.Y, true) }

// Eraser sets the target cell dead.
type Eraser struct{}

func (Eraser) Kind() Kind { return KindEraser }

func (Eraser) Apply(g *core.Grid, at core.Point, _ *core.RNG) { g.Set(at.X, at.Y, false) }

// Spray independently revives each cell of the (2*Radius+1)² square around the
// target with probability Density.
type Spray struct {
	Density float64
	Radius  int
}

// DefaultSpray is a 7x7 spray at 40% density.
var DefaultSpray = Spray{Density: 0.4, Radius: 3}

func (Spray) Kind() Kind { return KindSpray }

func (s Spray) Apply(g *core.Grid, at core.Point, rng *core.RNG) {
	for dy := -s.Radius; dy <= s.Radius; dy++ {
		for dx := -s.Radius; dx <= s.Radius; dx++ {
			if rng.Chance(s.Density) {
				g.Set(at.X+dx, at.Y+dy, true)
			}
		}
	}
}

// Rectangle fills the box between a drag anchor and the release cell. Apply
// alone fills only the target cell; the Dispatcher drives the drag.
type Rectangle struct{}

func (Rectangle) Kind() Kind { return KindRectangle }

func (Rectangle) Apply(g *core.Grid, at core.Point, _ *core.RNG) { g.Set(at.X, at.Y, true) }

// Fill sets every cell between corners a and b (inclusive) alive, clipped to
// the grid.
func (Rectangle) Fill(g *core.Grid, a, b core.Point) {
	x0, x1 := max(min(a.X, b.X), 0), min(max(a.X, b.X), g.W-1)
	y0, y1 := max(min(a.Y, b.Y), 0), min(max(a.Y, b.Y), g.H-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, true)
		}
	}
}

// Stamp places Pattern with its origin at the target cell. A zero Pattern
// stamps nothing.
type Stamp struct {
	Pattern patterns.Pattern
}

func (Stamp) Kind() Kind { return KindStamp }

func (s Stamp) Apply(g *core.Grid, at core.Point, _ *core.RNG) {
	s.Pattern.Each(func(o patterns.Offset) {
		g.Set(at.X+o.DX, at.Y+o.DY, true)
	})
}
