package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is constructed with a non-positive
// dimension.
var ErrInvalidSize = errors.New("core: grid dimensions must be positive")

// Grid stores two equally sized row-major cell buffers. The current buffer is
// authoritative; the scratch buffer is written by a step and then swapped in.
type Grid struct {
	W, H int
	cur  []Cell
	nxt  []Cell
}

// NewGrid allocates a double-buffered grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{W: w, H: h, cur: make([]Cell, w*h), nxt: make([]Cell, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the current buffer. Callers outside the engine must treat it
// as read-only.
func (g *Grid) Cells() []Cell { return g.cur }

// Scratch exposes the write buffer for the next generation.
func (g *Grid) Scratch() []Cell { return g.nxt }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the current cell at (x, y). The second result is false when the
// coordinates are off the grid.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cur[g.Index(x, y)], true
}

// Set marks the cell at (x, y) alive or dead. Off-grid coordinates are
// ignored. Killing a cell zeroes its age; reviving keeps a live cell's age.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	c := &g.cur[g.Index(x, y)]
	if !alive {
		c.Alive = false
		c.Age = 0
		return
	}
	c.Alive = true
}

// Swap exchanges the current and scratch buffers.
func (g *Grid) Swap() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Clear resets both buffers to dead cells.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}

// CountAlive scans the current buffer.
func (g *Grid) CountAlive() int {
	n := 0
	for _, c := range g.cur {
		if c.Alive {
			n++
		}
	}
	return n
}
