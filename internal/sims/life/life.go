package life

import (
	"lifepaint/internal/core"
)

// StepStats summarizes the transitions of the most recent generation.
type StepStats struct {
	Births int
	Deaths int
	Alive  int
}

// Life implements Conway's Game of Life on a bounded grid. Cells beyond the
// edges count as dead.
type Life struct {
	grid       *core.Grid
	generation uint64
	last       StepStats
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) (*Life, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Life{grid: g}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the underlying double-buffered grid for editing tools.
func (l *Life) Grid() *core.Grid { return l.grid }

// Cells exposes the current grid values.
func (l *Life) Cells() []core.Cell { return l.grid.Cells() }

// Generation returns the number of steps since construction or the last Clear.
func (l *Life) Generation() uint64 { return l.generation }

// LastStep reports the transitions counted by the most recent Step.
func (l *Life) LastStep() StepStats { return l.last }

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.grid.Clear()
	l.generation = 0
	l.last = StepStats{}
}

// Reset clears the board and seeds it with live cells at the given density.
func (l *Life) Reset(rng *core.RNG, density float64) {
	l.Clear()
	cells := l.grid.Cells()
	for i := range cells {
		if rng.Chance(density) {
			cells[i].Alive = true
		}
	}
}

// Neighbors counts live cells around (x, y) that lie on the grid.
func (l *Life) Neighbors(x, y int) int {
	w, h := l.grid.W, l.grid.H
	cur := l.grid.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if cur[ny*w+nx].Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.grid.W, l.grid.H
	cur, nxt := l.grid.Cells(), l.grid.Scratch()
	var stats StepStats
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := l.Neighbors(x, y)
			alive := cur[idx].Alive
			next := (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
			if !next {
				nxt[idx] = core.Cell{}
				if alive {
					stats.Deaths++
				}
				continue
			}
			nxt[idx] = core.Cell{Alive: true, Age: cur[idx].Age + 1}
			stats.Alive++
			if !alive {
				stats.Births++
			}
		}
	}
	l.grid.Swap()
	l.generation++
	l.last = stats
}
