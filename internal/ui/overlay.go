//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifepaint/internal/core"
	"lifepaint/internal/viewport"
)

// minGridSpacing is the on-screen cell size below which grid lines are skipped.
const minGridSpacing = 4

var (
	gridColor      = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	selectionColor = color.RGBA{R: 90, G: 160, B: 255, A: 255}
	borderColor    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// Overlay draws grid lines, the world border, and the rectangle tool preview
// on top of the cells.
type Overlay struct {
	showGrid bool
}

// NewOverlay returns an overlay with grid lines enabled.
func NewOverlay() *Overlay { return &Overlay{showGrid: true} }

// ToggleGrid flips grid line drawing.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// Draw renders the overlay for a cols*rows grid seen through v. When ok is
// set, a, b are opposite corners of the pending rectangle selection.
func (o *Overlay) Draw(screen *ebiten.Image, v *viewport.Viewport, size core.Size, a, b core.Point, ok bool) {
	if o.showGrid {
		o.drawGrid(screen, v, size)
	}
	x0, y0, _, _ := v.CellBounds(0, 0)
	x1, y1, _, _ := v.CellBounds(size.W, size.H)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, borderColor, false)

	if !ok {
		return
	}
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	sx0, sy0, _, _ := v.CellBounds(minX, minY)
	_, _, sx1, sy1 := v.CellBounds(maxX, maxY)
	vector.StrokeRect(screen, float32(sx0), float32(sy0), float32(sx1-sx0), float32(sy1-sy0), 2, selectionColor, false)
}

func (o *Overlay) drawGrid(screen *ebiten.Image, v *viewport.Viewport, size core.Size) {
	if v.CellSize/v.Scale() < minGridSpacing {
		return
	}
	cx0, cy0, cx1, cy1 := v.VisibleCells(size.W, size.H)
	if cx1 <= cx0 || cy1 <= cy0 {
		return
	}
	left, top, _, _ := v.CellBounds(cx0, cy0)
	right, bottom, _, _ := v.CellBounds(cx1, cy1)
	for x := cx0; x <= cx1; x++ {
		sx, _, _, _ := v.CellBounds(x, 0)
		vector.StrokeLine(screen, float32(sx), float32(top), float32(sx), float32(bottom), 1, gridColor, false)
	}
	for y := cy0; y <= cy1; y++ {
		_, sy, _, _ := v.CellBounds(0, y)
		vector.StrokeLine(screen, float32(left), float32(sy), float32(right), float32(sy), 1, gridColor, false)
	}
}
