//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifepaint/internal/sims/life"
	"lifepaint/internal/viewport"
)

// GridRenderer uploads the Life grid to a texture and draws it through the
// viewport transform.
type GridRenderer struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridRenderer allocates a texture matching the grid dimensions.
func NewGridRenderer(l *life.Life) *GridRenderer {
	size := l.Size()
	return &GridRenderer{
		frame: NewFrame(size.W, size.H),
		img:   ebiten.NewImage(size.W, size.H),
	}
}

// Draw renders live cells onto screen. Only the current buffer is read.
func (r *GridRenderer) Draw(screen *ebiten.Image, l *life.Life, v *viewport.Viewport) {
	r.img.WritePixels(r.frame.Rasterize(l))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.CellSize/v.Scale(), v.CellSize/v.Scale())
	ox, oy := v.WorldToScreen(0, 0)
	op.GeoM.Translate(ox, oy)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(r.img, op)
}
