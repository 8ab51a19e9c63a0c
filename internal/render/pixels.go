// Package render turns Life state into RGBA pixels, one pixel per cell.
package render

import (
	"image/color"

	"lifepaint/internal/sims/life"
)

// FillPalette converts palette indices into RGBA pixels in buf. Indices past
// the end of the palette use its last entry. An empty palette clears buf to
// transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Frame holds the scratch buffers used to rasterize one Life grid.
type Frame struct {
	W, H   int
	cells  []uint8
	pixels []byte
}

// NewFrame allocates buffers for a w*h grid.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, cells: make([]uint8, w*h), pixels: make([]byte, w*h*4)}
}

// Rasterize writes the current generation of l into the frame and returns the
// RGBA bytes. Dead cells are fully transparent.
func (f *Frame) Rasterize(l *life.Life) []byte {
	l.Display(f.cells)
	FillPalette(f.pixels, f.cells, l.Palette())
	return f.pixels
}
