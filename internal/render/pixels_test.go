package render

import (
	"image/color"
	"testing"

	"lifepaint/internal/sims/life"
)

func TestFillPaletteClampsIndex(t *testing.T) {
	palette := []color.RGBA{{}, {R: 10, G: 20, B: 30, A: 255}}
	buf := make([]byte, 3*4)
	FillPalette(buf, []uint8{0, 1, 9}, palette)
	if buf[3] != 0 {
		t.Fatalf("index 0 alpha = %d, want transparent", buf[3])
	}
	for _, base := range []int{4, 8} {
		if buf[base] != 10 || buf[base+1] != 20 || buf[base+2] != 30 || buf[base+3] != 255 {
			t.Fatalf("pixel at %d = %v", base, buf[base:base+4])
		}
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	FillPalette(buf, []uint8{1, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestFrameRasterizeAges(t *testing.T) {
	l, err := life.New(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	cells := l.Cells()
	cells[1].Alive, cells[1].Age = true, 0
	cells[2].Alive, cells[2].Age = true, 500

	f := NewFrame(3, 1)
	px := f.Rasterize(l)
	if px[3] != 0 {
		t.Fatalf("dead cell alpha = %d", px[3])
	}
	if got := (color.RGBA{px[4], px[5], px[6], px[7]}); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("new cell = %v", got)
	}
	if got := (color.RGBA{px[8], px[9], px[10], px[11]}); got != (color.RGBA{3, 255, 3, 255}) {
		t.Fatalf("mature cell = %v", got)
	}
}
