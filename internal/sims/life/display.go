package life

import (
	"image/color"

	"lifepaint/internal/core"
)

// MatureAge is the age from which every live cell shares the same color.
const MatureAge = 253

const fadeLimit = MatureAge - 1

var agePalette = buildAgePalette()

// AgeColor fades the red and blue channels from 255 toward 0 as a cell ages,
// holding the mature color once age reaches MatureAge.
func AgeColor(age uint32) color.RGBA {
	a := uint8(min(age, fadeLimit))
	return color.RGBA{R: 255 - a, G: 255, B: 255 - a, A: 255}
}

// DisplayValue encodes a cell as a palette index: 0 for dead cells and
// 1+min(age, 252) for live ones.
func DisplayValue(c core.Cell) uint8 {
	if !c.Alive {
		return 0
	}
	return 1 + uint8(min(c.Age, fadeLimit))
}

// Palette exposes the colors indexed by DisplayValue. Index 0 is transparent.
func (l *Life) Palette() []color.RGBA { return agePalette }

// Display writes the palette index of every current cell into buf, which must
// hold at least W*H bytes.
func (l *Life) Display(buf []uint8) {
	for i, c := range l.grid.Cells() {
		buf[i] = DisplayValue(c)
	}
}

func buildAgePalette() []color.RGBA {
	palette := make([]color.RGBA, fadeLimit+2)
	for i := 1; i < len(palette); i++ {
		palette[i] = AgeColor(uint32(i - 1))
	}
	return palette
}
