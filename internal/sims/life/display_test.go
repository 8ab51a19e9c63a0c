package life

import (
	"image/color"
	"testing"

	"lifepaint/internal/core"
)

func TestAgeColorFades(t *testing.T) {
	if got := AgeColor(0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("AgeColor(0) = %v, want white", got)
	}
	if got := AgeColor(100); got != (color.RGBA{R: 155, G: 255, B: 155, A: 255}) {
		t.Fatalf("AgeColor(100) = %v", got)
	}
	prev := AgeColor(0)
	for age := uint32(1); age < MatureAge; age++ {
		c := AgeColor(age)
		if c.R > prev.R || c.B > prev.B {
			t.Fatalf("AgeColor(%d) = %v brighter than previous %v", age, c, prev)
		}
		prev = c
	}
}

func TestAgeColorHoldsMatureColor(t *testing.T) {
	mature := AgeColor(MatureAge)
	for _, age := range []uint32{MatureAge - 1, MatureAge, MatureAge + 1, 255, 256, 1000, 1 << 31} {
		if got := AgeColor(age); got != mature {
			t.Fatalf("AgeColor(%d) = %v, want mature %v", age, got, mature)
		}
	}
	if mature.R != 3 || mature.B != 3 || mature.G != 255 {
		t.Fatalf("mature color = %v", mature)
	}
}

func TestDisplayValueIndexesPalette(t *testing.T) {
	l, _ := New(1, 1)
	palette := l.Palette()
	cases := []core.Cell{{}, {Alive: true}, {Alive: true, Age: 5}, {Alive: true, Age: 9999}}
	for _, c := range cases {
		idx := int(DisplayValue(c))
		if idx >= len(palette) {
			t.Fatalf("DisplayValue(%+v) = %d out of palette range %d", c, idx, len(palette))
		}
		if !c.Alive {
			if idx != 0 {
				t.Fatalf("dead cell mapped to %d", idx)
			}
			continue
		}
		if palette[idx] != AgeColor(c.Age) {
			t.Fatalf("palette[%d] = %v, want %v", idx, palette[idx], AgeColor(c.Age))
		}
	}
}
