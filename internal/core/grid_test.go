package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsInvalidSize(t *testing.T) {
	cases := []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 3}, {0, 0}}
	for _, tc := range cases {
		if _, err := NewGrid(tc.w, tc.h); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d,%d) err=%v, want ErrInvalidSize", tc.w, tc.h, err)
		}
	}
}

func TestSetOutOfBoundsIsNoop(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		g.Set(p.X, p.Y, true)
		if _, ok := g.Get(p.X, p.Y); ok {
			t.Fatalf("Get(%d,%d) reported in bounds", p.X, p.Y)
		}
	}
	if n := g.CountAlive(); n != 0 {
		t.Fatalf("out-of-bounds writes changed the grid: %d alive", n)
	}
}

func TestSetDeadResetsAge(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Set(1, 1, true)
	g.Cells()[g.Index(1, 1)].Age = 7

	g.Set(1, 1, true)
	if c, _ := g.Get(1, 1); c.Age != 7 {
		t.Fatalf("reviving a live cell changed its age to %d", c.Age)
	}

	g.Set(1, 1, false)
	c, _ := g.Get(1, 1)
	if c.Alive || c.Age != 0 {
		t.Fatalf("killed cell = %+v, want dead with age 0", c)
	}
}

func TestSwapExchangesBuffers(t *testing.T) {
	g, _ := NewGrid(2, 2)
	cur := &g.Cells()[0]
	nxt := &g.Scratch()[0]
	g.Swap()
	if &g.Cells()[0] != nxt || &g.Scratch()[0] != cur {
		t.Fatal("Swap must exchange buffers without copying")
	}
}

func TestClearResetsBothBuffers(t *testing.T) {
	g, _ := NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Scratch()[1] = Cell{Alive: true, Age: 12}

	g.Clear()

	for i, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("current[%d] = %+v after Clear", i, c)
		}
	}
	for i, c := range g.Scratch() {
		if c != (Cell{}) {
			t.Fatalf("scratch[%d] = %+v after Clear", i, c)
		}
	}
}
