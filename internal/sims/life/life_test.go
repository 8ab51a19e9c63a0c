package life

import (
	"slices"
	"testing"

	"lifepaint/internal/core"
)

func newLife(t *testing.T, w, h int) *Life {
	t.Helper()
	l, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return l
}

func aliveSet(l *Life) map[[2]int]bool {
	out := map[[2]int]bool{}
	w := l.Size().W
	for i, c := range l.Cells() {
		if c.Alive {
			out[[2]int{i % w, i / w}] = true
		}
	}
	return out
}

func expectAlive(t *testing.T, l *Life, expects map[[2]int]bool, when string) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c, _ := l.Grid().Get(x, y)
			if expects[[2]int{x, y}] != c.Alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", when, x, y, c.Alive, expects[[2]int{x, y}])
			}
		}
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Fatal("expected construction error for zero width")
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	l := newLife(t, 8, 6)
	for i := 0; i < 5; i++ {
		l.Step()
	}
	if n := l.Grid().CountAlive(); n != 0 {
		t.Fatalf("empty grid produced %d live cells", n)
	}
	if l.Generation() != 5 {
		t.Fatalf("generation = %d, want 5", l.Generation())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	l := newLife(t, 5, 5)
	l.Grid().Set(2, 2, true)
	l.Step()
	c, _ := l.Grid().Get(2, 2)
	if c.Alive || c.Age != 0 {
		t.Fatalf("isolated cell = %+v, want dead with age 0", c)
	}
	if st := l.LastStep(); st.Deaths != 1 || st.Births != 0 || st.Alive != 0 {
		t.Fatalf("step stats = %+v", st)
	}
}

func TestBlockIsStable(t *testing.T) {
	l := newLife(t, 6, 6)
	g := l.Grid()
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	g.Set(2, 3, true)
	g.Set(3, 3, true)
	want := aliveSet(l)

	for i := 1; i <= 10; i++ {
		l.Step()
		expectAlive(t, l, want, "block")
		c, _ := g.Get(2, 2)
		if c.Age != uint32(i) {
			t.Fatalf("block cell age = %d after %d steps", c.Age, i)
		}
	}
}

func TestBlockInCornerIsStable(t *testing.T) {
	l := newLife(t, 4, 4)
	g := l.Grid()
	g.Set(0, 0, true)
	g.Set(1, 0, true)
	g.Set(0, 1, true)
	g.Set(1, 1, true)
	want := aliveSet(l)
	for i := 0; i < 10; i++ {
		l.Step()
	}
	expectAlive(t, l, want, "corner block")
}

func TestBlinkerOscillation(t *testing.T) {
	l := newLife(t, 5, 5)
	g := l.Grid()
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	for cycle := 0; cycle < 4; cycle++ {
		l.Step()
		expectAlive(t, l, vertical, "after odd step")
		l.Step()
		expectAlive(t, l, horizontal, "after even step")
	}
}

func TestBlinkerAtEdgeDoesNotWrap(t *testing.T) {
	l := newLife(t, 5, 5)
	g := l.Grid()
	g.Set(0, 0, true)
	g.Set(1, 0, true)
	g.Set(2, 0, true)
	l.Step()

	// Only the in-grid half of the vertical phase survives.
	expectAlive(t, l, map[[2]int]bool{{1, 0}: true, {1, 1}: true}, "edge blinker")
}

func TestAgesFollowAliveness(t *testing.T) {
	l := newLife(t, 5, 5)
	g := l.Grid()
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	l.Step()

	center, _ := g.Get(2, 2)
	if center.Age != 1 {
		t.Fatalf("surviving center age = %d, want 1", center.Age)
	}
	born, _ := g.Get(2, 1)
	if !born.Alive || born.Age != 1 {
		t.Fatalf("newborn cell = %+v, want alive with age 1", born)
	}
	for i, c := range l.Cells() {
		if !c.Alive && c.Age != 0 {
			t.Fatalf("dead cell %d carries age %d", i, c.Age)
		}
	}
	if st := l.LastStep(); st.Births != 2 || st.Deaths != 2 || st.Alive != 3 {
		t.Fatalf("step stats = %+v", st)
	}
}

func TestClearThenStep(t *testing.T) {
	l := newLife(t, 6, 6)
	g := l.Grid()
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	g.Set(1, 2, true)
	l.Step()
	l.Step()

	l.Clear()
	l.Step()

	if n := g.CountAlive(); n != 0 {
		t.Fatalf("cleared grid has %d live cells after a step", n)
	}
	if l.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", l.Generation())
	}
	if !slices.Equal(g.Scratch(), make([]core.Cell, len(g.Scratch()))) {
		t.Fatal("scratch buffer not dead after clear and step")
	}
}

func TestResetDeterministic(t *testing.T) {
	a := newLife(t, 16, 16)
	b := newLife(t, 16, 16)
	a.Reset(core.NewRNG(99), 0.3)
	b.Reset(core.NewRNG(99), 0.3)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reset with equal seeds produced different boards")
	}
	if a.Grid().CountAlive() == 0 {
		t.Fatal("Reset at density 0.3 produced an empty board")
	}
}
