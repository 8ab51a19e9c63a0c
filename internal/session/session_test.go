package session

import (
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"lifepaint/internal/config"
	"lifepaint/internal/patterns"
	"lifepaint/internal/tools"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Grid.Width, cfg.Grid.Height = 400, 300
	cfg.Simulation.Seed = 5
	s, err := New(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	cfg, _ := config.Load("")
	cfg.Grid.Width = 0
	if _, err := New(cfg, log.New(io.Discard)); err == nil {
		t.Fatal("expected construction error for an empty grid")
	}
}

func TestEditsOnlyWhilePaused(t *testing.T) {
	s := newSession(t)
	now := time.Unix(100, 0)

	if !s.ApplyTool(tools.SingleCell{}, 3, 4) {
		t.Fatal("paused edit rejected")
	}
	s.ToggleRun(now)
	if s.ApplyTool(tools.SingleCell{}, 5, 5) {
		t.Fatal("edit applied while running")
	}
	if s.BeginStroke(6, 6) {
		t.Fatal("stroke started while running")
	}
	if alive, _ := s.QueryCell(5, 5); alive {
		t.Fatal("running edit changed the grid")
	}
	if alive, _ := s.QueryCell(3, 4); !alive {
		t.Fatal("paused edit lost")
	}
}

func TestUpdateIsTimeGated(t *testing.T) {
	s := newSession(t)
	start := time.Unix(100, 0)

	if s.Update(start.Add(time.Hour)) {
		t.Fatal("paused session advanced")
	}
	s.ToggleRun(start)
	if s.Update(start.Add(s.Interval() / 2)) {
		t.Fatal("advanced before the interval elapsed")
	}
	if !s.Update(start.Add(s.Interval())) {
		t.Fatal("did not advance after the interval")
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", s.Generation())
	}
}

func TestClearThenAdvance(t *testing.T) {
	s := newSession(t)
	s.Randomize()
	s.AdvanceGeneration()
	s.AdvanceGeneration()
	s.ToggleRun(time.Unix(1, 0))

	s.Clear()
	if s.Running() {
		t.Fatal("clear did not pause the simulation")
	}
	s.AdvanceGeneration()

	if n := s.CountAlive(); n != 0 {
		t.Fatalf("%d cells alive after clear and advance", n)
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", s.Generation())
	}
}

func TestSetSpeedIntervalClamps(t *testing.T) {
	s := newSession(t)
	for i := 0; i < 50; i++ {
		s.SetSpeedInterval(-s.IntervalStep())
	}
	if got := s.Interval(); got != 10*time.Millisecond {
		t.Fatalf("interval = %v, want 10ms floor", got)
	}
	if got := s.SetSpeedInterval(time.Hour); got != time.Second {
		t.Fatalf("interval = %v, want 1s ceiling", got)
	}
}

func TestStampThroughStroke(t *testing.T) {
	s := newSession(t)
	s.SelectTool(tools.KindStamp)
	if s.StampName() != patterns.GosperGun {
		t.Fatalf("stamp = %q", s.StampName())
	}
	s.BeginStroke(2, 2)
	s.EndStroke(2, 2)
	if n := s.CountAlive(); n != 36 {
		t.Fatalf("stamp set %d cells, want 36", n)
	}
}

func TestUnknownStampFallsBackToNoop(t *testing.T) {
	s := newSession(t)
	s.SelectTool(tools.KindStamp)
	if err := s.SelectStamp("missing"); err == nil {
		t.Fatal("expected pattern-not-found error")
	}
	s.BeginStroke(2, 2)
	s.EndStroke(2, 2)
	if n := s.CountAlive(); n != 0 {
		t.Fatalf("missing stamp set %d cells", n)
	}
}

func TestCycleStampVisitsCatalog(t *testing.T) {
	s := newSession(t)
	seen := map[string]bool{}
	for range s.Catalog().Names() {
		s.CycleStamp()
		seen[s.StampName()] = true
	}
	if len(seen) != len(s.Catalog().Names()) {
		t.Fatalf("cycled through %d of %d patterns", len(seen), len(s.Catalog().Names()))
	}
}

func TestQueryCellColorsByAge(t *testing.T) {
	s := newSession(t)
	s.ApplyTool(tools.SingleCell{}, 1, 1)
	alive, c := s.QueryCell(1, 1)
	if !alive || c.R != 255 || c.G != 255 {
		t.Fatalf("fresh cell = %v %v", alive, c)
	}
	if alive, _ := s.QueryCell(-3, 9999); alive {
		t.Fatal("off-grid query reported alive")
	}
}

func TestMapPixelToCellFollowsPan(t *testing.T) {
	s := newSession(t)
	gx, gy := s.MapPixelToCell(400, 300)
	s.Pan(400, 300, 300, 300)
	hx, hy := s.MapPixelToCell(300, 300)
	if gx != hx || gy != hy {
		t.Fatalf("grabbed cell moved from (%d,%d) to (%d,%d)", gx, gy, hx, hy)
	}
}

func TestHUDParameters(t *testing.T) {
	s := newSession(t)
	if !s.SetIntParameter(paramInterval, 250) {
		t.Fatal("interval parameter rejected")
	}
	if s.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v", s.Interval())
	}
	p, ok := s.Parameters().Lookup(paramInterval)
	if !ok || p.Value != strconv.Itoa(250) {
		t.Fatalf("interval parameter = %+v", p)
	}
	if !s.SetFloatParameter(paramSprayDensity, 1.7) || s.SprayDensity() != 1 {
		t.Fatalf("spray density = %g, want clamp to 1", s.SprayDensity())
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown parameter accepted")
	}
}
