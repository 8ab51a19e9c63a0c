// Package session ties the Life engine, viewport, and paint tools into the
// simulation context driven by the run loop. Everything runs on one thread.
package session

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"

	"lifepaint/internal/config"
	"lifepaint/internal/core"
	"lifepaint/internal/patterns"
	"lifepaint/internal/sims/life"
	"lifepaint/internal/tools"
	"lifepaint/internal/viewport"
)

// Session is the simulation context: grid engine, camera, tool state, and the
// run/pause and speed controls.
type Session struct {
	life    *life.Life
	view    *viewport.Viewport
	tools   *tools.Dispatcher
	catalog *patterns.Catalog
	timer   *core.IntervalTimer
	rng     *core.RNG
	logger  *log.Logger

	running      bool
	intervalStep time.Duration
	fillDensity  float64
	spray        tools.Spray
	stamp        tools.Stamp
}

// New builds a paused session from cfg.
func New(cfg *config.Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	l, err := life.New(cfg.Grid.Cols(), cfg.Grid.Rows())
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Simulation.Seed)
	cell := float64(cfg.Grid.CellSize)
	s := &Session{
		life: l,
		view: viewport.New(
			float64(cfg.Window.Width), float64(cfg.Window.Height),
			float64(l.Size().W)*cell, float64(l.Size().H)*cell,
			cell, cfg.Viewport.MinZoom, cfg.Viewport.MaxZoom,
		),
		tools:        tools.NewDispatcher(rng),
		catalog:      catalog,
		timer:        core.NewIntervalTimer(cfg.Simulation.Interval, cfg.Simulation.MinInterval, cfg.Simulation.MaxInterval),
		rng:          rng,
		logger:       logger,
		intervalStep: cfg.Simulation.IntervalStep,
		fillDensity:  cfg.Simulation.FillDensity,
		spray:        tools.Spray{Density: cfg.Tools.SprayDensity, Radius: cfg.Tools.SprayRadius},
	}
	s.SelectStamp(cfg.Tools.Stamp)
	return s, nil
}

// Life exposes the engine for rendering and stats.
func (s *Session) Life() *life.Life { return s.life }

// Viewport exposes the camera for rendering.
func (s *Session) Viewport() *viewport.Viewport { return s.view }

// Tools exposes the dispatcher, mainly for drag previews.
func (s *Session) Tools() *tools.Dispatcher { return s.tools }

// Catalog exposes the registered stamp patterns.
func (s *Session) Catalog() *patterns.Catalog { return s.catalog }

// Running reports whether generations advance on the interval timer.
func (s *Session) Running() bool { return s.running }

// Generation returns the generation counter.
func (s *Session) Generation() uint64 { return s.life.Generation() }

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration { return s.timer.Interval() }

// IntervalStep returns the configured speed adjustment increment.
func (s *Session) IntervalStep() time.Duration { return s.intervalStep }

// AdvanceGeneration performs one full tick.
func (s *Session) AdvanceGeneration() { s.life.Step() }

// Update advances one generation when running and the interval has elapsed.
func (s *Session) Update(now time.Time) bool {
	if !s.running || !s.timer.Ready(now) {
		return false
	}
	s.AdvanceGeneration()
	return true
}

// QueryCell reports whether (x, y) is alive and the color it should be drawn
// with. Off-grid coordinates read as dead.
func (s *Session) QueryCell(x, y int) (bool, color.RGBA) {
	c, ok := s.life.Grid().Get(x, y)
	if !ok || !c.Alive {
		return false, color.RGBA{}
	}
	return true, life.AgeColor(c.Age)
}

// CountAlive scans the whole grid.
func (s *Session) CountAlive() int { return s.life.Grid().CountAlive() }

// MapPixelToCell converts a device pixel to a grid cell index.
func (s *Session) MapPixelToCell(px, py float64) (int, int) {
	return s.view.PixelToCell(px, py)
}

// SelectTool switches the active tool by kind, using the session's spray and
// stamp parameters.
func (s *Session) SelectTool(kind tools.Kind) {
	var t tools.Tool
	switch kind {
	case tools.KindSingleCell:
		t = tools.SingleCell{}
	case tools.KindEraser:
		t = tools.Eraser{}
	case tools.KindSpray:
		t = s.spray
	case tools.KindRectangle:
		t = tools.Rectangle{}
	case tools.KindStamp:
		t = s.stamp
	default:
		return
	}
	s.tools.Select(t)
	s.logger.Debug("tool selected", "tool", kind)
}

// SelectStamp loads a catalog pattern for the stamp tool. An unknown name
// leaves an empty stamp in place.
func (s *Session) SelectStamp(name string) error {
	p, err := s.catalog.Load(name)
	if err != nil {
		if errors.Is(err, patterns.ErrPatternNotFound) {
			s.logger.Warn("stamp pattern not found", "pattern", name)
		}
		s.stamp = tools.Stamp{}
	} else {
		s.stamp = tools.Stamp{Pattern: p}
	}
	if s.tools.Current().Kind() == tools.KindStamp {
		s.tools.Select(s.stamp)
	}
	return err
}

// StampName returns the name of the loaded stamp pattern.
func (s *Session) StampName() string { return s.stamp.Pattern.Name() }

// CycleStamp loads the next catalog pattern after the current one.
func (s *Session) CycleStamp() {
	names := s.catalog.Names()
	if len(names) == 0 {
		return
	}
	next := names[0]
	for i, name := range names {
		if name == s.StampName() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	s.SelectStamp(next)
}

// SprayDensity returns the spray tool's per-cell probability.
func (s *Session) SprayDensity() float64 { return s.spray.Density }

// SetSprayDensity changes the spray probability, clamped to [0, 1].
func (s *Session) SetSprayDensity(p float64) {
	s.spray.Density = min(max(p, 0), 1)
	if s.tools.Current().Kind() == tools.KindSpray {
		s.tools.Select(s.spray)
	}
}

// ApplyTool runs tool once at (gx, gy). Edits only apply while paused.
func (s *Session) ApplyTool(tool tools.Tool, gx, gy int) bool {
	if s.running || tool == nil {
		return false
	}
	tool.Apply(s.life.Grid(), core.Point{X: gx, Y: gy}, s.rng)
	return true
}

// BeginStroke starts a pointer stroke with the active tool.
func (s *Session) BeginStroke(gx, gy int) bool {
	if s.running {
		return false
	}
	s.tools.Press(s.life.Grid(), core.Point{X: gx, Y: gy})
	return true
}

// ContinueStroke extends the active stroke to (gx, gy).
func (s *Session) ContinueStroke(gx, gy int) bool {
	if s.running || !s.tools.Dragging() {
		return false
	}
	s.tools.Drag(s.life.Grid(), core.Point{X: gx, Y: gy})
	return true
}

// EndStroke finishes the active stroke at (gx, gy).
func (s *Session) EndStroke(gx, gy int) bool {
	if s.running || !s.tools.Dragging() {
		s.tools.Cancel()
		return false
	}
	s.tools.Release(s.life.Grid(), core.Point{X: gx, Y: gy})
	return true
}

// Pan drags the camera from one pointer position to the next.
func (s *Session) Pan(fromX, fromY, toX, toY float64) { s.view.Pan(fromX, fromY, toX, toY) }

// Zoom applies a zoom step; rejected steps return false.
func (s *Session) Zoom(step float64) bool { return s.view.ZoomBy(step) }

// ResizeViewport updates the device size.
func (s *Session) ResizeViewport(w, h int) { s.view.Resize(float64(w), float64(h)) }

// Clear kills every cell, resets the generation counter, and pauses.
func (s *Session) Clear() {
	s.life.Clear()
	s.running = false
	s.tools.Cancel()
	s.logger.Info("grid cleared")
}

// Randomize refills the grid at the configured density and pauses.
func (s *Session) Randomize() {
	s.life.Reset(s.rng, s.fillDensity)
	s.running = false
	s.tools.Cancel()
	s.logger.Info("grid randomized", "density", s.fillDensity, "alive", s.CountAlive())
}

// ToggleRun flips between running and paused, restarting the tick interval.
func (s *Session) ToggleRun(now time.Time) {
	s.running = !s.running
	s.timer.Restart(now)
	s.tools.Cancel()
	s.logger.Info("simulation toggled", "running", s.running, "generation", s.Generation())
}

// SetSpeedInterval shifts the tick interval by delta within its bounds and
// returns the new interval.
func (s *Session) SetSpeedInterval(delta time.Duration) time.Duration {
	before := s.timer.Interval()
	after := s.timer.Adjust(delta)
	if after != before {
		s.logger.Debug("interval changed", "interval", after)
	}
	return after
}
