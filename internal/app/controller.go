// Package app connects device input to the simulation session and, with the
// ebiten build tag, runs the window loop.
package app

import (
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/session"
	"lifepaint/internal/tools"
)

// Action is a discrete command triggered by a key or button.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionStep        // advance one generation
	ActionStepFaster  // advance one generation and shorten the interval
	ActionSlower      // lengthen the interval
	ActionRandomize
	ActionClear
	ActionResetView
	ActionCycleStamp
	ActionZoomIn
	ActionZoomOut
	ActionToolSingle
	ActionToolEraser
	ActionToolSpray
	ActionToolRectangle
	ActionToolStamp
)

// Controller translates actions and pointer events into session calls.
type Controller struct {
	sess    *session.Session
	zoomIn  float64
	zoomOut float64

	stroking bool
	lastCell core.Point

	panning bool
	panX    float64
	panY    float64
}

// NewController wires a controller to sess using the given wheel zoom factors.
func NewController(sess *session.Session, zoomIn, zoomOut float64) *Controller {
	return &Controller{sess: sess, zoomIn: zoomIn, zoomOut: zoomOut}
}

// Do performs a single action.
func (c *Controller) Do(a Action, now time.Time) {
	s := c.sess
	switch a {
	case ActionToggleRun:
		c.stroking = false
		s.ToggleRun(now)
	case ActionStep:
		s.AdvanceGeneration()
	case ActionStepFaster:
		s.AdvanceGeneration()
		s.SetSpeedInterval(-s.IntervalStep())
	case ActionSlower:
		s.SetSpeedInterval(s.IntervalStep())
	case ActionRandomize:
		c.stroking = false
		s.Randomize()
	case ActionClear:
		c.stroking = false
		s.Clear()
	case ActionResetView:
		s.Viewport().Reset()
	case ActionCycleStamp:
		s.CycleStamp()
	case ActionZoomIn:
		s.Zoom(c.zoomIn)
	case ActionZoomOut:
		s.Zoom(c.zoomOut)
	case ActionToolSingle:
		s.SelectTool(tools.KindSingleCell)
	case ActionToolEraser:
		s.SelectTool(tools.KindEraser)
	case ActionToolSpray:
		s.SelectTool(tools.KindSpray)
	case ActionToolRectangle:
		s.SelectTool(tools.KindRectangle)
	case ActionToolStamp:
		s.SelectTool(tools.KindStamp)
	}
}

// PointerDown starts a paint stroke at a device pixel.
func (c *Controller) PointerDown(px, py float64) {
	gx, gy := c.sess.MapPixelToCell(px, py)
	c.stroking = c.sess.BeginStroke(gx, gy)
	c.lastCell = core.Point{X: gx, Y: gy}
}

// PointerMove extends the stroke when the pointer enters a new cell.
func (c *Controller) PointerMove(px, py float64) {
	if !c.stroking {
		return
	}
	gx, gy := c.sess.MapPixelToCell(px, py)
	at := core.Point{X: gx, Y: gy}
	if at == c.lastCell {
		return
	}
	c.lastCell = at
	c.stroking = c.sess.ContinueStroke(gx, gy)
}

// PointerUp finishes the stroke.
func (c *Controller) PointerUp(px, py float64) {
	if !c.stroking {
		return
	}
	c.stroking = false
	gx, gy := c.sess.MapPixelToCell(px, py)
	c.sess.EndStroke(gx, gy)
}

// Stroking reports whether a paint stroke is active.
func (c *Controller) Stroking() bool { return c.stroking }

// PanStart anchors a camera drag at a device pixel.
func (c *Controller) PanStart(px, py float64) {
	c.panning = true
	c.panX, c.panY = px, py
}

// PanMove drags the camera so the anchored world point follows the pointer.
func (c *Controller) PanMove(px, py float64) {
	if !c.panning {
		return
	}
	c.sess.Pan(c.panX, c.panY, px, py)
	c.panX, c.panY = px, py
}

// PanEnd releases the camera drag.
func (c *Controller) PanEnd() { c.panning = false }

// Wheel zooms in for positive dy and out for negative dy.
func (c *Controller) Wheel(dy float64) {
	switch {
	case dy > 0:
		c.Do(ActionZoomIn, time.Time{})
	case dy < 0:
		c.Do(ActionZoomOut, time.Time{})
	}
}
