//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifepaint/internal/render"
	"lifepaint/internal/session"
	"lifepaint/internal/ui"
)

const hudWidth = 240

var background = color.RGBA{R: 12, G: 12, B: 14, A: 255}

// keyActions maps just-pressed keys to controller actions.
var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:      ActionToggleRun,
	ebiten.KeyN:          ActionStep,
	ebiten.KeyArrowRight: ActionStepFaster,
	ebiten.KeyArrowLeft:  ActionSlower,
	ebiten.KeyR:          ActionRandomize,
	ebiten.KeyC:          ActionClear,
	ebiten.KeyHome:       ActionResetView,
	ebiten.KeyTab:        ActionCycleStamp,
	ebiten.KeyP:          ActionCycleStamp,
	ebiten.KeyEqual:      ActionZoomIn,
	ebiten.KeyMinus:      ActionZoomOut,
	ebiten.KeyDigit1:     ActionToolSingle,
	ebiten.KeyDigit2:     ActionToolEraser,
	ebiten.KeyDigit3:     ActionToolSpray,
	ebiten.KeyDigit4:     ActionToolRectangle,
	ebiten.KeyDigit5:     ActionToolStamp,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	ctrl    *Controller
	grid    *render.GridRenderer
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *log.Logger
}

// New constructs a Game for sess.
func New(sess *session.Session, zoomIn, zoomOut float64, logger *log.Logger) *Game {
	return &Game{
		sess:    sess,
		ctrl:    NewController(sess, zoomIn, zoomOut),
		grid:    render.NewGridRenderer(sess.Life()),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(sess, hudWidth),
		logger:  logger,
	}
}

// Update handles input and advances the simulation when its interval elapses.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit", "generation", g.sess.Generation())
		return ebiten.Termination
	}
	now := time.Now()
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.ctrl.Do(action, now)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.hud.Refresh()
	g.handlePointer()
	g.sess.Update(now)
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !g.hud.Click(mx, my) {
			g.ctrl.PointerDown(px, py)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctrl.PointerUp(px, py)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.PointerMove(px, py)
	}

	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
		switch {
		case inpututil.IsMouseButtonJustPressed(b):
			g.ctrl.PanStart(px, py)
		case inpututil.IsMouseButtonJustReleased(b):
			g.ctrl.PanEnd()
		case ebiten.IsMouseButtonPressed(b):
			g.ctrl.PanMove(px, py)
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.ctrl.Wheel(dy)
	}
}

// Draw renders the grid, overlay, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	l := g.sess.Life()
	v := g.sess.Viewport()
	g.grid.Draw(screen, l, v)
	a, b, ok := g.sess.Tools().Selection()
	g.overlay.Draw(screen, v, l.Size(), a, b, ok)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the viewport follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sess.ResizeViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
