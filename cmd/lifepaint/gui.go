//go:build ebiten

package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"lifepaint/internal/app"
	"lifepaint/internal/config"
	"lifepaint/internal/session"
)

func runGUI(cfg *config.Config, logger *log.Logger) error {
	sess, err := session.New(cfg, logger)
	if err != nil {
		return err
	}
	game := app.New(sess, cfg.Viewport.ZoomInStep, cfg.Viewport.ZoomOutStep, logger)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	size := sess.Life().Size()
	logger.Info("starting", "cols", size.W, "rows", size.H, "interval", sess.Interval(), "stamp", sess.StampName())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
