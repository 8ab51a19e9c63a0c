//go:build !ebiten

package main

import (
	"errors"

	"github.com/charmbracelet/log"

	"lifepaint/internal/config"
)

var errNoGUI = errors.New("the GUI requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/lifepaint`")

func runGUI(*config.Config, *log.Logger) error { return errNoGUI }
