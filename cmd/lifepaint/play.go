package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the Game of Life window",
	Long: `Open the interactive window. The simulation starts paused.

Controls:
  Space          - Run / pause
  N              - Step one generation
  Right          - Step and speed up
  Left           - Slow down
  1..5           - Cell, eraser, spray, rectangle, stamp
  Tab/P          - Next stamp pattern
  R              - Random fill
  C              - Clear (also resets the generation counter)
  G              - Toggle grid lines
  H              - Toggle the HUD
  Home           - Reset the view
  Wheel, +/-     - Zoom
  Middle/Right   - Drag to pan
  Q/Esc          - Quit

Edits only apply while paused.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		return runGUI(cfg, logger)
	},
}
