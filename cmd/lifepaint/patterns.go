package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List stamp patterns",
	Long:  `Shows the built-in and configured patterns available to the stamp tool.`,
	Args:  cobra.NoArgs,
	RunE:  runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	names := catalog.Names()
	width := len("Name")
	for _, name := range names {
		width = max(width, len(name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %5s  %s\n", width, "Name", "Cells", "Size")
	for _, name := range names {
		p, err := catalog.Load(name)
		if err != nil {
			return err
		}
		w, h := p.Bounds()
		marker := ""
		if name == cfg.Tools.Stamp {
			marker = "  (default)"
		}
		fmt.Fprintf(out, "  %-*s  %5d  %dx%d%s\n", width, name, p.Len(), w, h, marker)
	}
	return nil
}
