package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sanddrop/internal/platform/window"
	"github.com/vovakirdan/sanddrop/internal/sim"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Pour sand in a desktop window",
	Long: `Open the sandbox in a desktop window instead of the terminal.
Needs a binary built with -tags ebiten.

Controls:
  Mouse drag  - Drop sand
  Bottom row  - Click a swatch to pick the color
  R           - Clear the grid
  Q/Esc       - Quit

Examples:
  go run -tags ebiten ./cmd/sanddrop window --scale 16`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addConfigFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 16, "Pixels per cell")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	rt := runtimeConfig()
	if err := window.Run(window.Options{
		Params:    sim.NewParams(cfg),
		Seed:      rt.Seed,
		Scale:     flagScale,
		FrameRate: cfg.Timing.FrameRate,
		TickEvery: cfg.Timing.ClampedTickFrames(),
		Logger:    logger,
	}); err != nil {
		exitErr("%v", err)
	}
}
