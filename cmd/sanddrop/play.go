package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sanddrop/internal/config"
	"github.com/vovakirdan/sanddrop/internal/platform/tui"
	"github.com/vovakirdan/sanddrop/internal/sim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pour sand interactively",
	Long: `Start the interactive sandbox.

Controls:
  Mouse drag  - Drop sand
  Bottom row  - Click a swatch to pick the color
  R           - Clear the grid
  Ctrl+S      - Save a text screenshot
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Speed options:
  slow    - One tick every 4 frames
  normal  - As configured (default one tick per frame)
  fast    - One tick per frame at double frame rate

Examples:
  sanddrop play
  sanddrop play --speed fast
  sanddrop play --config ./my-sand.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
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
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if cfg.Grid.FitTerminal {
		cfg, err = fitTerminal(cfg, rt.ScreenW, rt.ScreenH)
		if err != nil {
			exitErr("%v", err)
		}
	}

	store := openStore(logger)

	runErr := tui.Run(tui.Options{
		Params:   sim.NewParams(cfg),
		Seed:     rt.Seed,
		Interval: cfg.Timing.Interval(),
		Store:    store,
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr("running sandbox: %v", runErr)
	}
}

// fitTerminal resizes the grid to the terminal. Explicit bottom row and
// right bound settings are dropped since they were written for another size.
func fitTerminal(cfg config.SandConfig, termW, termH int) (config.SandConfig, error) {
	cfg.Grid.Width, cfg.Grid.Height = tui.FitGrid(termW, termH)
	cfg.Grid.BottomRow = -1
	cfg.Grid.RightBound = 0
	if err := config.Validate(cfg); err != nil {
		return config.SandConfig{}, err
	}
	return cfg, nil
}
