// sanddrop is a falling-sand toy for the terminal.
//
// Usage:
//
//	sanddrop play            - Drag the mouse to pour sand
//	sanddrop simulate        - Run headless and print the result
//	sanddrop palette         - Show the palette swatches
//	sanddrop config          - Print the effective configuration
//	sanddrop stats           - Show recorded sessions
//
// Global flags:
//
//	--fps <rate>        - Override the configured frame rate
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.sanddrop/sanddrop.db)
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sanddrop/internal/config"
	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Shared by commands that load a sand config
	flagConfig string
	flagSpeed  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sanddrop",
	Short: "Sand Drop - pour colored sand in your terminal",
	Long: `Sand Drop is a falling-sand toy. Press and drag the mouse to drop
particles; they fall, slide off piles and settle into terrain. Click a
swatch on the bottom row to change the sand color.

Available commands:
  play      - Interactive sandbox
  simulate  - Headless run with random drops
  palette   - Show palette colors and layout
  config    - Print the effective configuration
  stats     - View recorded sessions

Examples:
  sanddrop play
  sanddrop play --speed slow
  sanddrop simulate --ticks 500 --drops 200 --seed 42
  sanddrop config > ~/.sanddrop/configs/sand.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statsCmd)
}

// addConfigFlags registers --config and --speed on cmd.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom sand config YAML")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
}

// loadConfig resolves the sand config from flags.
func loadConfig() (config.SandConfig, error) {
	cfg, err := config.LoadSand(flagConfig)
	if err != nil {
		return config.SandConfig{}, err
	}
	preset, err := config.ParsePreset(flagSpeed)
	if err != nil {
		return config.SandConfig{}, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}
	return cfg, nil
}

// runtimeConfig collects the launch settings that come from flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.FrameRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// newLogger builds the process logger. Interactive commands pass
// io.Discard as fallback so log lines never draw over the TUI; headless
// commands pass stderr. A --log-file always wins.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sanddrop",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the session database. Failure is reported as a warning
// and the command continues without statistics.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		logger.Warn("session database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// exitErr prints err the way every command reports failures and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
