package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sanddrop/internal/config"
	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
	"github.com/vovakirdan/sanddrop/internal/storage"
)

var (
	flagTicks int
	flagDrops int
	flagNoDB  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a terminal UI",
	Long: `Drop particles at random columns along the top row, one per tick,
run for a fixed number of ticks and print the final grid as text.

The same --seed always produces the same grid.

Examples:
  sanddrop simulate
  sanddrop simulate --ticks 1000 --drops 400 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addConfigFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagDrops, "drops", 100, "Number of particles to drop")
	simulateCmd.Flags().BoolVar(&flagNoDB, "no-db", false, "Do not record the run")
}

// headlessRun is the outcome of a simulate run.
type headlessRun struct {
	Grid     *core.Grid
	Params   sim.Params
	Stats    sim.Stats
	Duration time.Duration
}

// runHeadless drives a simulation for ticks steps. While drops remain, one
// particle is spawned per tick at a seeded random top-row column. Occupied
// columns are skipped, so fewer than drops particles may land.
func runHeadless(cfg config.SandConfig, seed int64, ticks, drops int, logger *log.Logger) (headlessRun, error) {
	p := sim.NewParams(cfg)
	grid := core.NewGrid(p.Width, p.Height, p.Empty)
	s, err := sim.New(p, grid, sim.NewRand(seed), sim.WithLogger(logger))
	if err != nil {
		return headlessRun{}, err
	}
	s.Setup()

	columns := sim.NewRand(seed + 1)
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if i < drops {
			s.Spawn(columns.IntN(p.Width), 0)
		}
		res := s.OnTick()
		if res.Settled > 0 {
			logger.Debug("tick", "n", res.Tick, "fell", res.Fell, "slid", res.Slid, "settled", res.Settled, "active", res.Active)
		}
	}

	return headlessRun{Grid: grid, Params: p, Stats: s.Stats(), Duration: time.Since(start)}, nil
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	run, err := runHeadless(cfg, seed, flagTicks, flagDrops, logger)
	if err != nil {
		exitErr("%v", err)
	}

	fmt.Println(run.Grid.ASCII(run.Params.Empty, nil))
	logger.Info("simulation finished",
		"seed", seed,
		"ticks", run.Stats.Ticks,
		"spawned", run.Stats.Spawned,
		"settled", run.Stats.Settled,
		"falling", run.Stats.Active(),
		"elapsed", run.Duration,
	)

	if flagNoDB {
		return
	}
	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	if _, err := store.SaveSession(storage.Session{
		Mode:     "simulate",
		Seed:     seed,
		GridW:    run.Params.Width,
		GridH:    run.Params.Height,
		Ticks:    run.Stats.Ticks,
		Spawned:  run.Stats.Spawned,
		Settled:  run.Stats.Settled,
		Duration: run.Duration,
	}); err != nil {
		logger.Warn("cannot save session", "err", err)
	}
}
