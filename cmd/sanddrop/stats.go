package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sanddrop/internal/platform/tui"
	"github.com/vovakirdan/sanddrop/internal/storage"
)

var flagPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded sessions",
	Long: `Display recent play and simulate sessions with their counters.

Examples:
  sanddrop stats
  sanddrop stats --plain`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening session database: %v", err)
	}
	defer store.Close()

	if !flagPlain {
		rt := runtimeConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW = w
			rt.ScreenH = h
		}
		if err := tui.RunStats(store, rt.ScreenW, rt.ScreenH); err != nil {
			exitErr("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(20)
	if err != nil {
		exitErr("retrieving sessions: %v", err)
	}
	totals, err := store.Totals()
	if err != nil {
		exitErr("retrieving totals: %v", err)
	}

	fmt.Println("Sand Drop sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sanddrop play' to make some sand!")
		return
	}

	const rowFmt = "  %-13s %-8s %-7s %7s %8s %8s %6s %8s\n"
	cols := make([]any, len(tui.SessionColumns))
	for i, c := range tui.SessionColumns {
		cols[i] = c
	}
	fmt.Printf(rowFmt, cols...)
	for _, s := range sessions {
		row := tui.SessionRow(s)
		vals := make([]any, len(row))
		for i, v := range row {
			vals[i] = v
		}
		fmt.Printf(rowFmt, vals...)
	}

	fmt.Println()
	fmt.Println(tui.TotalsLine(totals))
}
