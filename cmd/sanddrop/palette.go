package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sanddrop/internal/sim"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show palette colors and their columns",
	Long: `List the palette swatches painted on the bottom row, the columns
each one covers and the empty color.

Examples:
  sanddrop palette
  sanddrop palette --config ./my-sand.yaml`,
	Args: cobra.NoArgs,
	Run:  runPalette,
}

func init() {
	addConfigFlags(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	p := sim.NewParams(cfg)

	swatch := func(hex string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	}

	if !p.HasPalette() {
		fmt.Println("Palette row disabled; sand uses the first color.")
	} else {
		fmt.Printf("Palette on row %d:\n", p.PaletteRow)
	}
	fmt.Println()

	fmt.Printf("  %-4s  %-7s  %s\n", "", "Color", "Columns")
	fmt.Printf("  %-4s  %-7s  %s\n", "", "-----", "-------")
	for _, b := range sim.Bands(p.Width, p.Palette) {
		fmt.Printf("  %s  %-7s  %d-%d\n", swatch(b.Color.Hex()), b.Color.Hex(), b.Start, b.End-1)
	}

	fmt.Println()
	fmt.Printf("Empty: %s %s\n", swatch(p.Empty.Hex()), p.Empty.Hex())
}
