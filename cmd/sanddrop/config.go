package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sanddrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play would use, after the search path,
speed preset and --fps are applied. The output is valid YAML and can be
saved as ~/.sanddrop/configs/sand.yaml.

Examples:
  sanddrop config
  sanddrop config --speed slow`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		exitErr("%v", err)
	}
	fmt.Print(string(data))
}
