package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taKana671/CubicSameGame/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that play and sim would use, after the
config file search and command line overrides, as YAML.

Search order:
  --config <path>
  ~/.cubicsame/configs/cubic.yaml
  ./configs/cubic.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
