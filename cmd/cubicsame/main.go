// cubicsame is a terminal version of SameGame played on a cube of spheres.
//
// Usage:
//
//	cubicsame play           - Play interactively
//	cubicsame sim            - Let the autoplayer clear boards and log every event
//	cubicsame colors         - List the sphere palette
//	cubicsame config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Use a custom config YAML
//	--size <n>          - Starting board size (overrides config)
//	--difficulty <name> - easy, normal, hard, expert (sizes 3..6)
//	--debug             - Log at debug level
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagSize       int
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubicsame",
	Short: "Cubic SameGame - clear a cube of colored spheres",
	Long: `Cubic SameGame is SameGame on an N x N x N cube. Select a sphere to
remove it together with every same-colored sphere connected to it. The
remaining spheres then drift toward the center of the cube. The board is
cleared when every sphere is gone; it is over when no two neighbors match.

Available commands:
  play     - Play interactively
  sim      - Autoplay boards and log every event
  colors   - List the sphere palette
  config   - Print the effective configuration

Examples:
  cubicsame play
  cubicsame play --size 5 --seed 42
  cubicsame sim --seed 7 --boards 3 --debug
  cubicsame config > ~/.cubicsame/configs/cubic.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Starting board size (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(configCmd)
}
