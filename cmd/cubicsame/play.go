package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taKana671/CubicSameGame/internal/config"
	"github.com/taKana671/CubicSameGame/internal/core"
	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
	"github.com/taKana671/CubicSameGame/internal/engine"
	"github.com/taKana671/CubicSameGame/internal/logging"
	"github.com/taKana671/CubicSameGame/internal/platform/tui"
)

const defaultLogFile = "~/.cubicsame/debug.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start a game in the terminal. Each z layer of the cube is drawn as a
grid; the highlighted layer holds the cursor.

Controls:
  Arrows/HJKL   - Move the cursor within a layer
  [ / ]         - Previous / next layer
  Enter/Space   - Remove the group under the cursor
  R             - Pick a new board size
  ?             - Show all keys
  Q/Ctrl+C      - Quit

Examples:
  cubicsame play
  cubicsame play --difficulty hard
  cubicsame play --seed 42 --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Bubble Tea owns the terminal, so logs go to a file or nowhere.
	logger := logging.Discard()
	var closer io.Closer
	if flagDebug || flagLogFile != "" {
		path := flagLogFile
		if path == "" {
			path = defaultLogFile
		}
		logger, closer, err = logging.OpenFile(config.ExpandHome(path), cfg.Log.Level, "cubicsame")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			// Continue without logging - game still works
			logger = logging.Discard()
		}
	}
	if closer != nil {
		defer closer.Close()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rng := random.NewSeeded(flagSeed)
	opts := cfg.EngineOptions()
	opts.Logger = logger

	game, err := engine.New(rng, cfg.Board.Size, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game.Subscribe(eventLogger(logger))
	logger.Info("session started", "size", cfg.Board.Size, "seed", rng.Seed(), "win_rule", cfg.Scoring.WinRule)

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     rng.Seed(),
	}

	runErr := tui.Run(game, tui.Options{
		Runtime: runtime,
		Timings: tui.TimingsFromConfig(cfg.Animation),
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("program failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(logger, game)
}

func printSummary(logger *log.Logger, game *engine.Game) {
	logger.Info("session ended", "score", game.Score(), "total", game.TotalScore())
	fmt.Printf("Total score: %d\n", game.TotalScore())
}
