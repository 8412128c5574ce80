package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
	"github.com/taKana671/CubicSameGame/internal/engine"
	"github.com/taKana671/CubicSameGame/internal/logging"
)

var (
	flagBoards   int
	flagRandom   bool
	flagMaxTurns int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Autoplay boards and log every event",
	Long: `Play boards without a terminal UI. By default the autoplayer always
selects the first removable sphere in x, y, z order, so a seed fully
determines the move sequence. With --random it picks a removable sphere at
random from the same seed.

Events are logged to stderr (use --debug to include every move); a summary
table is printed to stdout.

Examples:
  cubicsame sim --seed 7
  cubicsame sim --seed 7 --size 6 --boards 5 --random
  cubicsame sim --seed 7 --debug 2> moves.log`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagBoards, "boards", 1, "Number of boards to play")
	simCmd.Flags().BoolVar(&flagRandom, "random", false, "Pick removable spheres at random")
	simCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 10000, "Give up on a board after this many selections")
}

// boardResult is the outcome of one autoplayed board.
type boardResult struct {
	Size  int
	Turns int
	Score int
	Won   bool
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, "sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogFile != "" {
		fileLogger, closer, fileErr := logging.OpenFile(flagLogFile, cfg.Log.Level, "sim")
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", fileErr)
			os.Exit(1)
		}
		defer closer.Close()
		logger = fileLogger
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
	logger.Info("simulation started", "size", cfg.Board.Size, "seed", rng.Seed(), "boards", flagBoards)

	var picker random.Random
	if flagRandom {
		picker = rng
	}

	results, err := simulate(game, picker, flagBoards, flagMaxTurns, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResults(results, game.TotalScore())
}

// simulate plays boards until each is over, restarting at the same size
// between boards. A nil picker always takes the first removable sphere.
func simulate(game *engine.Game, picker random.Random, boards, maxTurns int, logger *log.Logger) ([]boardResult, error) {
	results := make([]boardResult, 0, boards)

	for b := 0; b < boards; b++ {
		if b > 0 {
			if _, err := game.Restart(game.Size()); err != nil {
				return results, fmt.Errorf("restart board %d: %w", b+1, err)
			}
		}

		turns := 0
		for !game.GameOver() && turns < maxTurns {
			cells := engine.DeletableCells(game.Grid())
			if len(cells) == 0 {
				break
			}
			pick := cells[0]
			if picker != nil {
				pick = cells[picker.Intn(len(cells))]
			}
			if _, err := game.Select(pick); err != nil {
				return results, fmt.Errorf("select %s: %w", pick, err)
			}
			turns++
		}
		if !game.GameOver() {
			logger.Warn("turn limit reached", "board", b+1, "turns", turns)
		}

		results = append(results, boardResult{
			Size:  game.Size(),
			Turns: turns,
			Score: game.Score(),
			Won:   game.Won(),
		})
	}
	return results, nil
}

func printResults(results []boardResult, total int) {
	fmt.Printf("  %-5s  %-5s  %-5s  %-9s  %s\n", "Board", "Size", "Turns", "Score", "Result")
	fmt.Printf("  %-5s  %-5s  %-5s  %-9s  %s\n", "-----", "----", "-----", "-----", "------")
	cleared := 0
	for i, r := range results {
		result := "stuck"
		if r.Won {
			result = "cleared"
			cleared++
		}
		score := fmt.Sprintf("%d/%d", r.Score, r.Size*r.Size*r.Size)
		fmt.Printf("  %-5d  %-5d  %-5d  %-9s  %s\n", i+1, r.Size, r.Turns, score, result)
	}
	fmt.Println()
	fmt.Printf("Cleared %d of %d boards, total score %d\n", cleared, len(results), total)
}
