package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taKana671/CubicSameGame/internal/dependencies/mocks"
	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
	"github.com/taKana671/CubicSameGame/internal/engine"
	"github.com/taKana671/CubicSameGame/internal/logging"
)

func TestSimulateSolidBoards(t *testing.T) {
	// Every draw is 0, so each board is a single color.
	game, err := engine.New(mocks.NewMockRandom(), 3, engine.DefaultOptions())
	require.NoError(t, err)

	var events []engine.EventType
	game.Subscribe(func(ev engine.Event) { events = append(events, ev.Type) })

	results, err := simulate(game, nil, 2, 100, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, []boardResult{
		{Size: 3, Turns: 1, Score: 27, Won: true},
		{Size: 3, Turns: 1, Score: 27, Won: true},
	}, results)
	assert.Equal(t, 54, game.TotalScore())
	assert.Equal(t, []engine.EventType{
		engine.EventDelete, engine.EventSettle, engine.EventGameOver,
		engine.EventReset,
		engine.EventDelete, engine.EventSettle, engine.EventGameOver,
	}, events)
}

func TestSimulateStuckBoard(t *testing.T) {
	g, err := engine.NewGrid(3)
	require.NoError(t, err)
	for _, c := range g.Coords() {
		color := engine.ColorRed
		if (c.X+c.Y+c.Z)%2 == 1 {
			color = engine.ColorBlue
		}
		require.NoError(t, g.Set(c, color))
	}
	game, err := engine.NewFromGrid(mocks.NewMockRandom(), g, engine.DefaultOptions())
	require.NoError(t, err)

	results, err := simulate(game, nil, 1, 100, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, []boardResult{{Size: 3, Turns: 0, Score: 0, Won: false}}, results)
}

func TestSimulateIsReproducible(t *testing.T) {
	play := func(picker bool) []boardResult {
		rng := random.NewSeeded(42)
		game, err := engine.New(rng, 5, engine.DefaultOptions())
		require.NoError(t, err)
		var p random.Random
		if picker {
			p = rng
		}
		results, err := simulate(game, p, 3, 10000, logging.Discard())
		require.NoError(t, err)
		return results
	}

	for _, picker := range []bool{false, true} {
		first := play(picker)
		require.Len(t, first, 3)
		assert.Equal(t, first, play(picker), "same seed must replay the same boards (random picker: %v)", picker)
		for _, r := range first {
			assert.Equal(t, 5, r.Size)
			assert.LessOrEqual(t, r.Score, 125)
			assert.Equal(t, r.Score == 125, r.Won)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 3\nscoring:\n  win_rule: initial\n"), 0o600))

	reset := func() {
		flagConfig, flagSize, flagDifficulty, flagDebug = "", 0, "", false
	}
	t.Cleanup(reset)

	reset()
	flagConfig = path
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Board.Size)
	assert.Equal(t, "initial", cfg.Scoring.WinRule)

	flagDifficulty = "Expert"
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Board.Size)

	flagSize = 4
	flagDebug = true
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.Size, "--size wins over --difficulty")
	assert.Equal(t, "debug", cfg.Log.Level)

	flagSize = 9
	_, err = loadConfig()
	assert.Error(t, err)

	flagSize = 0
	flagDifficulty = "impossible"
	_, err = loadConfig()
	assert.Error(t, err)
}
