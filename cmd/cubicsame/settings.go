package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/taKana671/CubicSameGame/internal/config"
	"github.com/taKana671/CubicSameGame/internal/engine"
)

// loadConfig loads the configuration and applies the command line
// overrides. --size wins over --difficulty.
func loadConfig() (config.CubicConfig, error) {
	cfg, err := config.LoadCubic(config.ExpandHome(flagConfig))
	if err != nil {
		return config.CubicConfig{}, err
	}

	if flagDifficulty != "" {
		size, ok := config.SizeForPreset(config.DifficultyPreset(flagDifficulty))
		if !ok {
			return config.CubicConfig{}, fmt.Errorf("unknown difficulty %q (easy, normal, hard, expert)", flagDifficulty)
		}
		cfg.Board.Size = size
	}
	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.CubicConfig{}, err
	}
	return cfg, nil
}

// eventLogger returns a listener that logs every engine event.
func eventLogger(logger *log.Logger) engine.Listener {
	return func(ev engine.Event) {
		switch p := ev.Payload.(type) {
		case engine.ShakePayload:
			logger.Debug("shake", "seq", ev.Seq, "at", p.Coord)
		case engine.DeletePayload:
			logger.Info("delete", "seq", ev.Seq, "color", p.Color, "group", p.ScoreDelta)
		case engine.SettlePayload:
			logger.Debug("settle", "seq", ev.Seq, "moves", len(p.Moves))
			for _, mv := range p.Moves {
				logger.Debug("move", "from", mv.From, "to", mv.To)
			}
		case engine.ResetPayload:
			logger.Info("reset", "seq", ev.Seq, "size", p.Size, "colors", len(p.Colors))
		case engine.GameOverPayload:
			logger.Info("game over", "seq", ev.Seq, "won", p.Won, "score", p.Score, "remaining", p.Remaining)
		}
	}
}
