// Package config provides YAML-based configuration loading for the
// Cubic SameGame engine and its terminal front end.
package config

import (
	"fmt"

	"github.com/taKana671/CubicSameGame/internal/engine"
)

// CubicConfig contains all configuration for a Cubic SameGame session.
type CubicConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Animation AnimationConfig `yaml:"animation"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig defines the lattice size and the range offered on restart.
type BoardConfig struct {
	Size    int `yaml:"size"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// ScoringConfig defines how a finished board is judged.
type ScoringConfig struct {
	WinRule string `yaml:"win_rule"` // "current" or "initial"
}

// AnimationConfig defines playback durations in ticks.
type AnimationConfig struct {
	ShakeTicks    int `yaml:"shake_ticks"`
	DeleteTicks   int `yaml:"delete_ticks"`
	MoveTicks     int `yaml:"move_ticks"`
	ResetTicks    int `yaml:"reset_ticks"`
	FlourishGroup int `yaml:"flourish_group"` // Group size that triggers the HUD flash (0 = never)
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values the engine cannot use.
func (c CubicConfig) Validate() error {
	b := c.Board
	if b.MinSize < 1 {
		return ValidationError{Field: "board.min_size", Message: fmt.Sprintf("must be at least 1, got %d", b.MinSize)}
	}
	if b.MaxSize > engine.PaletteSize {
		return ValidationError{Field: "board.max_size", Message: fmt.Sprintf("must be at most %d (palette size), got %d", engine.PaletteSize, b.MaxSize)}
	}
	if b.MinSize > b.MaxSize {
		return ValidationError{Field: "board", Message: fmt.Sprintf("min_size %d exceeds max_size %d", b.MinSize, b.MaxSize)}
	}
	if b.Size < b.MinSize || b.Size > b.MaxSize {
		return ValidationError{Field: "board.size", Message: fmt.Sprintf("%d outside %d..%d", b.Size, b.MinSize, b.MaxSize)}
	}

	switch engine.WinRule(c.Scoring.WinRule) {
	case engine.WinRuleCurrent, engine.WinRuleInitial:
	default:
		return ValidationError{Field: "scoring.win_rule", Message: fmt.Sprintf("unknown rule %q", c.Scoring.WinRule)}
	}

	a := c.Animation
	if a.ShakeTicks < 0 || a.DeleteTicks < 0 || a.MoveTicks < 0 || a.ResetTicks < 0 {
		return ValidationError{Field: "animation", Message: "durations must not be negative"}
	}
	return nil
}

// EngineOptions converts the configuration into engine options.
// The caller sets the logger.
func (c CubicConfig) EngineOptions() engine.Options {
	return engine.Options{
		MinSize: c.Board.MinSize,
		MaxSize: c.Board.MaxSize,
		WinRule: engine.WinRule(c.Scoring.WinRule),
	}
}

// SizeOptions returns every size a player may pick on restart.
func (c CubicConfig) SizeOptions() []int {
	sizes := make([]int, 0, c.Board.MaxSize-c.Board.MinSize+1)
	for s := c.Board.MinSize; s <= c.Board.MaxSize; s++ {
		sizes = append(sizes, s)
	}
	return sizes
}
