package config

import (
	_ "embed"

	"github.com/taKana671/CubicSameGame/internal/engine"
)

//go:embed defaults/cubic.yaml
var defaultCubicYAML []byte

// DefaultCubicConfig returns the default configuration.
func DefaultCubicConfig() CubicConfig {
	return CubicConfig{
		Board: BoardConfig{
			Size:    4,
			MinSize: 3,
			MaxSize: 6,
		},
		Scoring: ScoringConfig{
			WinRule: string(engine.WinRuleCurrent),
		},
		Animation: AnimationConfig{
			ShakeTicks:    18,
			DeleteTicks:   18,
			MoveTicks:     12,
			ResetTicks:    30,
			FlourishGroup: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCubicYAML
}
