package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taKana671/CubicSameGame/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultCubicConfig() {
		t.Errorf("embedded YAML = %+v, hardcoded = %+v", cfg, DefaultCubicConfig())
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, expected 5", cfg.Board.Size)
	}
	if cfg.Board.MinSize != 3 || cfg.Board.MaxSize != 6 {
		t.Errorf("size range = %d..%d, expected defaults 3..6", cfg.Board.MinSize, cfg.Board.MaxSize)
	}
	if cfg.Scoring.WinRule != "current" {
		t.Errorf("WinRule = %q, expected current", cfg.Scoring.WinRule)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CubicConfig)
		field  string
	}{
		{"defaults", func(c *CubicConfig) {}, ""},
		{"size below range", func(c *CubicConfig) { c.Board.Size = 2 }, "board.size"},
		{"size above range", func(c *CubicConfig) { c.Board.Size = 7 }, "board.size"},
		{"zero min", func(c *CubicConfig) { c.Board.MinSize = 0 }, "board.min_size"},
		{"max beyond palette", func(c *CubicConfig) { c.Board.MaxSize = engine.PaletteSize + 1 }, "board.max_size"},
		{"inverted range", func(c *CubicConfig) { c.Board.MinSize, c.Board.MaxSize = 5, 4 }, "board"},
		{"unknown win rule", func(c *CubicConfig) { c.Scoring.WinRule = "best" }, "scoring.win_rule"},
		{"initial win rule", func(c *CubicConfig) { c.Scoring.WinRule = "initial" }, ""},
		{"negative duration", func(c *CubicConfig) { c.Animation.MoveTicks = -1 }, "animation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCubicConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.field == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestLoadCubicCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubic.yaml")
	data := []byte("board:\n  size: 6\nscoring:\n  win_rule: initial\nanimation:\n  move_ticks: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCubic(path)
	if err != nil {
		t.Fatalf("LoadCubic: %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Scoring.WinRule != "initial" || cfg.Animation.MoveTicks != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}

	opts := cfg.EngineOptions()
	if opts.MinSize != 3 || opts.MaxSize != 6 || opts.WinRule != engine.WinRuleInitial {
		t.Errorf("EngineOptions() = %+v", opts)
	}
}

func TestLoadCubicErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCubic(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCubic(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCubic(invalid)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected wrapped ValidationError, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultCubicConfig()
	cfg.Board.Size = 5
	cfg.Log.Level = "debug"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestSizeForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		size   int
		ok     bool
	}{
		{DifficultyEasy, 3, true},
		{DifficultyNormal, 4, true},
		{"HARD", 5, true},
		{DifficultyExpert, 6, true},
		{"nightmare", 0, false},
	}

	for _, tc := range tests {
		size, ok := SizeForPreset(tc.preset)
		if size != tc.size || ok != tc.ok {
			t.Errorf("SizeForPreset(%q) = %d, %v; expected %d, %v", tc.preset, size, ok, tc.size, tc.ok)
		}
	}
}

func TestSizeOptions(t *testing.T) {
	got := DefaultCubicConfig().SizeOptions()
	expected := []int{3, 4, 5, 6}
	if len(got) != len(expected) {
		t.Fatalf("SizeOptions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("SizeOptions()[%d] = %d, expected %d", i, got[i], expected[i])
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x.log"); got != filepath.Join(home, "x.log") {
		t.Errorf("ExpandHome(~/x.log) = %q", got)
	}
	if got := ExpandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("ExpandHome should leave absolute paths alone, got %q", got)
	}
}
