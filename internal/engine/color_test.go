package engine_test

import (
	"errors"
	"testing"

	"github.com/taKana671/CubicSameGame/internal/dependencies/mocks"
	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
	"github.com/taKana671/CubicSameGame/internal/engine"
)

func TestPaletteHasDistinctColors(t *testing.T) {
	colors := engine.AllColors()
	if len(colors) < 8 {
		t.Fatalf("palette has %d colors, need at least 8", len(colors))
	}

	names := make(map[string]bool)
	chars := make(map[rune]bool)
	for _, c := range colors {
		if names[c.String()] {
			t.Errorf("duplicate color name %q", c.String())
		}
		if chars[c.Char()] {
			t.Errorf("duplicate color char %q", c.Char())
		}
		names[c.String()] = true
		chars[c.Char()] = true

		parsed, ok := engine.ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), parsed, ok)
		}
	}

	if _, ok := engine.ParseColor("mauve"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestSelectColorsRejectsOversizedRequest(t *testing.T) {
	rng := mocks.NewMockRandom()

	for _, n := range []int{-1, engine.PaletteSize + 1} {
		if _, err := engine.SelectColors(rng, n); !errors.Is(err, engine.ErrInsufficientPalette) {
			t.Errorf("SelectColors(%d): expected ErrInsufficientPalette, got %v", n, err)
		}
	}
}

func TestSelectColorsUsesRandomSource(t *testing.T) {
	tests := []struct {
		name     string
		queue    []int
		expected []engine.Color
	}{
		{
			name:     "identity draws",
			queue:    []int{0, 0, 0},
			expected: []engine.Color{engine.ColorRed, engine.ColorBlue, engine.ColorYellow},
		},
		{
			name:     "swap with last",
			queue:    []int{9, 0, 0},
			expected: []engine.Color{engine.ColorSky, engine.ColorBlue, engine.ColorYellow},
		},
		{
			name:     "swapped entry is reachable later",
			queue:    []int{9, 8, 0},
			expected: []engine.Color{engine.ColorSky, engine.ColorRed, engine.ColorYellow},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := mocks.NewMockRandom()
			rng.QueueIntn(tc.queue...)

			got, err := engine.SelectColors(rng, len(tc.expected))
			if err != nil {
				t.Fatalf("SelectColors: %v", err)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Errorf("SelectColors()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestSelectColorsDistinct(t *testing.T) {
	rng := random.NewSeeded(7)

	for i := 0; i < 200; i++ {
		for n := 0; n <= engine.PaletteSize; n++ {
			colors, err := engine.SelectColors(rng, n)
			if err != nil {
				t.Fatalf("SelectColors(%d): %v", n, err)
			}
			if len(colors) != n {
				t.Fatalf("SelectColors(%d) returned %d colors", n, len(colors))
			}
			seen := make(map[engine.Color]bool)
			for _, c := range colors {
				if seen[c] {
					t.Fatalf("SelectColors(%d) returned duplicate %v", n, c)
				}
				seen[c] = true
			}
		}
	}
}
