package engine

import (
	"fmt"
	"strings"

	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
)

// Color identifies a sphere color. Only equality is meaningful to the engine;
// renderers map each value to something visible.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorYellow
	ColorGreen
	ColorOrange
	ColorMagenta
	ColorPurple
	ColorLime
	ColorViolet
	ColorSky
	colorCount // Sentinel value for iteration
)

// PaletteSize is the number of colors in the fixed palette.
const PaletteSize = int(colorCount)

var colorNames = [...]string{
	ColorRed:     "red",
	ColorBlue:    "blue",
	ColorYellow:  "yellow",
	ColorGreen:   "green",
	ColorOrange:  "orange",
	ColorMagenta: "magenta",
	ColorPurple:  "purple",
	ColorLime:    "lime",
	ColorViolet:  "violet",
	ColorSky:     "sky",
}

// String returns the string representation of a color.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// Char returns a single character representation for plain-text output.
// Purple and violet use lowercase letters to stay distinct from
// their uppercase neighbours.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorOrange:
		return 'O'
	case ColorMagenta:
		return 'M'
	case ColorPurple:
		return 'p'
	case ColorLime:
		return 'L'
	case ColorViolet:
		return 'v'
	case ColorSky:
		return 'S'
	default:
		return '?'
	}
}

// ParseColor converts a color name to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if name == s {
			return Color(i), true
		}
	}
	return ColorRed, false
}

// AllColors returns every color of the fixed palette in declaration order.
func AllColors() []Color {
	colors := make([]Color, PaletteSize)
	for i := 0; i < PaletteSize; i++ {
		colors[i] = Color(i)
	}
	return colors
}

// SelectColors returns n distinct colors sampled uniformly without
// replacement from the palette.
func SelectColors(rng random.Random, n int) ([]Color, error) {
	if n < 0 || n > PaletteSize {
		return nil, fmt.Errorf("%w: %d colors requested, palette has %d", ErrInsufficientPalette, n, PaletteSize)
	}

	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	pool := AllColors()
	for i := 0; i < n; i++ {
		j := i + rng.Intn(PaletteSize-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	selected := make([]Color, n)
	copy(selected, pool[:n])
	return selected, nil
}

// RandomColor picks one color uniformly (with replacement) from colors.
func RandomColor(rng random.Random, colors []Color) Color {
	return colors[rng.Intn(len(colors))]
}
