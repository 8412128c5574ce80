package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taKana671/CubicSameGame/internal/core"
	"github.com/taKana671/CubicSameGame/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorPurple:      lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	core.ColorLime:        lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	core.ColorViolet:      lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	core.ColorSky:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// sphereColors maps palette entries to terminal colors.
var sphereColors = map[engine.Color]core.Color{
	engine.ColorRed:     core.ColorRed,
	engine.ColorBlue:    core.ColorBlue,
	engine.ColorYellow:  core.ColorYellow,
	engine.ColorGreen:   core.ColorGreen,
	engine.ColorOrange:  core.ColorOrange,
	engine.ColorMagenta: core.ColorMagenta,
	engine.ColorPurple:  core.ColorPurple,
	engine.ColorLime:    core.ColorLime,
	engine.ColorViolet:  core.ColorViolet,
	engine.ColorSky:     core.ColorSky,
}

// Layout constants
const (
	hudRows    = 3 // Title, scoreboard, spacer
	cellWidth  = 3 // "[●]"
	layerGap   = 2
	menuWidth  = 28
	glyphEmpty = '·'
)

// layerWidth returns the width of one layer panel including its border.
func layerWidth(size int) int {
	return size*cellWidth + 2
}

// visibleLayers returns the first z layer shown and how many fit.
func visibleLayers(size, cursorZ, width int) (first, count int) {
	count = (width + layerGap) / (layerWidth(size) + layerGap)
	count = core.Clamp(count, 1, size)
	first = core.Clamp(cursorZ-count/2, 0, size-count)
	return first, count
}

// drawHUD draws the title and the scoreboard line.
func (m Model) drawHUD(s *core.Screen) {
	s.DrawTextColored(0, 0, centerText("CUBIC SAMEGAME", s.Width()), core.ColorCyan)

	line := fmt.Sprintf("Score %d  Total %d  Last %d  Size %d  %s",
		m.game.Score(), m.game.TotalScore(), m.game.LastDelta(), m.player.Size(), m.statusLabel())
	s.DrawText(1, 1, line)

	if text, ok := m.player.Flash(); ok {
		s.DrawTextColored(len(line)+3, 1, text, core.ColorYellow)
	}
}

func (m Model) statusLabel() string {
	if m.player.Busy() {
		return "..."
	}
	if out, ok := m.player.Outcome(); ok {
		if out.Won {
			return "Cleared"
		}
		return "Game over"
	}
	return "Play"
}

// drawBoard draws the visible z layers side by side, each layer showing
// x across and y down.
func (m Model) drawBoard(s *core.Screen) {
	size := m.player.Size()
	first, count := visibleLayers(size, m.cursor.Z, s.Width())
	w := layerWidth(size)

	top := hudRows
	for i := 0; i < count; i++ {
		z := first + i
		left := i * (w + layerGap)

		frame := core.ColorGray
		if z == m.cursor.Z {
			frame = core.ColorBrightWhite
		}
		s.DrawTextColored(left+1, top, fmt.Sprintf("z=%d", z), frame)
		s.DrawBox(core.NewRect(left, top+1, w, size+2), frame)

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := engine.C(x, y, z)
				col := left + 1 + x*cellWidth
				row := top + 2 + y
				m.drawCell(s, col, row, c)
			}
		}
	}

	if first > 0 {
		s.DrawTextColored(0, top, "<", core.ColorGray)
	}
	if first+count < size {
		s.DrawTextColored(count*(w+layerGap)-layerGap-1, top, ">", core.ColorGray)
	}

	info := fmt.Sprintf("Cursor %s", m.cursor)
	if color, ok, err := m.player.Board().At(m.cursor); err == nil && ok {
		info += "  " + color.String()
	}
	s.DrawText(1, top+3+size, info)
}

func (m Model) drawCell(s *core.Screen, col, row int, c engine.Coord) {
	view := m.player.Cell(c)

	if c == m.cursor && !m.menu.Active() {
		s.SetColored(col, row, '[', core.ColorBrightWhite)
		s.SetColored(col+2, row, ']', core.ColorBrightWhite)
	}

	if !view.Occupied {
		s.SetColored(col+1, row, glyphEmpty, core.ColorGray)
		return
	}

	glyph := '●'
	offset := 0
	switch view.Effect {
	case EffectShake:
		offset = m.player.ShakeOffset()
	case EffectVanish:
		if (m.player.Elapsed()/3)%2 == 1 {
			glyph = '✶'
		}
	case EffectLeaving:
		glyph = '○'
	case EffectArriving:
		glyph = '◉'
	}
	s.SetColored(col+1+offset, row, glyph, sphereColors[view.Color])
}

// drawMenu draws the size selector in the middle of the screen.
func (m Model) drawMenu(s *core.Screen) {
	title := "NEW BOARD"
	if out, ok := m.player.Outcome(); ok {
		title = "GAME OVER"
		if out.Won {
			title = "CLEARED!"
		}
	}

	lines := m.menu.Lines()
	h := len(lines) + 7
	r := core.NewRect((s.Width()-menuWidth)/2, (s.Height()-h)/2, menuWidth, h)

	// Blank the area under the menu.
	for y := r.Y; y < r.Bottom(); y++ {
		s.DrawText(r.X, y, strings.Repeat(" ", r.W))
	}
	s.DrawBox(r, core.ColorCyan)

	inner := menuWidth - 2
	s.DrawTextColored(r.X+1, r.Y+1, centerText(title, inner), core.ColorYellow)
	score := fmt.Sprintf("Score %d  Total %d", m.game.Score(), m.game.TotalScore())
	s.DrawText(r.X+1, r.Y+2, centerText(score, inner))
	s.DrawText(r.X+3, r.Y+4, "Board size:")
	for i, line := range lines {
		c := core.ColorDefault
		if strings.HasPrefix(line, ">") {
			c = core.ColorBrightWhite
		}
		s.DrawTextColored(r.X+5, r.Y+5+i, line, c)
	}
	hint := "enter: start"
	if m.menu.Dismissible() {
		hint += "  esc: back"
	}
	s.DrawTextColored(r.X+1, r.Bottom()-2, centerText(hint, inner), core.ColorGray)
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// SphereStyle returns the terminal style used for a palette color.
func SphereStyle(c engine.Color) lipgloss.Style {
	style, ok := colorStyles[sphereColors[c]]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}
