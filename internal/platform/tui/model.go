package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/taKana671/CubicSameGame/internal/core"
	"github.com/taKana671/CubicSameGame/internal/engine"
)

// Options configures the board view.
type Options struct {
	Runtime core.RuntimeConfig
	Timings Timings
	Logger  *log.Logger // nil disables logging
}

// Model is the Bubble Tea model for a Cubic SameGame session.
type Model struct {
	game     *engine.Game
	player   *Player
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	menu     *SizeMenu
	logger   *log.Logger
	cursor   engine.Coord
	quitting bool
}

// NewModel creates a new Bubble Tea model driving the given game.
func NewModel(game *engine.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		player: NewPlayer(game.Grid(), opts.Timings),
		screen: core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config: cfg,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   h,
		menu:   &SizeMenu{},
		logger: logger,
	}
	if game.GameOver() {
		// A prepared board may have no moves from the start.
		m.player.Enqueue([]engine.Event{{Type: engine.EventGameOver, Payload: engine.GameOverPayload{
			Won:       game.Won(),
			Score:     game.Score(),
			Remaining: game.Grid().OccupiedCount(),
		}}})
		m.player.Skip()
		m.openMenu(false)
	}
	return m
}

// boardHeight leaves room for the help line below the screen buffer.
func boardHeight(h int) int {
	return max(h-3, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Only quit and help are accepted
// while an animation is playing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.mapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	if m.player.Busy() {
		return m, nil
	}

	if m.menu.Active() {
		m.handleMenuAction(action)
		return m, nil
	}

	size := m.player.Size()
	switch action {
	case core.ActionLeft:
		m.cursor.X = core.Wrap(m.cursor.X-1, size)
	case core.ActionRight:
		m.cursor.X = core.Wrap(m.cursor.X+1, size)
	case core.ActionUp:
		m.cursor.Y = core.Wrap(m.cursor.Y-1, size)
	case core.ActionDown:
		m.cursor.Y = core.Wrap(m.cursor.Y+1, size)
	case core.ActionLayerUp:
		m.cursor.Z = core.Wrap(m.cursor.Z+1, size)
	case core.ActionLayerDown:
		m.cursor.Z = core.Wrap(m.cursor.Z-1, size)
	case core.ActionSelect:
		m.selectCursor()
	case core.ActionRestart:
		m.openMenu(!m.game.GameOver())
	}
	return m, nil
}

func (m Model) handleMenuAction(action core.Action) {
	switch action {
	case core.ActionUp:
		m.menu.Up()
	case core.ActionDown:
		m.menu.Down()
	case core.ActionBack:
		if m.menu.Dismissible() {
			m.menu.Close()
		}
	case core.ActionSelect:
		m.restart(m.menu.Selected())
	}
}

func (m Model) selectCursor() {
	events, err := m.game.Select(m.cursor)
	if err != nil {
		m.logger.Error("select failed", "at", m.cursor, "err", err)
		return
	}
	m.player.Enqueue(events)
	if m.game.GameOver() {
		m.openMenu(false)
	}
}

func (m Model) restart(size int) {
	events, err := m.game.Restart(size)
	if err != nil {
		m.logger.Error("restart failed", "size", size, "err", err)
		return
	}
	m.menu.Close()
	m.player.Enqueue(events)
	if m.game.GameOver() {
		m.openMenu(false)
	}
}

func (m Model) openMenu(dismissible bool) {
	m.menu.Open(m.game.Size(), m.game.MinSize(), m.game.MaxSize(), dismissible)
}

// handleTick advances animations.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.player.Tick()

	// The board may have changed size after a restart.
	size := m.player.Size()
	m.cursor = engine.C(
		core.Clamp(m.cursor.X, 0, size-1),
		core.Clamp(m.cursor.Y, 0, size-1),
		core.Clamp(m.cursor.Z, 0, size-1),
	)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD(m.screen)
	m.drawBoard(m.screen)
	if m.menu.Active() && !m.player.Busy() {
		m.drawMenu(m.screen)
	}

	return RenderScreen(m.screen) + "\n\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *engine.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
