package engine

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/taKana671/CubicSameGame/internal/dependencies/random"
)

// Status is the state of the game session.
type Status int

const (
	StatusPlay Status = iota
	StatusResolving
	StatusSettling
	StatusGameOver
	StatusResetting
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlay:
		return "Play"
	case StatusResolving:
		return "Resolving"
	case StatusSettling:
		return "Settling"
	case StatusGameOver:
		return "GameOver"
	case StatusResetting:
		return "Resetting"
	default:
		return "Unknown"
	}
}

// WinRule decides which board volume a cleared score is compared against.
type WinRule string

const (
	// WinRuleCurrent compares the score with the current size³.
	WinRuleCurrent WinRule = "current"
	// WinRuleInitial compares the score with the first board's size³,
	// even after restarts at another size.
	WinRuleInitial WinRule = "initial"
)

// Default size bounds offered to players.
const (
	DefaultMinSize = 3
	DefaultMaxSize = 6
)

// Options configures a Game.
type Options struct {
	MinSize int
	MaxSize int
	WinRule WinRule
	Logger  *log.Logger // nil disables logging
}

// DefaultOptions returns the standard 3..6 configuration.
func DefaultOptions() Options {
	return Options{
		MinSize: DefaultMinSize,
		MaxSize: DefaultMaxSize,
		WinRule: WinRuleCurrent,
	}
}

// Game is the session state machine. It owns the grid exclusively and is
// not safe for concurrent use; drive it from a single event loop.
type Game struct {
	rng    random.Random
	opts   Options
	logger *log.Logger

	grid        *Grid
	colors      []Color
	initialSize int

	score      int
	totalScore int
	lastDelta  int
	status     Status
	won        bool

	seq       uint64
	listeners []Listener
	pending   []Event
}

// New creates a game with a freshly populated board of the given size.
func New(rng random.Random, size int, opts Options) (*Game, error) {
	g, err := newGame(rng, opts)
	if err != nil {
		return nil, err
	}
	if err := g.checkSize(size); err != nil {
		return nil, err
	}
	g.initialSize = size
	if err := g.populate(size); err != nil {
		return nil, err
	}
	g.status = StatusPlay
	g.finishTurn()
	g.pending = nil

	g.logger.Debug("game created", "size", size, "colors", len(g.colors), "status", g.status)
	return g, nil
}

// NewFromGrid starts a game on a prepared board. The grid is copied; its
// distinct colors become the session palette. rng is used for restarts.
func NewFromGrid(rng random.Random, grid *Grid, opts Options) (*Game, error) {
	g, err := newGame(rng, opts)
	if err != nil {
		return nil, err
	}
	if err := g.checkSize(grid.Size()); err != nil {
		return nil, err
	}
	g.grid = grid.Clone()
	g.colors = colorsPresent(g.grid)
	g.initialSize = grid.Size()
	g.status = StatusPlay
	g.finishTurn()
	g.pending = nil
	return g, nil
}

func newGame(rng random.Random, opts Options) (*Game, error) {
	if opts.MinSize == 0 && opts.MaxSize == 0 {
		def := DefaultOptions()
		opts.MinSize, opts.MaxSize = def.MinSize, def.MaxSize
	}
	if opts.WinRule == "" {
		opts.WinRule = WinRuleCurrent
	}
	if opts.MaxSize > PaletteSize {
		return nil, fmt.Errorf("%w: max size %d needs %d colors, palette has %d",
			ErrInsufficientPalette, opts.MaxSize, opts.MaxSize, PaletteSize)
	}
	if opts.MinSize < 1 || opts.MinSize > opts.MaxSize {
		return nil, fmt.Errorf("%w: bad range [%d,%d]", ErrInvalidSize, opts.MinSize, opts.MaxSize)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		rng:    rng,
		opts:   opts,
		logger: logger,
	}, nil
}

// Subscribe registers a listener for all future events.
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Select handles a cell selection. Outside the Play state, or on an empty
// cell, it does nothing. An isolated sphere produces only a shake event.
// Otherwise the group is removed, the board settles and game over is
// checked; the returned events describe every change in order.
func (g *Game) Select(c Coord) ([]Event, error) {
	if err := g.grid.check(c); err != nil {
		return nil, err
	}
	if g.status != StatusPlay {
		return nil, nil
	}
	cell := g.grid.cell(c)
	if !cell.Occupied {
		return nil, nil
	}

	g.pending = nil
	g.status = StatusResolving

	if !IsDeletable(g.grid, c) {
		g.emit(EventShake, ShakePayload{Coord: c})
		g.status = StatusPlay
		return g.flush(), nil
	}

	group := ConnectedGroup(g.grid, c)
	for _, member := range group {
		g.grid.cells[g.grid.Tag(member)] = Cell{}
	}
	g.lastDelta = len(group)
	g.score += len(group)
	g.totalScore += len(group)
	g.logger.Debug("group removed", "at", c, "group", len(group), "score", g.score)
	g.emit(EventDelete, DeletePayload{
		Coords:     group,
		Color:      cell.Color,
		ScoreDelta: len(group),
	})

	g.status = StatusSettling
	moves := Settle(g.grid)
	g.logger.Debug("board settled", "moves", len(moves))
	g.emit(EventSettle, SettlePayload{Moves: moves})

	g.status = StatusPlay
	g.finishTurn()
	return g.flush(), nil
}

// SelectTag decodes a cell tag and selects it.
func (g *Game) SelectTag(tag int) ([]Event, error) {
	c, err := g.grid.CoordOf(tag)
	if err != nil {
		return nil, err
	}
	return g.Select(c)
}

// Restart discards the board and starts a new one of the given size.
// The session score resets; the total score carries over. Requests while
// a selection is being resolved are ignored.
func (g *Game) Restart(size int) ([]Event, error) {
	if err := g.checkSize(size); err != nil {
		return nil, err
	}
	if g.status != StatusPlay && g.status != StatusGameOver {
		return nil, nil
	}

	prev := g.status
	g.pending = nil
	g.status = StatusResetting
	if err := g.populate(size); err != nil {
		g.status = prev
		return nil, err
	}
	g.score = 0
	g.lastDelta = 0
	g.won = false
	g.logger.Info("board reset", "size", size, "total", g.totalScore)
	g.emit(EventReset, ResetPayload{
		Size:   size,
		Colors: g.Colors(),
		Board:  g.grid.Snapshot(),
	})

	g.status = StatusPlay
	g.finishTurn()
	return g.flush(), nil
}

// populate replaces the grid with a full random board.
func (g *Game) populate(size int) error {
	grid, err := NewGrid(size)
	if err != nil {
		return err
	}
	colors, err := SelectColors(g.rng, size)
	if err != nil {
		return err
	}
	grid.Populate(g.rng, colors)
	g.grid = grid
	g.colors = colors
	return nil
}

// finishTurn moves to GameOver when no removable group is left.
func (g *Game) finishTurn() {
	if HasAnyMove(g.grid) {
		return
	}
	g.status = StatusGameOver
	g.won = g.score == g.target()
	remaining := g.grid.OccupiedCount()
	g.logger.Info("game over", "won", g.won, "score", g.score, "remaining", remaining)
	g.emit(EventGameOver, GameOverPayload{
		Won:       g.won,
		Score:     g.score,
		Remaining: remaining,
	})
}

// target is the score that counts as a cleared board.
func (g *Game) target() int {
	size := g.grid.Size()
	if g.opts.WinRule == WinRuleInitial {
		size = g.initialSize
	}
	return size * size * size
}

func (g *Game) checkSize(size int) error {
	if size < g.opts.MinSize || size > g.opts.MaxSize {
		return fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidSize, size, g.opts.MinSize, g.opts.MaxSize)
	}
	return nil
}

func (g *Game) emit(t EventType, payload any) {
	g.seq++
	ev := Event{Seq: g.seq, Type: t, Payload: payload}
	g.pending = append(g.pending, ev)
	for _, l := range g.listeners {
		l(ev)
	}
}

func (g *Game) flush() []Event {
	events := g.pending
	g.pending = nil
	return events
}

// Status returns the current state.
func (g *Game) Status() Status {
	return g.status
}

// Size returns the current edge length.
func (g *Game) Size() int {
	return g.grid.Size()
}

// MinSize and MaxSize return the accepted restart range.
func (g *Game) MinSize() int { return g.opts.MinSize }
func (g *Game) MaxSize() int { return g.opts.MaxSize }

// Score returns the cells removed from the current board.
func (g *Game) Score() int {
	return g.score
}

// TotalScore returns the cells removed across all boards of this session.
func (g *Game) TotalScore() int {
	return g.totalScore
}

// LastDelta returns the size of the most recently removed group.
func (g *Game) LastDelta() int {
	return g.lastDelta
}

// GameOver returns true once no removable group remains.
func (g *Game) GameOver() bool {
	return g.status == StatusGameOver
}

// Won reports whether the finished board counts as cleared.
// Always false before game over.
func (g *Game) Won() bool {
	return g.status == StatusGameOver && g.won
}

// Colors returns the palette subset in use.
func (g *Game) Colors() []Color {
	colors := make([]Color, len(g.colors))
	copy(colors, g.colors)
	return colors
}

// Grid returns a copy of the board.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// ColorAt returns the occupant at c.
func (g *Game) ColorAt(c Coord) (Color, bool, error) {
	return g.grid.At(c)
}

// colorsPresent returns the distinct colors on the grid in palette order.
func colorsPresent(grid *Grid) []Color {
	seen := make(map[Color]bool)
	for _, cell := range grid.cells {
		if cell.Occupied {
			seen[cell.Color] = true
		}
	}
	colors := make([]Color, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	return colors
}
