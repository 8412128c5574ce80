package tui

import (
	"github.com/taKana671/CubicSameGame/internal/config"
	"github.com/taKana671/CubicSameGame/internal/engine"
)

// flashDuration is how long the flourish message stays on the HUD.
const flashDuration = 90 // ~1.5s at 60fps

// Timings holds animation durations in ticks.
type Timings struct {
	Shake         int
	Delete        int
	Move          int
	Reset         int
	FlourishGroup int // 0 disables the flourish
}

// TimingsFromConfig converts the animation section of the config.
func TimingsFromConfig(a config.AnimationConfig) Timings {
	return Timings{
		Shake:         a.ShakeTicks,
		Delete:        a.DeleteTicks,
		Move:          a.MoveTicks,
		Reset:         a.ResetTicks,
		FlourishGroup: a.FlourishGroup,
	}
}

// Effect is a transient visual state of a displayed cell.
type Effect int

const (
	EffectNone     Effect = iota
	EffectShake           // Isolated sphere wobbling
	EffectVanish          // Part of a group being removed
	EffectLeaving         // Sphere about to move away
	EffectArriving        // Sphere that just moved in
)

// CellView is what the renderer draws for one lattice cell.
type CellView struct {
	Occupied bool
	Color    engine.Color
	Effect   Effect
}

type stepKind int

const (
	stepShake stepKind = iota
	stepDelete
	stepMove
	stepReset
	stepGameOver
)

// step is one queued animation. The display board is updated when the
// step finishes, so the engine's result is never ahead of what was shown.
type step struct {
	kind   stepKind
	ticks  int
	coord  engine.Coord
	vanish map[engine.Coord]bool
	moves  []engine.Move
	leave  map[engine.Coord]bool
	arrive map[engine.Coord]engine.Color
	reset  *engine.ResetPayload
	over   *engine.GameOverPayload
}

// Player replays engine events on its own copy of the board.
// The engine finishes a whole turn at once; the player spreads the
// turn's events over ticks so the front end can show them.
type Player struct {
	timings Timings
	board   *engine.Grid
	queue   []step
	elapsed int

	flash     int
	flashText string
	over      *engine.GameOverPayload
}

// NewPlayer creates a player showing the given board.
func NewPlayer(board *engine.Grid, t Timings) *Player {
	return &Player{
		timings: t,
		board:   board.Clone(),
	}
}

// Enqueue schedules the events of one engine call.
func (p *Player) Enqueue(events []engine.Event) {
	for _, ev := range events {
		switch payload := ev.Payload.(type) {
		case engine.ShakePayload:
			p.queue = append(p.queue, step{kind: stepShake, ticks: p.timings.Shake, coord: payload.Coord})

		case engine.DeletePayload:
			vanish := make(map[engine.Coord]bool, len(payload.Coords))
			for _, c := range payload.Coords {
				vanish[c] = true
			}
			p.queue = append(p.queue, step{kind: stepDelete, ticks: p.timings.Delete, vanish: vanish})
			if p.timings.FlourishGroup > 0 && payload.ScoreDelta >= p.timings.FlourishGroup {
				p.flash = flashDuration
				p.flashText = flourishText(payload.ScoreDelta)
			}

		case engine.SettlePayload:
			for _, wave := range splitWaves(payload.Moves) {
				p.queue = append(p.queue, step{kind: stepMove, ticks: p.timings.Move, moves: wave})
			}

		case engine.ResetPayload:
			reset := payload
			p.queue = append(p.queue, step{kind: stepReset, ticks: p.timings.Reset, reset: &reset})

		case engine.GameOverPayload:
			over := payload
			p.queue = append(p.queue, step{kind: stepGameOver, over: &over})
		}
	}
	p.prepare()
}

// splitWaves groups consecutive moves that can be shown at the same time.
// A wave ends when a sphere that moved in it moves again.
func splitWaves(moves []engine.Move) [][]engine.Move {
	var waves [][]engine.Move
	var wave []engine.Move
	dest := make(map[engine.Coord]bool)
	for _, mv := range moves {
		if dest[mv.From] {
			waves = append(waves, wave)
			wave = nil
			dest = make(map[engine.Coord]bool)
		}
		wave = append(wave, mv)
		dest[mv.To] = true
	}
	if len(wave) > 0 {
		waves = append(waves, wave)
	}
	return waves
}

// prepare fills in the head step's view of the board once it is current.
func (p *Player) prepare() {
	if len(p.queue) == 0 {
		return
	}
	s := &p.queue[0]
	if s.kind != stepMove || s.leave != nil {
		return
	}
	s.leave = make(map[engine.Coord]bool, len(s.moves))
	s.arrive = make(map[engine.Coord]engine.Color, len(s.moves))
	for _, mv := range s.moves {
		color, _, err := p.board.At(mv.From)
		if err != nil {
			continue
		}
		s.leave[mv.From] = true
		s.arrive[mv.To] = color
	}
}

// Tick advances the current animation by one frame.
func (p *Player) Tick() {
	if p.flash > 0 {
		p.flash--
	}
	for len(p.queue) > 0 {
		s := p.queue[0]
		if p.elapsed < s.ticks {
			p.elapsed++
		}
		if p.elapsed < s.ticks {
			return
		}
		p.finish(s)
		p.queue = p.queue[1:]
		p.elapsed = 0
		p.prepare()
		if s.ticks > 0 {
			return
		}
	}
}

// Skip finishes every queued animation immediately.
func (p *Player) Skip() {
	for len(p.queue) > 0 {
		p.finish(p.queue[0])
		p.queue = p.queue[1:]
		p.prepare()
	}
	p.elapsed = 0
}

func (p *Player) finish(s step) {
	switch s.kind {
	case stepDelete:
		for c := range s.vanish {
			_ = p.board.Clear(c)
		}
	case stepMove:
		for _, mv := range s.moves {
			color, ok, err := p.board.At(mv.From)
			if err != nil || !ok {
				continue
			}
			_ = p.board.Clear(mv.From)
			_ = p.board.Set(mv.To, color)
		}
	case stepReset:
		board, err := engine.NewGrid(s.reset.Size)
		if err != nil {
			return
		}
		for c, color := range s.reset.Board {
			_ = board.Set(c, color)
		}
		p.board = board
		p.over = nil
	case stepGameOver:
		p.over = s.over
	}
}

// Busy reports whether animations are still queued. Input is held while
// the player is busy.
func (p *Player) Busy() bool {
	return len(p.queue) > 0
}

// Board returns the board as currently displayed.
func (p *Player) Board() *engine.Grid {
	return p.board
}

// Size returns the edge length of the displayed board.
func (p *Player) Size() int {
	return p.board.Size()
}

// Elapsed returns ticks spent in the current step.
func (p *Player) Elapsed() int {
	return p.elapsed
}

// Progress returns how far the current step is, from 0 to 1.
func (p *Player) Progress() float64 {
	if len(p.queue) == 0 || p.queue[0].ticks == 0 {
		return 1
	}
	return float64(p.elapsed) / float64(p.queue[0].ticks)
}

// Flash returns the flourish text while it is showing.
func (p *Player) Flash() (string, bool) {
	if p.flash == 0 {
		return "", false
	}
	return p.flashText, true
}

// Outcome returns the game over result once its animation has played.
func (p *Player) Outcome() (engine.GameOverPayload, bool) {
	if p.over == nil {
		return engine.GameOverPayload{}, false
	}
	return *p.over, true
}

// Cell returns the view of a single cell, including running effects.
func (p *Player) Cell(c engine.Coord) CellView {
	color, ok, err := p.board.At(c)
	if err != nil {
		return CellView{}
	}
	view := CellView{Occupied: ok, Color: color}
	if len(p.queue) == 0 {
		return view
	}

	s := p.queue[0]
	switch s.kind {
	case stepShake:
		if c == s.coord {
			view.Effect = EffectShake
		}
	case stepDelete:
		if s.vanish[c] {
			view.Effect = EffectVanish
		}
	case stepMove:
		half := p.Progress() >= 0.5
		if s.leave[c] {
			if half {
				view = CellView{}
			} else {
				view.Effect = EffectLeaving
			}
		}
		if moved, in := s.arrive[c]; in && half {
			view = CellView{Occupied: true, Color: moved, Effect: EffectArriving}
		}
	case stepReset:
		// Spheres disappear in scan order as the step progresses.
		cleared := int(p.Progress() * float64(p.board.Len()))
		if p.board.Tag(c) < cleared {
			view = CellView{}
		}
	}
	return view
}

// ShakeOffset returns the horizontal wobble for shaking cells.
func (p *Player) ShakeOffset() int {
	switch (p.elapsed / 3) % 4 {
	case 1:
		return 1
	case 3:
		return -1
	default:
		return 0
	}
}

func flourishText(n int) string {
	switch {
	case n >= 16:
		return "Incredible!"
	case n >= 9:
		return "Excellent!"
	default:
		return "Nice!"
	}
}
