package engine

// EventType identifies the type of event
type EventType string

const (
	EventShake    EventType = "shake"
	EventDelete   EventType = "delete"
	EventSettle   EventType = "settle"
	EventReset    EventType = "reset"
	EventGameOver EventType = "game_over"
)

// Event is emitted for the animation and UI collaborators. Engine state is
// already updated when an event is delivered.
type Event struct {
	Seq     uint64 // Monotonic per game, starting at 1
	Type    EventType
	Payload any // Type-specific data
}

// ShakePayload is sent when an isolated sphere is selected. Cosmetic only.
type ShakePayload struct {
	Coord Coord
}

// DeletePayload lists the removed cells in enumeration order.
type DeletePayload struct {
	Coords     []Coord
	Color      Color
	ScoreDelta int
}

// SettlePayload lists consolidation moves in application order.
// Moves is empty when nothing had to move.
type SettlePayload struct {
	Moves []Move
}

// ResetPayload carries the complete new board after a restart.
type ResetPayload struct {
	Size   int
	Colors []Color
	Board  map[Coord]Color
}

// GameOverPayload is sent once when no removable group remains.
type GameOverPayload struct {
	Won       bool
	Score     int
	Remaining int
}

// Listener receives events synchronously, in order.
type Listener func(Event)
