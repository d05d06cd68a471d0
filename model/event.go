package model

// EventKind tags a discrete, fire-and-forget simulation event.
type EventKind int

const (
	WallHit EventKind = iota
	EnemyHit
	PlayerHit
	ShotFired
)

func (k EventKind) String() string {
	switch k {
	case WallHit:
		return "wall-hit"
	case EnemyHit:
		return "enemy-hit"
	case PlayerHit:
		return "player-hit"
	case ShotFired:
		return "shot-fired"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	X, Y float64
}

// EventSink receives simulation events. Emit must never block.
type EventSink interface {
	Emit(e Event)
}

// Discard is an EventSink that drops everything.
var Discard EventSink = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// EventFunc adapts a function to EventSink.
type EventFunc func(Event)

func (f EventFunc) Emit(e Event) { f(e) }

// MultiSink forwards every event to each sink in order.
type MultiSink []EventSink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
