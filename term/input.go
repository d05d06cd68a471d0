package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"entropia/model"
)

// holdTime is how long a key counts as held after its last press or repeat. Terminals do
// not report key releases.
const holdTime = 150 * time.Millisecond

type action int

const (
	actNone action = iota
	actLeft
	actRight
	actForward
	actBackward
	actFire
	actRestart
	actNewMaze
	actQuit
)

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyUp:
		return actForward
	case tcell.KeyDown:
		return actBackward
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return actLeft
		case 'd', 'D':
			return actRight
		case 'w', 'W':
			return actForward
		case 's', 'S':
			return actBackward
		case ' ':
			return actFire
		case 'r', 'R':
			return actRestart
		case 'n', 'N':
			return actNewMaze
		case 'q', 'Q':
			return actQuit
		}
	}
	return actNone
}

// Input turns discrete key presses into per-frame intents.
type Input struct {
	held map[action]time.Time
	fire bool
}

func NewInput() *Input {
	return &Input{held: make(map[action]time.Time)}
}

// Press records a key press at now and returns the action for keys the loop handles itself.
func (in *Input) Press(ev *tcell.EventKey, now time.Time) action {
	a := actionFor(ev)
	switch a {
	case actLeft, actRight, actForward, actBackward:
		in.held[a] = now.Add(holdTime)
	case actFire:
		in.fire = true
	}
	return a
}

// Intent returns the intent for the frame at now and consumes any pending fire press.
func (in *Input) Intent(now time.Time) model.Intent {
	down := func(a action) bool {
		until, ok := in.held[a]
		return ok && now.Before(until)
	}
	intent := model.Intent{
		TurnLeft:  down(actLeft),
		TurnRight: down(actRight),
		Forward:   down(actForward),
		Backward:  down(actBackward),
		Fire:      in.fire,
	}
	in.fire = false
	return intent
}
