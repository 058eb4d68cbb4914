package game

import "rainbow-snake/game/types"

// Mode is the controller state
type Mode int

const (
	NamePrompt Mode = iota
	Playing
	Paused
	GameOver
)

func (m Mode) String() string {
	switch m {
	case NamePrompt:
		return "name prompt"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// EventKind identifies a discrete input event
type EventKind int

const (
	MoveUp EventKind = iota
	MoveDown
	MoveLeft
	MoveRight
	TogglePause
	Restart
	Quit
	TextChar
	Backspace
	Confirm
)

// Event is one input delivered to the controller. Char is only set for TextChar.
type Event struct {
	Kind EventKind
	Char rune
}

func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

func Char(c rune) Event {
	return Event{Kind: TextChar, Char: c}
}

// direction maps a Move* event to its direction
func (e Event) direction() (types.Direction, bool) {
	switch e.Kind {
	case MoveUp:
		return types.UP, true
	case MoveDown:
		return types.DOWN, true
	case MoveLeft:
		return types.LEFT, true
	case MoveRight:
		return types.RIGHT, true
	}
	return types.NONE, false
}
