package ui

import "turn-snake/game/types"

type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
)

type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Event is one input event. HasKey is false for key presses the backend
// could not name.
type Event struct {
	Kind   EventKind
	Key    Key
	HasKey bool
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k, HasKey: true}
}

// Direction maps an arrow key to the facing it requests.
func (k Key) Direction() (types.Direction, bool) {
	switch k {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	}
	return 0, false
}

// Backend is the window or terminal the game runs in.
type Backend interface {
	types.Surface
	PollEvents() []Event
	Clear(c types.Color)
	Present()
	Close()
}
