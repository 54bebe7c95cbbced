package widgets

import (
	"fmt"

	"github.com/go-drift/visualkit/pkg/gestures"
)

// MouseState is the interaction status of a widget.
type MouseState int

const (
	// MouseStateNormal means the pointer is elsewhere.
	MouseStateNormal MouseState = iota
	// MouseStateHover means the pointer is over the widget.
	MouseStateHover
	// MouseStateDown means the left button is held on the widget.
	MouseStateDown
)

// String returns a human-readable representation of the state.
func (s MouseState) String() string {
	switch s {
	case MouseStateNormal:
		return "normal"
	case MouseStateHover:
		return "hover"
	case MouseStateDown:
		return "down"
	default:
		return fmt.Sprintf("MouseState(%d)", int(s))
	}
}

// MouseTracker owns one widget's MouseState.
//
// The only transitions are Enter to Hover, Leave to Normal, left Down to
// Down, and Up to Hover. Cancel behaves like Up so an abandoned press never
// leaves the widget stuck in Down. Other events leave the state alone.
type MouseTracker struct {
	state MouseState
}

// State returns the current state.
func (t *MouseTracker) State() MouseState {
	return t.state
}

// Handle applies ev and reports whether the state changed.
func (t *MouseTracker) Handle(ev gestures.PointerEvent) bool {
	next := t.state
	switch ev.Phase {
	case gestures.PointerPhaseEnter:
		next = MouseStateHover
	case gestures.PointerPhaseLeave:
		next = MouseStateNormal
	case gestures.PointerPhaseDown:
		if ev.Button == gestures.ButtonLeft {
			next = MouseStateDown
		}
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		next = MouseStateHover
	}
	if next == t.state {
		return false
	}
	t.state = next
	return true
}
