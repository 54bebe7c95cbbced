// Package gestures defines the pointer and key events a host delivers to
// widgets.
package gestures

import (
	"fmt"

	"github.com/go-drift/visualkit/pkg/graphics"
)

// PointerPhase describes what happened to a pointer.
type PointerPhase int

const (
	// PointerPhaseEnter is sent when the pointer moves over the widget.
	PointerPhaseEnter PointerPhase = iota
	// PointerPhaseLeave is sent when the pointer leaves the widget.
	PointerPhaseLeave
	// PointerPhaseDown is sent when a button is pressed.
	PointerPhaseDown
	// PointerPhaseUp is sent when a button is released.
	PointerPhaseUp
	// PointerPhaseMove is sent while the pointer moves over the widget or
	// while a press that began on it is held.
	PointerPhaseMove
	// PointerPhaseCancel is sent when the host abandons a press.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseEnter:
		return "enter"
	case PointerPhaseLeave:
		return "leave"
	case PointerPhaseDown:
		return "down"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerButton identifies the mouse button behind a Down or Up event.
type PointerButton int

const (
	ButtonLeft PointerButton = iota
	ButtonRight
	ButtonMiddle
)

// String returns a human-readable representation of the button.
func (b PointerButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("PointerButton(%d)", int(b))
	}
}

// PointerEvent is a single pointer update in widget-local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	// Delta is the movement since the previous event for this pointer.
	Delta  graphics.Offset
	Phase  PointerPhase
	Button PointerButton
}

// Key identifies a navigation key.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyPageUp:
		return "page_up"
	case KeyPageDown:
		return "page_down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "unknown"
	}
}

// KeyEvent is a key press delivered to the focused widget.
type KeyEvent struct {
	Key Key
}

// KeyEventResult indicates how a key event was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled.
	KeyEventIgnored KeyEventResult = iota

	// KeyEventHandled indicates the event was consumed.
	KeyEventHandled
)
