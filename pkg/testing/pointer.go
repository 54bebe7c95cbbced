package testing

import (
	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// PointerTarget receives simulated pointer events.
type PointerTarget interface {
	HandlePointer(event gestures.PointerEvent)
}

// KeyTarget receives simulated key events.
type KeyTarget interface {
	HandleKey(event gestures.KeyEvent) gestures.KeyEventResult
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Pointer simulates a single mouse pointer over one target. It fills in
// PointerID and Delta the way a host would.
type Pointer struct {
	target   PointerTarget
	id       int64
	position graphics.Offset
	inside   bool
}

// NewPointer returns a pointer outside target.
func NewPointer(target PointerTarget) *Pointer {
	return &Pointer{target: target, id: allocPointerID()}
}

// Position returns the last position sent.
func (p *Pointer) Position() graphics.Offset {
	return p.position
}

// Enter moves the pointer over the target at pos.
func (p *Pointer) Enter(pos graphics.Offset) {
	p.inside = true
	p.send(gestures.PointerPhaseEnter, pos, gestures.ButtonLeft)
}

// Leave moves the pointer off the target.
func (p *Pointer) Leave() {
	p.inside = false
	p.send(gestures.PointerPhaseLeave, p.position, gestures.ButtonLeft)
}

// MoveTo sends a move event at pos.
func (p *Pointer) MoveTo(pos graphics.Offset) {
	p.send(gestures.PointerPhaseMove, pos, gestures.ButtonLeft)
}

// Down presses button at pos, entering first if needed.
func (p *Pointer) Down(pos graphics.Offset, button gestures.PointerButton) {
	if !p.inside {
		p.Enter(pos)
	}
	p.send(gestures.PointerPhaseDown, pos, button)
}

// Up releases button at pos.
func (p *Pointer) Up(pos graphics.Offset, button gestures.PointerButton) {
	p.send(gestures.PointerPhaseUp, pos, button)
}

// Cancel abandons the current press.
func (p *Pointer) Cancel() {
	p.send(gestures.PointerPhaseCancel, p.position, gestures.ButtonLeft)
}

// Click presses and releases the left button at pos.
func (p *Pointer) Click(pos graphics.Offset) {
	p.Down(pos, gestures.ButtonLeft)
	p.Up(pos, gestures.ButtonLeft)
}

// Drag presses the left button at start, moves to end in steps equal
// increments, and releases there.
func (p *Pointer) Drag(start, end graphics.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	p.Down(start, gestures.ButtonLeft)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		p.MoveTo(graphics.Offset{
			X: start.X + (end.X-start.X)*frac,
			Y: start.Y + (end.Y-start.Y)*frac,
		})
	}
	p.Up(end, gestures.ButtonLeft)
}

func (p *Pointer) send(phase gestures.PointerPhase, pos graphics.Offset, button gestures.PointerButton) {
	delta := pos.Sub(p.position)
	p.position = pos
	p.target.HandlePointer(gestures.PointerEvent{
		PointerID: p.id,
		Position:  pos,
		Delta:     delta,
		Phase:     phase,
		Button:    button,
	})
}

// PressKeys sends each key to target in order and returns how many were
// handled.
func PressKeys(target KeyTarget, keys ...gestures.Key) int {
	handled := 0
	for _, k := range keys {
		if target.HandleKey(gestures.KeyEvent{Key: k}) == gestures.KeyEventHandled {
			handled++
		}
	}
	return handled
}
