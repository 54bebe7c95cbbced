package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// DefaultInterval is the nominal tick length. One Tick advances an entry by
// exactly Increment.
const DefaultInterval = 15 * time.Millisecond

// DefaultIncrement is the per-tick step an Engine falls back to when its
// Increment is not a positive finite number.
const DefaultIncrement = 0.03

// Direction is the way an entry's progress moves.
type Direction int

const (
	// DirectionIn moves progress from 0 toward 1.
	DirectionIn Direction = iota
	// DirectionOut moves progress from 1 toward 0.
	DirectionOut
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// terminal returns the bound progress stops at for d.
func (d Direction) terminal() float64 {
	if d == DirectionOut {
		return 0
	}
	return 1
}

// Policy controls what Start and the terminal bound do to entries.
type Policy int

const (
	// PolicyOneShot appends an entry per Start and removes it once it
	// reaches its terminal bound. Ripples use it.
	PolicyOneShot Policy = iota
	// PolicySingular keeps at most one entry. Start reverses it from its
	// current progress, and the terminal bound clamps instead of removing.
	// Hover fades use it.
	PolicySingular
)

// String returns a human-readable representation of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyOneShot:
		return "one_shot"
	case PolicySingular:
		return "singular"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

type entry struct {
	origin    graphics.Offset
	progress  float64
	direction Direction
}

func (e entry) done() bool {
	return e.progress == e.direction.terminal()
}

// Engine advances a set of progress entries in [0, 1].
//
// Progress is stored linearly; [Engine.Progress] applies Curve on read and
// [Engine.RawProgress] returns the stored value. Listeners fire after Start,
// Reset and every Advance that moved an entry, which is where owners request
// a repaint.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	// Increment is the raw progress added or removed per Interval.
	Increment float64

	// Interval is the nominal tick length Advance measures time against.
	Interval time.Duration

	// Curve eases progress on read. Nil means LinearCurve.
	Curve func(float64) float64

	// Policy selects one-shot or singular behavior.
	Policy Policy

	entries        []entry
	listeners      map[int]func()
	nextListenerID int
}

// NewEngine creates an engine that moves entries by increment per
// DefaultInterval. An increment that is not a positive finite number is a
// programming error.
func NewEngine(policy Policy, increment float64, curve func(float64) float64) *Engine {
	if !validIncrement(increment) {
		errors.Unreachable("animation.NewEngine", increment)
	}
	if curve == nil {
		curve = LinearCurve
	}
	return &Engine{
		Increment: increment,
		Interval:  DefaultInterval,
		Curve:     curve,
		Policy:    policy,
		listeners: make(map[int]func()),
	}
}

// Start begins an animation at origin.
//
// With PolicyOneShot a new entry is appended at 0 (In) or 1 (Out). With
// PolicySingular the existing entry, if any, takes the new direction and
// origin and continues from its current progress.
func (e *Engine) Start(dir Direction, origin graphics.Offset) {
	if dir != DirectionIn && dir != DirectionOut {
		errors.Unreachable("animation.Engine.Start", dir)
	}
	switch e.Policy {
	case PolicyOneShot:
		e.entries = append(e.entries, newEntry(dir, origin))
	case PolicySingular:
		if len(e.entries) == 0 {
			e.entries = append(e.entries, newEntry(dir, origin))
		} else {
			e.entries[0].direction = dir
			e.entries[0].origin = origin
		}
	default:
		errors.Unreachable("animation.Engine.Start", e.Policy)
	}
	e.notifyListeners()
}

func newEntry(dir Direction, origin graphics.Offset) entry {
	start := 0.0
	if dir == DirectionOut {
		start = 1
	}
	return entry{origin: origin, progress: start, direction: dir}
}

// Tick advances every entry by one Interval.
func (e *Engine) Tick() {
	e.Advance(e.interval())
}

// Advance moves every entry short of its terminal bound by
// Increment × dt / Interval, clamped to [0, 1]. One-shot entries that reach
// their bound are removed.
func (e *Engine) Advance(dt time.Duration) {
	if dt <= 0 || len(e.entries) == 0 {
		return
	}
	delta := e.increment() * float64(dt) / float64(e.interval())
	changed := false
	kept := e.entries[:0]
	for _, en := range e.entries {
		if !en.done() {
			switch en.direction {
			case DirectionIn:
				en.progress = min(en.progress+delta, 1)
			case DirectionOut:
				en.progress = max(en.progress-delta, 0)
			}
			changed = true
		}
		if en.done() && e.Policy == PolicyOneShot {
			continue
		}
		kept = append(kept, en)
	}
	clear(e.entries[len(kept):])
	e.entries = kept
	if changed {
		e.notifyListeners()
	}
}

func (e *Engine) increment() float64 {
	if !validIncrement(e.Increment) {
		return DefaultIncrement
	}
	return e.Increment
}

func validIncrement(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (e *Engine) interval() time.Duration {
	if e.Interval <= 0 {
		return DefaultInterval
	}
	return e.Interval
}

// IsAnimating reports whether any entry is short of its terminal bound.
func (e *Engine) IsAnimating() bool {
	for _, en := range e.entries {
		if !en.done() {
			return true
		}
	}
	return false
}

// Count returns the number of live entries.
func (e *Engine) Count() int {
	return len(e.entries)
}

// Progress returns the eased progress of entry i. It panics with a
// ProgrammingError when i is out of range.
func (e *Engine) Progress(i int) float64 {
	raw := e.at("animation.Engine.Progress", i).progress
	if e.Curve == nil {
		return raw
	}
	return clampUnit(e.Curve(raw))
}

// RawProgress returns the linear progress of entry i.
func (e *Engine) RawProgress(i int) float64 {
	return e.at("animation.Engine.RawProgress", i).progress
}

// Origin returns the point entry i was started at.
func (e *Engine) Origin(i int) graphics.Offset {
	return e.at("animation.Engine.Origin", i).origin
}

// Direction returns the direction of entry i.
func (e *Engine) Direction(i int) Direction {
	return e.at("animation.Engine.Direction", i).direction
}

func (e *Engine) at(op string, i int) entry {
	if i < 0 || i >= len(e.entries) {
		panic(&errors.ProgrammingError{Op: op, Value: i})
	}
	return e.entries[i]
}

// Reset removes every entry.
func (e *Engine) Reset() {
	if len(e.entries) == 0 {
		return
	}
	e.entries = e.entries[:0]
	e.notifyListeners()
}

// AddListener adds a callback that fires whenever progress changes.
// Returns an unsubscribe function.
func (e *Engine) AddListener(fn func()) func() {
	if e.listeners == nil {
		e.listeners = make(map[int]func())
	}
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

func (e *Engine) notifyListeners() {
	for _, listener := range e.listeners {
		listener()
	}
}
