package animation

import "time"

// Stepper is anything a Loop can advance: engines, slides and widgets that
// aggregate them.
type Stepper interface {
	Advance(dt time.Duration)
	IsAnimating() bool
}

// Loop advances registered steppers from the host's update loop.
//
// Loop replaces a periodic timer: the host calls Step with the time since
// its previous frame, or Frame to have the Loop measure that time with the
// package Clock. Steppers that are not animating are skipped.
type Loop struct {
	steppers []*loopEntry
	last     time.Time
}

type loopEntry struct {
	stepper Stepper
	removed bool
}

// Add registers s and returns a function that removes it.
func (l *Loop) Add(s Stepper) func() {
	e := &loopEntry{stepper: s}
	l.steppers = append(l.steppers, e)
	return func() {
		if e.removed {
			return
		}
		e.removed = true
		for i, other := range l.steppers {
			if other == e {
				l.steppers = append(l.steppers[:i], l.steppers[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of registered steppers.
func (l *Loop) Len() int {
	return len(l.steppers)
}

// Step advances every animating stepper by dt.
func (l *Loop) Step(dt time.Duration) {
	if len(l.steppers) == 0 {
		return
	}
	// Copy so steppers may remove themselves from listener callbacks.
	entries := append([]*loopEntry(nil), l.steppers...)
	for _, e := range entries {
		if !e.removed && e.stepper.IsAnimating() {
			e.stepper.Advance(dt)
		}
	}
}

// Frame steps by the time elapsed since the previous Frame. The first call
// only records the time.
func (l *Loop) Frame() {
	now := Now()
	if l.last.IsZero() {
		l.last = now
		return
	}
	dt := now.Sub(l.last)
	l.last = now
	l.Step(dt)
}

// HasActive reports whether any registered stepper is animating.
func (l *Loop) HasActive() bool {
	for _, e := range l.steppers {
		if e.stepper.IsAnimating() {
			return true
		}
	}
	return false
}
