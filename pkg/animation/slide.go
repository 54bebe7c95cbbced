package animation

import "time"

// Slide is a stepped counter between 0 and Max. Each tick moves Position by
// Step toward the bound selected by SetTarget; there is no easing.
//
// The toggle thumb uses it; it is independent of [Engine].
type Slide struct {
	// Step is the amount Position moves per tick.
	Step int
	// Max is the upper bound reached when the target is on.
	Max int
	// Interval is the tick length Advance measures time against.
	Interval time.Duration

	position       int
	on             bool
	pending        time.Duration
	listeners      map[int]func()
	nextListenerID int
}

// NewSlide returns a slide stepping by 10 up to 100 every DefaultInterval.
func NewSlide() *Slide {
	return &Slide{
		Step:      10,
		Max:       100,
		Interval:  DefaultInterval,
		listeners: make(map[int]func()),
	}
}

// SetTarget selects the bound the slide moves toward: Max when on, 0 when off.
func (s *Slide) SetTarget(on bool) {
	s.on = on
}

// Target reports the current target.
func (s *Slide) Target() bool {
	return s.on
}

// Snap jumps straight to the target bound.
func (s *Slide) Snap() {
	want := 0
	if s.on {
		want = s.Max
	}
	if s.position == want {
		return
	}
	s.position = want
	s.pending = 0
	s.notifyListeners()
}

// Tick moves Position one step toward the target bound and reports whether
// it moved.
func (s *Slide) Tick() bool {
	switch {
	case s.on && s.position < s.Max:
		s.position = min(s.position+s.step(), s.Max)
	case !s.on && s.position > 0:
		s.position = max(s.position-s.step(), 0)
	default:
		return false
	}
	s.notifyListeners()
	return true
}

// Advance runs one Tick per whole Interval contained in the accumulated time.
// Remainders carry over to the next call.
func (s *Slide) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if !s.IsAnimating() {
		s.pending = 0
		return
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.pending += dt
	for s.pending >= interval {
		s.pending -= interval
		if !s.Tick() {
			s.pending = 0
			return
		}
	}
}

func (s *Slide) step() int {
	if s.Step <= 0 {
		return 1
	}
	return s.Step
}

// Position returns the counter value in [0, Max].
func (s *Slide) Position() int {
	return s.position
}

// Fraction returns Position / Max.
func (s *Slide) Fraction() float64 {
	if s.Max <= 0 {
		return 0
	}
	return float64(s.position) / float64(s.Max)
}

// IsAnimating reports whether Position has yet to reach the target bound.
func (s *Slide) IsAnimating() bool {
	if s.on {
		return s.position < s.Max
	}
	return s.position > 0
}

// AddListener adds a callback that fires whenever Position changes.
// Returns an unsubscribe function.
func (s *Slide) AddListener(fn func()) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Slide) notifyListeners() {
	for _, listener := range s.listeners {
		listener()
	}
}
