package animation

import (
	"testing"
	"time"

	"github.com/go-drift/visualkit/pkg/graphics"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestLoop_StepSkipsIdleSteppers(t *testing.T) {
	var loop Loop
	active := NewEngine(PolicySingular, 0.5, nil)
	idle := NewEngine(PolicySingular, 0.5, nil)
	loop.Add(active)
	loop.Add(idle)

	active.Start(DirectionIn, graphics.Offset{})
	idleCalls := 0
	idle.AddListener(func() { idleCalls++ })

	loop.Step(DefaultInterval)
	if got := active.RawProgress(0); got != 0.5 {
		t.Errorf("active progress = %v, want 0.5", got)
	}
	if idleCalls != 0 {
		t.Errorf("idle engine was notified %d times", idleCalls)
	}
}

func TestLoop_RemoveDuringStep(t *testing.T) {
	var loop Loop
	e := NewEngine(PolicyOneShot, 1, nil)
	remove := loop.Add(e)
	e.Start(DirectionIn, graphics.Offset{})
	e.AddListener(func() { remove() })

	loop.Step(DefaultInterval)
	if loop.Len() != 0 {
		t.Errorf("Len() = %d, want 0", loop.Len())
	}
	remove()
}

func TestLoop_HasActive(t *testing.T) {
	var loop Loop
	s := NewSlide()
	loop.Add(s)
	if loop.HasActive() {
		t.Error("idle slide reported active")
	}
	s.SetTarget(true)
	if !loop.HasActive() {
		t.Error("slide with pending target should be active")
	}
}

func TestLoop_FrameUsesClock(t *testing.T) {
	fc := &fakeClock{now: time.Unix(100, 0)}
	prev := SetClock(fc)
	defer SetClock(prev)

	var loop Loop
	s := NewSlide()
	s.SetTarget(true)
	loop.Add(s)

	loop.Frame()
	if s.Position() != 0 {
		t.Fatalf("first frame should only record time, Position() = %d", s.Position())
	}
	fc.now = fc.now.Add(30 * time.Millisecond)
	loop.Frame()
	if s.Position() != 20 {
		t.Errorf("Position() = %d, want 20", s.Position())
	}
}
