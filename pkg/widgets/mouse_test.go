package widgets_test

import (
	"testing"

	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
	vktest "github.com/go-drift/visualkit/pkg/testing"
	"github.com/go-drift/visualkit/pkg/widgets"
)

func event(phase gestures.PointerPhase, button gestures.PointerButton) gestures.PointerEvent {
	return gestures.PointerEvent{Phase: phase, Button: button}
}

// trackerIn returns a tracker driven into state.
func trackerIn(t *testing.T, state widgets.MouseState) *widgets.MouseTracker {
	t.Helper()
	tr := &widgets.MouseTracker{}
	switch state {
	case widgets.MouseStateHover:
		tr.Handle(event(gestures.PointerPhaseEnter, gestures.ButtonLeft))
	case widgets.MouseStateDown:
		tr.Handle(event(gestures.PointerPhaseEnter, gestures.ButtonLeft))
		tr.Handle(event(gestures.PointerPhaseDown, gestures.ButtonLeft))
	}
	if tr.State() != state {
		t.Fatalf("setup state = %v, want %v", tr.State(), state)
	}
	return tr
}

func TestMouseTracker_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    widgets.MouseState
		ev      gestures.PointerEvent
		want    widgets.MouseState
		changed bool
	}{
		{"enter", widgets.MouseStateNormal, event(gestures.PointerPhaseEnter, gestures.ButtonLeft), widgets.MouseStateHover, true},
		{"leave", widgets.MouseStateHover, event(gestures.PointerPhaseLeave, gestures.ButtonLeft), widgets.MouseStateNormal, true},
		{"leave while down", widgets.MouseStateDown, event(gestures.PointerPhaseLeave, gestures.ButtonLeft), widgets.MouseStateNormal, true},
		{"left down", widgets.MouseStateHover, event(gestures.PointerPhaseDown, gestures.ButtonLeft), widgets.MouseStateDown, true},
		{"right down", widgets.MouseStateHover, event(gestures.PointerPhaseDown, gestures.ButtonRight), widgets.MouseStateHover, false},
		{"up", widgets.MouseStateDown, event(gestures.PointerPhaseUp, gestures.ButtonLeft), widgets.MouseStateHover, true},
		{"cancel", widgets.MouseStateDown, event(gestures.PointerPhaseCancel, gestures.ButtonLeft), widgets.MouseStateHover, true},
		{"move", widgets.MouseStateHover, event(gestures.PointerPhaseMove, gestures.ButtonLeft), widgets.MouseStateHover, false},
		{"enter twice", widgets.MouseStateHover, event(gestures.PointerPhaseEnter, gestures.ButtonLeft), widgets.MouseStateHover, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := trackerIn(t, tt.from)
			if got := tr.Handle(tt.ev); got != tt.changed {
				t.Errorf("Handle changed = %v, want %v", got, tt.changed)
			}
			if tr.State() != tt.want {
				t.Errorf("State = %v, want %v", tr.State(), tt.want)
			}
		})
	}
}

func TestMouseTracker_DownOnlyReachesNormalThroughLeave(t *testing.T) {
	phases := []gestures.PointerPhase{
		gestures.PointerPhaseEnter,
		gestures.PointerPhaseDown,
		gestures.PointerPhaseUp,
		gestures.PointerPhaseMove,
		gestures.PointerPhaseCancel,
	}
	for _, phase := range phases {
		for _, button := range []gestures.PointerButton{gestures.ButtonLeft, gestures.ButtonRight, gestures.ButtonMiddle} {
			tr := trackerIn(t, widgets.MouseStateDown)
			tr.Handle(event(phase, button))
			if tr.State() == widgets.MouseStateNormal {
				t.Errorf("%v/%v moved Down to Normal", phase, button)
			}
		}
	}
}

func TestMouseState_String(t *testing.T) {
	if got := widgets.MouseStateDown.String(); got != "down" {
		t.Errorf("String() = %q", got)
	}
	if got := widgets.MouseState(9).String(); got != "MouseState(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestWidgets_FollowMouseTransitions(t *testing.T) {
	widgetsUnderTest := []struct {
		name string
		w    widgets.Widget
	}{
		{"button", newTestButton("OK")},
		{"toggle", newTestToggle()},
		{"trackbar", newTestTrackBar()},
	}
	at := graphics.Offset{X: 10, Y: 10}
	steps := []struct {
		name string
		do   func(p *vktest.Pointer)
		want widgets.MouseState
	}{
		{"enter", func(p *vktest.Pointer) { p.Enter(at) }, widgets.MouseStateHover},
		{"right down", func(p *vktest.Pointer) { p.Down(at, gestures.ButtonRight) }, widgets.MouseStateHover},
		{"right up", func(p *vktest.Pointer) { p.Up(at, gestures.ButtonRight) }, widgets.MouseStateHover},
		{"left down", func(p *vktest.Pointer) { p.Down(at, gestures.ButtonLeft) }, widgets.MouseStateDown},
		{"move", func(p *vktest.Pointer) { p.MoveTo(graphics.Offset{X: 12, Y: 10}) }, widgets.MouseStateDown},
		{"left up", func(p *vktest.Pointer) { p.Up(at, gestures.ButtonLeft) }, widgets.MouseStateHover},
		{"leave", func(p *vktest.Pointer) { p.Leave() }, widgets.MouseStateNormal},
	}
	for _, wt := range widgetsUnderTest {
		t.Run(wt.name, func(t *testing.T) {
			if got := wt.w.MouseState(); got != widgets.MouseStateNormal {
				t.Fatalf("initial state = %v, want normal", got)
			}
			p := vktest.NewPointer(wt.w)
			for _, st := range steps {
				st.do(p)
				if got := wt.w.MouseState(); got != st.want {
					t.Fatalf("after %s: state = %v, want %v", st.name, got, st.want)
				}
			}
		})
	}
}
