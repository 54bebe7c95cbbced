package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/visualkit/pkg/animation"
	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// ToggleType selects the label vocabulary of a Toggle.
type ToggleType int

const (
	ToggleYesNo ToggleType = iota
	ToggleOnOff
	ToggleIO
)

// String returns a human-readable representation of the vocabulary.
func (t ToggleType) String() string {
	switch t {
	case ToggleYesNo:
		return "yes_no"
	case ToggleOnOff:
		return "on_off"
	case ToggleIO:
		return "io"
	default:
		return fmt.Sprintf("ToggleType(%d)", int(t))
	}
}

// Label returns the text shown for the given state. The label names the
// action the next click performs, so a toggled YesNo switch reads "No".
func (t ToggleType) Label(toggled bool) string {
	switch t {
	case ToggleYesNo:
		if toggled {
			return "No"
		}
		return "Yes"
	case ToggleOnOff:
		if toggled {
			return "Off"
		}
		return "On"
	case ToggleIO:
		if toggled {
			return "O"
		}
		return "I"
	default:
		errors.Unreachable("widgets.ToggleType.Label", t)
		return ""
	}
}

// Toggle label layout.
const (
	toggleLabelSize    = 7
	toggleLabelOffX    = 5
	toggleLabelOnInset = 7
	toggleThumbMargin  = 2
)

// Toggle is a two-state switch whose thumb slides between the left and right
// ends in fixed steps.
type Toggle struct {
	RenderBase

	Type ToggleType

	Border      Border
	ThumbBorder Border
	BackColors  ColorState
	ThumbColors ControlColorState
	ThumbSize   graphics.Size

	TextStyle         graphics.TextStyle
	TextDisabledColor graphics.Color

	// Animation slides the thumb; when off it jumps.
	Animation bool

	// OnToggled is called after every SetToggled.
	OnToggled func(toggled bool)

	// Fonts measures the label. Nil uses the shared font manager.
	Fonts graphics.TextMeasurer

	toggled bool
	pressed bool
	slide   *animation.Slide
}

// NewToggle returns an off 50x25 toggle styled with the visual theme.
func NewToggle() *Toggle {
	t := &Toggle{
		Type:      ToggleYesNo,
		ThumbSize: graphics.Size{Width: 20, Height: 20},
		slide:     animation.NewSlide(),
	}
	t.slide.AddListener(t.MarkNeedsPaint)
	t.SetBounds(graphics.RectFromLTWH(0, 0, 50, 25))
	t.UpdateStyle(theme.Change{ID: theme.Visual, Style: theme.VisualStyle(), Options: theme.DefaultOptions()})
	return t
}

// Slide returns the thumb slide.
func (t *Toggle) Slide() *animation.Slide {
	return t.slide
}

// Toggled reports the current state.
func (t *Toggle) Toggled() bool {
	return t.toggled
}

// SetToggled sets the state, starts the thumb moving and fires OnToggled.
func (t *Toggle) SetToggled(v bool) {
	t.toggled = v
	t.slide.SetTarget(v)
	if !t.Animation {
		t.slide.Snap()
	}
	t.MarkNeedsPaint()
	if t.OnToggled != nil {
		t.OnToggled(v)
	}
}

// Label returns the text currently shown.
func (t *Toggle) Label() string {
	return t.Type.Label(t.toggled)
}

// UpdateStyle copies the colors, font and options t paints with.
func (t *Toggle) UpdateStyle(ch theme.Change) {
	t.BackColors = ColorState{
		Enabled:  ch.Style.Background(3),
		Disabled: ch.Style.Background(0),
	}
	t.ThumbColors = thumbColors(ch.Style)
	t.Border.applyTheme(ch)
	t.ThumbBorder.applyTheme(ch)
	t.TextStyle = ch.Style.TextStyle(true)
	t.TextDisabledColor = ch.Style.Font.ForeColorDisabled
	t.Animation = ch.Options.Animation
	t.MarkNeedsPaint()
}

// HandlePointer updates the mouse state and flips the toggle when a left
// press on it is released.
func (t *Toggle) HandlePointer(ev gestures.PointerEvent) {
	t.trackMouse(ev)
	switch ev.Phase {
	case gestures.PointerPhaseDown:
		t.pressed = ev.Button == gestures.ButtonLeft && t.Enabled()
	case gestures.PointerPhaseUp:
		if t.pressed {
			t.pressed = false
			t.SetToggled(!t.toggled)
		}
	case gestures.PointerPhaseLeave, gestures.PointerPhaseCancel:
		t.pressed = false
	}
}

// Advance steps the thumb slide.
func (t *Toggle) Advance(dt time.Duration) {
	t.slide.Advance(dt)
}

// IsAnimating reports whether the thumb is still moving.
func (t *Toggle) IsAnimating() bool {
	return t.slide.IsAnimating()
}

// ThumbAnchors returns the widget-local top-left corners of the thumb in
// the off and on positions.
func (t *Toggle) ThumbAnchors() (start, end graphics.Offset) {
	size := t.Size()
	y := float64(int(size.Height)/2 - int(t.ThumbSize.Height)/2)
	start = graphics.Offset{X: toggleThumbMargin, Y: y}
	end = graphics.Offset{X: size.Width - t.ThumbSize.Width - toggleThumbMargin, Y: y}
	return start, end
}

// ThumbRect returns the widget-local thumb rectangle at the current slide
// position.
func (t *Toggle) ThumbRect() graphics.Rect {
	start, end := t.ThumbAnchors()
	at := animation.LerpOffset(start, end, t.slide.Fraction())
	return graphics.RectFromOffsetSize(at, t.ThumbSize)
}

// Paint draws the toggle at its bounds.
func (t *Toggle) Paint(canvas graphics.Canvas) {
	defer errors.Recover("widgets.Toggle.Paint")
	defer t.ClearNeedsPaint()

	rect := t.Bounds()
	enabled := t.Enabled()
	state := t.MouseState()
	path := t.Border.Path(rect)

	canvas.Save()
	defer canvas.Restore()
	canvas.ClipPath(path)
	canvas.DrawPath(path, graphics.FillPaint(t.BackColors.Select(enabled)))

	t.paintLabel(canvas, enabled)

	thumb := t.ThumbRect().Translate(rect.Left, rect.Top)
	thumbPath := t.ThumbBorder.Path(thumb)
	canvas.DrawPath(thumbPath, graphics.FillPaint(t.ThumbColors.Select(enabled, state)))
	t.ThumbBorder.Stroke(canvas, thumbPath, state)

	t.Border.Stroke(canvas, path, state)
}

func (t *Toggle) paintLabel(canvas graphics.Canvas, enabled bool) {
	label := t.Label()
	style := t.TextStyle.WithSize(toggleLabelSize)
	if !enabled {
		style.Color = t.TextDisabledColor
	}
	size := t.Size()
	textSize := measureText(t.Fonts, label, style)
	at := graphics.Offset{
		X: toggleLabelOffX,
		Y: (size.Height-1)/2 - textSize.Height/2,
	}
	if !t.toggled {
		at.X = size.Width - textSize.Width/2 - toggleLabelOnInset*2
	}
	canvas.DrawText(label, t.toCanvas(at), style)
}
