package widgets

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// Orientation is the axis a TrackBar runs along.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// TickStyle selects which sides of the track carry tick marks.
type TickStyle int

const (
	TickNone TickStyle = iota
	// TickTopLeft draws ticks above a horizontal track or left of a
	// vertical one.
	TickTopLeft
	// TickBottomRight draws ticks below a horizontal track or right of a
	// vertical one.
	TickBottomRight
	TickBoth
)

// String returns a human-readable representation of the tick style.
func (s TickStyle) String() string {
	switch s {
	case TickNone:
		return "none"
	case TickTopLeft:
		return "top_left"
	case TickBottomRight:
		return "bottom_right"
	case TickBoth:
		return "both"
	default:
		return fmt.Sprintf("TickStyle(%d)", int(s))
	}
}

// sides reports which tick bands s uses.
func (s TickStyle) sides() (before, after bool) {
	switch s {
	case TickNone:
		return false, false
	case TickTopLeft:
		return true, false
	case TickBottomRight:
		return false, true
	case TickBoth:
		return true, true
	default:
		errors.Unreachable("widgets.TickStyle.sides", s)
		return false, false
	}
}

// ValueDivisor scales the displayed value.
type ValueDivisor int

const (
	DivideBy1    ValueDivisor = 1
	DivideBy10   ValueDivisor = 10
	DivideBy100  ValueDivisor = 100
	DivideBy1000 ValueDivisor = 1000
)

// TrackBar defaults.
const (
	defaultBarThickness   = 10
	defaultBarTickSpacing = 8
	defaultTickHeight     = 4
	defaultTickFrequency  = 10
	defaultSmallChange    = 1
	defaultLargeChange    = 5
)

// TrackBar selects an integer in [Min, Max] by dragging a thumb along a
// track.
//
// Value maps linearly onto the thumb's offset within the working length,
// the widget length minus an indent at both ends:
//
//	position = (workingLength - thumbLength) * (value - min) / (max - min)
//
// Vertical track bars grow upward.
type TrackBar struct {
	RenderBase

	Orientation Orientation
	TickStyle   TickStyle

	SmallChange   int
	LargeChange   int
	TickFrequency int

	IndentWidth  int
	IndentHeight int
	ThumbSize    graphics.Size
	BarThickness int
	// BarTickSpacing separates the track from its tick bands.
	BarTickSpacing int
	TickHeight     int

	ThumbVisible      bool
	ProgressVisible   bool
	ValueTextVisible  bool
	LineTicksVisible  bool
	ValueTicksVisible bool

	Prefix string
	Suffix string

	Border        Border
	ThumbBorder   Border
	TrackColors   ColorState
	ThumbColors   ControlColorState
	ProgressColor graphics.Color
	TickColor     graphics.Color
	Hatch         Hatch

	TextStyle         graphics.TextStyle
	TextDisabledColor graphics.Color

	// OnValueChanged is called after every change of Value.
	OnValueChanged func(value int)
	// OnScroll is called when a pointer or key moves the thumb.
	OnScroll func(value int)

	// Fonts measures tick and value text. Nil uses the shared font manager.
	Fonts graphics.TextMeasurer

	min, max, value int
	division        ValueDivisor

	dragging bool
	grab     float64
}

// NewTrackBar returns a horizontal 0-100 track bar styled with the visual
// theme.
func NewTrackBar() *TrackBar {
	tb := &TrackBar{
		SmallChange:       defaultSmallChange,
		LargeChange:       defaultLargeChange,
		TickFrequency:     defaultTickFrequency,
		ThumbSize:         graphics.Size{Width: 27, Height: 20},
		BarThickness:      defaultBarThickness,
		BarTickSpacing:    defaultBarTickSpacing,
		TickHeight:        defaultTickHeight,
		ThumbVisible:      true,
		ProgressVisible:   true,
		ValueTextVisible:  true,
		LineTicksVisible:  true,
		ValueTicksVisible: true,
		max:               100,
		division:          DivideBy1,
	}
	tb.SetBounds(graphics.RectFromLTWH(0, 0, 200, 50))
	tb.UpdateStyle(theme.Change{ID: theme.Visual, Style: theme.VisualStyle(), Options: theme.DefaultOptions()})
	return tb
}

// Min returns the lower bound.
func (tb *TrackBar) Min() int { return tb.min }

// Max returns the upper bound.
func (tb *TrackBar) Max() int { return tb.max }

// Value returns the current value.
func (tb *TrackBar) Value() int { return tb.value }

// SetRange sets both bounds and pulls Value inside them. A max below min
// collapses the range onto max.
func (tb *TrackBar) SetRange(lo, hi int) {
	if hi < lo {
		lo = hi
	}
	tb.min, tb.max = lo, hi
	tb.MarkNeedsPaint()
	tb.setValue(tb.value, false)
}

// SetValue sets Value, clamped to [Min, Max].
func (tb *TrackBar) SetValue(v int) {
	tb.setValue(v, false)
}

func (tb *TrackBar) setValue(v int, scroll bool) {
	v = min(max(v, tb.min), tb.max)
	if v == tb.value {
		return
	}
	tb.value = v
	tb.MarkNeedsPaint()
	if tb.OnValueChanged != nil {
		tb.OnValueChanged(v)
	}
	if scroll && tb.OnScroll != nil {
		tb.OnScroll(v)
	}
}

// Increment raises Value by n, stopping at Max.
func (tb *TrackBar) Increment(n int) {
	tb.setValue(saturatingAdd(tb.value, n), true)
}

// Decrement lowers Value by n, stopping at Min.
func (tb *TrackBar) Decrement(n int) {
	if n == math.MinInt {
		tb.setValue(tb.max, true)
		return
	}
	tb.setValue(saturatingAdd(tb.value, -n), true)
}

// saturatingAdd returns a+b, pinned to the int range instead of wrapping.
func saturatingAdd(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// span is Max−Min in float64; the int difference overflows for ranges wider
// than half the int range.
func (tb *TrackBar) span() float64 {
	return float64(tb.max) - float64(tb.min)
}

// ValueDivision returns the display divisor.
func (tb *TrackBar) ValueDivision() ValueDivisor {
	return tb.division
}

// SetValueDivision sets the display divisor. Only 1, 10, 100 and 1000 are
// accepted.
func (tb *TrackBar) SetValueDivision(d ValueDivisor) error {
	switch d {
	case DivideBy1, DivideBy10, DivideBy100, DivideBy1000:
	default:
		return errors.Invalid("widgets.TrackBar.SetValueDivision",
			fmt.Errorf("%w: divisor %d", errors.ErrInvalidArgument, int(d)))
	}
	tb.division = d
	tb.MarkNeedsPaint()
	return nil
}

// FormattedValue returns Prefix, Value divided by the divisor, and Suffix.
func (tb *TrackBar) FormattedValue() string {
	v := float64(tb.value) / float64(tb.division)
	return tb.Prefix + strconv.FormatFloat(v, 'f', -1, 64) + tb.Suffix
}

// UpdateStyle copies the colors, font and options tb paints with.
func (tb *TrackBar) UpdateStyle(ch theme.Change) {
	tb.TrackColors = ColorState{
		Enabled:  ch.Style.Progress.BackProgress,
		Disabled: ch.Style.Progress.ProgressDisabled,
	}
	tb.ThumbColors = thumbColors(ch.Style)
	tb.ProgressColor = ch.Style.Progress.Progress
	tb.TickColor = ch.Style.Control.Line
	tb.Hatch.applyTheme(ch)
	tb.Border.applyTheme(ch)
	tb.ThumbBorder.applyTheme(ch)
	tb.TextStyle = ch.Style.TextStyle(true)
	tb.TextDisabledColor = ch.Style.Font.ForeColorDisabled
	tb.ValueTextVisible = ch.Options.TextVisible
	tb.ValueTicksVisible = ch.Options.TextVisible
	tb.MarkNeedsPaint()
}

// --- Value and pixel mapping ---

func (tb *TrackBar) workingLength() int {
	size := tb.Size()
	switch tb.Orientation {
	case OrientationHorizontal:
		return int(size.Width) - 2*tb.IndentWidth
	case OrientationVertical:
		return int(size.Height) - 2*tb.IndentHeight
	default:
		errors.Unreachable("widgets.TrackBar.workingLength", tb.Orientation)
		return 0
	}
}

func (tb *TrackBar) thumbLength() int {
	if tb.Orientation == OrientationVertical {
		return int(tb.ThumbSize.Height)
	}
	return int(tb.ThumbSize.Width)
}

// travel is the distance the thumb can move.
func (tb *TrackBar) travel() int {
	return tb.workingLength() - tb.thumbLength()
}

// ValueToPosition returns the thumb offset for v within the working length.
func (tb *TrackBar) ValueToPosition(v int) int {
	if tb.max == tb.min {
		return 0
	}
	return int(float64(tb.travel()) * (float64(v) - float64(tb.min)) / tb.span())
}

// ThumbPosition returns the thumb offset for the current value.
func (tb *TrackBar) ThumbPosition() int {
	return tb.ValueToPosition(tb.value)
}

// PositionToValue maps a thumb offset back to a value, rounding half up and
// clamping to [Min, Max]. It fails when the thumb has no room to travel or
// pos is not a number.
func (tb *TrackBar) PositionToValue(pos float64) (int, error) {
	travel := tb.travel()
	if travel <= 0 {
		return tb.value, &errors.VisualError{
			Op:     "widgets.TrackBar.PositionToValue",
			Kind:   errors.KindPointer,
			Widget: "TrackBar",
			Err:    fmt.Errorf("%w: no travel for thumb length %d", errors.ErrOutOfRange, tb.thumbLength()),
		}
	}
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return tb.value, &errors.VisualError{
			Op:     "widgets.TrackBar.PositionToValue",
			Kind:   errors.KindPointer,
			Widget: "TrackBar",
			Err:    fmt.Errorf("%w: position %v", errors.ErrOutOfRange, pos),
		}
	}
	pos = min(max(pos, 0), float64(travel))
	v := float64(tb.min) + math.Floor(pos*tb.span()/float64(travel)+0.5)
	switch {
	case v <= float64(tb.min):
		return tb.min, nil
	case v >= float64(tb.max):
		return tb.max, nil
	}
	return int(v), nil
}

// --- Input ---

// HandlePointer updates the mouse state and drags the thumb. A press on the
// thumb grabs it where it was hit; a press elsewhere centers the thumb on
// the pointer and grabs it there.
func (tb *TrackBar) HandlePointer(ev gestures.PointerEvent) {
	tb.trackMouse(ev)
	switch ev.Phase {
	case gestures.PointerPhaseDown:
		if ev.Button != gestures.ButtonLeft || !tb.Enabled() {
			return
		}
		thumb := tb.layout().thumb
		at := tb.toCanvas(ev.Position)
		if thumb.Contains(at) {
			tb.grab = tb.along(at) - tb.along(thumb.TopLeft())
		} else {
			tb.grab = float64(tb.thumbLength()) / 2
			tb.dragTo(ev.Position)
		}
		tb.dragging = true
	case gestures.PointerPhaseMove:
		if tb.dragging {
			tb.dragTo(ev.Position)
		}
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		tb.dragging = false
	}
}

// Dragging reports whether a thumb drag is in progress.
func (tb *TrackBar) Dragging() bool {
	return tb.dragging
}

func (tb *TrackBar) along(p graphics.Offset) float64 {
	if tb.Orientation == OrientationVertical {
		return p.Y
	}
	return p.X
}

// dragTo moves the thumb so the grab point sits under the widget-local
// pointer position. Positions that cannot be mapped keep the last value.
func (tb *TrackBar) dragTo(p graphics.Offset) {
	var pos float64
	switch tb.Orientation {
	case OrientationHorizontal:
		pos = p.X - tb.grab - float64(tb.IndentWidth)
	case OrientationVertical:
		top := p.Y - tb.grab - float64(tb.IndentHeight)
		pos = float64(tb.travel()) - top
	default:
		errors.Unreachable("widgets.TrackBar.dragTo", tb.Orientation)
	}
	v, err := tb.PositionToValue(pos)
	if err != nil {
		return
	}
	tb.setValue(v, true)
}

// HandleKey moves the value with the navigation keys: arrows by
// SmallChange, page keys by LargeChange, Home to Max and End to Min.
func (tb *TrackBar) HandleKey(ev gestures.KeyEvent) gestures.KeyEventResult {
	if !tb.Enabled() {
		return gestures.KeyEventIgnored
	}
	switch ev.Key {
	case gestures.KeyLeft, gestures.KeyDown:
		tb.Decrement(tb.SmallChange)
	case gestures.KeyRight, gestures.KeyUp:
		tb.Increment(tb.SmallChange)
	case gestures.KeyPageUp:
		tb.Increment(tb.LargeChange)
	case gestures.KeyPageDown:
		tb.Decrement(tb.LargeChange)
	case gestures.KeyHome:
		tb.setValue(tb.max, true)
	case gestures.KeyEnd:
		tb.setValue(tb.min, true)
	default:
		return gestures.KeyEventIgnored
	}
	return gestures.KeyEventHandled
}
