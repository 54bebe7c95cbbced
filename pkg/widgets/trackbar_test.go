package widgets_test

import (
	"math"
	"testing"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
	vktest "github.com/go-drift/visualkit/pkg/testing"
	"github.com/go-drift/visualkit/pkg/widgets"
)

// newTestTrackBar returns a 0-100 track bar with 180px of thumb travel.
func newTestTrackBar() *widgets.TrackBar {
	tb := widgets.NewTrackBar()
	tb.Fonts = fixedMeasurer{}
	tb.SetBounds(graphics.RectFromLTWH(0, 0, 202, 50))
	tb.ThumbSize.Width = 20
	tb.IndentWidth = 1
	return tb
}

// --- TrackBar value tests ---

func TestTrackBar_ThumbPosition(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)
	if got := tb.ThumbPosition(); got != 90 {
		t.Errorf("ThumbPosition = %d, want 90", got)
	}
	if got := tb.ThumbRect(); got != graphics.RectFromLTWH(91, 0, 20, 20) {
		t.Errorf("ThumbRect = %+v", got)
	}
}

func TestTrackBar_PositionRoundTrip(t *testing.T) {
	tb := newTestTrackBar()
	for v := tb.Min(); v <= tb.Max(); v++ {
		got, err := tb.PositionToValue(float64(tb.ValueToPosition(v)))
		if err != nil {
			t.Fatalf("PositionToValue: %v", err)
		}
		if got < v-1 || got > v+1 {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}
}

func TestTrackBar_PositionToValueClampsAndRounds(t *testing.T) {
	tb := newTestTrackBar()
	tests := []struct {
		pos  float64
		want int
	}{
		{-50, 0},
		{0, 0},
		{0.8, 0},
		{1, 1},
		{40, 22},
		{90, 50},
		{180, 100},
		{1e6, 100},
	}
	for _, tt := range tests {
		got, err := tb.PositionToValue(tt.pos)
		if err != nil {
			t.Fatalf("PositionToValue(%v): %v", tt.pos, err)
		}
		if got != tt.want {
			t.Errorf("PositionToValue(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestTrackBar_PositionToValueErrors(t *testing.T) {
	tb := newTestTrackBar()
	if _, err := tb.PositionToValue(math.NaN()); errors.KindOf(err) != errors.KindPointer {
		t.Errorf("NaN err = %v, want pointer error", err)
	}

	tb.SetBounds(graphics.RectFromLTWH(0, 0, 20, 50))
	_, err := tb.PositionToValue(5)
	if errors.KindOf(err) != errors.KindPointer || !errors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("no-travel err = %v", err)
	}
	var ve *errors.VisualError
	if !errors.As(err, &ve) || ve.Widget != "TrackBar" {
		t.Errorf("err = %#v, want VisualError for TrackBar", err)
	}
}

func TestTrackBar_SetValueClamps(t *testing.T) {
	tb := newTestTrackBar()
	var changes []int
	scrolls := 0
	tb.OnValueChanged = func(v int) { changes = append(changes, v) }
	tb.OnScroll = func(int) { scrolls++ }

	tb.SetValue(150)
	tb.SetValue(150)
	tb.SetValue(-3)
	if len(changes) != 2 || changes[0] != 100 || changes[1] != 0 {
		t.Errorf("changes = %v, want [100 0]", changes)
	}
	if scrolls != 0 {
		t.Errorf("SetValue fired OnScroll %d times", scrolls)
	}
}

func TestTrackBar_SetRange(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)

	tb.SetRange(60, 80)
	if tb.Min() != 60 || tb.Max() != 80 || tb.Value() != 60 {
		t.Errorf("range [%d, %d] value %d", tb.Min(), tb.Max(), tb.Value())
	}

	tb.SetRange(10, 5)
	if tb.Min() != 5 || tb.Max() != 5 || tb.Value() != 5 {
		t.Errorf("collapsed range [%d, %d] value %d", tb.Min(), tb.Max(), tb.Value())
	}
	if got := tb.ValueToPosition(5); got != 0 {
		t.Errorf("ValueToPosition on empty range = %d", got)
	}
}

func TestTrackBar_FormattedValue(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(55)
	if got := tb.FormattedValue(); got != "55" {
		t.Errorf("FormattedValue = %q", got)
	}

	if err := tb.SetValueDivision(widgets.DivideBy10); err != nil {
		t.Fatalf("SetValueDivision: %v", err)
	}
	tb.Prefix, tb.Suffix = "$", " units"
	if got := tb.FormattedValue(); got != "$5.5 units" {
		t.Errorf("FormattedValue = %q", got)
	}

	if err := tb.SetValueDivision(widgets.DivideBy1000); err != nil {
		t.Fatalf("SetValueDivision: %v", err)
	}
	tb.Prefix, tb.Suffix = "", ""
	if got := tb.FormattedValue(); got != "0.055" {
		t.Errorf("FormattedValue = %q", got)
	}

	err := tb.SetValueDivision(widgets.ValueDivisor(3))
	if errors.KindOf(err) != errors.KindInvalidConfiguration || !errors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("SetValueDivision(3) err = %v", err)
	}
	if tb.ValueDivision() != widgets.DivideBy1000 {
		t.Errorf("division = %v after rejected set", tb.ValueDivision())
	}
}

// --- TrackBar input tests ---

func TestTrackBar_Keys(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)
	scrolls := 0
	tb.OnScroll = func(int) { scrolls++ }

	steps := []struct {
		key  gestures.Key
		want int
	}{
		{gestures.KeyRight, 51},
		{gestures.KeyUp, 52},
		{gestures.KeyLeft, 51},
		{gestures.KeyDown, 50},
		{gestures.KeyPageUp, 55},
		{gestures.KeyPageDown, 50},
		{gestures.KeyHome, 100},
		{gestures.KeyEnd, 0},
	}
	for _, s := range steps {
		if n := vktest.PressKeys(tb, s.key); n != 1 {
			t.Fatalf("key %v not handled", s.key)
		}
		if tb.Value() != s.want {
			t.Fatalf("after %v Value = %d, want %d", s.key, tb.Value(), s.want)
		}
	}
	if scrolls != len(steps) {
		t.Errorf("OnScroll fired %d times, want %d", scrolls, len(steps))
	}

	if n := vktest.PressKeys(tb, gestures.KeyUnknown); n != 0 {
		t.Error("unknown key handled")
	}
	tb.SetEnabled(false)
	if n := vktest.PressKeys(tb, gestures.KeyRight); n != 0 || tb.Value() != 0 {
		t.Error("disabled track bar handled a key")
	}
}

func TestTrackBar_KeysStopAtBounds(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(98)
	vktest.PressKeys(tb, gestures.KeyPageUp, gestures.KeyRight)
	if tb.Value() != 100 {
		t.Errorf("Value = %d, want 100", tb.Value())
	}
	tb.SetValue(2)
	vktest.PressKeys(tb, gestures.KeyPageDown)
	if tb.Value() != 0 {
		t.Errorf("Value = %d, want 0", tb.Value())
	}
}

func TestTrackBar_DragThumb(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)
	p := vktest.NewPointer(tb)

	// Thumb spans x 91..111; grabbing its center keeps a 10px grab offset.
	p.Drag(graphics.Offset{X: 101, Y: 10}, graphics.Offset{X: 201, Y: 10}, 5)
	if tb.Value() != 100 {
		t.Errorf("Value after drag right = %d, want 100", tb.Value())
	}
	if tb.Dragging() {
		t.Error("still dragging after release")
	}

	center := tb.ThumbRect().Center()
	p.Drag(center, graphics.Offset{X: 0, Y: 10}, 5)
	if tb.Value() != 0 {
		t.Errorf("Value after drag left = %d, want 0", tb.Value())
	}
}

func TestTrackBar_PressOnTrackJumps(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)
	scrolled := -1
	tb.OnScroll = func(v int) { scrolled = v }

	vktest.NewPointer(tb).Down(graphics.Offset{X: 51, Y: 10}, gestures.ButtonLeft)
	if tb.Value() != 22 || scrolled != 22 {
		t.Errorf("Value = %d scrolled = %d, want 22", tb.Value(), scrolled)
	}
	if !tb.Dragging() {
		t.Error("press on track did not start a drag")
	}
	if got := tb.ThumbRect().Center().X; got != 50 {
		t.Errorf("thumb center x = %v, want 50", got)
	}
}

func TestTrackBar_DragWithoutTravelKeepsValue(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)
	tb.SetBounds(graphics.RectFromLTWH(0, 0, 20, 50))

	p := vktest.NewPointer(tb)
	p.Drag(graphics.Offset{X: 5, Y: 10}, graphics.Offset{X: 19, Y: 10}, 3)
	if tb.Value() != 50 {
		t.Errorf("Value = %d, want 50", tb.Value())
	}
}

func TestTrackBar_DisabledIgnoresPointer(t *testing.T) {
	tb := newTestTrackBar()
	tb.SetValue(50)
	tb.SetEnabled(false)
	vktest.NewPointer(tb).Drag(graphics.Offset{X: 101, Y: 10}, graphics.Offset{X: 201, Y: 10}, 2)
	if tb.Value() != 50 || tb.Dragging() {
		t.Errorf("Value = %d dragging = %v", tb.Value(), tb.Dragging())
	}
}

// --- Vertical TrackBar tests ---

func newVerticalTrackBar() *widgets.TrackBar {
	tb := widgets.NewTrackBar()
	tb.Fonts = fixedMeasurer{}
	tb.Orientation = widgets.OrientationVertical
	tb.SetBounds(graphics.RectFromLTWH(0, 0, 50, 202))
	tb.ThumbSize = graphics.Size{Width: 27, Height: 20}
	tb.IndentHeight = 1
	return tb
}

func TestTrackBar_VerticalGrowsUpward(t *testing.T) {
	tb := newVerticalTrackBar()
	tb.SetValue(100)
	if got := tb.ThumbRect().Top; got != 1 {
		t.Errorf("thumb top at max = %v, want 1", got)
	}
	tb.SetValue(0)
	if got := tb.ThumbRect().Top; got != 181 {
		t.Errorf("thumb top at min = %v, want 181", got)
	}
}

func TestTrackBar_VerticalDrag(t *testing.T) {
	tb := newVerticalTrackBar()
	p := vktest.NewPointer(tb)

	center := tb.ThumbRect().Center()
	p.Drag(center, graphics.Offset{X: center.X, Y: 101}, 4)
	if tb.Value() != 50 {
		t.Errorf("Value = %d, want 50", tb.Value())
	}
	p.Drag(graphics.Offset{X: center.X, Y: 101}, graphics.Offset{X: center.X, Y: 1}, 4)
	if tb.Value() != 100 {
		t.Errorf("Value = %d, want 100", tb.Value())
	}
}

// --- TrackBar layout and paint tests ---

func TestTrackBar_PreferredSize(t *testing.T) {
	tb := newTestTrackBar()
	if got := tb.PreferredSize(); got != (graphics.Size{Width: 202, Height: 20}) {
		t.Errorf("PreferredSize without ticks = %+v", got)
	}

	tb.TickStyle = widgets.TickBoth
	// Each tick band is text (10) + tick (4) + spacing (8).
	if got := tb.PreferredSize(); got != (graphics.Size{Width: 202, Height: 54}) {
		t.Errorf("PreferredSize with ticks = %+v", got)
	}

	tb.TickStyle = widgets.TickNone
	tb.ThumbVisible = false
	if got := tb.PreferredSize().Height; got != 10 {
		t.Errorf("PreferredSize height without thumb = %v, want 10", got)
	}

	v := newVerticalTrackBar()
	if got := v.PreferredSize(); got != (graphics.Size{Width: 27, Height: 202}) {
		t.Errorf("vertical PreferredSize = %+v", got)
	}
}

func TestTrackBar_Paint(t *testing.T) {
	tb := newTestTrackBar()
	tb.TickStyle = widgets.TickBoth
	tb.SetValue(50)
	canvas := vktest.NewCaptureCanvas(graphics.Size{Width: 202, Height: 54})
	tb.Paint(canvas)

	if canvas.Depth() != 0 {
		t.Fatalf("unbalanced save/restore, depth %d", canvas.Depth())
	}
	if tb.NeedsPaint() {
		t.Error("NeedsPaint after Paint")
	}

	rects := canvas.Filter("drawRect")
	if len(rects) != 1 {
		t.Fatalf("drawRect ops = %d, want 1 progress fill", len(rects))
	}
	progress := rects[0].Params["rect"].(map[string]any)
	if progress["left"] != 1.0 || progress["right"] != 101.0 {
		t.Errorf("progress rect = %v, want x 1..101", progress)
	}
	if rects[0].Params["color"] != colorParam(tb.ProgressColor) {
		t.Errorf("progress color = %v", rects[0].Params["color"])
	}

	ticks := 0
	for _, op := range canvas.Filter("drawLine") {
		if op.Params["color"] == colorParam(tb.TickColor) {
			ticks++
		}
	}
	if ticks != 22 {
		t.Errorf("tick lines = %d, want 22", ticks)
	}

	texts := canvas.Filter("drawText")
	if len(texts) != 23 {
		t.Fatalf("text ops = %d, want 22 tick labels and the value", len(texts))
	}
	value := texts[len(texts)-1]
	// "50" is 12x10, centered on the thumb at (101, 27).
	if value.Params["text"] != "50" || value.Params["x"] != 95.0 || value.Params["y"] != 22.0 {
		t.Errorf("value text op = %v", value)
	}
}

func TestTrackBar_PaintHiddenParts(t *testing.T) {
	tb := newTestTrackBar()
	tb.TickStyle = widgets.TickBoth
	tb.ProgressVisible = false
	tb.LineTicksVisible = false
	tb.ValueTicksVisible = false
	tb.ValueTextVisible = false
	tb.ThumbVisible = false
	canvas := vktest.NewCaptureCanvas(graphics.Size{Width: 202, Height: 54})
	tb.Paint(canvas)

	for _, op := range []string{"drawRect", "drawLine", "drawText"} {
		if n := len(canvas.Filter(op)); n != 0 {
			t.Errorf("%s ops = %d, want 0", op, n)
		}
	}
	if n := len(canvas.Filter("drawPath")); n != 2 {
		t.Errorf("drawPath ops = %d, want track fill and border", n)
	}
}

func TestTrackBar_UnknownEnumsPanic(t *testing.T) {
	canvas := vktest.NewCaptureCanvas(graphics.Size{Width: 202, Height: 50})

	tb := newTestTrackBar()
	tb.Orientation = widgets.Orientation(7)
	expectProgrammingError(t, func() { tb.Paint(canvas) })

	tb = newTestTrackBar()
	tb.TickStyle = widgets.TickStyle(9)
	expectProgrammingError(t, func() { tb.Paint(canvas) })
}

// --- Hatch tests ---

func TestHatch_Paint(t *testing.T) {
	h := widgets.Hatch{Visible: true, Size: 2, ForeColor: graphics.ColorBlack}
	canvas := vktest.NewCaptureCanvas(graphics.Size{Width: 40, Height: 10})
	h.Paint(canvas, graphics.RectFromLTWH(0, 0, 40, 10))

	names := canvas.Names()
	if names[0] != "save" || names[1] != "clipRect" || names[len(names)-1] != "restore" {
		t.Errorf("ops = %v", names)
	}
	// Lines start every 4px from x = -10 up to x < 40.
	if n := len(canvas.Filter("drawLine")); n != 13 {
		t.Errorf("lines = %d, want 13", n)
	}

	canvas.Reset()
	h.Visible = false
	h.Paint(canvas, graphics.RectFromLTWH(0, 0, 40, 10))
	if len(canvas.Ops()) != 0 {
		t.Error("hidden hatch drew")
	}
}

func TestTrackBar_FullIntRange(t *testing.T) {
	c := &errors.Collector{}
	defer errors.SetHandler(errors.SetHandler(c))

	tb := newTestTrackBar()
	tb.Hatch.Visible = false
	tb.SetRange(math.MinInt, math.MaxInt)

	tb.SetValue(math.MaxInt)
	if got := tb.ThumbPosition(); got != 180 {
		t.Errorf("ThumbPosition at max = %d, want 180", got)
	}
	tb.SetValue(math.MinInt)
	if got := tb.ThumbPosition(); got != 0 {
		t.Errorf("ThumbPosition at min = %d, want 0", got)
	}

	tests := []struct {
		pos  float64
		want int
	}{
		{0, math.MinInt},
		{90, 0},
		{180, math.MaxInt},
	}
	for _, tt := range tests {
		got, err := tb.PositionToValue(tt.pos)
		if err != nil || got != tt.want {
			t.Errorf("PositionToValue(%v) = %d, %v; want %d", tt.pos, got, err, tt.want)
		}
	}

	tb.SetValue(0)
	tb.Increment(math.MaxInt)
	tb.Increment(math.MaxInt)
	if tb.Value() != math.MaxInt {
		t.Errorf("Value after saturating increments = %d, want MaxInt", tb.Value())
	}
	tb.Decrement(math.MaxInt)
	tb.Decrement(math.MaxInt)
	tb.Decrement(math.MaxInt)
	if tb.Value() != math.MinInt {
		t.Errorf("Value after saturating decrements = %d, want MinInt", tb.Value())
	}

	canvas := vktest.NewCaptureCanvas(graphics.Size{Width: 202, Height: 50})
	tb.Paint(canvas)
	ticks := 0
	for _, op := range canvas.Filter("drawLine") {
		if op.Params["color"] == colorParam(tb.TickColor) {
			ticks++
		}
	}
	if ticks == 0 || ticks > 2*1001 {
		t.Errorf("tick lines = %d, want between 1 and 2002", ticks)
	}
	if len(c.Panics()) != 0 {
		t.Errorf("paint reported panics: %v", c.Panics()[0].Value)
	}
}
