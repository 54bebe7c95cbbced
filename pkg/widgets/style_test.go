package widgets_test

import (
	"testing"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
	"github.com/go-drift/visualkit/pkg/widgets"
)

// --- Color state tests ---

func TestControlColorState_Select(t *testing.T) {
	c := widgets.ControlColorState{
		Enabled:  graphics.RGB(1, 1, 1),
		Hover:    graphics.RGB(2, 2, 2),
		Pressed:  graphics.RGB(3, 3, 3),
		Disabled: graphics.RGB(4, 4, 4),
	}
	tests := []struct {
		enabled bool
		state   widgets.MouseState
		want    graphics.Color
	}{
		{true, widgets.MouseStateNormal, c.Enabled},
		{true, widgets.MouseStateHover, c.Hover},
		{true, widgets.MouseStateDown, c.Pressed},
		{false, widgets.MouseStateNormal, c.Disabled},
		{false, widgets.MouseStateHover, c.Disabled},
		{false, widgets.MouseStateDown, c.Disabled},
	}
	for _, tt := range tests {
		if got := c.Select(tt.enabled, tt.state); got != tt.want {
			t.Errorf("Select(%v, %v) = %v, want %v", tt.enabled, tt.state, got, tt.want)
		}
	}
}

func TestColorState_Select(t *testing.T) {
	c := widgets.ColorState{Enabled: graphics.ColorWhite, Disabled: graphics.ColorBlack}
	if c.Select(true) != graphics.ColorWhite || c.Select(false) != graphics.ColorBlack {
		t.Errorf("Select = %v, %v", c.Select(true), c.Select(false))
	}
}

func TestControlColorsFrom(t *testing.T) {
	s := theme.VisualStyle()
	got := widgets.ControlColorsFrom(s.ControlColors())
	if got.Enabled != s.Control.Enabled || got.Hover != s.Control.Hover ||
		got.Pressed != s.Control.Pressed || got.Disabled != s.Control.Disabled {
		t.Errorf("ControlColorsFrom = %+v", got)
	}
}

// --- Border tests ---

func TestBorder_SettersRejectAndKeepPrevious(t *testing.T) {
	b := widgets.DefaultBorder()
	rounding, thickness := b.Rounding, b.Thickness

	if err := b.SetRounding(theme.MaxBorderRounding + 1); errors.KindOf(err) != errors.KindInvalidConfiguration {
		t.Errorf("SetRounding err = %v", err)
	}
	if b.Rounding != rounding {
		t.Errorf("Rounding = %d, want %d", b.Rounding, rounding)
	}
	if err := b.SetThickness(0); !errors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("SetThickness err = %v", err)
	}
	if b.Thickness != thickness {
		t.Errorf("Thickness = %d, want %d", b.Thickness, thickness)
	}
	if err := b.SetShape(theme.BorderShape(7)); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("SetShape err = %v", err)
	}
	if b.Shape != theme.BorderShapeRounded {
		t.Errorf("Shape = %v", b.Shape)
	}

	if err := b.SetRounding(theme.MinBorderRounding); err != nil {
		t.Fatalf("SetRounding(min): %v", err)
	}
	if b.Rounding != theme.MinBorderRounding {
		t.Errorf("Rounding = %d", b.Rounding)
	}
}

func TestBorder_Path(t *testing.T) {
	rect := graphics.RectFromLTWH(10, 10, 40, 20)
	for _, shape := range []theme.BorderShape{theme.BorderShapeRounded, theme.BorderShapeRectangle} {
		b := widgets.DefaultBorder()
		b.Shape = shape
		if got := b.Path(rect).Bounds(); got != rect {
			t.Errorf("%v: Bounds = %+v, want %+v", shape, got, rect)
		}
	}
}

func TestBorder_PathUnknownShapePanics(t *testing.T) {
	b := widgets.DefaultBorder()
	b.Shape = theme.BorderShape(42)
	expectProgrammingError(t, func() { b.Path(graphics.RectFromLTWH(0, 0, 10, 10)) })
}

func TestBorder_ColorFor(t *testing.T) {
	b := widgets.Border{Color: graphics.ColorBlack, HoverColor: graphics.ColorWhite, HoverVisible: true}
	if b.ColorFor(widgets.MouseStateHover) != graphics.ColorWhite {
		t.Error("hover should use HoverColor")
	}
	if b.ColorFor(widgets.MouseStateDown) != graphics.ColorBlack {
		t.Error("down should use Color")
	}
	b.HoverVisible = false
	if b.ColorFor(widgets.MouseStateHover) != graphics.ColorBlack {
		t.Error("hidden hover should use Color")
	}
}

// --- Text and image layout tests ---

func TestLayoutTextImage(t *testing.T) {
	bounds := graphics.RectFromLTWH(0, 0, 100, 40)
	img := graphics.Size{Width: 16, Height: 16}
	text := graphics.Size{Width: 30, Height: 10}

	tests := []struct {
		rel       widgets.TextImageRelation
		wantImage graphics.Offset
		wantText  graphics.Offset
	}{
		{widgets.RelationOverlay, graphics.Offset{X: 42, Y: 12}, graphics.Offset{X: 35, Y: 15}},
		{widgets.RelationImageBeforeText, graphics.Offset{X: 25, Y: 12}, graphics.Offset{X: 45, Y: 15}},
		{widgets.RelationTextBeforeImage, graphics.Offset{X: 59, Y: 12}, graphics.Offset{X: 25, Y: 15}},
		{widgets.RelationImageAboveText, graphics.Offset{X: 42, Y: 5}, graphics.Offset{X: 35, Y: 25}},
		{widgets.RelationTextAboveImage, graphics.Offset{X: 42, Y: 19}, graphics.Offset{X: 35, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.rel.String(), func(t *testing.T) {
			gotImage, gotText := widgets.LayoutTextImage(tt.rel, bounds, img, text)
			if gotImage != tt.wantImage {
				t.Errorf("image at %+v, want %+v", gotImage, tt.wantImage)
			}
			if gotText != tt.wantText {
				t.Errorf("text at %+v, want %+v", gotText, tt.wantText)
			}
		})
	}
}

func TestLayoutTextImage_NoImageAddsNoSpacing(t *testing.T) {
	bounds := graphics.RectFromLTWH(0, 0, 100, 40)
	_, textAt := widgets.LayoutTextImage(widgets.RelationImageBeforeText, bounds, graphics.Size{}, graphics.Size{Width: 30, Height: 10})
	if textAt != (graphics.Offset{X: 35, Y: 15}) {
		t.Errorf("text at %+v", textAt)
	}
}

func TestLayoutTextImage_UnknownRelationPanics(t *testing.T) {
	expectProgrammingError(t, func() {
		widgets.LayoutTextImage(widgets.TextImageRelation(99), graphics.Rect{}, graphics.Size{}, graphics.Size{})
	})
}
