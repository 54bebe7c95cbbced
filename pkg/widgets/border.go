package widgets

import (
	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// Border describes the outline of a control.
type Border struct {
	Shape        theme.BorderShape
	Rounding     int
	Thickness    int
	Color        graphics.Color
	HoverColor   graphics.Color
	Visible      bool
	HoverVisible bool
}

// DefaultBorder returns a border using the default theme options.
func DefaultBorder() Border {
	b := Border{}
	b.applyOptions(theme.DefaultOptions())
	return b
}

// SetRounding sets the corner radius. Values outside the allowed range are
// rejected and the previous radius is kept.
func (b *Border) SetRounding(v int) error {
	if err := theme.ValidateBorderRounding("widgets.Border.SetRounding", v); err != nil {
		return err
	}
	b.Rounding = v
	return nil
}

// SetThickness sets the stroke width. Values outside the allowed range are
// rejected and the previous width is kept.
func (b *Border) SetThickness(v int) error {
	if err := theme.ValidateBorderThickness("widgets.Border.SetThickness", v); err != nil {
		return err
	}
	b.Thickness = v
	return nil
}

// SetShape sets the outline shape, rejecting unknown values.
func (b *Border) SetShape(s theme.BorderShape) error {
	if err := theme.ValidateBorderShape("widgets.Border.SetShape", s); err != nil {
		return err
	}
	b.Shape = s
	return nil
}

// Path builds the outline of rect.
func (b Border) Path(rect graphics.Rect) *graphics.Path {
	p := graphics.NewPath()
	switch b.Shape {
	case theme.BorderShapeRounded:
		p.AddRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(float64(b.Rounding))))
	case theme.BorderShapeRectangle:
		p.AddRect(rect)
	default:
		errors.Unreachable("widgets.Border.Path", b.Shape)
	}
	return p
}

// ColorFor returns HoverColor while hovered when HoverVisible is set, and
// Color otherwise.
func (b Border) ColorFor(state MouseState) graphics.Color {
	if state == MouseStateHover && b.HoverVisible {
		return b.HoverColor
	}
	return b.Color
}

// Stroke outlines path in the color for state. Nothing is drawn when the
// border is hidden.
func (b Border) Stroke(canvas graphics.Canvas, path *graphics.Path, state MouseState) {
	b.strokeColor(canvas, path, b.ColorFor(state))
}

func (b Border) strokeColor(canvas graphics.Canvas, path *graphics.Path, color graphics.Color) {
	if !b.Visible || b.Thickness <= 0 {
		return
	}
	canvas.DrawPath(path, graphics.StrokePaint(color, float64(b.Thickness)))
}

func (b *Border) applyOptions(o theme.Options) {
	b.Shape = o.BorderShape
	b.Rounding = o.BorderRounding
	b.Thickness = o.BorderThickness
	b.Visible = o.BorderVisible
	b.HoverVisible = o.BorderHoverVisible
}

// applyTheme copies shape options and border colors out of a change.
func (b *Border) applyTheme(ch theme.Change) {
	b.applyOptions(ch.Options)
	b.Color = ch.Style.Border.Color
	b.HoverColor = ch.Style.Border.HoverColor
}
