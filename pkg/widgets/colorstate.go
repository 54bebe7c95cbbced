package widgets

import (
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// ColorState is a two-entry table chosen by the enabled flag.
type ColorState struct {
	Enabled  graphics.Color
	Disabled graphics.Color
}

// Select returns Enabled or Disabled.
func (c ColorState) Select(enabled bool) graphics.Color {
	if !enabled {
		return c.Disabled
	}
	return c.Enabled
}

// ControlColorState is the four-entry interaction color table.
type ControlColorState struct {
	Enabled  graphics.Color
	Hover    graphics.Color
	Pressed  graphics.Color
	Disabled graphics.Color
}

// ControlColorsFrom copies a theme table.
func ControlColorsFrom(t theme.ControlColorTable) ControlColorState {
	return ControlColorState{
		Enabled:  t.Enabled,
		Hover:    t.Hover,
		Pressed:  t.Pressed,
		Disabled: t.Disabled,
	}
}

// Select picks the color for the given enabled flag and mouse state.
// Disabled wins over everything; Down wins over Hover.
func (c ControlColorState) Select(enabled bool, state MouseState) graphics.Color {
	switch {
	case !enabled:
		return c.Disabled
	case state == MouseStateDown:
		return c.Pressed
	case state == MouseStateHover:
		return c.Hover
	default:
		return c.Enabled
	}
}

// thumbColors is the table thumbs and knobs use: the first background for
// Enabled, a fixed light gray for Hover and Disabled, silver when pressed.
func thumbColors(s theme.Style) ControlColorState {
	light := graphics.RGB(224, 224, 224)
	return ControlColorState{
		Enabled:  s.Background(0),
		Hover:    light,
		Pressed:  graphics.ColorSilver,
		Disabled: light,
	}
}
