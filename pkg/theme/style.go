// Package theme supplies the named color, font and shape tables widgets paint
// with, and the Manager that switches between them.
package theme

import "github.com/go-drift/visualkit/pkg/graphics"

// ID names a theme in a Registry.
type ID string

// Built-in theme identifiers.
const (
	Visual         ID = "visual"
	Enigma         ID = "enigma"
	BlackAndYellow ID = "black-and-yellow"
)

// Style is the immutable bundle of values a theme supplies.
//
// A Style is a plain value: widgets copy the fields they need when a theme
// changes and never hold a reference to the Manager's current Style.
type Style struct {
	ID        ID
	Control   ControlStyle
	Border    BorderStyle
	Font      FontStyle
	Progress  ProgressStyle
	Checkmark CheckmarkStyle
	Tab       TabStyle
}

// ControlStyle holds the control background table.
type ControlStyle struct {
	// Enabled, Hover, Pressed and Disabled form the interaction color table.
	Enabled  graphics.Color
	Hover    graphics.Color
	Pressed  graphics.Color
	Disabled graphics.Color
	// Line is used for separators and tick marks.
	Line graphics.Color
	// Shadow is used beneath raised surfaces.
	Shadow graphics.Color
	// Backgrounds are container backgrounds by nesting depth.
	Backgrounds []graphics.Color
}

// BorderStyle holds border colors.
type BorderStyle struct {
	Color      graphics.Color
	HoverColor graphics.Color
}

// FontStyle holds the text font and its colors.
type FontStyle struct {
	Family            string
	Size              float64
	ForeColor         graphics.Color
	ForeColorDisabled graphics.Color
	ForeColorSelected graphics.Color
}

// ProgressStyle holds progress and trackbar colors.
type ProgressStyle struct {
	Progress         graphics.Color
	BackProgress     graphics.Color
	ProgressDisabled graphics.Color
	Hatch            graphics.Color
	ForeCircle       graphics.Color
	BackCircle       graphics.Color
}

// CheckmarkStyle holds check box colors.
type CheckmarkStyle struct {
	CheckColor  graphics.Color
	BoxEnabled  graphics.Color
	BoxDisabled graphics.Color
}

// TabStyle holds tab strip colors.
type TabStyle struct {
	Enabled  graphics.Color
	Hover    graphics.Color
	Selected graphics.Color
	Menu     graphics.Color
}

// ControlColorTable is the four-entry interaction color table.
type ControlColorTable struct {
	Enabled  graphics.Color
	Hover    graphics.Color
	Pressed  graphics.Color
	Disabled graphics.Color
}

// Background returns the container background for depth. Depths past the
// end of the table, and negative depths, are white.
func (s Style) Background(depth int) graphics.Color {
	if depth < 0 || depth >= len(s.Control.Backgrounds) {
		return graphics.ColorWhite
	}
	return s.Control.Backgrounds[depth]
}

// ControlColors returns the control interaction table.
func (s Style) ControlColors() ControlColorTable {
	return ControlColorTable{
		Enabled:  s.Control.Enabled,
		Hover:    s.Control.Hover,
		Pressed:  s.Control.Pressed,
		Disabled: s.Control.Disabled,
	}
}

// TextStyle returns the font as a graphics.TextStyle in the enabled or
// disabled fore color.
func (s Style) TextStyle(enabled bool) graphics.TextStyle {
	c := s.Font.ForeColor
	if !enabled {
		c = s.Font.ForeColorDisabled
	}
	return graphics.TextStyle{
		Color:      c,
		FontFamily: s.Font.Family,
		FontSize:   s.Font.Size,
		FontWeight: graphics.FontWeightNormal,
	}
}

// Clone returns a copy that shares no slices with s.
func (s Style) Clone() Style {
	s.Control.Backgrounds = append([]graphics.Color(nil), s.Control.Backgrounds...)
	return s
}
