package theme

import "github.com/go-drift/visualkit/pkg/graphics"

// VisualStyle returns the default light theme.
func VisualStyle() Style {
	return Style{
		ID: Visual,
		Control: ControlStyle{
			Enabled:  graphics.RGB(226, 226, 226),
			Hover:    graphics.RGB(181, 181, 181),
			Pressed:  graphics.RGB(137, 136, 136),
			Disabled: graphics.RGB(243, 243, 243),
			Line:     graphics.RGB(224, 222, 220),
			Shadow:   graphics.RGB(250, 249, 249),
			Backgrounds: []graphics.Color{
				graphics.RGB(243, 243, 243),
				graphics.ColorGainsboro.Lighten(0.1),
				graphics.RGB(226, 226, 226),
				graphics.RGB(210, 210, 210),
			},
		},
		Border: BorderStyle{
			Color:      graphics.RGB(180, 180, 180),
			HoverColor: graphics.RGB(120, 183, 230),
		},
		Font: FontStyle{
			Family:            "Segoe UI",
			Size:              9,
			ForeColor:         graphics.ColorBlack,
			ForeColorDisabled: graphics.RGB(131, 129, 129),
			ForeColorSelected: graphics.RGB(217, 220, 227),
		},
		Progress: ProgressStyle{
			Progress:         graphics.RGB(0x2C, 0x85, 0xDC),
			BackProgress:     graphics.RGB(226, 226, 226),
			ProgressDisabled: graphics.RGB(131, 129, 129),
			Hatch:            graphics.ColorBlack.WithAlpha8(20),
			ForeCircle:       graphics.RGB(48, 56, 68),
			BackCircle:       graphics.RGB(52, 73, 96),
		},
		Checkmark: CheckmarkStyle{
			CheckColor:  graphics.RGB(0x2C, 0x85, 0xDC),
			BoxEnabled:  graphics.RGB(241, 244, 249),
			BoxDisabled: graphics.RGB(131, 129, 129),
		},
		Tab: TabStyle{
			Enabled:  graphics.RGB(55, 61, 73),
			Hover:    graphics.RGB(35, 36, 38),
			Selected: graphics.RGB(70, 76, 88),
			Menu:     graphics.RGB(55, 61, 73),
		},
	}
}

// EnigmaStyle returns the green-accented theme.
func EnigmaStyle() Style {
	return Style{
		ID: Enigma,
		Control: ControlStyle{
			Enabled:  graphics.RGB(226, 226, 226),
			Hover:    graphics.RGB(181, 181, 181),
			Pressed:  graphics.RGB(137, 136, 136),
			Disabled: graphics.RGB(243, 243, 243),
			Line:     graphics.RGB(224, 222, 220),
			Shadow:   graphics.RGB(250, 249, 249),
			Backgrounds: []graphics.Color{
				graphics.RGB(42, 42, 42).Lighten(0.5),
				graphics.ColorGainsboro.Lighten(0.1),
				graphics.RGB(66, 64, 65),
				graphics.RGB(32, 32, 33),
			},
		},
		Border: BorderStyle{
			Color:      graphics.RGB(180, 180, 180),
			HoverColor: graphics.RGB(230, 120, 125),
		},
		Font: FontStyle{
			Family:            "Verdana",
			Size:              8.25,
			ForeColor:         graphics.ColorWhite,
			ForeColorDisabled: graphics.RGB(131, 129, 129),
			ForeColorSelected: graphics.RGB(217, 220, 227),
		},
		Progress: ProgressStyle{
			Progress:         graphics.RGB(0x2D, 0x88, 0x2D),
			BackProgress:     graphics.RGB(137, 136, 136),
			ProgressDisabled: graphics.RGB(131, 129, 129),
			Hatch:            graphics.ColorBlack.WithAlpha8(20),
			ForeCircle:       graphics.RGB(48, 56, 68),
			BackCircle:       graphics.RGB(52, 73, 96),
		},
		Checkmark: CheckmarkStyle{
			CheckColor:  graphics.RGB(0x2D, 0x88, 0x2D),
			BoxEnabled:  graphics.RGB(241, 244, 249),
			BoxDisabled: graphics.RGB(131, 129, 129),
		},
		Tab: TabStyle{
			Enabled:  graphics.RGB(55, 61, 73),
			Hover:    graphics.RGB(35, 36, 38),
			Selected: graphics.RGB(70, 76, 88),
			Menu:     graphics.RGB(55, 61, 73),
		},
	}
}

// BlackAndYellowStyle returns the high-contrast dark theme.
func BlackAndYellowStyle() Style {
	yellow := graphics.RGB(255, 204, 0)
	return Style{
		ID: BlackAndYellow,
		Control: ControlStyle{
			Enabled:  graphics.RGB(40, 40, 40),
			Hover:    graphics.RGB(60, 60, 60),
			Pressed:  graphics.RGB(20, 20, 20),
			Disabled: graphics.RGB(90, 90, 90),
			Line:     yellow.Darken(0.2),
			Shadow:   graphics.RGB(15, 15, 15),
			Backgrounds: []graphics.Color{
				graphics.RGB(30, 30, 30),
				graphics.RGB(45, 45, 45),
				graphics.RGB(20, 20, 20),
			},
		},
		Border: BorderStyle{
			Color:      yellow,
			HoverColor: yellow.Lighten(0.2),
		},
		Font: FontStyle{
			Family:            "Segoe UI",
			Size:              9,
			ForeColor:         yellow,
			ForeColorDisabled: graphics.RGB(128, 112, 48),
			ForeColorSelected: graphics.ColorWhite,
		},
		Progress: ProgressStyle{
			Progress:         yellow,
			BackProgress:     graphics.RGB(60, 60, 60),
			ProgressDisabled: graphics.RGB(90, 90, 90),
			Hatch:            graphics.ColorBlack.WithAlpha8(40),
			ForeCircle:       yellow,
			BackCircle:       graphics.RGB(60, 60, 60),
		},
		Checkmark: CheckmarkStyle{
			CheckColor:  yellow,
			BoxEnabled:  graphics.RGB(40, 40, 40),
			BoxDisabled: graphics.RGB(90, 90, 90),
		},
		Tab: TabStyle{
			Enabled:  graphics.RGB(30, 30, 30),
			Hover:    graphics.RGB(50, 50, 50),
			Selected: yellow,
			Menu:     graphics.RGB(30, 30, 30),
		},
	}
}
