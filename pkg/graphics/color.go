package graphics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(c.A()) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// ColorFromStd converts any color.Color into a Color.
func ColorFromStd(sc color.Color) Color {
	n := color.NRGBAModel.Convert(sc).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// Lighten returns the color with its HSL lightness raised by amount (0-1).
// Alpha is preserved.
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.toColorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+amount)), c.A())
}

// Darken returns the color with its HSL lightness lowered by amount (0-1).
func (c Color) Darken(amount float64) Color {
	return c.Lighten(-amount)
}

// Hex formats the color as #AARRGGBB, or #RRGGBB when opaque.
func (c Color) Hex() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A(), c.R(), c.G(), c.B())
}

// String returns the hex representation.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses #RRGGBB or #AARRGGBB.
func ParseHex(s string) (Color, error) {
	switch len(s) {
	case 7:
		cf, err := colorful.Hex(s)
		if err != nil {
			return 0, err
		}
		return fromColorful(cf, 0xFF), nil
	case 9:
		if s[0] != '#' {
			return 0, fmt.Errorf("color %q: missing leading #", s)
		}
		var a, r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x%02x", &a, &r, &g, &b); err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		return RGBA8(r, g, b, a), nil
	default:
		return 0, fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB", s)
	}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / maxByte,
		G: float64(c.G()) / maxByte,
		B: float64(c.B()) / maxByte,
	}
}

func fromColorful(cf colorful.Color, a uint8) Color {
	r, g, b := cf.Clamped().RGB255()
	return RGBA8(r, g, b, a)
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorSilver      = Color(0xFFC0C0C0)
	ColorGray        = Color(0xFF808080)
	ColorLightGray   = Color(0xFFD3D3D3)
	ColorGainsboro   = Color(0xFFDCDCDC)
)
