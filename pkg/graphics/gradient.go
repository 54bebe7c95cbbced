package graphics

import "math"

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient is a linear gradient between two points. Stops must be sorted by
// Position in [0, 1].
type Gradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Start: start,
		End:   end,
		Stops: append([]GradientStop(nil), stops...),
	}
}

// VerticalGradient runs from top to bottom across r.
func VerticalGradient(r Rect, top, bottom Color) *Gradient {
	return NewLinearGradient(
		Offset{X: r.Left, Y: r.Top},
		Offset{X: r.Left, Y: r.Bottom},
		[]GradientStop{{Position: 0, Color: top}, {Position: 1, Color: bottom}},
	)
}

// ColorAt evaluates the gradient at point p.
func (g *Gradient) ColorAt(p Offset) Color {
	if g == nil || len(g.Stops) == 0 {
		return ColorTransparent
	}
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > epsilon {
		t = ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lenSq
	}
	return g.colorAtT(clamp01(t))
}

func (g *Gradient) colorAtT(t float64) Color {
	stops := g.Stops
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= epsilon {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

func lerpColor(a, b Color, t float64) Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA8(mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()), mix(a.A(), b.A()))
}
