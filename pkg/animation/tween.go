package animation

import (
	"math"

	"github.com/go-drift/visualkit/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 progress of an [Engine] entry or a [Slide] to any value
// range or type. Use [TweenColor] for colors or supply a custom Lerp.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End at t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the eased progress of entry i of e, or at
// Begin when the engine has no entry i.
func (tw *Tween[T]) Transform(e *Engine, i int) T {
	if i < 0 || i >= e.Count() {
		return tw.Evaluate(0)
	}
	return tw.Evaluate(e.Progress(i))
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor interpolates each ARGB channel, rounding to the nearest byte.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(LerpFloat64(float64(x), float64(y), clampUnit(t))))
	}
	return graphics.RGBA8(mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()), mix(a.A(), b.A()))
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
