package animation

// Easing curves map raw linear progress t in [0, 1] to eased progress.
// An [Engine] advances raw progress linearly and applies its Curve when the
// value is read through [Engine.Progress].
//
// Any func(float64) float64 that keeps [0, 1] inside [0, 1] can serve as a
// curve; Progress clamps whatever it returns.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut is the quadratic ease-out 1-(1-t)², fast at the start and slow at
// the end. Ripples use it so the circle spreads quickly and settles.
func EaseOut(t float64) float64 {
	t = clampUnit(t)
	inv := 1 - t
	return 1 - inv*inv
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
