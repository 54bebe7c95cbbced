// Package animation provides the interpolation primitives that drive widget
// effects: ripples, hover fades and the toggle slide.
//
// # Core Components
//
//   - [Engine]: a set of progress entries in [0, 1], each moving In (toward 1)
//     or Out (toward 0) by a fixed increment per tick. One-shot engines
//     drop an entry when it reaches its terminal bound; singular engines keep
//     a single entry and reverse it on restart.
//
//   - [Slide]: a stepped integer counter used by the toggle thumb, moved by a
//     fixed step per tick between 0 and a maximum.
//
//   - [Loop]: the host-driven frame loop. Nothing in this package owns a
//     timer; the host calls [Loop.Step] (or [Loop.Frame]) from its own
//     update loop and repaints whatever was invalidated.
//
//   - Curves and [Tween]: easing functions and typed interpolation.
//
// # Basic Usage
//
//	ripple := animation.NewEngine(animation.PolicyOneShot, 0.03, animation.EaseOut)
//	ripple.AddListener(func() { invalidate() })
//	ripple.Start(animation.DirectionIn, pointer)
//
//	// In the host's update loop
//	ripple.Advance(dt)
//
//	// In Paint
//	for i := range ripple.Count() {
//	    p := ripple.Progress(i)
//	    ...
//	}
//
// Everything here is single-threaded: engines, slides and loops must be used
// from the thread that delivers input and paints.
package animation
