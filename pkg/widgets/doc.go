// Package widgets provides the custom-drawn controls: Button, Toggle and
// TrackBar.
//
// # Widget Lifecycle
//
// Every control embeds RenderBase and satisfies Widget. The host owns the
// control and drives it from one goroutine:
//
//	b := widgets.NewButton("Save")
//	b.SetBounds(graphics.RectFromLTWH(10, 10, 100, 30))
//	detach := widgets.Attach(b, manager) // copy the theme now and on change
//	remove := loop.Add(b)                // advance ripples and hover
//
// Pointer events arrive in widget-local coordinates through HandlePointer.
// Paint draws at Bounds in canvas coordinates and clears NeedsPaint.
// OnInvalidate, when set, fires whenever a control needs a repaint.
//
// # Styling
//
// A control never holds a reference to the theme. UpdateStyle copies the
// colors, font and options it paints with out of a theme.Change, so fields
// such as Button.Colors or TrackBar.Hatch can be overridden per instance
// after a theme change.
//
// # Interaction State
//
// MouseTracker owns the Normal, Hover and Down states and is shared by all
// controls. Colors are resolved with ColorState and ControlColorState:
// Disabled wins over Down, and Down wins over Hover.
//
// # Errors
//
// Setters that take ranged values return *errors.VisualError and keep the
// previous value. Unknown enum values reaching a paint path are defects and
// panic with *errors.ProgrammingError; other panics in Paint are recovered
// and reported through the errors handler.
package widgets
