package graphics

import "image"

// Canvas records or renders drawing commands.
//
// Widgets draw through this interface only; the host supplies the concrete
// surface. Save and Restore bracket clip and antialias state.
type Canvas interface {
	// Save pushes the current clip and antialias state.
	Save()

	// Restore pops the most recent clip and antialias state.
	Restore()

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipPath restricts future drawing to the interior of path.
	ClipPath(path *Path)

	// SetAntiAlias toggles edge smoothing for subsequent shapes.
	SetAntiAlias(enabled bool)

	// AntiAlias reports the current edge smoothing mode.
	AntiAlias() bool

	// Clear fills the entire canvas with the given color, ignoring clips.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, style TextStyle)

	// DrawImage draws an image scaled into dst.
	DrawImage(img image.Image, dst Rect)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// TextMeasurer reports the size a single line of text occupies.
type TextMeasurer interface {
	MeasureText(text string, style TextStyle) Size
}
