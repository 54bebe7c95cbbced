package widgets

import (
	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// Widget is the capability every custom-drawn control provides to its host.
//
// The host sets bounds, delivers pointer events in widget-local coordinates,
// forwards theme changes and calls Paint whenever NeedsPaint reports true.
// Paint draws at Bounds on the supplied canvas.
type Widget interface {
	Bounds() graphics.Rect
	SetBounds(bounds graphics.Rect)
	Enabled() bool
	SetEnabled(enabled bool)
	MouseState() MouseState
	HandlePointer(event gestures.PointerEvent)
	Paint(canvas graphics.Canvas)
	UpdateStyle(change theme.Change)
	NeedsPaint() bool
}

// Attach applies m's current style to w and subscribes w to later changes.
// The returned function unsubscribes.
func Attach(w Widget, m *theme.Manager) (detach func()) {
	w.UpdateStyle(m.Current())
	return m.Subscribe(w.UpdateStyle)
}

// RenderBase carries the state every widget shares. Widgets embed it.
type RenderBase struct {
	// OnInvalidate, if set, is called whenever the widget needs repainting.
	OnInvalidate func()

	bounds     graphics.Rect
	disabled   bool
	mouse      MouseTracker
	needsPaint bool
}

// Bounds returns the widget rectangle in canvas coordinates.
func (r *RenderBase) Bounds() graphics.Rect {
	return r.bounds
}

// SetBounds moves or resizes the widget.
func (r *RenderBase) SetBounds(bounds graphics.Rect) {
	if r.bounds == bounds {
		return
	}
	r.bounds = bounds
	r.MarkNeedsPaint()
}

// Size returns the size of Bounds.
func (r *RenderBase) Size() graphics.Size {
	return r.bounds.Size()
}

// Enabled reports whether the widget accepts input.
func (r *RenderBase) Enabled() bool {
	return !r.disabled
}

// SetEnabled enables or disables the widget.
func (r *RenderBase) SetEnabled(enabled bool) {
	if r.disabled == !enabled {
		return
	}
	r.disabled = !enabled
	r.MarkNeedsPaint()
}

// MouseState returns the current interaction state.
func (r *RenderBase) MouseState() MouseState {
	return r.mouse.State()
}

// NeedsPaint reports whether the widget changed since its last Paint.
func (r *RenderBase) NeedsPaint() bool {
	return r.needsPaint
}

// MarkNeedsPaint flags the widget for repaint and notifies the host.
func (r *RenderBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.OnInvalidate != nil {
		r.OnInvalidate()
	}
}

// ClearNeedsPaint is called at the end of Paint.
func (r *RenderBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// HitTest reports whether the widget-local position lies inside the widget.
func (r *RenderBase) HitTest(position graphics.Offset) bool {
	return withinBounds(position, r.Size())
}

// trackMouse feeds ev to the tracker and repaints on a state change.
func (r *RenderBase) trackMouse(ev gestures.PointerEvent) bool {
	if !r.mouse.Handle(ev) {
		return false
	}
	r.MarkNeedsPaint()
	return true
}

// toCanvas converts a widget-local point to canvas coordinates.
func (r *RenderBase) toCanvas(p graphics.Offset) graphics.Offset {
	return p.Add(r.bounds.TopLeft())
}

func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 &&
		position.X <= size.Width && position.Y <= size.Height
}

// measureText measures with m, falling back to the shared font manager.
func measureText(m graphics.TextMeasurer, text string, style graphics.TextStyle) graphics.Size {
	if text == "" {
		return graphics.Size{}
	}
	if m == nil {
		fm := graphics.DefaultFontManager()
		if fm == nil {
			return graphics.Size{}
		}
		m = fm
	}
	return m.MeasureText(text, style)
}
