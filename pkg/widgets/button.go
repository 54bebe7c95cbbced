package widgets

import (
	"image"
	"time"

	"github.com/go-drift/visualkit/pkg/animation"
	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/gestures"
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// Ripple and hover speeds, in progress per animation interval.
const (
	rippleIncrement = 0.03
	hoverIncrement  = 0.07
)

// Button is a push button with an optional icon, a hover glow on its border
// and an ink ripple from the press point.
//
// Create one with NewButton, attach it to a theme.Manager with Attach, and
// register it with an animation.Loop so its ripples advance:
//
//	b := widgets.NewButton("Save")
//	detach := widgets.Attach(b, manager)
//	remove := loop.Add(b)
type Button struct {
	RenderBase

	// Text is the label.
	Text string
	// Image is an optional icon drawn at ImageSize, or at its own size when
	// ImageSize is empty.
	Image     image.Image
	ImageSize graphics.Size
	// Relation places Image relative to Text.
	Relation TextImageRelation

	Border Border
	Colors ControlColorState
	// Gradient shades the fill from a lighter top to the selected color.
	Gradient bool

	TextStyle         graphics.TextStyle
	TextDisabledColor graphics.Color

	// Animation enables the hover glow and ripples.
	Animation bool

	// OnClick is called when a left press that began on the button is
	// released over it.
	OnClick func()

	// Fonts measures the label. Nil uses the shared font manager.
	Fonts graphics.TextMeasurer

	hover   *animation.Engine
	ripple  *animation.Engine
	pressed bool
}

// NewButton returns a button styled with the visual theme and default
// options.
func NewButton(text string) *Button {
	b := &Button{
		Text:     text,
		Relation: RelationOverlay,
		hover:    animation.NewEngine(animation.PolicySingular, hoverIncrement, animation.LinearCurve),
		ripple:   animation.NewEngine(animation.PolicyOneShot, rippleIncrement, animation.EaseOut),
	}
	b.hover.AddListener(b.MarkNeedsPaint)
	b.ripple.AddListener(b.MarkNeedsPaint)
	b.UpdateStyle(theme.Change{ID: theme.Visual, Style: theme.VisualStyle(), Options: theme.DefaultOptions()})
	return b
}

// Ripples returns the ripple engine.
func (b *Button) Ripples() *animation.Engine {
	return b.ripple
}

// Hover returns the hover glow engine.
func (b *Button) Hover() *animation.Engine {
	return b.hover
}

// UpdateStyle copies the colors, font and options b paints with.
func (b *Button) UpdateStyle(ch theme.Change) {
	b.Colors = ControlColorsFrom(ch.Style.ControlColors())
	b.Border.applyTheme(ch)
	b.TextStyle = ch.Style.TextStyle(true)
	b.TextDisabledColor = ch.Style.Font.ForeColorDisabled
	b.Animation = ch.Options.Animation
	b.MarkNeedsPaint()
}

// HandlePointer updates the mouse state and starts hover and ripple
// animations.
func (b *Button) HandlePointer(ev gestures.PointerEvent) {
	b.trackMouse(ev)
	switch ev.Phase {
	case gestures.PointerPhaseEnter:
		b.hover.Start(animation.DirectionIn, ev.Position)
	case gestures.PointerPhaseLeave:
		b.hover.Start(animation.DirectionOut, ev.Position)
		b.pressed = false
	case gestures.PointerPhaseDown:
		if ev.Button != gestures.ButtonLeft || !b.Enabled() {
			return
		}
		b.pressed = true
		if b.Animation {
			b.ripple.Start(animation.DirectionIn, ev.Position)
		}
	case gestures.PointerPhaseUp:
		if !b.pressed {
			return
		}
		b.pressed = false
		if b.Enabled() && b.HitTest(ev.Position) && b.OnClick != nil {
			b.OnClick()
		}
	case gestures.PointerPhaseCancel:
		b.pressed = false
	}
}

// Advance steps the hover and ripple engines.
func (b *Button) Advance(dt time.Duration) {
	b.hover.Advance(dt)
	b.ripple.Advance(dt)
}

// IsAnimating reports whether a hover fade or ripple is in flight.
func (b *Button) IsAnimating() bool {
	return b.hover.IsAnimating() || b.ripple.IsAnimating()
}

// Paint draws the button at its bounds.
func (b *Button) Paint(canvas graphics.Canvas) {
	defer errors.Recover("widgets.Button.Paint")
	defer b.ClearNeedsPaint()

	rect := b.Bounds()
	path := b.Border.Path(rect)
	enabled := b.Enabled()
	state := b.MouseState()

	fill := b.Colors.Select(enabled, state)
	paint := graphics.FillPaint(fill)
	if b.Gradient {
		paint.Gradient = graphics.VerticalGradient(rect, fill.Lighten(0.15), fill)
	}

	b.paintBackground(canvas, path, paint, state)

	style := b.TextStyle
	if !enabled {
		style.Color = b.TextDisabledColor
	}
	imageSize := b.imageSize()
	textSize := measureText(b.Fonts, b.Text, style)
	imageAt, textAt := LayoutTextImage(b.Relation, rect, imageSize, textSize)
	if b.Image != nil && !imageSize.IsEmpty() {
		canvas.DrawImage(b.Image, graphics.RectFromOffsetSize(imageAt, imageSize))
	}
	if b.Text != "" {
		canvas.DrawText(b.Text, textAt, style)
	}

	b.paintRipples(canvas, path)
}

func (b *Button) paintBackground(canvas graphics.Canvas, path *graphics.Path, paint graphics.Paint, state MouseState) {
	canvas.Save()
	defer canvas.Restore()
	canvas.ClipPath(path)
	canvas.DrawPath(path, paint)
	b.Border.strokeColor(canvas, path, b.borderColor(state))
}

// borderColor blends toward HoverColor by the hover glow progress while
// animation is on.
func (b *Button) borderColor(state MouseState) graphics.Color {
	if !b.Animation || !b.Border.HoverVisible || b.hover.Count() == 0 {
		return b.Border.ColorFor(state)
	}
	glow := animation.TweenColor(b.Border.Color, b.Border.HoverColor)
	return glow.Transform(b.hover, 0)
}

func (b *Button) imageSize() graphics.Size {
	if b.Image == nil {
		return graphics.Size{}
	}
	if !b.ImageSize.IsEmpty() {
		return b.ImageSize
	}
	r := b.Image.Bounds()
	return graphics.Size{Width: float64(r.Dx()), Height: float64(r.Dy())}
}

func (b *Button) paintRipples(canvas graphics.Canvas, path *graphics.Path) {
	if !b.Animation || !b.ripple.IsAnimating() {
		return
	}
	width := b.Bounds().Width()
	canvas.Save()
	defer canvas.Restore()
	canvas.ClipPath(path)
	canvas.SetAntiAlias(true)
	defer canvas.SetAntiAlias(false)
	for i := range b.ripple.Count() {
		size, alpha := rippleGeometry(b.ripple.Progress(i), width)
		color := graphics.ColorBlack.WithAlpha8(uint8(alpha))
		canvas.DrawCircle(b.toCanvas(b.ripple.Origin(i)), float64(size)/2, graphics.FillPaint(color))
	}
}

// rippleGeometry returns the ripple diameter and black alpha at progress p
// for a widget width wide. The diameter reaches twice the width and the
// alpha fades from 101 to 1.
func rippleGeometry(p, width float64) (size, alpha int) {
	size = int(p * width * 2)
	alpha = min(max(101-int(p*100), 0), 255)
	return size, alpha
}
