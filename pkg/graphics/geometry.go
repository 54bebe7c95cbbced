package graphics

// epsilon is the tolerance used where a length or span may round to zero.
const epsilon = 0.0001

// Offset is a point or vector in canvas pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by d.
func (o Offset) Add(d Offset) Offset {
	return Offset{X: o.X + d.X, Y: o.Y + d.Y}
}

// Sub returns the vector from d to o.
func (o Offset) Sub(d Offset) Offset {
	return Offset{X: o.X - d.X, Y: o.Y - d.Y}
}

// Size is a width and height in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle stored by its edges. Widgets keep their
// bounds as a Rect in canvas coordinates and derive every paint rectangle
// from it.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH builds a Rect from its top-left corner and dimensions.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromOffsetSize is RectFromLTWH taking an Offset and a Size.
func RectFromOffsetSize(at Offset, s Size) Rect {
	return RectFromLTWH(at.X, at.Y, s.Width, s.Height)
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the midpoint of r. Ripples and toggle labels are placed
// relative to it.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p is inside r. Left and top edges are inclusive,
// right and bottom exclusive, so adjacent rectangles never share a pixel.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate moves r by (dx, dy) without resizing it.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Radius is an elliptical corner radius.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius returns a Radius with equal axes.
func CircularRadius(v float64) Radius {
	return Radius{X: v, Y: v}
}

// RRect is a rectangle with a radius per corner. Border paths with
// BorderShapeRounded are built from one.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// RRectFromRectAndRadius gives all four corners of rect the same radius.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{Rect: rect, TopLeft: radius, TopRight: radius, BottomRight: radius, BottomLeft: radius}
}
