package graphics

import (
	"image"
	"image/color"
	"math"

	"github.com/go-drift/visualkit/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// flattenTolerance is the maximum curve subdivision error in pixels.
const flattenTolerance = 0.25

type rasterState struct {
	clip      *image.Alpha
	antiAlias bool
}

// RasterCanvas draws into an *image.RGBA.
//
// Shapes are rasterized with golang.org/x/image/vector, text with the
// FontManager's faces and images with golang.org/x/image/draw. Clips are
// coverage masks intersected on each ClipRect/ClipPath. When antialiasing is
// off, coverage is thresholded to fully on or off.
//
// RasterCanvas is not safe for concurrent use.
type RasterCanvas struct {
	dst   *image.RGBA
	fonts *FontManager
	state rasterState
	stack []rasterState
	rast  *vector.Rasterizer
}

// NewRasterCanvas allocates a transparent width×height surface. A nil fonts
// uses DefaultFontManager.
func NewRasterCanvas(width, height int, fonts *FontManager) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)), fonts)
}

// NewRasterCanvasFor draws into an existing image, whose bounds must start at
// the origin.
func NewRasterCanvasFor(dst *image.RGBA, fonts *FontManager) *RasterCanvas {
	if fonts == nil {
		fonts = DefaultFontManager()
	}
	b := dst.Bounds()
	return &RasterCanvas{
		dst:   dst,
		fonts: fonts,
		rast:  vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

// Fonts returns the font manager used for text.
func (c *RasterCanvas) Fonts() *FontManager {
	return c.fonts
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	p := NewPath()
	p.AddRect(rect)
	c.ClipPath(p)
}

func (c *RasterCanvas) ClipPath(path *Path) {
	mask := c.coverage(path.Flatten(flattenTolerance))
	if c.state.clip != nil {
		multiplyMask(mask, c.state.clip)
	}
	c.state.clip = mask
}

func (c *RasterCanvas) SetAntiAlias(enabled bool) {
	c.state.antiAlias = enabled
}

func (c *RasterCanvas) AntiAlias() bool {
	return c.state.antiAlias
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	p := NewPath()
	p.AddRect(rect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	p := NewPath()
	p.AddRRect(rrect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	p := NewPath()
	p.AddCircle(center, radius)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	c.composite(c.coverage(strokePolygons([][]Offset{{start, end}}, paint.StrokeWidth)), paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path.IsEmpty() {
		return
	}
	lines := path.Flatten(flattenTolerance)
	switch paint.Style {
	case PaintStyleFill:
		c.composite(c.coverage(lines), paint)
	case PaintStyleStroke:
		c.composite(c.coverage(strokePolygons(lines, paint.StrokeWidth)), paint)
	default:
		errors.Unreachable("graphics.RasterCanvas.DrawPath", paint.Style)
	}
}

func (c *RasterCanvas) DrawText(text string, position Offset, style TextStyle) {
	if text == "" {
		return
	}
	face, err := c.fonts.Face(style)
	if err != nil {
		errors.Report(&errors.VisualError{Op: "graphics.RasterCanvas.DrawText", Kind: errors.KindRender, Err: err})
		return
	}
	mask := image.NewAlpha(c.dst.Bounds())
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(position.X),
			Y: floatToFixed(position.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
	if !c.state.antiAlias {
		threshold(mask)
	}
	c.composite(mask, FillPaint(style.Color))
}

func (c *RasterCanvas) DrawImage(img image.Image, dst Rect) {
	if img == nil || dst.IsEmpty() {
		return
	}
	dr := image.Rect(
		int(math.Round(dst.Left)), int(math.Round(dst.Top)),
		int(math.Round(dst.Right)), int(math.Round(dst.Bottom)),
	)
	var opts *draw.Options
	if c.state.clip != nil {
		opts = &draw.Options{DstMask: c.state.clip}
	}
	var scaler draw.Scaler = draw.BiLinear
	if !c.state.antiAlias {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(c.dst, dr, img, img.Bounds(), draw.Over, opts)
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// coverage rasterizes closed polygons into a mask, honoring the antialias
// mode but not the clip.
func (c *RasterCanvas) coverage(polys [][]Offset) *image.Alpha {
	b := c.dst.Bounds()
	mask := image.NewAlpha(b)
	if len(polys) == 0 {
		return mask
	}
	c.rast.Reset(b.Dx(), b.Dy())
	for _, poly := range polys {
		c.rast.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			c.rast.LineTo(float32(pt.X), float32(pt.Y))
		}
		c.rast.ClosePath()
	}
	c.rast.Draw(mask, b, image.Opaque, image.Point{})
	if !c.state.antiAlias {
		threshold(mask)
	}
	return mask
}

// composite paints the paint's color or gradient through mask and the
// current clip.
func (c *RasterCanvas) composite(mask *image.Alpha, paint Paint) {
	if c.state.clip != nil {
		multiplyMask(mask, c.state.clip)
	}
	var src image.Image
	if paint.Gradient != nil {
		src = gradientImage{g: paint.Gradient, bounds: c.dst.Bounds()}
	} else {
		if paint.Color.A() == 0 {
			return
		}
		src = image.NewUniform(paint.Color.NRGBA())
	}
	draw.DrawMask(c.dst, c.dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// strokePolygons expands polylines into consistently wound quads, plus
// square joints so consecutive segments have no gaps.
func strokePolygons(lines [][]Offset, width float64) [][]Offset {
	if width <= 0 {
		width = 1
	}
	half := width / 2
	var out [][]Offset
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			dx, dy := b.X-a.X, b.Y-a.Y
			l := math.Hypot(dx, dy)
			if l < epsilon {
				continue
			}
			nx, ny := -dy/l*half, dx/l*half
			out = append(out, clockwise([]Offset{
				{X: a.X + nx, Y: a.Y + ny},
				{X: b.X + nx, Y: b.Y + ny},
				{X: b.X - nx, Y: b.Y - ny},
				{X: a.X - nx, Y: a.Y - ny},
			}))
		}
		joints := line[1 : len(line)-1]
		if len(line) > 2 && line[0] == line[len(line)-1] {
			joints = line[:len(line)-1]
		}
		for _, p := range joints {
			out = append(out, clockwise([]Offset{
				{X: p.X - half, Y: p.Y - half},
				{X: p.X + half, Y: p.Y - half},
				{X: p.X + half, Y: p.Y + half},
				{X: p.X - half, Y: p.Y + half},
			}))
		}
	}
	return out
}

// clockwise reverses poly if its signed area is negative so overlapping
// stroke pieces accumulate instead of cancelling.
func clockwise(poly []Offset) []Offset {
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

func multiplyMask(mask, by *image.Alpha) {
	for i := range mask.Pix {
		mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(by.Pix[i]) / 0xFF)
	}
}

func threshold(mask *image.Alpha) {
	for i, v := range mask.Pix {
		if v >= 0x80 {
			mask.Pix[i] = 0xFF
		} else {
			mask.Pix[i] = 0
		}
	}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// gradientImage exposes a Gradient as an image.Image sampled at pixel centers.
type gradientImage struct {
	g      *Gradient
	bounds image.Rectangle
}

func (g gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g gradientImage) Bounds() image.Rectangle { return g.bounds }

func (g gradientImage) At(x, y int) color.Color {
	return g.g.ColorAt(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}).NRGBA()
}
