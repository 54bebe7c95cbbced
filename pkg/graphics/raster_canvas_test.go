package graphics

import (
	"image"
	"image/color"
	"testing"
)

func newTestRaster(t *testing.T, w, h int) *RasterCanvas {
	t.Helper()
	fonts, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	c := NewRasterCanvas(w, h, fonts)
	c.Clear(ColorWhite)
	return c
}

func pixel(c *RasterCanvas, x, y int) Color {
	return ColorFromStd(c.Image().At(x, y))
}

func TestRasterCanvas_FillRect(t *testing.T) {
	c := newTestRaster(t, 20, 20)
	c.DrawRect(RectFromLTWH(5, 5, 10, 10), FillPaint(ColorRed))

	if got := pixel(c, 10, 10); got != ColorRed {
		t.Errorf("inside = %v, want red", got)
	}
	if got := pixel(c, 2, 2); got != ColorWhite {
		t.Errorf("outside = %v, want white", got)
	}
	if got := pixel(c, 15, 10); got != ColorWhite {
		t.Errorf("right edge is exclusive, got %v", got)
	}
}

func TestRasterCanvas_ClipRect(t *testing.T) {
	c := newTestRaster(t, 20, 20)
	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 10, 20))
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorBlue))
	c.Restore()

	if got := pixel(c, 5, 5); got != ColorBlue {
		t.Errorf("clipped-in pixel = %v, want blue", got)
	}
	if got := pixel(c, 15, 5); got != ColorWhite {
		t.Errorf("clipped-out pixel = %v, want white", got)
	}

	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorGreen))
	if got := pixel(c, 15, 5); got != ColorGreen {
		t.Errorf("after Restore the clip should be gone, got %v", got)
	}
}

func TestRasterCanvas_NestedClipsIntersect(t *testing.T) {
	c := newTestRaster(t, 20, 20)
	c.ClipRect(RectFromLTWH(0, 0, 15, 20))
	c.ClipRect(RectFromLTWH(5, 0, 15, 20))
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorBlack))

	for _, tt := range []struct {
		x    int
		want Color
	}{{2, ColorWhite}, {10, ColorBlack}, {17, ColorWhite}} {
		if got := pixel(c, tt.x, 10); got != tt.want {
			t.Errorf("pixel(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRasterCanvas_AntiAliasState(t *testing.T) {
	c := newTestRaster(t, 4, 4)
	if c.AntiAlias() {
		t.Fatal("antialiasing should start disabled")
	}
	c.Save()
	c.SetAntiAlias(true)
	if !c.AntiAlias() {
		t.Error("SetAntiAlias(true) not applied")
	}
	c.Restore()
	if c.AntiAlias() {
		t.Error("Restore should bring back the saved antialias mode")
	}
}

func TestRasterCanvas_AntiAliasEdges(t *testing.T) {
	edge := func(aa bool) Color {
		c := newTestRaster(t, 10, 10)
		c.SetAntiAlias(aa)
		c.DrawRect(Rect{Left: 0, Top: 0, Right: 5.75, Bottom: 10}, FillPaint(ColorBlack))
		return pixel(c, 5, 5)
	}
	if got := edge(false); got != ColorBlack {
		t.Errorf("aliased mostly-covered pixel = %v, want black", got)
	}
	got := edge(true)
	if got == ColorBlack || got == ColorWhite {
		t.Errorf("antialiased mostly-covered pixel = %v, want a blend", got)
	}
}

func TestRasterCanvas_TranslucentCircle(t *testing.T) {
	c := newTestRaster(t, 40, 40)
	c.DrawCircle(Offset{X: 20, Y: 20}, 10, FillPaint(ColorBlack.WithAlpha8(51)))

	got := pixel(c, 20, 20)
	if got.R() < 200 || got.R() > 206 {
		t.Errorf("center = %v, want white dimmed by alpha 51", got)
	}
	if got := pixel(c, 2, 2); got != ColorWhite {
		t.Errorf("corner = %v, want untouched", got)
	}
}

func TestRasterCanvas_StrokeRect(t *testing.T) {
	c := newTestRaster(t, 30, 30)
	c.DrawRect(RectFromLTWH(5.5, 5.5, 19, 19), StrokePaint(ColorRed, 1))

	for _, pt := range []image.Point{{5, 15}, {24, 15}, {15, 5}, {15, 24}, {5, 5}} {
		if got := pixel(c, pt.X, pt.Y); got != ColorRed {
			t.Errorf("border pixel %v = %v, want red", pt, got)
		}
	}
	if got := pixel(c, 15, 15); got != ColorWhite {
		t.Errorf("stroke filled the interior: %v", got)
	}
}

func TestRasterCanvas_Gradient(t *testing.T) {
	c := newTestRaster(t, 10, 100)
	r := RectFromLTWH(0, 0, 10, 100)
	c.DrawRect(r, Paint{Gradient: VerticalGradient(r, ColorBlack, ColorWhite)})

	top, bottom := pixel(c, 5, 1), pixel(c, 5, 98)
	if top.R() > 10 {
		t.Errorf("top = %v, want near black", top)
	}
	if bottom.R() < 245 {
		t.Errorf("bottom = %v, want near white", bottom)
	}
}

func TestRasterCanvas_DrawText(t *testing.T) {
	c := newTestRaster(t, 80, 30)
	c.DrawText("Hi", Offset{X: 2, Y: 2}, TextStyle{Color: ColorBlack, FontSize: 16})

	inked := false
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(c, x, y) != ColorWhite {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("DrawText left the canvas blank")
	}
}

func TestRasterCanvas_DrawImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
		}
	}
	c := newTestRaster(t, 20, 20)
	c.DrawImage(src, RectFromLTWH(4, 4, 8, 8))

	if got := pixel(c, 8, 8); got != ColorBlue {
		t.Errorf("scaled image pixel = %v, want blue", got)
	}
	if got := pixel(c, 15, 15); got != ColorWhite {
		t.Errorf("outside dst = %v, want white", got)
	}
}

func TestRasterCanvas_ClearIgnoresClip(t *testing.T) {
	c := newTestRaster(t, 10, 10)
	c.ClipRect(RectFromLTWH(0, 0, 2, 2))
	c.Clear(ColorGray)
	if got := pixel(c, 8, 8); got != ColorGray {
		t.Errorf("Clear should ignore clip, got %v", got)
	}
}
