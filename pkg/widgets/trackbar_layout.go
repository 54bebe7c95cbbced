package widgets

import (
	"math"
	"strconv"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// trackLayout is the geometry of one paint, in canvas coordinates.
type trackLayout struct {
	working   graphics.Rect
	track     graphics.Rect
	thumb     graphics.Rect
	lineBands []graphics.Rect
	textBands []graphics.Rect
	preferred graphics.Size
}

// textStyle returns the tick and value text style for the enabled state.
func (tb *TrackBar) textStyle() graphics.TextStyle {
	style := tb.TextStyle
	if !tb.Enabled() {
		style.Color = tb.TextDisabledColor
	}
	return style
}

// layout places the track, thumb and tick bands inside Bounds. The bands
// either side of the track are as deep as the thumb overhang or the tick
// band (text, tick line and spacing), whichever is larger.
func (tb *TrackBar) layout() trackLayout {
	b := tb.Bounds()
	indW, indH := float64(tb.IndentWidth), float64(tb.IndentHeight)
	working := graphics.Rect{Left: b.Left + indW, Top: b.Top + indH, Right: b.Right - indW, Bottom: b.Bottom - indH}
	textSize := measureText(tb.Fonts, strconv.Itoa(tb.max), tb.textStyle())
	before, after := tb.TickStyle.sides()

	bar := float64(tb.BarThickness)
	tickH := float64(tb.TickHeight)
	spacing := float64(tb.BarTickSpacing)
	length := float64(tb.thumbLength())
	pos := float64(tb.ThumbPosition())

	var l trackLayout
	l.working = working

	switch tb.Orientation {
	case OrientationHorizontal:
		cross := tb.ThumbSize.Height
		band := textSize.Height + tickH + spacing
		above, below := tb.overhang(cross, bar), tb.overhang(cross, bar)
		if before {
			above = max(above, band)
		}
		if after {
			below = max(below, band)
		}
		l.track = graphics.RectFromLTWH(working.Left, working.Top+above, working.Width(), bar)
		l.thumb = graphics.RectFromLTWH(working.Left+pos, l.track.Top+bar/2-cross/2, length, cross)

		innerLeft := working.Left + length/2
		innerWidth := max(working.Width()-length, 0)
		if before {
			lines := graphics.RectFromLTWH(innerLeft, l.track.Top-spacing-tickH, innerWidth, tickH)
			l.lineBands = append(l.lineBands, lines)
			l.textBands = append(l.textBands, graphics.RectFromLTWH(innerLeft, lines.Top-textSize.Height, innerWidth, textSize.Height))
		}
		if after {
			lines := graphics.RectFromLTWH(innerLeft, l.track.Bottom+spacing, innerWidth, tickH)
			l.lineBands = append(l.lineBands, lines)
			l.textBands = append(l.textBands, graphics.RectFromLTWH(innerLeft, lines.Bottom, innerWidth, textSize.Height))
		}
		l.preferred = graphics.Size{Width: b.Width(), Height: 2*indH + above + bar + below}

	case OrientationVertical:
		cross := tb.ThumbSize.Width
		band := textSize.Width + tickH + spacing
		left, right := tb.overhang(cross, bar), tb.overhang(cross, bar)
		if before {
			left = max(left, band)
		}
		if after {
			right = max(right, band)
		}
		l.track = graphics.RectFromLTWH(working.Left+left, working.Top, bar, working.Height())
		l.thumb = graphics.RectFromLTWH(l.track.Left+bar/2-cross/2, working.Bottom-pos-length, cross, length)

		innerTop := working.Top + length/2
		innerHeight := max(working.Height()-length, 0)
		if before {
			lines := graphics.RectFromLTWH(l.track.Left-spacing-tickH, innerTop, tickH, innerHeight)
			l.lineBands = append(l.lineBands, lines)
			l.textBands = append(l.textBands, graphics.RectFromLTWH(lines.Left-textSize.Width, innerTop, textSize.Width, innerHeight))
		}
		if after {
			lines := graphics.RectFromLTWH(l.track.Right+spacing, innerTop, tickH, innerHeight)
			l.lineBands = append(l.lineBands, lines)
			l.textBands = append(l.textBands, graphics.RectFromLTWH(lines.Right, innerTop, textSize.Width, innerHeight))
		}
		l.preferred = graphics.Size{Width: 2*indW + left + bar + right, Height: b.Height()}

	default:
		errors.Unreachable("widgets.TrackBar.layout", tb.Orientation)
	}
	return l
}

// overhang is how far a visible thumb sticks out past one side of the bar.
func (tb *TrackBar) overhang(cross, bar float64) float64 {
	if !tb.ThumbVisible {
		return 0
	}
	return max((cross-bar)/2, 0)
}

// PreferredSize returns the size that fits the track, thumb and tick bands
// along the cross axis, keeping the current length.
func (tb *TrackBar) PreferredSize() graphics.Size {
	return tb.layout().preferred
}

// TrackRect returns the track rectangle in canvas coordinates.
func (tb *TrackBar) TrackRect() graphics.Rect {
	return tb.layout().track
}

// ThumbRect returns the thumb rectangle in canvas coordinates.
func (tb *TrackBar) ThumbRect() graphics.Rect {
	return tb.layout().thumb
}

// maxTicks bounds the tick count; wider ranges space ticks further apart.
const maxTicks = 1000

// tickFractions returns the values that get a tick and where each sits
// along the track as a fraction of the inner length.
func (tb *TrackBar) tickFractions() (values []int, fractions []float64) {
	if tb.TickFrequency <= 0 || tb.max == tb.min {
		return nil, nil
	}
	span := tb.span()
	step := tb.TickFrequency
	if float64(step) < span/maxTicks {
		step = int(math.Ceil(span / maxTicks))
	}
	for v := tb.min; ; v += step {
		values = append(values, v)
		fractions = append(fractions, (float64(v)-float64(tb.min))/span)
		// The uint difference is exact for any v <= max.
		if uint(tb.max)-uint(v) < uint(step) {
			break
		}
	}
	return values, fractions
}

// tickPoint returns the point at fraction f along band, growing rightward
// or upward.
func (tb *TrackBar) tickPoint(band graphics.Rect, f float64) graphics.Offset {
	if tb.Orientation == OrientationVertical {
		return graphics.Offset{X: band.Left, Y: band.Bottom - f*band.Height()}
	}
	return graphics.Offset{X: band.Left + f*band.Width(), Y: band.Top}
}

// Paint draws the track bar at its bounds.
func (tb *TrackBar) Paint(canvas graphics.Canvas) {
	defer errors.Recover("widgets.TrackBar.Paint")
	defer tb.ClearNeedsPaint()

	l := tb.layout()
	enabled := tb.Enabled()
	state := tb.MouseState()

	trackPath := tb.Border.Path(l.track)
	canvas.DrawPath(trackPath, graphics.FillPaint(tb.TrackColors.Select(enabled)))
	tb.paintProgress(canvas, l, trackPath)
	tb.Border.Stroke(canvas, trackPath, state)

	if tb.LineTicksVisible {
		for _, band := range l.lineBands {
			tb.paintTickLines(canvas, band)
		}
	}
	if tb.ValueTicksVisible {
		for _, band := range l.textBands {
			tb.paintTickText(canvas, band)
		}
	}

	if tb.ThumbVisible {
		thumbPath := tb.ThumbBorder.Path(l.thumb)
		canvas.DrawPath(thumbPath, graphics.FillPaint(tb.ThumbColors.Select(enabled, state)))
		tb.ThumbBorder.Stroke(canvas, thumbPath, state)
	}

	tb.paintValueText(canvas, l)
}

// paintProgress fills the track up to the thumb center.
func (tb *TrackBar) paintProgress(canvas graphics.Canvas, l trackLayout, trackPath *graphics.Path) {
	if !tb.ProgressVisible {
		return
	}
	center := l.thumb.Center()
	progress := l.track
	extent := 0.0
	if tb.Orientation == OrientationVertical {
		progress.Top = center.Y
		extent = progress.Height()
	} else {
		progress.Right = center.X
		extent = progress.Width()
	}
	if extent <= 1 {
		return
	}
	canvas.Save()
	defer canvas.Restore()
	canvas.ClipPath(trackPath)
	canvas.DrawRect(progress, graphics.FillPaint(tb.ProgressColor))
	tb.Hatch.Paint(canvas, progress)
}

func (tb *TrackBar) paintTickLines(canvas graphics.Canvas, band graphics.Rect) {
	_, fractions := tb.tickFractions()
	paint := graphics.StrokePaint(tb.TickColor, 1)
	for _, f := range fractions {
		p := tb.tickPoint(band, f)
		end := graphics.Offset{X: p.X, Y: band.Bottom}
		if tb.Orientation == OrientationVertical {
			end = graphics.Offset{X: band.Right, Y: p.Y}
		}
		canvas.DrawLine(p, end, paint)
	}
}

func (tb *TrackBar) paintTickText(canvas graphics.Canvas, band graphics.Rect) {
	values, fractions := tb.tickFractions()
	style := tb.textStyle()
	for i, v := range values {
		label := strconv.Itoa(v)
		size := measureText(tb.Fonts, label, style)
		p := tb.tickPoint(band, fractions[i])
		at := graphics.Offset{X: p.X - size.Width/2, Y: band.Top}
		if tb.Orientation == OrientationVertical {
			at = graphics.Offset{X: band.Right - size.Width, Y: p.Y - size.Height/2}
		}
		canvas.DrawText(label, at, style)
	}
}

// paintValueText centers the formatted value on the thumb, or places it at
// the thumb position on the track when the thumb is hidden.
func (tb *TrackBar) paintValueText(canvas graphics.Canvas, l trackLayout) {
	if !tb.ValueTextVisible {
		return
	}
	text := tb.FormattedValue()
	style := tb.textStyle()
	size := measureText(tb.Fonts, text, style)
	var at graphics.Offset
	switch {
	case tb.ThumbVisible:
		c := l.thumb.Center()
		at = graphics.Offset{X: c.X - size.Width/2, Y: c.Y - size.Height/2}
	case tb.Orientation == OrientationVertical:
		at = graphics.Offset{X: l.track.Left, Y: l.thumb.Top}
	default:
		at = graphics.Offset{X: l.thumb.Left, Y: l.track.Center().Y - size.Height/2}
	}
	canvas.DrawText(text, at, style)
}
