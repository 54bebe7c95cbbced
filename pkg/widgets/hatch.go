package widgets

import (
	"github.com/go-drift/visualkit/pkg/graphics"
	"github.com/go-drift/visualkit/pkg/theme"
)

// Hatch is a diagonal line pattern laid over progress fills.
type Hatch struct {
	Visible   bool
	Size      float64
	BackColor graphics.Color
	ForeColor graphics.Color
}

// Paint draws the pattern inside rect.
func (h Hatch) Paint(canvas graphics.Canvas, rect graphics.Rect) {
	if !h.Visible || rect.IsEmpty() {
		return
	}
	step := max(h.Size, 1) * 2
	paint := graphics.StrokePaint(h.ForeColor, 1)
	canvas.Save()
	defer canvas.Restore()
	canvas.ClipRect(rect)
	for x := rect.Left - rect.Height(); x < rect.Right; x += step {
		canvas.DrawLine(
			graphics.Offset{X: x, Y: rect.Bottom},
			graphics.Offset{X: x + rect.Height(), Y: rect.Top},
			paint,
		)
	}
}

// applyTheme copies the hatch options and colors; the fore color is the
// back color at alpha 40.
func (h *Hatch) applyTheme(ch theme.Change) {
	h.Visible = ch.Options.HatchVisible
	h.Size = ch.Options.HatchSize
	h.BackColor = ch.Style.Progress.Hatch
	h.ForeColor = h.BackColor.WithAlpha8(40)
}
