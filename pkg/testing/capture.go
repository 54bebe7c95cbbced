package testing

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/visualkit/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String formats the op as name(key=value, ...) with keys in sorted order.
func (o DisplayOp) String() string {
	var b strings.Builder
	b.WriteString(o.Op)
	b.WriteByte('(')
	for i, k := range sortedKeys(o.Params) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, o.Params[k])
	}
	b.WriteByte(')')
	return b.String()
}

// CaptureCanvas implements graphics.Canvas and records every call as a
// DisplayOp. It tracks antialias state across Save and Restore the way a
// real surface does, so widgets that read AntiAlias behave the same.
type CaptureCanvas struct {
	ops       []DisplayOp
	size      graphics.Size
	antiAlias bool
	saved     []bool
}

// NewCaptureCanvas returns an empty capture canvas reporting size.
func NewCaptureCanvas(size graphics.Size) *CaptureCanvas {
	return &CaptureCanvas{size: size}
}

// Ops returns the recorded operations.
func (c *CaptureCanvas) Ops() []DisplayOp {
	return c.ops
}

// Names returns the Op field of every recorded operation.
func (c *CaptureCanvas) Names() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Filter returns the recorded operations named op.
func (c *CaptureCanvas) Filter(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Depth returns the current Save nesting level.
func (c *CaptureCanvas) Depth() int {
	return len(c.saved)
}

// Reset discards recorded operations and state.
func (c *CaptureCanvas) Reset() {
	c.ops = nil
	c.saved = nil
	c.antiAlias = false
}

func (c *CaptureCanvas) Save() {
	c.saved = append(c.saved, c.antiAlias)
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *CaptureCanvas) Restore() {
	if n := len(c.saved); n > 0 {
		c.antiAlias = c.saved[n-1]
		c.saved = c.saved[:n-1]
	}
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *CaptureCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *CaptureCanvas) ClipPath(path *graphics.Path) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipPath",
		Params: sortedMap("bounds", serializeRect(path.Bounds())),
	})
}

func (c *CaptureCanvas) SetAntiAlias(enabled bool) {
	c.antiAlias = enabled
	c.ops = append(c.ops, DisplayOp{
		Op:     "setAntiAlias",
		Params: sortedMap("enabled", enabled),
	})
}

func (c *CaptureCanvas) AntiAlias() bool {
	return c.antiAlias
}

func (c *CaptureCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *CaptureCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *CaptureCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rrect.Rect)
	params["radius"] = serializeRadius(rrect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *CaptureCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	params := serializePaint(paint)
	params["cx"] = round2(center.X)
	params["cy"] = round2(center.Y)
	params["radius"] = round2(radius)
	params["antiAlias"] = c.antiAlias
	c.ops = append(c.ops, DisplayOp{Op: "drawCircle", Params: params})
}

func (c *CaptureCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	params := serializePaint(paint)
	params["x1"] = round2(start.X)
	params["y1"] = round2(start.Y)
	params["x2"] = round2(end.X)
	params["y2"] = round2(end.Y)
	c.ops = append(c.ops, DisplayOp{Op: "drawLine", Params: params})
}

func (c *CaptureCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	params["bounds"] = serializeRect(path.Bounds())
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *CaptureCanvas) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(style.Color),
			"size", round2(style.FontSize),
		),
	})
}

func (c *CaptureCanvas) DrawImage(_ image.Image, dst graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawImage",
		Params: sortedMap("dst", serializeRect(dst)),
	})
}

func (c *CaptureCanvas) Size() graphics.Size {
	return c.size
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap("color", serializeColor(p.Color), "style", p.Style.String())
	if p.Style == graphics.PaintStyleStroke {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.Gradient != nil {
		m["gradient"] = len(p.Gradient.Stops)
	}
	return m
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. JSON encoding
// sorts the keys, so snapshots are stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
