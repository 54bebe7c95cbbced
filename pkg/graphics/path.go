package graphics

import (
	"fmt"
	"math"
)

// kappa is the cubic bezier control distance for a quarter circle.
const kappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods, or
// the AddRect/AddRRect/AddOval shape helpers. Fill uses the nonzero rule.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}

// AddRect appends a closed rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect appends a closed rounded rectangle subpath. Radii larger than half
// the rectangle's side are reduced to fit.
func (p *Path) AddRRect(rr RRect) {
	r := rr.Rect
	limit := func(rad Radius) Radius {
		return Radius{
			X: math.Min(math.Max(rad.X, 0), r.Width()/2),
			Y: math.Min(math.Max(rad.Y, 0), r.Height()/2),
		}
	}
	tl, tr := limit(rr.TopLeft), limit(rr.TopRight)
	br, bl := limit(rr.BottomRight), limit(rr.BottomLeft)

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if tr.X > 0 || tr.Y > 0 {
		p.CubicTo(r.Right-tr.X+tr.X*kappa, r.Top, r.Right, r.Top+tr.Y-tr.Y*kappa, r.Right, r.Top+tr.Y)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if br.X > 0 || br.Y > 0 {
		p.CubicTo(r.Right, r.Bottom-br.Y+br.Y*kappa, r.Right-br.X+br.X*kappa, r.Bottom, r.Right-br.X, r.Bottom)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if bl.X > 0 || bl.Y > 0 {
		p.CubicTo(r.Left+bl.X-bl.X*kappa, r.Bottom, r.Left, r.Bottom-bl.Y+bl.Y*kappa, r.Left, r.Bottom-bl.Y)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if tl.X > 0 || tl.Y > 0 {
		p.CubicTo(r.Left, r.Top+tl.Y-tl.Y*kappa, r.Left+tl.X-tl.X*kappa, r.Top, r.Left+tl.X, r.Top)
	}
	p.Close()
}

// AddOval appends a closed ellipse inscribed in r.
func (p *Path) AddOval(r Rect) {
	c := r.Center()
	rx, ry := r.Width()/2, r.Height()/2
	ox, oy := rx*kappa, ry*kappa
	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+oy, c.X+ox, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-ox, c.Y+ry, c.X-rx, c.Y+oy, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-oy, c.X-ox, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+ox, c.Y-ry, c.X+rx, c.Y-oy, c.X+rx, c.Y)
	p.Close()
}

// AddCircle appends a closed circle.
func (p *Path) AddCircle(center Offset, radius float64) {
	p.AddOval(Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	})
}

// Bounds returns the bounding box of all points, including control points.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			b.Left = math.Min(b.Left, cmd.Args[i])
			b.Right = math.Max(b.Right, cmd.Args[i])
			b.Top = math.Min(b.Top, cmd.Args[i+1])
			b.Bottom = math.Max(b.Bottom, cmd.Args[i+1])
		}
	}
	if math.IsInf(b.Left, 1) {
		return Rect{}
	}
	return b
}

// Flatten converts the path into closed-or-open polylines, subdividing
// curves into segments no longer than roughly tolerance pixels.
func (p *Path) Flatten(tolerance float64) [][]Offset {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.5
	}
	var (
		out     [][]Offset
		current []Offset
		cur     Offset
		start   Offset
	)
	flush := func() {
		if len(current) > 1 {
			out = append(out, current)
		}
		current = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			cur = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			start = cur
			current = []Offset{cur}
		case PathOpLineTo:
			if current == nil {
				current = []Offset{cur}
			}
			cur = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			current = append(current, cur)
		case PathOpQuadTo:
			if current == nil {
				current = []Offset{cur}
			}
			c := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			end := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			n := segments(tolerance, cur, c, end)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				u := 1 - t
				current = append(current, Offset{
					X: u*u*cur.X + 2*u*t*c.X + t*t*end.X,
					Y: u*u*cur.Y + 2*u*t*c.Y + t*t*end.Y,
				})
			}
			cur = end
		case PathOpCubicTo:
			if current == nil {
				current = []Offset{cur}
			}
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			n := segments(tolerance, cur, c1, c2, end)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				u := 1 - t
				current = append(current, Offset{
					X: u*u*u*cur.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*cur.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			cur = end
		case PathOpClose:
			if current != nil && current[len(current)-1] != start {
				current = append(current, start)
			}
			flush()
			cur = start
		}
	}
	flush()
	return out
}

// segments estimates how many line segments approximate a curve through the
// given control polygon.
func segments(tolerance float64, pts ...Offset) int {
	length := 0.0
	for i := 1; i < len(pts); i++ {
		length += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	n := int(math.Ceil(length / (tolerance * 4)))
	return min(max(n, 2), 64)
}
