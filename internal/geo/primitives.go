package geo

import (
	"fmt"
	"math"
)

// Point is a zero-area location.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Kind() Kind    { return KindPoint }
func (p Point) Center() Point { return p }
func (p Point) Origin() Point { return p }
func (p Point) Bounds() Rect  { return Rect{X: p.X, Y: p.Y} }
func (p Point) isShape()      {}

// Relocate returns the point (x, y).
func (p Point) Relocate(x, y float64) Shape { return Point{X: x, Y: y} }

// Translate returns the point moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Shape { return Point{X: p.X + dx, Y: p.Y + dy} }

// Add returns the component-wise sum.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Kind() Kind    { return KindRect }
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Bounds() Rect  { return r }
func (r Rect) isShape()      {}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Relocate returns a copy with the top-left corner at (x, y).
func (r Rect) Relocate(x, y float64) Shape { return r.At(x, y) }

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Shape { return r.At(r.X+dx, r.Y+dy) }

// At is the typed form of Relocate.
func (r Rect) At(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) CenterX() float64    { return r.X + r.W/2 }
func (r Rect) CenterY() float64    { return r.Y + r.H/2 }
func (r Rect) HalfWidth() float64  { return r.W / 2 }
func (r Rect) HalfHeight() float64 { return r.H / 2 }

// Degenerate reports whether the rectangle has no area.
func (r Rect) Degenerate() bool {
	return r.W <= 0 || r.H <= 0
}

// Edges returns the four boundary segments: top, right, bottom, left.
func (r Rect) Edges() [4]Line {
	return [4]Line{
		{P1: Point{r.Left(), r.Top()}, P2: Point{r.Right(), r.Top()}},
		{P1: Point{r.Right(), r.Top()}, P2: Point{r.Right(), r.Bottom()}},
		{P1: Point{r.Right(), r.Bottom()}, P2: Point{r.Left(), r.Bottom()}},
		{P1: Point{r.Left(), r.Bottom()}, P2: Point{r.Left(), r.Top()}},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.W, r.H)
}

// Circle is stored by its bounding-box corner, not its center:
// the true center is (X+R, Y+R).
type Circle struct {
	X, Y float64
	R    float64
}

// NewCircle creates a circle whose bounding box starts at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// CircleAt creates a circle from its true center.
func CircleAt(cx, cy, r float64) Circle {
	return Circle{X: cx - r, Y: cy - r, R: r}
}

func (c Circle) Kind() Kind    { return KindCircle }
func (c Circle) Origin() Point { return Point{X: c.X, Y: c.Y} }
func (c Circle) isShape()      {}

// Center returns the true center, (X+R, Y+R).
func (c Circle) Center() Point {
	return Point{X: c.X + c.R, Y: c.Y + c.R}
}

// Bounds returns the bounding square.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.Diameter(), H: c.Diameter()}
}

// Relocate returns a copy with the bounding-box corner at (x, y).
func (c Circle) Relocate(x, y float64) Shape { return c.At(x, y) }

// Translate returns a copy moved by (dx, dy).
func (c Circle) Translate(dx, dy float64) Shape { return c.At(c.X+dx, c.Y+dy) }

// At is the typed form of Relocate.
func (c Circle) At(x, y float64) Circle {
	c.X, c.Y = x, y
	return c
}

// Diameter returns 2R.
func (c Circle) Diameter() float64 {
	return c.R * 2
}

// Contains reports whether (x, y) lies within the circle, boundary included.
func (c Circle) Contains(x, y float64) bool {
	return c.DistanceFrom(x, y) <= c.R
}

// DistanceFrom returns the distance from the true center to (x, y).
func (c Circle) DistanceFrom(x, y float64) float64 {
	return Distance(c.Center(), Point{X: x, Y: y})
}

func (c Circle) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.R)
}

// Line is a finite segment from P1 to P2. P1 == P2 is allowed.
type Line struct {
	P1, P2 Point
}

// NewLine creates the segment (x1, y1)-(x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{P1: Point{X: x1, Y: y1}, P2: Point{X: x2, Y: y2}}
}

func (l Line) Kind() Kind    { return KindLine }
func (l Line) Origin() Point { return l.P1 }
func (l Line) isShape()      {}

// Center returns the midpoint.
func (l Line) Center() Point {
	return Point{X: (l.P1.X + l.P2.X) / 2, Y: (l.P1.Y + l.P2.Y) / 2}
}

// Bounds returns the box spanned by the two endpoints.
func (l Line) Bounds() Rect {
	minX, maxX := math.Min(l.P1.X, l.P2.X), math.Max(l.P1.X, l.P2.X)
	minY, maxY := math.Min(l.P1.Y, l.P2.Y), math.Max(l.P1.Y, l.P2.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Relocate moves P1 to (x, y) and carries P2 along, keeping the direction.
func (l Line) Relocate(x, y float64) Shape { return l.At(x, y) }

// Translate returns a copy moved by (dx, dy).
func (l Line) Translate(dx, dy float64) Shape { return l.At(l.P1.X+dx, l.P1.Y+dy) }

// At is the typed form of Relocate.
func (l Line) At(x, y float64) Line {
	d := Point{X: x, Y: y}.Sub(l.P1)
	return Line{P1: l.P1.Add(d), P2: l.P2.Add(d)}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return Distance(l.P1, l.P2)
}

// Degenerate reports whether both endpoints coincide.
func (l Line) Degenerate() bool {
	return l.P1 == l.P2
}

func (l Line) String() string {
	return fmt.Sprintf("%s-%s", l.P1, l.P2)
}
