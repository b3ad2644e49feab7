// Package geo provides the shape primitives used by the collision engine.
// Shapes are plain values: copying one never aliases another, and equality
// is field-wise.
package geo

import (
	"fmt"
	"math"
)

// Kind identifies one of the four shape primitives.
// The numeric order is the canonical pair ordering used by collision dispatch.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindLine
	KindPoint

	// KindCount is the number of shape kinds.
	KindCount
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindPoint:
		return "point"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the four primitives.
func (k Kind) Valid() bool {
	return k >= KindRect && k < KindCount
}

// Shape is implemented by the primitives Rect, Circle, Line and Point.
// The unexported method keeps other packages from adding kinds, but
// pointers to the primitives also satisfy it; the collision table treats
// those as undecidable.
type Shape interface {
	// Kind returns the primitive kind.
	Kind() Kind

	// Center returns the geometric center.
	Center() Point

	// Bounds returns the axis-aligned bounding box.
	Bounds() Rect

	// Origin returns the coordinates relocation works on.
	Origin() Point

	// Relocate returns a copy whose origin is (x, y).
	Relocate(x, y float64) Shape

	// Translate returns a copy moved by (dx, dy).
	Translate(dx, dy float64) Shape

	isShape()
}

// At returns a copy of s with its origin moved to (x, y).
func At(s Shape, x, y float64) Shape {
	return s.Relocate(x, y)
}

// AtX returns a copy of s with only the origin x-coordinate replaced.
func AtX(s Shape, x float64) Shape {
	return s.Relocate(x, s.Origin().Y)
}

// AtY returns a copy of s with only the origin y-coordinate replaced.
func AtY(s Shape, y float64) Shape {
	return s.Relocate(s.Origin().X, y)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceBetween returns the distance between the centers of two shapes.
func DistanceBetween(a, b Shape) float64 {
	return Distance(a.Center(), b.Center())
}
