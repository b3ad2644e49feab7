// Package collision implements narrow-phase overlap tests between shape
// primitives, the dispatch table that picks a test for any pair of kinds,
// and queries against the live members of a room.
package collision

import (
	"math"

	"github.com/vovakirdan/tui-collide/internal/geo"
)

// PointOnLineTolerance is how far a point may sit from a segment's line
// equation and still count as lying on it.
const PointOnLineTolerance = 0.001

// RectRect reports whether two rectangles overlap.
// Intervals are open: rectangles that only share an edge do not collide.
func RectRect(a, b geo.Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// RectPoint reports whether the rectangle contains the point.
// Intervals are closed: a point on the boundary collides.
func RectPoint(r geo.Rect, p geo.Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// RectCircle reports whether a rectangle and a circle overlap.
func RectCircle(r geo.Rect, c geo.Circle) bool {
	halfW, halfH := r.W/2, r.H/2
	center := c.Center()

	distX := math.Abs(center.X - (r.X + halfW))
	distY := math.Abs(center.Y - (r.Y + halfH))

	if distX > halfW+c.R || distY > halfH+c.R {
		return false
	}
	if distX <= halfW || distY <= halfH {
		return true
	}

	dx, dy := distX-halfW, distY-halfH
	return dx*dx+dy*dy <= c.R*c.R
}

// RectLine reports whether a segment touches a rectangle.
func RectLine(r geo.Rect, l geo.Line) bool {
	if RectPoint(r, l.P1) && RectPoint(r, l.P2) {
		return true
	}

	// Both bounding boxes are closed here, so a segment lying along an
	// edge still reaches the edge tests below.
	b := l.Bounds()
	if b.Right() < r.Left() || b.Left() > r.Right() ||
		b.Bottom() < r.Top() || b.Top() > r.Bottom() {
		return false
	}

	for _, edge := range r.Edges() {
		if LineLine(l, edge) {
			return true
		}
	}
	return false
}

// CircleCircle reports whether two circles overlap, boundary included.
func CircleCircle(a, b geo.Circle) bool {
	ca, cb := a.Center(), b.Center()
	dx, dy := ca.X-cb.X, ca.Y-cb.Y
	reach := a.R + b.R
	return dx*dx+dy*dy <= reach*reach
}

// CirclePoint reports whether the circle contains the point, boundary included.
func CirclePoint(c geo.Circle, p geo.Point) bool {
	center := c.Center()
	dx, dy := center.X-p.X, center.Y-p.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// CircleLine reports whether any point of the segment lies within the circle.
func CircleLine(c geo.Circle, l geo.Line) bool {
	closest := ClosestPoint(l, c.Center())
	return CirclePoint(c, closest)
}

// ClosestPoint returns the point of segment l nearest to p.
func ClosestPoint(l geo.Line, p geo.Point) geo.Point {
	d := l.P2.Sub(l.P1)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return l.P1
	}

	t := ((p.X-l.P1.X)*d.X + (p.Y-l.P1.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return geo.Point{X: l.P1.X + t*d.X, Y: l.P1.Y + t*d.Y}
}

// LineLine reports whether two segments intersect.
// Parallel and coincident segments never intersect.
func LineLine(a, b geo.Line) bool {
	_, ok := LineIntercept(a, b)
	return ok
}

// LineIntercept returns the point where two segments cross.
// The second result is false when they are parallel, coincident, or the
// crossing lies outside either segment.
func LineIntercept(a, b geo.Line) (geo.Point, bool) {
	denominator := (b.P2.Y-b.P1.Y)*(a.P2.X-a.P1.X) -
		(b.P2.X-b.P1.X)*(a.P2.Y-a.P1.Y)
	if denominator == 0 {
		return geo.Point{}, false
	}

	ua := ((b.P2.X-b.P1.X)*(a.P1.Y-b.P1.Y) -
		(b.P2.Y-b.P1.Y)*(a.P1.X-b.P1.X)) / denominator
	ub := ((a.P2.X-a.P1.X)*(a.P1.Y-b.P1.Y) -
		(a.P2.Y-a.P1.Y)*(a.P1.X-b.P1.X)) / denominator

	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return geo.Point{}, false
	}

	return geo.Point{
		X: a.P1.X + ua*(a.P2.X-a.P1.X),
		Y: a.P1.Y + ua*(a.P2.Y-a.P1.Y),
	}, true
}

// LinePoint reports whether the point lies on the segment.
func LinePoint(l geo.Line, p geo.Point) bool {
	b := l.Bounds()
	if p.X < b.Left() || p.X > b.Right() || p.Y < b.Top() || p.Y > b.Bottom() {
		return false
	}

	// Vertical and horizontal segments: the bounding box is the segment.
	if l.P1.X == l.P2.X || l.P1.Y == l.P2.Y {
		return true
	}

	slope := (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X)
	intercept := l.P1.Y - slope*l.P1.X
	return math.Abs(p.Y-(slope*p.X+intercept)) <= PointOnLineTolerance
}

// PointPoint reports whether two points are identical.
func PointPoint(a, b geo.Point) bool {
	return a == b
}
